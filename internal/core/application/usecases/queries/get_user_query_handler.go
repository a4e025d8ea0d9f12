package queries

import (
	"context"

	"maintenance/internal/core/domain/model/user"
)

// GetUserQueryHandler loads one account by identifier or email.
type GetUserQueryHandler struct {
	reader AccountReader
}

// NewGetUserQueryHandler creates the handler.
func NewGetUserQueryHandler(reader AccountReader) GetUserQueryHandler {
	return GetUserQueryHandler{reader: reader}
}

// Handle returns errs.ErrObjectNotFound when no account of the role matches.
func (h GetUserQueryHandler) Handle(ctx context.Context, query GetUserQuery) (UserView, error) {
	if err := query.Validate(); err != nil {
		return UserView{}, err
	}

	var (
		account user.Account
		err     error
	)
	if query.ByEmail() {
		account, err = findAccount(ctx, h.reader, query.Role(), query.email)
	} else {
		account, err = getAccount(ctx, h.reader, query.Role(), query.id)
	}
	if err != nil {
		return UserView{}, err
	}

	return newUserView(account), nil
}
