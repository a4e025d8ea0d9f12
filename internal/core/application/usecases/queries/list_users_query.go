package queries

import (
	"context"
	"errors"

	"maintenance/internal/core/domain/model/user"
	"maintenance/internal/core/ports"
	"maintenance/internal/pkg/guard"
)

var ErrListUsersQueryIsNotConstructed = errors.New(
	"ListUsersQuery must be created via NewListUsersQuery constructor",
)

// ListUsersQuery lists the accounts of one role whose fields contain the
// criteria values, e.g. Where("last_name", "rio").
type ListUsersQuery struct {
	role     user.Role
	criteria ports.Criteria
	guard    guard.ConstructorGuard
}

// NewListUsersQuery rejects an unknown role. Empty criteria list every account.
func NewListUsersQuery(role user.Role, criteria ports.Criteria) (ListUsersQuery, error) {
	if err := role.Validate(); err != nil {
		return ListUsersQuery{}, err
	}
	return ListUsersQuery{role: role, criteria: criteria, guard: guard.NewConstructorGuard()}, nil
}

func (q ListUsersQuery) Validate() error {
	return q.guard.Validate(ErrListUsersQueryIsNotConstructed)
}

// ListUsersQueryHandler lists accounts of a single role.
type ListUsersQueryHandler struct {
	reader AccountReader
}

func NewListUsersQueryHandler(reader AccountReader) ListUsersQueryHandler {
	return ListUsersQueryHandler{reader: reader}
}

// Handle returns the matching accounts, or an empty slice when none match.
func (h ListUsersQueryHandler) Handle(ctx context.Context, query ListUsersQuery) ([]UserView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return listAccounts(ctx, h.reader, query.role, query.criteria)
}
