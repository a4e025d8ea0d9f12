package queries

import (
	"context"
	"errors"
	"time"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/model/user"
	"maintenance/internal/core/ports"
	"maintenance/internal/pkg/errs"

	"github.com/google/uuid"
)

const invalidCredentials = "invalid credentials"

// Session identifies a logged-in console user.
type Session struct {
	ID       uuid.UUID
	UserID   kernel.ID
	Role     user.Role
	FullName string
	IssuedAt time.Time
}

// AuthenticateQueryHandler opens a session for valid credentials. An unknown
// email and a wrong password produce the same errs.PermissionDeniedError.
//
// Example:
//
//	query, _ := NewAuthenticateQuery(user.RoleTechnician, "luis@plant.io", password)
//	session, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrPermissionDenied) {
//	    fmt.Println("wrong email or password")
//	}
type AuthenticateQueryHandler struct {
	reader AccountReader
	hasher ports.PasswordHasher
	clock  kernel.Clock
}

// NewAuthenticateQueryHandler creates the handler; clock stamps IssuedAt.
func NewAuthenticateQueryHandler(
	reader AccountReader,
	hasher ports.PasswordHasher,
	clock kernel.Clock,
) AuthenticateQueryHandler {
	return AuthenticateQueryHandler{
		reader: reader,
		hasher: hasher,
		clock:  clock,
	}
}

// Handle returns a new Session when the credentials match an active account of
// the query's role. Every failure is errs.ErrPermissionDenied, so a caller cannot
// tell an unknown email from a wrong password.
func (h AuthenticateQueryHandler) Handle(ctx context.Context, query AuthenticateQuery) (Session, error) {
	if err := query.Validate(); err != nil {
		return Session{}, err
	}

	account, err := findAccount(ctx, h.reader, query.Role(), query.Email())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return Session{}, errs.NewPermissionDeniedError(invalidCredentials)
	}
	if err != nil {
		return Session{}, err
	}

	if err = h.hasher.Compare(account.PasswordHash(), query.password); err != nil {
		return Session{}, err
	}

	if !account.IsActive() {
		return Session{}, errs.NewPermissionDeniedError("account is deactivated")
	}

	return Session{
		ID:       uuid.New(),
		UserID:   account.ID(),
		Role:     account.Role(),
		FullName: account.FullName(),
		IssuedAt: h.clock(),
	}, nil
}
