package queries

import (
	"errors"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/model/user"
	"maintenance/internal/pkg/errs"
	"maintenance/internal/pkg/guard"
)

var ErrAuthenticateQueryIsNotConstructed = errors.New(
	"AuthenticateQuery must be created via NewAuthenticateQuery constructor",
)

// AuthenticateQuery checks the credentials of an account of the given role.
type AuthenticateQuery struct {
	role     user.Role
	email    kernel.Email
	password string
	guard    guard.ConstructorGuard
}

func NewAuthenticateQuery(role user.Role, email, password string) (AuthenticateQuery, error) {
	mail, mailErr := kernel.NewEmail(email)

	var passwordErr error
	if password == "" {
		passwordErr = errs.NewValueIsRequiredError("password")
	}

	if err := errors.Join(role.Validate(), mailErr, passwordErr); err != nil {
		return AuthenticateQuery{}, err
	}

	return AuthenticateQuery{
		role:     role,
		email:    mail,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Role returns the kind of account logging in.
func (q AuthenticateQuery) Role() user.Role {
	return q.role
}

// Email returns the login address.
func (q AuthenticateQuery) Email() kernel.Email {
	return q.email
}

func (q AuthenticateQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateQueryIsNotConstructed)
}
