package queries

import (
	"errors"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/model/user"
	"maintenance/internal/pkg/guard"
)

var ErrGetUserQueryIsNotConstructed = errors.New(
	"GetUserQuery must be created via NewGetUserQuery or NewGetUserByEmailQuery constructor",
)

// GetUserQuery looks an account up either by id or by email.
type GetUserQuery struct {
	role  user.Role
	id    kernel.ID
	email kernel.Email
	guard guard.ConstructorGuard
}

// NewGetUserQuery looks an account of the given role up by id.
func NewGetUserQuery(role user.Role, id kernel.ID) (GetUserQuery, error) {
	if err := errors.Join(role.Validate(), id.Validate()); err != nil {
		return GetUserQuery{}, err
	}
	return GetUserQuery{role: role, id: id, guard: guard.NewConstructorGuard()}, nil
}

// NewGetUserByEmailQuery looks an account of the given role up by email.
// The address is validated before the query is built.
func NewGetUserByEmailQuery(role user.Role, email string) (GetUserQuery, error) {
	mail, mailErr := kernel.NewEmail(email)
	if err := errors.Join(role.Validate(), mailErr); err != nil {
		return GetUserQuery{}, err
	}
	return GetUserQuery{role: role, email: mail, guard: guard.NewConstructorGuard()}, nil
}

// Role returns the kind of account searched for.
func (q GetUserQuery) Role() user.Role {
	return q.role
}

// ByEmail reports whether the query was built with NewGetUserByEmailQuery.
func (q GetUserQuery) ByEmail() bool {
	return q.id.IsZero()
}

func (q GetUserQuery) Validate() error {
	return q.guard.Validate(ErrGetUserQueryIsNotConstructed)
}
