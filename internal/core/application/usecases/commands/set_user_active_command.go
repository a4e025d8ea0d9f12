package commands

import (
	"errors"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/model/user"
	"maintenance/internal/pkg/guard"
)

var ErrSetUserActiveCommandIsNotConstructed = errors.New(
	"SetUserActiveCommand must be created via NewSetUserActiveCommand constructor",
)

// SetUserActiveCommand activates or deactivates an account of any role.
// Deactivated accounts cannot log in and technicians stop receiving work.
type SetUserActiveCommand struct {
	role   user.Role
	userID kernel.ID
	active bool
	guard  guard.ConstructorGuard
}

// NewSetUserActiveCommand builds a command that activates or deactivates
// the account with the given role and identifier.
func NewSetUserActiveCommand(role user.Role, userID kernel.ID, active bool) (SetUserActiveCommand, error) {
	if err := errors.Join(role.Validate(), userID.Validate()); err != nil {
		return SetUserActiveCommand{}, err
	}

	return SetUserActiveCommand{
		role:   role,
		userID: userID,
		active: active,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Role returns which kind of account is targeted.
func (c SetUserActiveCommand) Role() user.Role {
	return c.role
}

func (c SetUserActiveCommand) UserID() kernel.ID {
	return c.userID
}

// Active reports the requested state.
func (c SetUserActiveCommand) Active() bool {
	return c.active
}

func (c *SetUserActiveCommand) Validate() error {
	return c.guard.Validate(ErrSetUserActiveCommandIsNotConstructed)
}
