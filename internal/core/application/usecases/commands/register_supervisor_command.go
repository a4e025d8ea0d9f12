package commands

import (
	"errors"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/pkg/guard"
)

var ErrRegisterSupervisorCommandIsNotConstructed = errors.New(
	"RegisterSupervisorCommand must be created via NewRegisterSupervisorCommand constructor",
)

// RegisterSupervisorCommand creates a supervisor responsible for one plant area.
type RegisterSupervisorCommand struct {
	registration
	area  string
	guard guard.ConstructorGuard
}

func NewRegisterSupervisorCommand(
	firstName, lastName, email, password, area string,
) (RegisterSupervisorCommand, error) {
	reg, regErr := newRegistration(firstName, lastName, email, password)
	name, areaErr := kernel.RequireName("area", area)
	if err := errors.Join(regErr, areaErr); err != nil {
		return RegisterSupervisorCommand{}, err
	}

	return RegisterSupervisorCommand{
		registration: reg,
		area:         name,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Area returns the plant area the supervisor oversees.
func (c RegisterSupervisorCommand) Area() string {
	return c.area
}

// Validate ensures the command was created through the constructor.
func (c *RegisterSupervisorCommand) Validate() error {
	return c.guard.Validate(ErrRegisterSupervisorCommandIsNotConstructed)
}
