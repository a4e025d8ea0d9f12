package commands

import (
	"errors"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/pkg/guard"
)

var ErrRegisterAdminCommandIsNotConstructed = errors.New(
	"RegisterAdminCommand must be created via NewRegisterAdminCommand constructor",
)

// RegisterAdminCommand creates an administrator account.
//
// Example:
//
//	cmd, err := NewRegisterAdminCommand("Ana", "Gomez", "ana@plant.io", "s3cretpass", "Operations")
//	if err != nil {
//	    return err
//	}
//	id, err := handler.Handle(ctx, cmd)
type RegisterAdminCommand struct {
	registration
	department string
	guard      guard.ConstructorGuard
}

// NewRegisterAdminCommand validates every field and reports all failures at once.
func NewRegisterAdminCommand(
	firstName, lastName, email, password, department string,
) (RegisterAdminCommand, error) {
	reg, regErr := newRegistration(firstName, lastName, email, password)
	dept, deptErr := kernel.RequireName("department", department)
	if err := errors.Join(regErr, deptErr); err != nil {
		return RegisterAdminCommand{}, err
	}

	return RegisterAdminCommand{
		registration: reg,
		department:   dept,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Department returns the administrative department.
func (c RegisterAdminCommand) Department() string {
	return c.department
}

// Validate ensures the command was created through the constructor.
func (c *RegisterAdminCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAdminCommandIsNotConstructed)
}
