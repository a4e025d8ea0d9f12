package commands

import (
	"errors"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/pkg/guard"
)

var ErrUpdateSupervisorCommandIsNotConstructed = errors.New(
	"UpdateSupervisorCommand must be created via NewUpdateSupervisorCommand constructor",
)

// UpdateSupervisorCommand replaces the editable details of a supervisor profile.
type UpdateSupervisorCommand struct {
	supervisorID kernel.ID
	firstName    string
	lastName     string
	email        kernel.Email
	area         string
	guard        guard.ConstructorGuard
}

func NewUpdateSupervisorCommand(
	supervisorID kernel.ID,
	firstName, lastName, email, area string,
) (UpdateSupervisorCommand, error) {
	first, firstErr := kernel.RequireName("first name", firstName)
	last, lastErr := kernel.RequireName("last name", lastName)
	mail, mailErr := kernel.NewEmail(email)
	name, areaErr := kernel.RequireName("area", area)
	if err := errors.Join(supervisorID.Validate(), firstErr, lastErr, mailErr, areaErr); err != nil {
		return UpdateSupervisorCommand{}, err
	}

	return UpdateSupervisorCommand{
		supervisorID: supervisorID,
		firstName:    first,
		lastName:     last,
		email:        mail,
		area:         name,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// SupervisorID returns the supervisor to update.
func (c UpdateSupervisorCommand) SupervisorID() kernel.ID {
	return c.supervisorID
}

func (c UpdateSupervisorCommand) FirstName() string {
	return c.firstName
}

func (c UpdateSupervisorCommand) LastName() string {
	return c.lastName
}

// Email returns the new contact address.
func (c UpdateSupervisorCommand) Email() kernel.Email {
	return c.email
}

func (c UpdateSupervisorCommand) Area() string {
	return c.area
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateSupervisorCommandIsNotConstructed otherwise.
func (c *UpdateSupervisorCommand) Validate() error {
	return c.guard.Validate(ErrUpdateSupervisorCommandIsNotConstructed)
}
