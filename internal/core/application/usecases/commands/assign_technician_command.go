package commands

import (
	"errors"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/pkg/guard"
)

var ErrAssignTechnicianCommandIsNotConstructed = errors.New(
	"AssignTechnicianCommand must be created via NewAssignTechnicianCommand constructor",
)

// AssignTechnicianCommand hands a work order to a technician and moves it to
// IN_PROGRESS.
//
// Example:
//
//	cmd, _ := NewAssignTechnicianCommand(orderID, technicianID)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrLimitExceeded) {
//	    fmt.Println("technician is at capacity")
//	}
type AssignTechnicianCommand struct {
	workOrderID  kernel.ID
	technicianID kernel.ID
	guard        guard.ConstructorGuard
}

func NewAssignTechnicianCommand(workOrderID, technicianID kernel.ID) (AssignTechnicianCommand, error) {
	if err := errors.Join(workOrderID.Validate(), technicianID.Validate()); err != nil {
		return AssignTechnicianCommand{}, err
	}

	return AssignTechnicianCommand{
		workOrderID:  workOrderID,
		technicianID: technicianID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// WorkOrderID returns the work order to be assigned.
func (c AssignTechnicianCommand) WorkOrderID() kernel.ID {
	return c.workOrderID
}

// TechnicianID returns the technician who takes the order.
func (c AssignTechnicianCommand) TechnicianID() kernel.ID {
	return c.technicianID
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignTechnicianCommandIsNotConstructed otherwise.
func (c *AssignTechnicianCommand) Validate() error {
	return c.guard.Validate(ErrAssignTechnicianCommandIsNotConstructed)
}
