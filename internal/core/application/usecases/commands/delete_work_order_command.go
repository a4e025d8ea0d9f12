package commands

import (
	"errors"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/pkg/guard"
)

var ErrDeleteWorkOrderCommandIsNotConstructed = errors.New(
	"DeleteWorkOrderCommand must be created via NewDeleteWorkOrderCommand constructor",
)

// DeleteWorkOrderCommand asks to remove a work order regardless of its status.
type DeleteWorkOrderCommand struct {
	workOrderID kernel.ID
	guard       guard.ConstructorGuard
}

// NewDeleteWorkOrderCommand validates the identifier and builds the command.
func NewDeleteWorkOrderCommand(workOrderID kernel.ID) (DeleteWorkOrderCommand, error) {
	if err := workOrderID.Validate(); err != nil {
		return DeleteWorkOrderCommand{}, err
	}

	return DeleteWorkOrderCommand{
		workOrderID: workOrderID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// WorkOrderID returns the order to delete.
func (c DeleteWorkOrderCommand) WorkOrderID() kernel.ID {
	return c.workOrderID
}

func (c *DeleteWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteWorkOrderCommandIsNotConstructed)
}
