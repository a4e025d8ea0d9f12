package commands

import (
	"errors"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/pkg/guard"
)

var ErrResolveWorkOrderCommandIsNotConstructed = errors.New(
	"ResolveWorkOrderCommand must be created via NewResolveWorkOrderCommand constructor",
)

// ResolveWorkOrderCommand closes an IN_PROGRESS order on behalf of the
// technician who holds it. Closure comments are free text and are stored as
// given, including an empty note.
type ResolveWorkOrderCommand struct {
	technicianID    kernel.ID
	workOrderID     kernel.ID
	closureComments string
	guard           guard.ConstructorGuard
}

func NewResolveWorkOrderCommand(
	technicianID, workOrderID kernel.ID,
	closureComments string,
) (ResolveWorkOrderCommand, error) {
	if err := errors.Join(technicianID.Validate(), workOrderID.Validate()); err != nil {
		return ResolveWorkOrderCommand{}, err
	}

	return ResolveWorkOrderCommand{
		technicianID:    technicianID,
		workOrderID:     workOrderID,
		closureComments: closureComments,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// TechnicianID returns the technician closing the order.
func (c ResolveWorkOrderCommand) TechnicianID() kernel.ID {
	return c.technicianID
}

// WorkOrderID returns the order being resolved.
func (c ResolveWorkOrderCommand) WorkOrderID() kernel.ID {
	return c.workOrderID
}

// ClosureComments returns the free-text resolution note, possibly empty.
func (c ResolveWorkOrderCommand) ClosureComments() string {
	return c.closureComments
}

// Validate ensures the command was created through the constructor.
// Returns ErrResolveWorkOrderCommandIsNotConstructed otherwise.
func (c *ResolveWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrResolveWorkOrderCommandIsNotConstructed)
}
