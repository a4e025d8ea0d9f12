package services

import (
	"maintenance/internal/core/domain/model/user"
	"maintenance/internal/core/domain/model/workorder"
	"maintenance/internal/pkg/errs"
)

// AssignmentGuard enforces the technician quota when work orders are handed out.
//
// Business rules:
//   - Inactive technicians receive no work
//   - A technician holding as many IN_PROGRESS orders as their limit receives no more
//   - Reassigning an order to the technician who already holds it changes nothing
//     and therefore needs no quota headroom
//
// Example usage:
//
//	inProgress, _ := repo.CountInProgressByTechnician(ctx, technician.ID())
//	if err := services.NewAssignmentGuard().Assign(order, technician, inProgress); err != nil {
//	    return err // errs.ErrLimitExceeded when the technician is full
//	}
type AssignmentGuard struct{}

// NewAssignmentGuard returns the stateless guard.
func NewAssignmentGuard() AssignmentGuard {
	return AssignmentGuard{}
}

// Admit fails with a LimitExceededError when inProgress has reached the
// technician's limit.
func (g AssignmentGuard) Admit(technician *user.Technician, inProgress int) error {
	if err := technician.Validate(); err != nil {
		return err
	}
	if !technician.IsActive() {
		return errs.NewPermissionDeniedError("technician " + technician.ID().String() + " is inactive")
	}
	if inProgress >= technician.MaxActiveOrders() {
		return errs.NewLimitExceededError("active work orders", inProgress, technician.MaxActiveOrders())
	}
	return nil
}

// Assign admits the technician and assigns the order to them.
// inProgress is the number of IN_PROGRESS orders the technician holds right now.
func (g AssignmentGuard) Assign(order *workorder.WorkOrder, technician *user.Technician, inProgress int) error {
	if err := order.Validate(); err != nil {
		return err
	}
	if err := technician.Validate(); err != nil {
		return err
	}
	if order.Status() == workorder.InProgress && order.IsAssignedTo(technician.ID()) {
		return nil
	}
	if err := order.Status().ValidateAssign(); err != nil {
		return err
	}
	if err := g.Admit(technician, inProgress); err != nil {
		return err
	}
	return order.AssignTo(technician.ID())
}
