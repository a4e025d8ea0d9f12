package commands

import (
	"context"

	"maintenance/internal/core/domain/services"
)

// AssignTechnicianCommandHandler performs the quota check and the order update
// in the same transaction. The technician row is read with GetForUpdate, so two
// concurrent assignments to one technician cannot both pass the check.
type AssignTechnicianCommandHandler struct {
	uowFactory DispatchUoWFactory
	guard      services.AssignmentGuard
}

// NewAssignTechnicianCommandHandler creates the handler with the default
// AssignmentGuard.
func NewAssignTechnicianCommandHandler(uowFactory DispatchUoWFactory) AssignTechnicianCommandHandler {
	return AssignTechnicianCommandHandler{
		uowFactory: uowFactory,
		guard:      services.NewAssignmentGuard(),
	}
}

// Handle fails with errs.ErrLimitExceeded when the technician already holds
// as many IN_PROGRESS orders as their limit, and with errs.ErrValueIsInvalid
// when the order is resolved.
func (h AssignTechnicianCommandHandler) Handle(ctx context.Context, command AssignTechnicianCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	technicianRepo := uow.TechnicianRepository()
	orderRepo := uow.WorkOrderRepository()

	technician, err := technicianRepo.GetForUpdate(ctx, command.TechnicianID())
	if err != nil {
		return err
	}

	order, err := orderRepo.Get(ctx, command.WorkOrderID())
	if err != nil {
		return err
	}

	inProgress, err := orderRepo.CountInProgressByTechnician(ctx, technician.ID())
	if err != nil {
		return err
	}

	if err = h.guard.Assign(order, technician, inProgress); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
