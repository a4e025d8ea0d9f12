package commands

import (
	"context"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/pkg/errs"
)

// ResolveWorkOrderCommandHandler closes a work order on behalf of its technician.
// The technician and the order are read in one transaction and the order is
// updated only when it is IN_PROGRESS and assigned to that technician.
//
// Example:
//
//	handler := NewResolveWorkOrderCommandHandler(uowFactory, kernel.SystemClock)
//	cmd, _ := NewResolveWorkOrderCommand(technicianID, orderID, "Seal replaced")
//	switch err := handler.Handle(ctx, cmd); {
//	case errors.Is(err, errs.ErrPermissionDenied):
//	    // the order belongs to someone else
//	case errors.Is(err, errs.ErrValueIsInvalid):
//	    // the order is not IN_PROGRESS
//	}
type ResolveWorkOrderCommandHandler struct {
	uowFactory DispatchUoWFactory
	clock      kernel.Clock
}

// NewResolveWorkOrderCommandHandler creates the handler. clock stamps the
// resolution time and decides whether the order was resolved on time.
func NewResolveWorkOrderCommandHandler(uowFactory DispatchUoWFactory, clock kernel.Clock) ResolveWorkOrderCommandHandler {
	return ResolveWorkOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle denies technicians who do not hold the order. The resolution time
// comes from the handler's clock.
func (h ResolveWorkOrderCommandHandler) Handle(ctx context.Context, command ResolveWorkOrderCommand) error {
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

	technician, err := uow.TechnicianRepository().Get(ctx, command.TechnicianID())
	if err != nil {
		return err
	}

	orderRepo := uow.WorkOrderRepository()

	order, err := orderRepo.Get(ctx, command.WorkOrderID())
	if err != nil {
		return err
	}

	if !order.IsAssignedTo(technician.ID()) {
		return errs.NewPermissionDeniedError(
			"work order " + order.ID().String() + " is not assigned to technician " + technician.ID().String(),
		)
	}

	if err = order.Resolve(command.ClosureComments(), h.clock()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
