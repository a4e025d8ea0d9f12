package commands

import (
	"context"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/model/workorder"
	"maintenance/internal/pkg/errs"
)

// CreateWorkOrderCommandHandler checks that the supervisor and the asset exist
// before opening the order, so no order ever points at a missing asset.
type CreateWorkOrderCommandHandler struct {
	uowFactory UoWFactory
	clock      kernel.Clock
}

// NewCreateWorkOrderCommandHandler creates the handler; clock provides the
// opening time of each new order.
func NewCreateWorkOrderCommandHandler(uowFactory UoWFactory, clock kernel.Clock) CreateWorkOrderCommandHandler {
	return CreateWorkOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle returns the identifier of the new order. A missing supervisor or
// asset yields errs.ErrObjectNotFound; an inactive supervisor is denied.
func (h CreateWorkOrderCommandHandler) Handle(ctx context.Context, command CreateWorkOrderCommand) (kernel.ID, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	supervisor, err := uow.SupervisorRepository().Get(ctx, command.SupervisorID())
	if err != nil {
		return 0, err
	}
	if !supervisor.IsActive() {
		return 0, errs.NewPermissionDeniedError("supervisor " + supervisor.ID().String() + " is inactive")
	}

	item, err := uow.AssetRepository().Get(ctx, command.AssetID())
	if err != nil {
		return 0, err
	}

	order, err := workorder.NewWorkOrder(
		command.Title(),
		command.Description(),
		supervisor.ID(),
		item.ID(),
		command.MaintenanceType(),
		command.Priority(),
		command.Estimate(),
		h.clock(),
	)
	if err != nil {
		return 0, err
	}

	if err = uow.WorkOrderRepository().Add(ctx, order); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return order.ID(), nil
}
