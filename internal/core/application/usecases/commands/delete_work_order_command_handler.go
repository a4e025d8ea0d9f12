package commands

import (
	"context"
)

// DeleteWorkOrderCommandHandler removes a work order in any state.
type DeleteWorkOrderCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

// NewDeleteWorkOrderCommandHandler creates the handler.
func NewDeleteWorkOrderCommandHandler(uowFactory WorkOrderUoWFactory) DeleteWorkOrderCommandHandler {
	return DeleteWorkOrderCommandHandler{uowFactory: uowFactory}
}

// Handle returns errs.ErrObjectNotFound when the order does not exist.
func (h DeleteWorkOrderCommandHandler) Handle(ctx context.Context, command DeleteWorkOrderCommand) error {
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

	if err := uow.WorkOrderRepository().Delete(ctx, command.WorkOrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
