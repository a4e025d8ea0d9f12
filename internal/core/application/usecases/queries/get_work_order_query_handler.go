package queries

import (
	"context"

	"maintenance/internal/core/domain/model/kernel"
)

// GetWorkOrderQueryHandler loads one work order with its timing evaluated at
// the clock's current time.
type GetWorkOrderQueryHandler struct {
	reader WorkOrderReader
	clock  kernel.Clock
}

// NewGetWorkOrderQueryHandler creates the handler.
func NewGetWorkOrderQueryHandler(reader WorkOrderReader, clock kernel.Clock) GetWorkOrderQueryHandler {
	return GetWorkOrderQueryHandler{reader: reader, clock: clock}
}

// Handle fails with errs.ErrObjectNotFound for an unknown identifier.
func (h GetWorkOrderQueryHandler) Handle(ctx context.Context, query GetWorkOrderQuery) (WorkOrderView, error) {
	if err := query.Validate(); err != nil {
		return WorkOrderView{}, err
	}

	order, err := h.reader.WorkOrderRepository().Get(ctx, query.WorkOrderID())
	if err != nil {
		return WorkOrderView{}, err
	}
	return newWorkOrderView(order, h.clock()), nil
}
