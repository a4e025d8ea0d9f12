package queries

import (
	"context"

	"maintenance/internal/core/domain/model/kernel"
)

// ListWorkOrdersQueryHandler lists work orders whose fields contain the
// criteria values, ignoring case.
//
// Example:
//
//	criteria := ports.NewCriteria().Where("status", "unassigned")
//	orders, err := handler.Handle(ctx, NewListWorkOrdersQuery(criteria))
type ListWorkOrdersQueryHandler struct {
	reader WorkOrderReader
	clock  kernel.Clock
}

// NewListWorkOrdersQueryHandler creates the handler.
func NewListWorkOrdersQueryHandler(reader WorkOrderReader, clock kernel.Clock) ListWorkOrdersQueryHandler {
	return ListWorkOrdersQueryHandler{reader: reader, clock: clock}
}

// Handle returns the matching orders ordered by id; an empty slice when none match.
func (h ListWorkOrdersQueryHandler) Handle(ctx context.Context, query ListWorkOrdersQuery) ([]WorkOrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.reader.WorkOrderRepository().List(ctx, query.Criteria())
	if err != nil {
		return nil, err
	}
	return newWorkOrderViews(orders, h.clock()), nil
}
