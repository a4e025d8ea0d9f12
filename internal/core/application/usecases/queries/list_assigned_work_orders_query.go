package queries

import (
	"context"
	"errors"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/model/workorder"
	"maintenance/internal/core/ports"
	"maintenance/internal/pkg/guard"
)

var ErrListAssignedWorkOrdersQueryIsNotConstructed = errors.New(
	"ListAssignedWorkOrdersQuery must be created via NewListAssignedWorkOrdersQuery constructor",
)

// ListAssignedWorkOrdersQuery lists the IN_PROGRESS orders held by one technician.
type ListAssignedWorkOrdersQuery struct {
	technicianID kernel.ID
	guard        guard.ConstructorGuard
}

// NewListAssignedWorkOrdersQuery builds the query for the given technician.
func NewListAssignedWorkOrdersQuery(technicianID kernel.ID) (ListAssignedWorkOrdersQuery, error) {
	if err := technicianID.Validate(); err != nil {
		return ListAssignedWorkOrdersQuery{}, err
	}
	return ListAssignedWorkOrdersQuery{technicianID: technicianID, guard: guard.NewConstructorGuard()}, nil
}

// TechnicianID returns the technician whose orders are listed.
func (q ListAssignedWorkOrdersQuery) TechnicianID() kernel.ID {
	return q.technicianID
}

func (q ListAssignedWorkOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListAssignedWorkOrdersQueryIsNotConstructed)
}

// ListAssignedWorkOrdersQueryHandler returns the orders a technician is
// currently working on. Resolved orders are excluded, and the remaining time
// of each order is measured against the injected clock.
//
// Example:
//
//	handler := NewListAssignedWorkOrdersQueryHandler(reader, time.Now)
//	query, err := NewListAssignedWorkOrdersQuery(technicianID)
//	if err != nil {
//	    return err
//	}
//
//	views, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list assigned orders: %w", err)
//	}
//	for _, v := range views {
//	    fmt.Println(v.ID, v.Title, v.RemainingTime)
//	}
type ListAssignedWorkOrdersQueryHandler struct {
	reader WorkOrderReader
	clock  kernel.Clock
}

// NewListAssignedWorkOrdersQueryHandler creates the handler.
func NewListAssignedWorkOrdersQueryHandler(reader WorkOrderReader, clock kernel.Clock) ListAssignedWorkOrdersQueryHandler {
	return ListAssignedWorkOrdersQueryHandler{reader: reader, clock: clock}
}

func (h ListAssignedWorkOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListAssignedWorkOrdersQuery,
) ([]WorkOrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	criteria := ports.NewCriteria().
		Where("assigned_to", query.TechnicianID().String()).
		Where("status", workorder.InProgress.String())

	orders, err := h.reader.WorkOrderRepository().List(ctx, criteria)
	if err != nil {
		return nil, err
	}

	// Criteria match substrings; keep the exact technician only.
	held := make([]*workorder.WorkOrder, 0, len(orders))
	for _, order := range orders {
		if order.IsAssignedTo(query.TechnicianID()) && order.Status() == workorder.InProgress {
			held = append(held, order)
		}
	}
	return newWorkOrderViews(held, h.clock()), nil
}
