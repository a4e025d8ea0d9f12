package queries

import (
	"errors"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/pkg/guard"
)

var ErrGetWorkOrderQueryIsNotConstructed = errors.New(
	"GetWorkOrderQuery must be created via NewGetWorkOrderQuery constructor",
)

// GetWorkOrderQuery fetches one work order with its timing figures.
//
// Example:
//
//	query, _ := NewGetWorkOrderQuery(42)
//	view, err := handler.Handle(ctx, query)
//	if err == nil && view.RemainingTime < 0 {
//	    fmt.Println("overdue by", -view.RemainingTime)
//	}
type GetWorkOrderQuery struct {
	workOrderID kernel.ID
	guard       guard.ConstructorGuard
}

// NewGetWorkOrderQuery validates the identifier and builds the query.
func NewGetWorkOrderQuery(workOrderID kernel.ID) (GetWorkOrderQuery, error) {
	if err := workOrderID.Validate(); err != nil {
		return GetWorkOrderQuery{}, err
	}
	return GetWorkOrderQuery{workOrderID: workOrderID, guard: guard.NewConstructorGuard()}, nil
}

// WorkOrderID returns the requested order.
func (q GetWorkOrderQuery) WorkOrderID() kernel.ID {
	return q.workOrderID
}

func (q GetWorkOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkOrderQueryIsNotConstructed)
}
