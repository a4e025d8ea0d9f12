package ports

import (
	"context"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/model/workorder"
)

// WorkOrderRepository persists work order aggregates.
type WorkOrderRepository interface {
	Add(ctx context.Context, order *workorder.WorkOrder) error
	Update(ctx context.Context, order *workorder.WorkOrder) error
	Get(ctx context.Context, id kernel.ID) (*workorder.WorkOrder, error)

	// List applies partial-match criteria, e.g. Where("status", "progress").
	List(ctx context.Context, criteria Criteria) ([]*workorder.WorkOrder, error)

	Delete(ctx context.Context, id kernel.ID) error

	// CountInProgressByTechnician counts the IN_PROGRESS orders assigned to exactly
	// technicianID. Unlike List it never matches on substrings, so technician 1 is
	// not charged for the orders of technician 11.
	CountInProgressByTechnician(ctx context.Context, technicianID kernel.ID) (int, error)
}
