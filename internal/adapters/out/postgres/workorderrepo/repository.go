package workorderrepo

import (
	"context"
	"errors"

	"maintenance/internal/adapters/out/postgres/query"
	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/model/workorder"
	"maintenance/internal/core/ports"
	"maintenance/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormWorkOrderRepository implements WorkOrderRepository using GORM.
type GormWorkOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

var _ ports.WorkOrderRepository = (*GormWorkOrderRepository)(nil)

type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormWorkOrderRepository creates a new GORM work order repository.
func NewGormWorkOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormWorkOrderRepository {
	return &GormWorkOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new work order to the database.
func (r *GormWorkOrderRepository) Add(ctx context.Context, aggregate *workorder.WorkOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !aggregate.ID().IsZero() {
		return errs.NewObjectAlreadyExistsError("work order", aggregate.ID())
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return query.Wrap("add work order", "id", dto.ID, err)
	}
	if err := aggregate.AssignID(kernel.ID(dto.ID)); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing work order to the database.
func (r *GormWorkOrderRepository) Update(ctx context.Context, aggregate *workorder.WorkOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := aggregate.ID().Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&WorkOrderDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return query.Wrap("update work order", "id", dto.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("work order", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a work order by ID.
func (r *GormWorkOrderRepository) Get(ctx context.Context, id kernel.ID) (*workorder.WorkOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WorkOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", int64(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("work order", id)
		}
		return nil, query.Wrap("get work order", "id", id, err)
	}

	return toDomain(dto)
}

// List retrieves the work orders matching the criteria, ordered by id.
func (r *GormWorkOrderRepository) List(ctx context.Context, criteria ports.Criteria) ([]*workorder.WorkOrder, error) {
	scoped, err := query.Apply(r.db.WithContext(ctx).Model(&WorkOrderDTO{}), criteria, workOrderColumns)
	if err != nil {
		return nil, err
	}

	var dtos []WorkOrderDTO
	if err = scoped.Find(&dtos).Error; err != nil {
		return nil, query.Wrap("list work orders", "", nil, err)
	}

	orders := make([]*workorder.WorkOrder, 0, len(dtos))
	for _, dto := range dtos {
		o, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// Delete removes a work order by ID.
func (r *GormWorkOrderRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&WorkOrderDTO{}, int64(id))
	if result.Error != nil {
		return query.Wrap("delete work order", "id", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("work order", id)
	}
	return nil
}

// CountInProgressByTechnician counts the orders the technician holds in progress.
func (r *GormWorkOrderRepository) CountInProgressByTechnician(ctx context.Context, technicianID kernel.ID) (int, error) {
	if err := technicianID.Validate(); err != nil {
		return 0, err
	}

	var n int64
	err := r.db.WithContext(ctx).
		Model(&WorkOrderDTO{}).
		Where("assigned_to = ? AND status = ?", int64(technicianID), workorder.InProgress.String()).
		Count(&n).Error
	if err != nil {
		return 0, query.Wrap("count work orders", "technician", technicianID, err)
	}

	return int(n), nil
}
