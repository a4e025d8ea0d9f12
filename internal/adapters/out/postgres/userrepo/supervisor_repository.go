package userrepo

import (
	"context"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/model/user"
	"maintenance/internal/core/ports"

	"gorm.io/gorm"
)

// GormSupervisorRepository stores supervisors in the supervisors table.
type GormSupervisorRepository struct {
	table   table[SupervisorDTO]
	tracker aggregateTracker
}

var _ ports.SupervisorRepository = (*GormSupervisorRepository)(nil)

// NewGormSupervisorRepository creates a new GORM supervisor repository.
func NewGormSupervisorRepository(db *gorm.DB, tracker aggregateTracker) *GormSupervisorRepository {
	return &GormSupervisorRepository{
		table:   newTable[SupervisorDTO](db, "supervisor", map[string]string{"area": "area"}),
		tracker: tracker,
	}
}

// Add saves a new supervisor to the database.
func (r *GormSupervisorRepository) Add(ctx context.Context, aggregate *user.Supervisor) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := requireNew(aggregate.ID(), "supervisor"); err != nil {
		return err
	}

	dto := supervisorFromDomain(aggregate)
	if err := r.table.insert(ctx, &dto, dto.Email); err != nil {
		return err
	}
	if err := aggregate.AssignID(kernel.ID(dto.ID)); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing supervisor to the database.
func (r *GormSupervisorRepository) Update(ctx context.Context, aggregate *user.Supervisor) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := aggregate.ID().Validate(); err != nil {
		return err
	}

	dto := supervisorFromDomain(aggregate)
	if err := r.table.update(ctx, aggregate.ID(), &dto, dto.Email); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a supervisor by ID.
func (r *GormSupervisorRepository) Get(ctx context.Context, id kernel.ID) (*user.Supervisor, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	dto, err := r.table.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return supervisorToDomain(dto)
}

// GetByEmail retrieves a supervisor by login address.
func (r *GormSupervisorRepository) GetByEmail(ctx context.Context, email kernel.Email) (*user.Supervisor, error) {
	if err := email.Validate(); err != nil {
		return nil, err
	}
	dto, err := r.table.getByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return supervisorToDomain(dto)
}

// ExistsByEmail reports whether the address is already taken by a supervisor.
func (r *GormSupervisorRepository) ExistsByEmail(ctx context.Context, email kernel.Email) (bool, error) {
	if err := email.Validate(); err != nil {
		return false, err
	}
	return r.table.existsByEmail(ctx, email)
}

// List retrieves the supervisors matching the criteria.
func (r *GormSupervisorRepository) List(ctx context.Context, criteria ports.Criteria) ([]*user.Supervisor, error) {
	dtos, err := r.table.list(ctx, criteria)
	if err != nil {
		return nil, err
	}
	return mapAll(dtos, supervisorToDomain)
}

// Delete removes a supervisor by ID.
func (r *GormSupervisorRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	return r.table.delete(ctx, id)
}
