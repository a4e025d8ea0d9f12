package userrepo

import (
	"context"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/model/user"
	"maintenance/internal/core/ports"

	"gorm.io/gorm"
)

// GormTechnicianRepository stores technicians in the technicians table.
type GormTechnicianRepository struct {
	table   table[TechnicianDTO]
	tracker aggregateTracker
}

var _ ports.TechnicianRepository = (*GormTechnicianRepository)(nil)

// NewGormTechnicianRepository creates a new GORM technician repository.
func NewGormTechnicianRepository(db *gorm.DB, tracker aggregateTracker) *GormTechnicianRepository {
	return &GormTechnicianRepository{
		table:   newTable[TechnicianDTO](db, "technician", map[string]string{"max_active_orders": "max_active_orders"}),
		tracker: tracker,
	}
}

// Add saves a new technician to the database.
func (r *GormTechnicianRepository) Add(ctx context.Context, aggregate *user.Technician) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := requireNew(aggregate.ID(), "technician"); err != nil {
		return err
	}

	dto := technicianFromDomain(aggregate)
	if err := r.table.insert(ctx, &dto, dto.Email); err != nil {
		return err
	}
	if err := aggregate.AssignID(kernel.ID(dto.ID)); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing technician to the database.
func (r *GormTechnicianRepository) Update(ctx context.Context, aggregate *user.Technician) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := aggregate.ID().Validate(); err != nil {
		return err
	}

	dto := technicianFromDomain(aggregate)
	if err := r.table.update(ctx, aggregate.ID(), &dto, dto.Email); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a technician by ID.
func (r *GormTechnicianRepository) Get(ctx context.Context, id kernel.ID) (*user.Technician, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	dto, err := r.table.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return technicianToDomain(dto)
}

// GetForUpdate reads the technician with SELECT ... FOR UPDATE. SQLite ignores
// the locking clause; its transactions already serialise writers.
func (r *GormTechnicianRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*user.Technician, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	dto, err := r.table.getForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	return technicianToDomain(dto)
}

// GetByEmail retrieves a technician by login address.
func (r *GormTechnicianRepository) GetByEmail(ctx context.Context, email kernel.Email) (*user.Technician, error) {
	if err := email.Validate(); err != nil {
		return nil, err
	}
	dto, err := r.table.getByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return technicianToDomain(dto)
}

// ExistsByEmail reports whether the address is already taken by a technician.
func (r *GormTechnicianRepository) ExistsByEmail(ctx context.Context, email kernel.Email) (bool, error) {
	if err := email.Validate(); err != nil {
		return false, err
	}
	return r.table.existsByEmail(ctx, email)
}

// List retrieves the technicians matching the criteria.
func (r *GormTechnicianRepository) List(ctx context.Context, criteria ports.Criteria) ([]*user.Technician, error) {
	dtos, err := r.table.list(ctx, criteria)
	if err != nil {
		return nil, err
	}
	return mapAll(dtos, technicianToDomain)
}

// Delete removes a technician by ID.
func (r *GormTechnicianRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	return r.table.delete(ctx, id)
}
