package userrepo

import (
	"context"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/model/user"
	"maintenance/internal/core/ports"

	"gorm.io/gorm"
)

// GormAdminRepository stores admins in the admins table.
type GormAdminRepository struct {
	table   table[AdminDTO]
	tracker aggregateTracker
}

var _ ports.AdminRepository = (*GormAdminRepository)(nil)

// NewGormAdminRepository creates a new GORM admin repository.
func NewGormAdminRepository(db *gorm.DB, tracker aggregateTracker) *GormAdminRepository {
	return &GormAdminRepository{
		table:   newTable[AdminDTO](db, "admin", map[string]string{"department": "department"}),
		tracker: tracker,
	}
}

// Add saves a new admin to the database.
func (r *GormAdminRepository) Add(ctx context.Context, aggregate *user.Admin) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := requireNew(aggregate.ID(), "admin"); err != nil {
		return err
	}

	dto := adminFromDomain(aggregate)
	if err := r.table.insert(ctx, &dto, dto.Email); err != nil {
		return err
	}
	if err := aggregate.AssignID(kernel.ID(dto.ID)); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing admin to the database.
func (r *GormAdminRepository) Update(ctx context.Context, aggregate *user.Admin) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := aggregate.ID().Validate(); err != nil {
		return err
	}

	dto := adminFromDomain(aggregate)
	if err := r.table.update(ctx, aggregate.ID(), &dto, dto.Email); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a admin by ID.
func (r *GormAdminRepository) Get(ctx context.Context, id kernel.ID) (*user.Admin, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	dto, err := r.table.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return adminToDomain(dto)
}

// GetByEmail retrieves a admin by login address.
func (r *GormAdminRepository) GetByEmail(ctx context.Context, email kernel.Email) (*user.Admin, error) {
	if err := email.Validate(); err != nil {
		return nil, err
	}
	dto, err := r.table.getByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return adminToDomain(dto)
}

// ExistsByEmail reports whether the address is already taken by a admin.
func (r *GormAdminRepository) ExistsByEmail(ctx context.Context, email kernel.Email) (bool, error) {
	if err := email.Validate(); err != nil {
		return false, err
	}
	return r.table.existsByEmail(ctx, email)
}

// List retrieves the admins matching the criteria.
func (r *GormAdminRepository) List(ctx context.Context, criteria ports.Criteria) ([]*user.Admin, error) {
	dtos, err := r.table.list(ctx, criteria)
	if err != nil {
		return nil, err
	}
	return mapAll(dtos, adminToDomain)
}

// Delete removes a admin by ID.
func (r *GormAdminRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	return r.table.delete(ctx, id)
}
