package assetrepo

import (
	"context"
	"errors"

	"maintenance/internal/adapters/out/postgres/query"
	"maintenance/internal/core/domain/model/asset"
	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/ports"
	"maintenance/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAssetRepository implements AssetRepository using GORM.
type GormAssetRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

var _ ports.AssetRepository = (*GormAssetRepository)(nil)

type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormAssetRepository creates a new GORM asset repository.
func NewGormAssetRepository(db *gorm.DB, tracker aggregateTracker) *GormAssetRepository {
	return &GormAssetRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new asset to the database.
func (r *GormAssetRepository) Add(ctx context.Context, aggregate *asset.IndustrialAsset) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !aggregate.ID().IsZero() {
		return errs.NewObjectAlreadyExistsError("asset", aggregate.ID())
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return query.Wrap("add asset", "id", dto.ID, err)
	}
	if err := aggregate.AssignID(kernel.ID(dto.ID)); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing asset to the database.
func (r *GormAssetRepository) Update(ctx context.Context, aggregate *asset.IndustrialAsset) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := aggregate.ID().Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&IndustrialAssetDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return query.Wrap("update asset", "id", dto.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("asset", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an asset by ID.
func (r *GormAssetRepository) Get(ctx context.Context, id kernel.ID) (*asset.IndustrialAsset, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto IndustrialAssetDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", int64(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("asset", id)
		}
		return nil, query.Wrap("get asset", "id", id, err)
	}

	return toDomain(dto)
}

// List matches criteria fields asset_type, model, location, acquisition_date and id.
func (r *GormAssetRepository) List(ctx context.Context, criteria ports.Criteria) ([]*asset.IndustrialAsset, error) {
	scoped, err := query.Apply(r.db.WithContext(ctx).Model(&IndustrialAssetDTO{}), criteria, assetColumns)
	if err != nil {
		return nil, err
	}

	var dtos []IndustrialAssetDTO
	if err = scoped.Find(&dtos).Error; err != nil {
		return nil, query.Wrap("list assets", "", nil, err)
	}

	assets := make([]*asset.IndustrialAsset, 0, len(dtos))
	for _, dto := range dtos {
		a, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		assets = append(assets, a)
	}

	return assets, nil
}

// Delete removes an asset by ID.
func (r *GormAssetRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&IndustrialAssetDTO{}, int64(id))
	if result.Error != nil {
		return query.Wrap("delete asset", "id", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("asset", id)
	}
	return nil
}
