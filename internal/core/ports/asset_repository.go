package ports

import (
	"context"

	"maintenance/internal/core/domain/model/asset"
	"maintenance/internal/core/domain/model/kernel"
)

// AssetRepository persists industrial assets.
type AssetRepository interface {
	Add(ctx context.Context, asset *asset.IndustrialAsset) error
	Update(ctx context.Context, asset *asset.IndustrialAsset) error
	Get(ctx context.Context, id kernel.ID) (*asset.IndustrialAsset, error)
	List(ctx context.Context, criteria Criteria) ([]*asset.IndustrialAsset, error)
	Delete(ctx context.Context, id kernel.ID) error
}
