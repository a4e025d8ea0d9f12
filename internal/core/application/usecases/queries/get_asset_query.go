package queries

import (
	"context"
	"errors"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/pkg/guard"
)

var ErrGetAssetQueryIsNotConstructed = errors.New(
	"GetAssetQuery must be created via NewGetAssetQuery constructor",
)

// GetAssetQuery fetches a single industrial asset by its identifier.
type GetAssetQuery struct {
	assetID kernel.ID
	guard   guard.ConstructorGuard
}

// NewGetAssetQuery validates the identifier and builds the query.
func NewGetAssetQuery(assetID kernel.ID) (GetAssetQuery, error) {
	if err := assetID.Validate(); err != nil {
		return GetAssetQuery{}, err
	}
	return GetAssetQuery{assetID: assetID, guard: guard.NewConstructorGuard()}, nil
}

// AssetID returns the requested asset.
func (q GetAssetQuery) AssetID() kernel.ID {
	return q.assetID
}

func (q GetAssetQuery) Validate() error {
	return q.guard.Validate(ErrGetAssetQueryIsNotConstructed)
}

// GetAssetQueryHandler reads one asset without opening a transaction.
type GetAssetQueryHandler struct {
	reader AssetReader
}

func NewGetAssetQueryHandler(reader AssetReader) GetAssetQueryHandler {
	return GetAssetQueryHandler{reader: reader}
}

// Handle returns errs.ErrObjectNotFound for an unknown id.
func (h GetAssetQueryHandler) Handle(ctx context.Context, query GetAssetQuery) (AssetView, error) {
	if err := query.Validate(); err != nil {
		return AssetView{}, err
	}

	item, err := h.reader.AssetRepository().Get(ctx, query.AssetID())
	if err != nil {
		return AssetView{}, err
	}
	return newAssetView(item), nil
}
