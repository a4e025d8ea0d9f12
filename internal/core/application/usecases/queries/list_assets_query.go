package queries

import (
	"context"
	"errors"

	"maintenance/internal/core/ports"
	"maintenance/internal/pkg/guard"
)

var ErrListAssetsQueryIsNotConstructed = errors.New(
	"ListAssetsQuery must be created via NewListAssetsQuery constructor",
)

// ListAssetsQuery filters assets by case-insensitive substring, e.g.
// Where("location", "line 2"). Empty criteria list every asset.
type ListAssetsQuery struct {
	criteria ports.Criteria
	guard    guard.ConstructorGuard
}

// NewListAssetsQuery builds the query. Empty criteria list every asset.
func NewListAssetsQuery(criteria ports.Criteria) ListAssetsQuery {
	return ListAssetsQuery{criteria: criteria, guard: guard.NewConstructorGuard()}
}

func (q ListAssetsQuery) Validate() error {
	return q.guard.Validate(ErrListAssetsQueryIsNotConstructed)
}

// ListAssetsQueryHandler lists industrial assets filtered by criteria.
type ListAssetsQueryHandler struct {
	reader AssetReader
}

func NewListAssetsQueryHandler(reader AssetReader) ListAssetsQueryHandler {
	return ListAssetsQueryHandler{reader: reader}
}

func (h ListAssetsQueryHandler) Handle(ctx context.Context, query ListAssetsQuery) ([]AssetView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items, err := h.reader.AssetRepository().List(ctx, query.criteria)
	if err != nil {
		return nil, err
	}

	views := make([]AssetView, 0, len(items))
	for _, item := range items {
		views = append(views, newAssetView(item))
	}
	return views, nil
}
