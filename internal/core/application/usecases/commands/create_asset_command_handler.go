package commands

import (
	"context"

	"maintenance/internal/core/domain/model/asset"
	"maintenance/internal/core/domain/model/kernel"
)

// CreateAssetCommandHandler registers an industrial asset.
type CreateAssetCommandHandler struct {
	uowFactory AssetUoWFactory
}

// NewCreateAssetCommandHandler creates the handler.
func NewCreateAssetCommandHandler(uowFactory AssetUoWFactory) CreateAssetCommandHandler {
	return CreateAssetCommandHandler{uowFactory: uowFactory}
}

// Handle stores the asset and returns the identifier assigned by storage.
func (h CreateAssetCommandHandler) Handle(ctx context.Context, command CreateAssetCommand) (kernel.ID, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	item, err := asset.NewIndustrialAsset(
		command.AssetType(),
		command.Model(),
		command.Location(),
		command.AcquisitionDate(),
	)
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.AssetRepository().Add(ctx, item); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return item.ID(), nil
}
