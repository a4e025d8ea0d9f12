package commands

import (
	"context"
)

// UpdateAssetCommandHandler replaces the descriptive fields of an asset.
type UpdateAssetCommandHandler struct {
	uowFactory AssetUoWFactory
}

// NewUpdateAssetCommandHandler creates the handler.
func NewUpdateAssetCommandHandler(uowFactory AssetUoWFactory) UpdateAssetCommandHandler {
	return UpdateAssetCommandHandler{uowFactory: uowFactory}
}

// Handle returns errs.ErrObjectNotFound when no asset has the given id.
// On validation failure the stored asset is left untouched.
func (h UpdateAssetCommandHandler) Handle(ctx context.Context, command UpdateAssetCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.AssetRepository()

	item, err := repo.Get(ctx, command.AssetID())
	if err != nil {
		return err
	}

	if err = item.Update(
		command.AssetType(),
		command.Model(),
		command.Location(),
		command.AcquisitionDate(),
	); err != nil {
		return err
	}

	if err = repo.Update(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
