package commands

import (
	"errors"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/pkg/guard"
)

var ErrUpdateAssetCommandIsNotConstructed = errors.New(
	"UpdateAssetCommand must be created via NewUpdateAssetCommand constructor",
)

// UpdateAssetCommand overwrites every descriptive field of an asset.
// The asset keeps its identifier.
type UpdateAssetCommand struct {
	assetFields
	assetID kernel.ID
	guard   guard.ConstructorGuard
}

func NewUpdateAssetCommand(
	assetID kernel.ID,
	assetType, model, location, acquisitionDate string,
) (UpdateAssetCommand, error) {
	fields, fieldsErr := newAssetFields(assetType, model, location, acquisitionDate)
	if err := errors.Join(assetID.Validate(), fieldsErr); err != nil {
		return UpdateAssetCommand{}, err
	}

	return UpdateAssetCommand{
		assetFields: fields,
		assetID:     assetID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// AssetID returns the asset to overwrite.
func (c UpdateAssetCommand) AssetID() kernel.ID {
	return c.assetID
}

func (c *UpdateAssetCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAssetCommandIsNotConstructed)
}
