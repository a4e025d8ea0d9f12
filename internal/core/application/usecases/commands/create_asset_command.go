package commands

import (
	"errors"
	"time"

	"maintenance/internal/core/domain/model/asset"
	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/pkg/guard"
)

var ErrCreateAssetCommandIsNotConstructed = errors.New(
	"CreateAssetCommand must be created via NewCreateAssetCommand constructor",
)

// assetFields holds the descriptive fields shared by the asset commands.
type assetFields struct {
	assetType       string
	model           string
	location        string
	acquisitionDate time.Time
}

func newAssetFields(assetType, model, location, acquisitionDate string) (assetFields, error) {
	kind, typeErr := kernel.RequireText("asset type", assetType, kernel.MinNameLength)
	name, modelErr := kernel.RequireText("model", model, kernel.MinNameLength)
	place, locationErr := kernel.RequireText("location", location, kernel.MinNameLength)
	date, dateErr := asset.ParseAcquisitionDate(acquisitionDate)
	if err := errors.Join(typeErr, modelErr, locationErr, dateErr); err != nil {
		return assetFields{}, err
	}

	return assetFields{
		assetType:       kind,
		model:           name,
		location:        place,
		acquisitionDate: date,
	}, nil
}

// AssetType returns the asset category, e.g. pump or conveyor.
func (f assetFields) AssetType() string {
	return f.assetType
}

// Model returns the manufacturer model designation.
func (f assetFields) Model() string {
	return f.model
}

// Location returns where the asset is installed.
func (f assetFields) Location() string {
	return f.location
}

// AcquisitionDate returns the parsed acquisition date.
func (f assetFields) AcquisitionDate() time.Time {
	return f.acquisitionDate
}

// CreateAssetCommand registers a piece of plant equipment.
// acquisitionDate is written as day/month/year, e.g. "15/3/2021".
type CreateAssetCommand struct {
	assetFields
	guard guard.ConstructorGuard
}

func NewCreateAssetCommand(assetType, model, location, acquisitionDate string) (CreateAssetCommand, error) {
	fields, err := newAssetFields(assetType, model, location, acquisitionDate)
	if err != nil {
		return CreateAssetCommand{}, err
	}

	return CreateAssetCommand{
		assetFields: fields,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c *CreateAssetCommand) Validate() error {
	return c.guard.Validate(ErrCreateAssetCommandIsNotConstructed)
}
