package assetrepo

import (
	"time"

	"maintenance/internal/core/domain/model/asset"
	"maintenance/internal/core/domain/model/kernel"
)

// IndustrialAssetDTO is the row layout of the industrial_assets table.
type IndustrialAssetDTO struct {
	ID              int64     `gorm:"primaryKey;autoIncrement"`
	AssetType       string    `gorm:"size:100;not null"`
	Model           string    `gorm:"size:100;not null"`
	Location        string    `gorm:"size:150;not null"`
	AcquisitionDate time.Time `gorm:"type:date;not null"`
}

func (IndustrialAssetDTO) TableName() string {
	return "industrial_assets"
}

var assetColumns = map[string]string{
	"id":               "id",
	"asset_type":       "asset_type",
	"model":            "model",
	"location":         "location",
	"acquisition_date": "acquisition_date",
}

func fromDomain(a *asset.IndustrialAsset) IndustrialAssetDTO {
	return IndustrialAssetDTO{
		ID:              int64(a.ID()),
		AssetType:       a.AssetType(),
		Model:           a.Model(),
		Location:        a.Location(),
		AcquisitionDate: a.AcquisitionDate(),
	}
}

func toDomain(dto IndustrialAssetDTO) (*asset.IndustrialAsset, error) {
	return asset.RestoreIndustrialAsset(
		kernel.ID(dto.ID),
		dto.AssetType,
		dto.Model,
		dto.Location,
		dto.AcquisitionDate,
	)
}
