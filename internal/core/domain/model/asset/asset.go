// Package asset models the industrial equipment work orders are raised against.
package asset

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/pkg/errs"
	"maintenance/internal/pkg/guard"
)

// DateLayout is the day/month/year form acquisition dates are typed and shown in.
// Day and month may be written with or without a leading zero.
const DateLayout = "2/1/2006"

const displayLayout = "02/01/2006"

// minTextLength rejects empty and single-character attributes.
const minTextLength = 2

var (
	ErrInvalidDate                     = errors.New("date must be in dd/mm/yyyy format")
	ErrIndustrialAssetIsNotConstructed = errors.New("IndustrialAsset must be created via NewIndustrialAsset or RestoreIndustrialAsset")
)

// ParseAcquisitionDate reads "dd/mm/yyyy" into a calendar date at midnight UTC.
// Impossible dates such as 31/02/2024 are rejected.
func ParseAcquisitionDate(raw string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause("acquisition date", fmt.Errorf("%w: %q", ErrInvalidDate, raw))
	}
	return d, nil
}

// FormatDate renders a date the way ParseAcquisitionDate reads it.
func FormatDate(d time.Time) string {
	return d.Format(displayLayout)
}

// IndustrialAsset is a piece of plant equipment.
type IndustrialAsset struct {
	id              kernel.ID
	assetType       string
	model           string
	location        string
	acquisitionDate time.Time
	guard           guard.ConstructorGuard
}

// NewIndustrialAsset builds an asset that has not been stored yet. Type, model
// and location are trimmed and need at least two characters; only the calendar
// date of acquisitionDate is kept.
//
// Example:
//
//	date, err := asset.ParseAcquisitionDate("15/03/2024")
//	if err != nil {
//	    return err
//	}
//	pump, err := asset.NewIndustrialAsset("Pump", "KSB-200", "Line 2", date)
func NewIndustrialAsset(assetType, model, location string, acquisitionDate time.Time) (*IndustrialAsset, error) {
	a := &IndustrialAsset{guard: guard.NewConstructorGuard()}
	if err := a.Update(assetType, model, location, acquisitionDate); err != nil {
		return nil, err
	}
	return a, nil
}

// RestoreIndustrialAsset rebuilds a stored asset with its identifier.
func RestoreIndustrialAsset(
	id kernel.ID,
	assetType, model, location string,
	acquisitionDate time.Time,
) (*IndustrialAsset, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	a, err := NewIndustrialAsset(assetType, model, location, acquisitionDate)
	if err != nil {
		return nil, err
	}
	a.id = id
	return a, nil
}

// Update replaces the descriptive fields. The identifier is kept.
func (a *IndustrialAsset) Update(assetType, model, location string, acquisitionDate time.Time) error {
	t, typeErr := kernel.RequireText("asset type", assetType, minTextLength)
	m, modelErr := kernel.RequireText("model", model, minTextLength)
	l, locErr := kernel.RequireText("location", location, minTextLength)
	var dateErr error
	if acquisitionDate.IsZero() {
		dateErr = errs.NewValueIsRequiredError("acquisition date")
	}
	if err := errors.Join(typeErr, modelErr, locErr, dateErr); err != nil {
		return err
	}

	y, mo, d := acquisitionDate.Date()
	a.assetType = t
	a.model = m
	a.location = l
	a.acquisitionDate = time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
	return nil
}

// AssignID records the identifier produced by storage on first insert.
func (a *IndustrialAsset) AssignID(id kernel.ID) error {
	if !a.id.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("already assigned as %s", a.id))
	}
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *IndustrialAsset) Validate() error {
	if a == nil {
		return ErrIndustrialAssetIsNotConstructed
	}
	return a.guard.Validate(ErrIndustrialAssetIsNotConstructed)
}

func (a *IndustrialAsset) ID() kernel.ID {
	return a.id
}

func (a *IndustrialAsset) AssetType() string {
	return a.assetType
}

func (a *IndustrialAsset) Model() string {
	return a.model
}

func (a *IndustrialAsset) Location() string {
	return a.location
}

// AcquisitionDate returns midnight UTC of the acquisition day.
func (a *IndustrialAsset) AcquisitionDate() time.Time {
	return a.acquisitionDate
}
