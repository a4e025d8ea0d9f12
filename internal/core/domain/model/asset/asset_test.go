package asset_test

import (
	"testing"
	"time"

	"maintenance/internal/core/domain/model/asset"
	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAcquisitionDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{name: "padded", input: "05/03/2021", want: time.Date(2021, 3, 5, 0, 0, 0, 0, time.UTC)},
		{name: "unpadded", input: "5/3/2021", want: time.Date(2021, 3, 5, 0, 0, 0, 0, time.UTC)},
		{name: "surrounding spaces", input: " 31/12/2019 ", want: time.Date(2019, 12, 31, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := asset.ParseAcquisitionDate(tt.input)

			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got))
		})
	}

	for _, bad := range []string{"2021-03-05", "31/02/2024", "13/13/2020", "", "5/3/21"} {
		t.Run("rejects "+bad, func(t *testing.T) {
			_, err := asset.ParseAcquisitionDate(bad)

			require.ErrorIs(t, err, asset.ErrInvalidDate)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		})
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2021, 3, 5, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "05/03/2021", asset.FormatDate(d))
}

func TestNewIndustrialAsset(t *testing.T) {
	date := time.Date(2020, 6, 1, 15, 30, 0, 0, time.FixedZone("X", 3600))

	t.Run("valid", func(t *testing.T) {
		a, err := asset.NewIndustrialAsset(" Compressor ", "GA-90", "Hall B", date)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, "Compressor", a.AssetType())
		assert.True(t, a.ID().IsZero())
		assert.Equal(t, time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC), a.AcquisitionDate())
	})

	t.Run("single character fields are rejected", func(t *testing.T) {
		_, err := asset.NewIndustrialAsset("C", "G", "", time.Time{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "asset type")
		assert.Contains(t, err.Error(), "model")
		assert.Contains(t, err.Error(), "location")
		assert.Contains(t, err.Error(), "acquisition date")
	})
}

func TestIndustrialAsset_UpdateKeepsID(t *testing.T) {
	a, err := asset.RestoreIndustrialAsset(kernel.ID(9), "Pump", "P-1", "Hall A", time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	err = a.Update("Pump", "P-2", "Hall C", time.Date(2019, 2, 1, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Equal(t, kernel.ID(9), a.ID())
	assert.Equal(t, "P-2", a.Model())
	assert.Equal(t, "Hall C", a.Location())
}

func TestIndustrialAsset_FailedUpdateLeavesFields(t *testing.T) {
	a, err := asset.NewIndustrialAsset("Pump", "P-1", "Hall A", time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	err = a.Update("Pump", "", "Hall C", time.Date(2019, 2, 1, 0, 0, 0, 0, time.UTC))

	require.Error(t, err)
	assert.Equal(t, "P-1", a.Model())
	assert.Equal(t, "Hall A", a.Location())
}

func TestIndustrialAsset_ZeroValue(t *testing.T) {
	var a asset.IndustrialAsset

	require.ErrorIs(t, a.Validate(), asset.ErrIndustrialAssetIsNotConstructed)
}
