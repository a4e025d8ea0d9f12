package commands_test

import (
	"testing"
	"time"

	"maintenance/internal/core/application/usecases/commands"
	"maintenance/internal/core/domain/model/asset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateAssetCommand_Success(t *testing.T) {
	cmd, err := commands.NewCreateAssetCommand("Pump", "KSB-200", "Line 2", "5/1/2020")

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, time.Date(2020, 1, 5, 0, 0, 0, 0, time.UTC), cmd.AcquisitionDate())
}

func TestNewCreateAssetCommand_InvalidDate(t *testing.T) {
	_, err := commands.NewCreateAssetCommand("Pump", "KSB-200", "Line 2", "2020-01-05")

	require.ErrorIs(t, err, asset.ErrInvalidDate)
}

func TestCreateAssetCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.CreateAssetCommand

	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateAssetCommandIsNotConstructed)
}
