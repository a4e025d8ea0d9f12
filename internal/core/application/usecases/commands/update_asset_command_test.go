package commands_test

import (
	"testing"

	"maintenance/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/require"
)

func TestUpdateAssetCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.UpdateAssetCommand

	require.ErrorIs(t, cmd.Validate(), commands.ErrUpdateAssetCommandIsNotConstructed)
}
