package commands_test

import (
	"testing"

	"maintenance/internal/core/application/usecases/commands"
	"maintenance/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResolveWorkOrderCommand_KeepsCommentsAsGiven(t *testing.T) {
	for _, comments := range []string{"", "x", "  spaced  "} {
		cmd, err := commands.NewResolveWorkOrderCommand(3, 5, comments)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, comments, cmd.ClosureComments())
	}
}

func TestNewResolveWorkOrderCommand_RequiresIDs(t *testing.T) {
	_, err := commands.NewResolveWorkOrderCommand(0, 0, "done")

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
