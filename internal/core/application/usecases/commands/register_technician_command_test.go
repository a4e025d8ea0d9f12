package commands_test

import (
	"testing"

	"maintenance/internal/core/application/usecases/commands"
	"maintenance/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterTechnicianCommand_QuotaRange(t *testing.T) {
	for _, limit := range []int{2, 6} {
		cmd, err := commands.NewRegisterTechnicianCommand("Luis", "Ortega", "luis@plant.io", "s3cretpass", limit)
		require.NoError(t, err)
		assert.Equal(t, limit, cmd.MaxActiveOrders())
	}

	for _, limit := range []int{0, 1, 7} {
		_, err := commands.NewRegisterTechnicianCommand("Luis", "Ortega", "luis@plant.io", "s3cretpass", limit)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange, "limit %d", limit)
	}
}
