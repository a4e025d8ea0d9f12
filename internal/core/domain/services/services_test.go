package services_test

import (
	"testing"
	"time"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/model/user"
	"maintenance/internal/core/domain/model/workorder"
	"maintenance/internal/core/domain/services"
	"maintenance/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTechnician(t *testing.T, id kernel.ID, limit int) *user.Technician {
	t.Helper()
	email, err := kernel.NewEmail("tech" + id.String() + "@plant.io")
	require.NoError(t, err)
	profile, err := user.RestoreProfile(id, "Luis", "Ortega", email, "hash", true)
	require.NoError(t, err)
	technician, err := user.RestoreTechnician(profile, limit)
	require.NoError(t, err)
	return technician
}

func newOrder(t *testing.T) *workorder.WorkOrder {
	t.Helper()
	estimate, _ := workorder.NewEstimate(2, workorder.Hours)
	wo, err := workorder.NewWorkOrder("Inspect valve", "Monthly inspection", 1, 1,
		workorder.Preventive, workorder.Medium, estimate, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return wo
}

func TestQuotaPolicy_ValidateLimit(t *testing.T) {
	policy := services.NewQuotaPolicy()

	for _, limit := range []int{2, 4, 6} {
		require.NoError(t, policy.ValidateLimit(limit))
	}
	for _, limit := range []int{0, 1, 7} {
		require.ErrorIs(t, policy.ValidateLimit(limit), errs.ErrValueIsOutOfRange)
	}
}

func TestAssignmentGuard_Admit(t *testing.T) {
	guard := services.NewAssignmentGuard()
	technician := newTechnician(t, 5, 3)

	require.NoError(t, guard.Admit(technician, 2))

	err := guard.Admit(technician, 3)
	require.ErrorIs(t, err, errs.ErrLimitExceeded)
	assert.Contains(t, err.Error(), "limit is 3")

	technician.Deactivate()
	require.ErrorIs(t, guard.Admit(technician, 0), errs.ErrPermissionDenied)
}

func TestAssignmentGuard_Assign(t *testing.T) {
	guard := services.NewAssignmentGuard()

	t.Run("assigns when below limit", func(t *testing.T) {
		order := newOrder(t)
		technician := newTechnician(t, 5, 2)

		require.NoError(t, guard.Assign(order, technician, 1))
		assert.True(t, order.IsAssignedTo(5))
	})

	t.Run("rejects when at limit and leaves order untouched", func(t *testing.T) {
		order := newOrder(t)
		technician := newTechnician(t, 5, 2)

		require.ErrorIs(t, guard.Assign(order, technician, 2), errs.ErrLimitExceeded)
		assert.Equal(t, workorder.Unassigned, order.Status())
		assert.Nil(t, order.AssignedTo())
	})

	t.Run("same technician again needs no headroom", func(t *testing.T) {
		order := newOrder(t)
		technician := newTechnician(t, 5, 2)
		require.NoError(t, guard.Assign(order, technician, 0))

		require.NoError(t, guard.Assign(order, technician, 2))
		assert.True(t, order.IsAssignedTo(5))
	})

	t.Run("resolved order is rejected before the quota is checked", func(t *testing.T) {
		order := newOrder(t)
		require.NoError(t, order.AssignTo(5))
		require.NoError(t, order.Resolve("ok", order.OpenedAt().Add(time.Minute)))

		err := guard.Assign(order, newTechnician(t, 6, 2), 2)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
