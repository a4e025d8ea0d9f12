package commands_test

import (
	"testing"
	"time"

	"maintenance/internal/core/application/usecases/commands"
	"maintenance/internal/core/domain/model/asset"
	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/model/user"
	"maintenance/internal/core/domain/model/workorder"

	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time {
	return now
}

func restoreProfile(t *testing.T, id kernel.ID, email string, active bool) user.Profile {
	t.Helper()
	mail, err := kernel.NewEmail(email)
	require.NoError(t, err)
	profile, err := user.RestoreProfile(id, "Marta", "Rios", mail, "hash", active)
	require.NoError(t, err)
	return profile
}

func restoreSupervisor(t *testing.T, id kernel.ID, active bool) *user.Supervisor {
	t.Helper()
	supervisor, err := user.RestoreSupervisor(restoreProfile(t, id, "boss"+id.String()+"@plant.io", active), "Assembly")
	require.NoError(t, err)
	return supervisor
}

func restoreTechnician(t *testing.T, id kernel.ID, limit int, active bool) *user.Technician {
	t.Helper()
	technician, err := user.RestoreTechnician(restoreProfile(t, id, "tech"+id.String()+"@plant.io", active), limit)
	require.NoError(t, err)
	return technician
}

func restoreAdmin(t *testing.T, id kernel.ID) *user.Admin {
	t.Helper()
	admin, err := user.RestoreAdmin(restoreProfile(t, id, "admin"+id.String()+"@plant.io", true), "Operations")
	require.NoError(t, err)
	return admin
}

func restoreAsset(t *testing.T, id kernel.ID) *asset.IndustrialAsset {
	t.Helper()
	item, err := asset.RestoreIndustrialAsset(id, "Pump", "KSB-200", "Line 2", time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return item
}

// restoreOrder builds a stored order; assignedTo nil gives UNASSIGNED,
// resolved requires assignedTo.
func restoreOrder(t *testing.T, id kernel.ID, assignedTo *kernel.ID, resolved bool) *workorder.WorkOrder {
	t.Helper()
	estimate, err := workorder.NewEstimate(3, workorder.Days)
	require.NoError(t, err)

	status := workorder.Unassigned
	var (
		resolvedAt *time.Time
		comments   *string
	)
	if assignedTo != nil {
		status = workorder.InProgress
	}
	if resolved {
		at := now.Add(-time.Hour)
		note := "Seal replaced"
		resolvedAt, comments = &at, &note
		status = workorder.Resolved
	}

	order, err := workorder.RestoreWorkOrder(id, "Replace seal", "Pump leaks oil", 2, 4,
		workorder.Corrective, workorder.High, estimate, now.Add(-48*time.Hour),
		assignedTo, resolvedAt, comments, status)
	require.NoError(t, err)
	return order
}

func idPtr(id kernel.ID) *kernel.ID {
	return &id
}

func newCreateWorkOrderCommand(t *testing.T) commands.CreateWorkOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateWorkOrderCommand(2, 4, "Replace seal", "Pump leaks oil",
		"corrective", "high", 3, "days")
	require.NoError(t, err)
	return cmd
}
