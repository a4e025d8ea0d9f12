package cmd_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"maintenance/cmd"
	"maintenance/internal/adapters/in/console"
	"maintenance/internal/adapters/out/bcrypt"
	postgresadapter "maintenance/internal/adapters/out/postgres"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func fixedClock() time.Time {
	return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
}

func newRoot(t *testing.T, admin cmd.AdminConfig) cmd.CompositionRoot {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := postgresadapter.Connect(postgresadapter.ConnectionConfig{
		Driver:       postgresadapter.DriverSQLite,
		DSN:          fmt.Sprintf("file:root_%s?mode=memory&cache=shared", name),
		MaxOpenConns: 1,
		LogLevel:     "silent",
	}, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, postgresadapter.Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	cfg := cmd.Config{
		Security: cmd.SecurityConfig{BcryptCost: bcrypt.MinCost},
		Admin:    admin,
	}
	root, err := cmd.NewCompositionRoot(cfg, db, zap.NewNop())
	require.NoError(t, err)
	return root.WithClock(fixedClock)
}

// script joins console answers, one per line.
func script(lines ...string) *strings.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

func TestConsole_WorkOrderLifecycle(t *testing.T) {
	root := newRoot(t, cmd.AdminConfig{})

	in := script(
		"1", "Ana", "Lopez", "ana@plant.test", "secret123", "Line A",
		"2", "Tom", "Reyes", "tom@plant.test", "secret123", "2",
		"3", "ana@plant.test", "secret123",
		"1", "Compressor", "AX-200", "Hall 3", "15/01/2020",
		"2", "1", "Oil leak", "Seal leaking at the outlet", "CORRECTIVE", "HIGH", "2", "DAYS",
		"3", "1", "1",
		"0",
		"4", "tom@plant.test", "secret123",
		"1",
		"2", "1", "Replaced the seal",
		"0",
		"0",
	)
	var out bytes.Buffer

	err := console.NewConsole(root.ConsoleHandlers(), in, &out, zap.NewNop()).Run(testContext(t))
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Supervisor 1 registered")
	assert.Contains(t, text, "Technician 1 registered")
	assert.Contains(t, text, "Welcome, Ana Lopez")
	assert.Contains(t, text, "Asset 1 registered")
	assert.Contains(t, text, "Work order 1 opened")
	assert.Contains(t, text, "IN_PROGRESS")
	assert.Contains(t, text, "2d 0h 0m left")
	assert.Contains(t, text, "Welcome, Tom Reyes")
	assert.Contains(t, text, "RESOLVED")
	assert.Contains(t, text, "resolved on time")
	assert.NotContains(t, text, "Error:")
}

func TestConsole_ResolveWithoutComments(t *testing.T) {
	root := newRoot(t, cmd.AdminConfig{})

	in := script(
		"1", "Ana", "Lopez", "ana@plant.test", "secret123", "Line A",
		"2", "Tom", "Reyes", "tom@plant.test", "secret123", "2",
		"3", "ana@plant.test", "secret123",
		"1", "Compressor", "AX-200", "Hall 3", "15/01/2020",
		"2", "1", "Oil leak", "Seal leaking at the outlet", "CORRECTIVE", "HIGH", "2", "DAYS",
		"3", "1", "1",
		"0",
		"4", "tom@plant.test", "secret123",
		"2", "1", "", "no",
		"2", "1", "", "yes",
		"0",
		"0",
	)
	var out bytes.Buffer

	err := console.NewConsole(root.ConsoleHandlers(), in, &out, zap.NewNop()).Run(testContext(t))
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Work order 1 left open")
	assert.Contains(t, text, "RESOLVED")
	assert.NotContains(t, text, "Error:")
}

func TestConsole_ErrorsAreReportedAndMenuContinues(t *testing.T) {
	root := newRoot(t, cmd.AdminConfig{})

	in := script(
		"1", "Ana", "Lopez", "ana@plant.test", "secret123", "Line A",
		"1", "Eva", "Lopez", "ana@plant.test", "secret123", "Line B",
		"2", "Tom", "Reyes", "tom@plant.test", "secret123", "9",
		"3", "ana@plant.test", "wrong-password",
		"7",
	)
	var out bytes.Buffer

	err := console.NewConsole(root.ConsoleHandlers(), in, &out, zap.NewNop()).Run(testContext(t))
	require.NoError(t, err)

	text := out.String()
	assert.Equal(t, 3, strings.Count(text, "Error:"))
	assert.Contains(t, text, `Unknown option "7"`)
	assert.NotContains(t, text, "Welcome")
}

func TestBootstrapAdmin(t *testing.T) {
	root := newRoot(t, cmd.AdminConfig{
		FirstName:  "Root",
		LastName:   "Admin",
		Email:      "root@plant.test",
		Password:   "changeme1",
		Department: "Maintenance",
	})

	require.NoError(t, root.BootstrapAdmin(testContext(t)))
	require.NoError(t, root.BootstrapAdmin(testContext(t)), "a second run finds the admin and does nothing")

	in := script(
		"5", "root@plant.test", "changeme1",
		"4", "admin", "",
		"0",
		"0",
	)
	var out bytes.Buffer

	err := console.NewConsole(root.ConsoleHandlers(), in, &out, zap.NewNop()).Run(testContext(t))
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Welcome, Root Admin")
	assert.Equal(t, 1, strings.Count(text, "root@plant.test"))
	assert.Contains(t, text, "department Maintenance")
}

func TestBootstrapAdmin_DisabledWithoutEmail(t *testing.T) {
	root := newRoot(t, cmd.AdminConfig{})
	require.NoError(t, root.BootstrapAdmin(testContext(t)))
}
