package workorder_test

import (
	"testing"
	"time"

	"maintenance/internal/core/domain/model/workorder"
	"maintenance/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	s, err := workorder.ParseStatus("in_progress")
	require.NoError(t, err)
	assert.Equal(t, workorder.InProgress, s)

	s, err = workorder.ParseStatus("WAITING_PARTS")
	require.NoError(t, err)
	assert.Equal(t, "WAITING_PARTS", s.String())

	_, err = workorder.ParseStatus("DONE")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestPriority_Rank(t *testing.T) {
	assert.True(t, workorder.Critical.Outranks(workorder.Urgent))
	assert.True(t, workorder.Urgent.Outranks(workorder.High))
	assert.True(t, workorder.High.Outranks(workorder.Medium))
	assert.True(t, workorder.Medium.Outranks(workorder.Low))
	assert.False(t, workorder.Low.Outranks(workorder.Medium))
	assert.False(t, workorder.High.Outranks(workorder.High))
	assert.False(t, workorder.Low.Outranks(workorder.UnknownPriority))
	assert.False(t, workorder.UnknownPriority.Outranks(workorder.Low))
	assert.Equal(t, 5, workorder.Critical.Rank())
	assert.Equal(t, 0, workorder.UnknownPriority.Rank())
}

func TestParsePriorityAndMaintenanceType(t *testing.T) {
	p, err := workorder.ParsePriority("critical")
	require.NoError(t, err)
	assert.Equal(t, workorder.Critical, p)

	m, err := workorder.ParseMaintenanceType("Preventive")
	require.NoError(t, err)
	assert.Equal(t, workorder.Preventive, m)

	_, err = workorder.ParseMaintenanceType("predictive")
	require.Error(t, err)
}

func TestTimeUnit_Duration(t *testing.T) {
	assert.Equal(t, 3*time.Hour, workorder.Hours.Duration(3))
	assert.Equal(t, 48*time.Hour, workorder.Days.Duration(2))
	assert.Equal(t, 14*24*time.Hour, workorder.Weeks.Duration(2))
	assert.Zero(t, workorder.UnknownTimeUnit.Duration(5))

	u, err := workorder.ParseTimeUnit("weeks")
	require.NoError(t, err)
	assert.Equal(t, workorder.Weeks, u)
}

func TestNewEstimate(t *testing.T) {
	e, err := workorder.NewEstimate(3, workorder.Days)
	require.NoError(t, err)
	assert.Equal(t, "3 DAYS", e.String())
	assert.Equal(t, 72*time.Hour, e.Duration())

	_, err = workorder.NewEstimate(0, workorder.Days)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = workorder.NewEstimate(2, workorder.UnknownTimeUnit)
	require.Error(t, err)

	require.ErrorIs(t, workorder.Estimate{}.Validate(), errs.ErrValueIsRequired)
}
