package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"maintenance/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("email")

	assert.Equal(t, "value is required: email", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.True(t, errs.IsValidation(err))
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("title")

		assert.Equal(t, "value is invalid: title", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("with cause matches both sentinel and cause", func(t *testing.T) {
		cause := errors.New("bad date")
		err := errs.NewValueIsInvalidErrorWithCause("acquisition date", cause)

		assert.Equal(t, "value is invalid: acquisition date (cause: bad date)", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, cause)
	})

	t.Run("wrapped by fmt keeps category", func(t *testing.T) {
		err := fmt.Errorf("create asset: %w", errs.NewValueIsInvalidError("model"))

		assert.True(t, errs.IsValidation(err))
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("max active orders", 7, 2, 6)

	assert.Equal(t, "value is out of range: max active orders is 7, min value is 2, max value is 6", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.True(t, errs.IsValidation(err))
}

func TestObjectNotFoundError(t *testing.T) {
	err := errs.NewObjectNotFoundError("work order", 42)

	assert.Equal(t, "object not found: work order 42", err.Error())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.False(t, errs.IsValidation(err))
}

func TestObjectAlreadyExistsError(t *testing.T) {
	err := errs.NewObjectAlreadyExistsError("email", "ana@plant.io")

	assert.Equal(t, "object already exists: email ana@plant.io", err.Error())
	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
}

func TestPermissionDeniedError(t *testing.T) {
	err := errs.NewPermissionDeniedError("invalid credentials")

	assert.Equal(t, "permission denied: invalid credentials", err.Error())
	require.ErrorIs(t, err, errs.ErrPermissionDenied)
}

func TestLimitExceededError(t *testing.T) {
	err := errs.NewLimitExceededError("active work orders", 3, 3)

	assert.Equal(t, "limit exceeded: active work orders is 3, limit is 3", err.Error())
	require.ErrorIs(t, err, errs.ErrLimitExceeded)
}

func TestPersistenceError(t *testing.T) {
	cause := errors.New("connection reset\nby peer")
	err := errs.NewPersistenceError("update work order", cause)

	assert.Equal(t, "persistence failure: update work order (cause: connection reset by peer)", err.Error())
	require.ErrorIs(t, err, errs.ErrPersistence)
	require.ErrorIs(t, err, cause)
	assert.False(t, errs.IsValidation(err))
}
