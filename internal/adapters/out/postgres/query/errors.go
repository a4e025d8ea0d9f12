package query

import (
	"errors"

	"maintenance/internal/pkg/errs"

	"gorm.io/gorm"
)

// Wrap maps a driver error raised while running op. Unique violations become
// ObjectAlreadyExistsError on uniqueField, everything else a PersistenceError.
// Errors that already belong to the errs taxonomy pass through.
func Wrap(op, uniqueField string, value any, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errs.NewObjectAlreadyExistsErrorWithCause(uniqueField, value, err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errs.NewObjectNotFoundErrorWithCause(op, value, err)
	case isDomainError(err):
		return err
	default:
		return errs.NewPersistenceError(op, err)
	}
}

func isDomainError(err error) bool {
	for _, target := range []error{
		errs.ErrValueIsRequired,
		errs.ErrValueIsInvalid,
		errs.ErrValueIsOutOfRange,
		errs.ErrObjectNotFound,
		errs.ErrObjectAlreadyExists,
		errs.ErrPermissionDenied,
		errs.ErrLimitExceeded,
		errs.ErrPersistence,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
