package kernel

import (
	"fmt"
	"strconv"

	"maintenance/internal/pkg/errs"
)

// ID is the storage-assigned identifier of an entity. Zero means "not yet persisted".
type ID int64

// ParseID reads a decimal identifier as typed at the console or stored in a filter.
func ParseID(s string) (ID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%q is not a number", s))
	}
	id := ID(n)
	if err = id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// Validate requires a persisted (positive) identifier.
func (id ID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", id))
	}
	return nil
}

// IsZero reports whether the entity has not been persisted yet.
func (id ID) IsZero() bool {
	return id == 0
}

// IsEqual reports whether both identifiers refer to the same object.
func (id ID) IsEqual(other ID) bool {
	return id == other
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
