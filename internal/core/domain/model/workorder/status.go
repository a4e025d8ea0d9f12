package workorder

import (
	"fmt"

	"maintenance/internal/pkg/errs"
)

// Status is the lifecycle state of a work order.
type Status int

const (
	UnknownStatus Status = iota
	Unassigned
	InProgress
	Resolved
	Reopened
	WaitingParts
	Cancelled
	OnHold
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unassigned:   "UNASSIGNED",
		InProgress:   "IN_PROGRESS",
		Resolved:     "RESOLVED",
		Reopened:     "REOPENED",
		WaitingParts: "WAITING_PARTS",
		Cancelled:    "CANCELLED",
		OnHold:       "ON_HOLD",
	}
}

// ParseStatus accepts any status name in any letter case, including the states
// no operation produces, so stored rows and filters can name them.
func ParseStatus(s string) (Status, error) {
	if v, ok := parseName(getStatusStrings(), s); ok {
		return v, nil
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known status", s))
}

func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// ValidateAssign allows assignment from UNASSIGNED and reassignment while IN_PROGRESS.
func (s Status) ValidateAssign() error {
	if s != Unassigned && s != InProgress {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to assign", s),
		)
	}
	return nil
}

// ValidateResolve allows resolution only while IN_PROGRESS.
func (s Status) ValidateResolve() error {
	if s != InProgress {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to resolve", s),
		)
	}
	return nil
}
