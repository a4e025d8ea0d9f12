package workorder

import (
	"fmt"
	"strings"
	"time"

	"maintenance/internal/pkg/errs"
)

// MaintenanceType tells scheduled upkeep apart from repairs after a failure.
type MaintenanceType int

const (
	UnknownMaintenanceType MaintenanceType = iota
	Preventive
	Corrective
)

func getMaintenanceTypeStrings() map[MaintenanceType]string {
	return map[MaintenanceType]string{
		Preventive: "PREVENTIVE",
		Corrective: "CORRECTIVE",
	}
}

// ParseMaintenanceType accepts the type name in any letter case.
func ParseMaintenanceType(s string) (MaintenanceType, error) {
	if v, ok := parseName(getMaintenanceTypeStrings(), s); ok {
		return v, nil
	}
	return UnknownMaintenanceType, errs.NewValueIsInvalidErrorWithCause("maintenance type", fmt.Errorf("%q is not a known maintenance type", s))
}

func (t MaintenanceType) Validate() error {
	if _, ok := getMaintenanceTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("maintenance type", fmt.Errorf("%d is not a valid maintenance type", t))
	}
	return nil
}

func (t MaintenanceType) String() string {
	if str, ok := getMaintenanceTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}

// Priority orders work by urgency. Higher Rank means more urgent.
type Priority int

const (
	UnknownPriority Priority = iota
	Low
	Medium
	High
	Urgent
	Critical
)

func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		Low:      "LOW",
		Medium:   "MEDIUM",
		High:     "HIGH",
		Urgent:   "URGENT",
		Critical: "CRITICAL",
	}
}

// ParsePriority accepts the priority name in any letter case.
func ParsePriority(s string) (Priority, error) {
	if v, ok := parseName(getPriorityStrings(), s); ok {
		return v, nil
	}
	return UnknownPriority, errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%q is not a known priority", s))
}

func (p Priority) Validate() error {
	if _, ok := getPriorityStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

func (p Priority) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return "UNKNOWN"
}

// Rank is 5 for CRITICAL down to 1 for LOW, 0 when unknown.
func (p Priority) Rank() int {
	if p.Validate() != nil {
		return 0
	}
	return int(p)
}

// Outranks reports whether p is strictly more pressing than other. An unknown
// priority on either side outranks nothing and is outranked by nothing.
func (p Priority) Outranks(other Priority) bool {
	if p.Validate() != nil || other.Validate() != nil {
		return false
	}
	return p.Rank() > other.Rank()
}

// TimeUnit is the unit an estimate is expressed in.
type TimeUnit int

const (
	UnknownTimeUnit TimeUnit = iota
	Hours
	Days
	Weeks
)

func getTimeUnitStrings() map[TimeUnit]string {
	return map[TimeUnit]string{
		Hours: "HOURS",
		Days:  "DAYS",
		Weeks: "WEEKS",
	}
}

func getTimeUnitDurations() map[TimeUnit]time.Duration {
	return map[TimeUnit]time.Duration{
		Hours: time.Hour,
		Days:  24 * time.Hour,
		Weeks: 7 * 24 * time.Hour,
	}
}

// ParseTimeUnit accepts HOURS, DAYS or WEEKS in any letter case.
func ParseTimeUnit(s string) (TimeUnit, error) {
	if v, ok := parseName(getTimeUnitStrings(), s); ok {
		return v, nil
	}
	return UnknownTimeUnit, errs.NewValueIsInvalidErrorWithCause("time unit", fmt.Errorf("%q is not a known time unit", s))
}

func (u TimeUnit) Validate() error {
	if _, ok := getTimeUnitStrings()[u]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("time unit", fmt.Errorf("%d is not a valid time unit", u))
	}
	return nil
}

func (u TimeUnit) String() string {
	if str, ok := getTimeUnitStrings()[u]; ok {
		return str
	}
	return "UNKNOWN"
}

// Duration converts n units into a time.Duration. Unknown units yield 0.
func (u TimeUnit) Duration(n int) time.Duration {
	return time.Duration(n) * getTimeUnitDurations()[u]
}

func parseName[T comparable](names map[T]string, s string) (T, bool) {
	needle := strings.ToUpper(strings.TrimSpace(s))
	for v, str := range names {
		if str == needle {
			return v, true
		}
	}
	var zero T
	return zero, false
}
