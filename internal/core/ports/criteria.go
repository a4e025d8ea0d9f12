package ports

import (
	"fmt"
	"strings"
)

// Filter is one partial-match condition: the text of Field must contain Value,
// compared case-insensitively.
type Filter struct {
	Field string
	Value string
}

// Criteria is an ordered list of filters combined with AND. The zero value and
// NewCriteria() both match everything.
//
// Example:
//
//	c := ports.NewCriteria().
//	    Where("status", "progress").
//	    Where("assigned_to", technicianID)
type Criteria struct {
	filters []Filter
}

// NewCriteria returns an empty filter that matches everything.
func NewCriteria() Criteria {
	return Criteria{}
}

// Where returns a copy of c with one more filter. Nil values and values that
// print as empty text are ignored.
func (c Criteria) Where(field string, value any) Criteria {
	if value == nil {
		return c
	}
	text := strings.TrimSpace(fmt.Sprint(value))
	if text == "" {
		return c
	}

	filters := make([]Filter, len(c.filters), len(c.filters)+1)
	copy(filters, c.filters)
	return Criteria{filters: append(filters, Filter{Field: strings.TrimSpace(field), Value: text})}
}

// Filters returns the filters in the order they were added.
func (c Criteria) Filters() []Filter {
	out := make([]Filter, len(c.filters))
	copy(out, c.filters)
	return out
}

// IsEmpty reports whether no field filter has been added.
func (c Criteria) IsEmpty() bool {
	return len(c.filters) == 0
}
