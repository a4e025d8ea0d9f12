package queries

import (
	"errors"

	"maintenance/internal/core/ports"
	"maintenance/internal/pkg/guard"
)

var ErrListWorkOrdersQueryIsNotConstructed = errors.New(
	"ListWorkOrdersQuery must be created via NewListWorkOrdersQuery constructor",
)

// ListWorkOrdersQuery matches criteria values as case-insensitive substrings,
// so Where("status", "un") finds UNASSIGNED orders and Where("assigned_to", "1")
// also finds orders of technician 11. Callers wanting an exact technician use
// ListAssignedWorkOrdersQuery.
type ListWorkOrdersQuery struct {
	criteria ports.Criteria
	guard    guard.ConstructorGuard
}

func NewListWorkOrdersQuery(criteria ports.Criteria) ListWorkOrdersQuery {
	return ListWorkOrdersQuery{criteria: criteria, guard: guard.NewConstructorGuard()}
}

// Criteria returns the field filters of the query.
func (q ListWorkOrdersQuery) Criteria() ports.Criteria {
	return q.criteria
}

func (q ListWorkOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListWorkOrdersQueryIsNotConstructed)
}
