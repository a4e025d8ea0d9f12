// Package workorder provides the WorkOrder aggregate root and its value types.
//
// A work order is opened by a supervisor against an industrial asset, assigned
// to a technician and finally resolved with closure comments:
//
//	UNASSIGNED -> IN_PROGRESS -> RESOLVED
//
// Key business rules:
//   - Status is derived from the assignment and resolution fields after every
//     transition; no caller sets it directly
//   - Reassignment is allowed while IN_PROGRESS, RESOLVED is terminal
//   - Only an IN_PROGRESS order can be resolved
//   - The deadline is the opening instant plus the estimate, and an order was
//     resolved on time when it was resolved no later than its deadline
//
// REOPENED, WAITING_PARTS, CANCELLED and ON_HOLD are recognised status names so
// that stored rows and filters parse, but no transition leads to them.
package workorder
