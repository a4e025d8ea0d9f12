// Package services holds the domain services of the maintenance model: rules
// that involve more than one aggregate or a policy that no single aggregate owns.
//
//   - QuotaPolicy: the accepted range of a technician's active work order limit
//   - AssignmentGuard: admits a work order to a technician only while the
//     technician is below their limit, then performs the assignment
package services
