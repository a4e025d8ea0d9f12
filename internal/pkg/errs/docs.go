// Package errs provides standardized error types for the maintenance application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: malformed or missing input
//   - ObjectNotFoundError: an id or email lookup miss
//   - ObjectAlreadyExistsError: a uniqueness violation such as a duplicate email
//   - PermissionDeniedError: credential mismatch or acting on someone else's work order
//   - LimitExceededError: a technician already holds the maximum of active work orders
//   - PersistenceError: a storage failure, kept apart from domain validation errors
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is works on the category
//   - Is() method matching the cause, so errors.Is also reaches wrapped sentinels
package errs
