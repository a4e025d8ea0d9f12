// Package guard holds ConstructorGuard, the marker that separates values built
// through their validating constructor from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in commands, queries and aggregates that must only
// be created through their constructor. A zero-value guard fails Validate.
//
// Example usage:
//
//	var ErrRegisterTechnicianCommandIsNotConstructed = errors.New("...")
//
//	type RegisterTechnicianCommand struct {
//	    email string
//	    guard guard.ConstructorGuard
//	}
//
//	func (c RegisterTechnicianCommand) Validate() error {
//	    return c.guard.Validate(ErrRegisterTechnicianCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that marks its owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
