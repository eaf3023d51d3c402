// Package guard holds the construction guard embedded by value objects,
// entities, commands and queries.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as built through its constructor.
// A zero-value guard fails Validate, so structs embedding it can detect
// literal or zero-value construction.
//
// Example:
//
//	var ErrStopIsNotConstructed = errors.New("Stop must be created via NewStop")
//
//	type Stop struct {
//	    id    kernel.UUID
//	    guard guard.ConstructorGuard
//	}
//
//	func (s Stop) Validate() error {
//	    return s.guard.Validate(ErrStopIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that passes validation.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard and validationError otherwise.
// ErrDefaultConstructorGuard is used when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
