// Package guard detects domain values that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in value objects, entities and commands. Its zero
// value is "not constructed"; only NewConstructorGuard marks it as constructed,
// so a struct literal or a zero value fails Validate.
//
// Example usage:
//
//	var ErrSizeNotConstructed = errors.New("Size must be created via NewSize")
//
//	type Size struct {
//	    key   string
//	    guard guard.ConstructorGuard
//	}
//
//	func (s Size) Validate() error {
//	    return s.guard.Validate(ErrSizeNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard was not produced by NewConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
