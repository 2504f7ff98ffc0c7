// Package guard provides a defensive construction pattern for application-layer
// objects such as commands and queries. Embedding a ConstructorGuard in a struct
// makes it possible to detect zero-value instances that bypassed the constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a zero-value guard is
// validated with a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its designated constructor.
// The zero value fails validation, so structs embedding a guard cannot be used
// unless built with their NewX function.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the owning object as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the owning object was properly constructed.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
