package kernel

import "errors"

// ErrDefaultConstructorGuard is the default error returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is a defensive programming pattern that ensures value objects
// and entities are only created through their designated constructor functions.
// It prevents direct struct initialization and enforces validation rules.
//
// The guard works by maintaining an internal flag that is only set to true when
// the object is created through the proper constructor function. Any attempt to
// use a zero-value struct will fail validation.
//
// Example usage:
//
//	var ErrCustomerNotConstructed = errors.New("Customer must be created via NewCustomer")
//
//	type Customer struct {
//	    name  string
//	    phone string
//	    guard ConstructorGuard
//	}
//
//	func NewCustomer(name, phone string) (Customer, error) {
//	    if name == "" {
//	        return Customer{}, errors.New("name is required")
//	    }
//	    return Customer{
//	        name:  name,
//	        phone: phone,
//	        guard: NewConstructorGuard(),
//	    }, nil
//	}
//
//	func (c Customer) Validate() error {
//	    return c.guard.Validate(ErrCustomerNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a new ConstructorGuard that marks an object as
// properly constructed. This should be called in the constructor of domain
// objects so they can be distinguished from zero-value instances.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was properly constructed through
// its designated constructor function.
//
// If the object was created as a zero value, this method returns the provided
// validation error, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
