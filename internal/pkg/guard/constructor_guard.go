// Package guard implements the constructor guard pattern used by commands
// and domain objects to reject zero-value instances that bypassed their
// constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied and the object was not constructed properly.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its designated
// constructor. Embedding a guard in a struct lets Validate distinguish a
// properly built instance from a zero value.
//
// Example:
//
//	type AcceptOfferCommand struct {
//	    offerID kernel.UUID
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewAcceptOfferCommand(offerID kernel.UUID) (AcceptOfferCommand, error) {
//	    ...
//	    return AcceptOfferCommand{offerID: offerID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c *AcceptOfferCommand) Validate() error {
//	    return c.guard.Validate(ErrAcceptOfferCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guarded object was built through its
// constructor. Otherwise it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
