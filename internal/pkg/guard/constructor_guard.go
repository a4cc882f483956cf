// Package guard provides a defensive pattern that ensures value objects are
// only created through their designated constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error
// is provided for a zero-value guard.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects whether a struct was built through its constructor
// or left as a zero value. Embed it in commands, queries, and value objects;
// the guard of a zero-value struct fails validation.
//
// Example:
//
//	type MarkOrderPaidCommand struct {
//	    orderID int64
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewMarkOrderPaidCommand(orderID int64) (MarkOrderPaidCommand, error) {
//	    if orderID <= 0 {
//	        return MarkOrderPaidCommand{}, errs.NewValueIsRequiredError("orderID")
//	    }
//	    return MarkOrderPaidCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c MarkOrderPaidCommand) Validate() error {
//	    return c.guard.Validate(ErrMarkOrderPaidCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns notConstructed, or ErrDefaultConstructorGuard when notConstructed
// is nil.
func (g ConstructorGuard) Validate(notConstructed error) error {
	if g.isConstructed {
		return nil
	}
	if notConstructed != nil {
		return notConstructed
	}
	return ErrDefaultConstructorGuard
}
