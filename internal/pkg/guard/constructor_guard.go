// Package guard provides a defensive programming pattern that ensures value objects
// are only created through their designated constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is passed
// as the validation error, so that validation always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects whether a struct was initialized through its constructor
// or created as a zero value. Embedding it in a struct and calling Validate before
// use prevents bypassing constructor validation by direct struct initialization.
//
// Example usage:
//
//	type SearchFilter struct {
//	    keyword string
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewSearchFilter(keyword string) SearchFilter {
//	    return SearchFilter{keyword: keyword, guard: guard.NewConstructorGuard()}
//	}
//
//	func (f SearchFilter) Validate() error {
//	    return f.guard.Validate(ErrFilterNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guarded object was created through its constructor.
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
