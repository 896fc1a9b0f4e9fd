package fn

import "errors"

var (
	// ErrArity is returned when a function is called with fewer arguments
	// than it requires.
	ErrArity = errors.New("fn: not enough arguments")

	// ErrNotFunc is returned when a value in function position is not a
	// non-nil func.
	ErrNotFunc = errors.New("fn: value is not a function")

	// ErrArgType is returned when an argument cannot be converted to the
	// parameter type.
	ErrArgType = errors.New("fn: argument type mismatch")
)
