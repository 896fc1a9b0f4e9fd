package algebra

import "errors"

// Sentinel errors returned by wrapper operations and the resolver.
var (
	// ErrEmptyCollection is returned by Maximum and Minimum on a wrapper with
	// no values.
	ErrEmptyCollection = errors.New("algebra: operation on empty collection")

	// ErrNoMonoid is returned by AsMonoid when a value cannot be combined.
	ErrNoMonoid = errors.New("algebra: value does not support append/concat")

	// ErrNoCoercion is returned by the As* functions when a value cannot be
	// given the requested capability.
	ErrNoCoercion = errors.New("algebra: no coercion to the requested capability")

	// ErrNotCallable is returned by Apply when a value in function position
	// cannot be called with one argument.
	ErrNotCallable = errors.New("algebra: value is not callable")

	// ErrNotNumeric is returned by Sum and Product for non-numeric values.
	ErrNotNumeric = errors.New("algebra: value is not numeric")

	// ErrIncomparable is returned by Maximum and Minimum when two values have
	// no ordering.
	ErrIncomparable = errors.New("algebra: values are not comparable")
)
