package prelude

import "errors"

// Sentinel errors returned by the combinators and the operation registry.
var (
	// ErrOpNotFound is returned by CallOp for a name nothing was registered
	// under.
	ErrOpNotFound = errors.New("prelude: operation not found")

	// ErrInvalidSize is returned by Take, Drop and Chunk when the size is
	// neither an integer nor a predicate.
	ErrInvalidSize = errors.New("prelude: size must be an integer or a predicate")

	// ErrInvalidPairs is returned by FromPairs and Unzip when an element is
	// not a pair.
	ErrInvalidPairs = errors.New("prelude: expected a list of pairs")
)
