package seq

import "errors"

// Sentinel errors returned by sequence operations.
//
// Use [errors.Is] for comparisons:
//
//	_, err := seq.Repeat(1).Take(-3)
//	if errors.Is(err, seq.ErrUnsupportedOperation) {
//	    // bound the sequence with a non-negative Take first
//	}
var (
	// ErrUnsupportedOperation is returned when an end-relative or
	// length-dependent operation is requested on an unbounded sequence.
	ErrUnsupportedOperation = errors.New("seq: unsupported operation on an unbounded sequence")

	// ErrEmptySource is returned by Cycle when the source yields no values.
	ErrEmptySource = errors.New("seq: cannot cycle an empty source")

	// ErrNonTerminating is returned when full evaluation of an unbounded
	// sequence is requested.
	ErrNonTerminating = errors.New("seq: evaluation of an unbounded sequence would not terminate")

	// ErrEmptySequence is returned by Max and Min on a sequence with no values.
	ErrEmptySequence = errors.New("seq: operation on empty sequence")

	// ErrInvalidChunkSize is returned when Chunk is called with size <= 0.
	ErrInvalidChunkSize = errors.New("seq: chunk size must be greater than 0")
)
