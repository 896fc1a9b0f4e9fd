package seq

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/constraints"
)

// This file contains package-level generic functions for operations that
// transform a Seq[T] into a Seq[U] (T ≠ U) or fold it into a single value.
//
// Go generics do not allow methods to introduce their own type parameters, so
// these operations must be stand-alone functions:
//
//	evens  := seq.Generate(inc, 0).Filter(isEven)
//	labels := seq.Map(evens, strconv.Itoa)

// Number is the set of element types accepted by [Sum] and [Product].
type Number interface {
	constraints.Integer | constraints.Float
}

// Map applies fn lazily to every value of s. Kind and known length are
// preserved.
func Map[T, U any](s Seq[T], fn func(T) U) Seq[U] {
	return Seq[U]{
		kind:   s.kind,
		length: knownLen(s),
		open: func() (func() (U, bool), func()) {
			inner := s.Cursor()
			return func() (U, bool) {
				v, ok := inner.Next()
				if !ok {
					var zero U
					return zero, false
				}
				return fn(v), true
			}, inner.Close
		},
	}
}

// Enumerate pairs every value of s with its zero-based position.
func Enumerate[T any](s Seq[T]) Seq[Pair[int, T]] {
	return Seq[Pair[int, T]]{
		kind:   s.kind,
		length: knownLen(s),
		open: func() (func() (Pair[int, T], bool), func()) {
			inner := s.Cursor()
			return func() (Pair[int, T], bool) {
				pos := inner.Pos()
				v, ok := inner.Next()
				return Pair[int, T]{First: pos, Second: v}, ok
			}, inner.Close
		},
	}
}

// Zip advances every input in lock-step and yields one slice per step.
// The result ends with the shortest input and is [Bounded] whenever at least
// one input is. Zipping only unbounded inputs has no determinable length and
// fails with [ErrUnsupportedOperation]; bound one of them with Take first.
//
//	z, _ := seq.Zip(seq.Of(1, 2, 3), seq.Of(1, 2)) // → [[1 1] [2 2]]
func Zip[T any](seqs ...Seq[T]) (Seq[[]T], error) {
	if len(seqs) == 0 {
		return Empty[[]T](), nil
	}
	length, err := zipLen(kinds(seqs)...)
	if err != nil {
		return Seq[[]T]{}, err
	}
	return Seq[[]T]{
		kind:   Bounded,
		length: length,
		open: func() (func() ([]T, bool), func()) {
			cursors := make([]*Cursor[T], len(seqs))
			for i, s := range seqs {
				cursors[i] = s.Cursor()
			}
			stop := func() {
				for _, c := range cursors {
					c.Close()
				}
			}
			next := func() ([]T, bool) {
				row := make([]T, len(cursors))
				for i, c := range cursors {
					v, ok := c.Next()
					if !ok {
						stop()
						return nil, false
					}
					row[i] = v
				}
				return row, true
			}
			return next, stop
		},
	}, nil
}

// Zip2 combines two sequences of possibly different types into Pairs.
// It follows the same length rules as [Zip].
//
//	pairs, _ := seq.Zip2(seq.Of("a", "b", "c"), seq.Generate(inc, 0))
//	// → [(a, 1) (b, 2) (c, 3)]
func Zip2[A, B any](a Seq[A], b Seq[B]) (Seq[Pair[A, B]], error) {
	length, err := zipLen(shape{a.kind, knownLen(a)}, shape{b.kind, knownLen(b)})
	if err != nil {
		return Seq[Pair[A, B]]{}, err
	}
	return Seq[Pair[A, B]]{
		kind:   Bounded,
		length: length,
		open: func() (func() (Pair[A, B], bool), func()) {
			ca, cb := a.Cursor(), b.Cursor()
			stop := func() {
				ca.Close()
				cb.Close()
			}
			return func() (Pair[A, B], bool) {
				x, ok := ca.Next()
				if !ok {
					stop()
					return Pair[A, B]{}, false
				}
				y, ok := cb.Next()
				if !ok {
					stop()
					return Pair[A, B]{}, false
				}
				return Pair[A, B]{First: x, Second: y}, true
			}, stop
		},
	}, nil
}

// Chunk splits s into consecutive groups of size values. The last group may
// be shorter. Chunking is lazy, so unbounded sequences may be chunked too.
// Returns [ErrInvalidChunkSize] if size <= 0.
func Chunk[T any](s Seq[T], size int) (Seq[[]T], error) {
	if size <= 0 {
		return Seq[[]T]{}, ErrInvalidChunkSize
	}
	length := -1
	if l, ok := s.Len(); ok {
		length = (l + size - 1) / size
	}
	return Seq[[]T]{
		kind:   s.kind,
		length: length,
		open: func() (func() ([]T, bool), func()) {
			inner := s.Cursor()
			return func() ([]T, bool) {
				chunk := make([]T, 0, size)
				for len(chunk) < size {
					v, ok := inner.Next()
					if !ok {
						break
					}
					chunk = append(chunk, v)
				}
				return chunk, len(chunk) > 0
			}, inner.Close
		},
	}, nil
}

// Reduce folds s from the left into a single value of type U.
// Returns [ErrNonTerminating] for an unbounded sequence.
//
//	total, _ := seq.Reduce(seq.Of(1, 2, 3), func(acc, n int) int { return acc + n }, 0)
func Reduce[T, U any](s Seq[T], fn func(U, T) U, initial U) (U, error) {
	if s.kind == Unbounded {
		return initial, ErrNonTerminating
	}
	result := initial
	for v := range s.All() {
		result = fn(result, v)
	}
	return result, nil
}

// Sum returns the sum of the values of s (0 for an empty sequence).
func Sum[T Number](s Seq[T]) (T, error) {
	return Reduce(s, func(acc, v T) T { return acc + v }, 0)
}

// Product returns the product of the values of s (1 for an empty sequence).
func Product[T Number](s Seq[T]) (T, error) {
	return Reduce(s, func(acc, v T) T { return acc * v }, 1)
}

// Max returns the largest value of s.
// Returns [ErrEmptySequence] when s has no values.
func Max[T cmp.Ordered](s Seq[T]) (T, error) {
	return extreme(s, func(a, b T) bool { return cmp.Less(b, a) })
}

// Min returns the smallest value of s.
// Returns [ErrEmptySequence] when s has no values.
func Min[T cmp.Ordered](s Seq[T]) (T, error) {
	return extreme(s, cmp.Less[T])
}

func extreme[T any](s Seq[T], better func(a, b T) bool) (T, error) {
	var best T
	if s.kind == Unbounded {
		return best, ErrNonTerminating
	}
	found := false
	for v := range s.All() {
		if !found || better(v, best) {
			best, found = v, true
		}
	}
	if !found {
		return best, ErrEmptySequence
	}
	return best, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Length bookkeeping
// ─────────────────────────────────────────────────────────────────────────────

type shape struct {
	kind   Kind
	length int
}

func kinds[T any](seqs []Seq[T]) []shape {
	out := make([]shape, len(seqs))
	for i, s := range seqs {
		out[i] = shape{s.kind, knownLen(s)}
	}
	return out
}

// zipLen returns the known length of a zip over inputs of the given shapes,
// or -1 when some bounded input has an unknown length.
func zipLen(shapes ...shape) (int, error) {
	length, bounded := -1, false
	for _, sh := range shapes {
		if sh.kind == Unbounded {
			continue
		}
		if sh.length < 0 {
			return -1, nil
		}
		if !bounded || sh.length < length {
			length = sh.length
		}
		bounded = true
	}
	if !bounded {
		return -1, fmt.Errorf("%w: cannot zip only unbounded sequences", ErrUnsupportedOperation)
	}
	return length, nil
}

func knownLen[T any](s Seq[T]) int {
	if l, ok := s.Len(); ok {
		return l
	}
	return -1
}
