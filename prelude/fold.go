package prelude

import (
	"slices"

	"github.com/hasbyte1/go-prelude/algebra"
	"github.com/hasbyte1/go-prelude/fn"
	"github.com/hasbyte1/go-prelude/seq"
)

// Sum adds the values of x. Numeric strings take part; an empty collection
// sums to 0.
//
//	prelude.Sum([]int{1, 2, 3, 4}) // 10
func Sum(x any) (any, error) {
	w, err := foldable(x)
	if err != nil {
		return nil, err
	}
	return w.Sum()
}

// Product multiplies the values of x. An empty collection gives 1.
func Product(x any) (any, error) {
	w, err := foldable(x)
	if err != nil {
		return nil, err
	}
	return w.Product()
}

// Maximum returns the largest value of x, or [algebra.ErrEmptyCollection].
func Maximum(x any) (any, error) {
	w, err := foldable(x)
	if err != nil {
		return nil, err
	}
	return w.Maximum()
}

// Minimum returns the smallest value of x, or [algebra.ErrEmptyCollection].
func Minimum(x any) (any, error) {
	w, err := foldable(x)
	if err != nil {
		return nil, err
	}
	return w.Minimum()
}

// Length counts the values of x: characters for text, entries for a map.
// A sequence of unknown length is counted by traversing it.
func Length(x any) (int, error) {
	if s, ok := asSeq(x); ok {
		if n, ok := s.Len(); ok {
			return n, nil
		}
		return seq.Reduce(s, func(n int, _ any) int { return n + 1 }, 0)
	}
	w, err := algebra.AsFoldable(x)
	if err != nil {
		return 0, err
	}
	return w.Len(), nil
}

// Null reports whether x has no values. It only looks at the first value of
// a sequence, so it is safe on unbounded ones.
func Null(x any) bool {
	if s, ok := asSeq(x); ok {
		_, found := s.Head()
		return !found
	}
	w, _ := lift(x)
	return w.Null()
}

// Elem reports whether v is one of the values of x. Sequences must be
// bounded.
func Elem(v, x any) (bool, error) {
	w, err := foldable(x)
	if err != nil {
		return false, err
	}
	return w.Elem(v), nil
}

// Contains reports whether x holds v. When v is a function it is used as a
// predicate instead, as [Any] does.
//
//	prelude.Contains([]string{"a", "b"}, "b") // true
//	prelude.Contains([]int{1, 2}, isEven)     // true
func Contains(x, v any) (bool, error) {
	if fn.IsFunc(v) {
		return Any(v, x)
	}
	return Elem(v, x)
}

// Any reports whether pred holds for at least one value of x. It stops at
// the first match.
func Any(pred, x any) (bool, error) {
	return scan(pred, x, true)
}

// All reports whether pred holds for every value of x. It is true for an
// empty collection.
func All(pred, x any) (bool, error) {
	missed, err := scan(pred, x, false)
	return !missed && err == nil, err
}

// scan reports whether pred gives want for some value of x, stopping at the
// first one that does.
func scan(pred, x any, want bool) (bool, error) {
	c, err := newCaller(pred)
	if err != nil {
		return false, err
	}
	values, err := valuesOf(x)
	if err != nil {
		return false, err
	}
	found := false
	for _, v := range values {
		if c.test(v) == want {
			found = true
			break
		}
	}
	if c.err != nil {
		return false, c.err
	}
	return found, nil
}

func valuesOf(x any) ([]any, error) {
	if s, ok := asSeq(x); ok {
		return s.Materialize()
	}
	w, err := algebra.AsFoldable(x)
	if err != nil {
		return nil, err
	}
	return w.Values(), nil
}

// Reverse returns x with its values in reverse order.
//
//	prelude.Reverse([]int{1, 2, 3}) // [3 2 1]
func Reverse(x any) (any, error) {
	if s, ok := asSeq(x); ok {
		items, err := s.Materialize()
		if err != nil {
			return nil, err
		}
		slices.Reverse(items)
		return seq.FromSlice(items), nil
	}
	w, m := lift(x)
	return m.out(algebra.Reverse(w)), nil
}
