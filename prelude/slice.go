package prelude

import (
	"fmt"

	"github.com/spf13/cast"

	"github.com/hasbyte1/go-prelude/algebra"
	"github.com/hasbyte1/go-prelude/fn"
	"github.com/hasbyte1/go-prelude/seq"
)

// ─────────────────────────────────────────────────────────────────────────────
// Take / Drop
// ─────────────────────────────────────────────────────────────────────────────

// Take returns the first size values of x, or the last |size| values when
// size is negative. A predicate size takes the longest prefix it holds for,
// as [TakeWhile] does. Taking more values than x holds is not an error.
//
// A lazy sequence stays lazy; taking from the end of an unbounded one fails
// with [seq.ErrUnsupportedOperation].
//
//	prelude.Take(2, []int{1, 2, 3})  // [1 2]
//	prelude.Take(-2, "hello")        // "lo"
func Take(size, x any) (any, error) {
	if fn.IsFunc(size) {
		return TakeWhile(size, x)
	}
	n, err := sizeOf(size)
	if err != nil {
		return nil, err
	}
	if s, ok := asSeq(x); ok {
		return s.Take(n)
	}
	w, m := lift(x)
	l := w.Len()
	if n >= 0 {
		return m.out(algebra.Slice(w, 0, n)), nil
	}
	return m.out(algebra.Slice(w, l+n, l)), nil
}

// Drop removes the first size values of x and returns the rest, or removes
// the last |size| values when size is negative. A predicate size drops the
// prefix it holds for. The rules for sequences are the same as for [Take].
func Drop(size, x any) (any, error) {
	if fn.IsFunc(size) {
		return DropWhile(size, x)
	}
	n, err := sizeOf(size)
	if err != nil {
		return nil, err
	}
	if s, ok := asSeq(x); ok {
		return s.Drop(n)
	}
	w, m := lift(x)
	l := w.Len()
	if n >= 0 {
		return m.out(algebra.Slice(w, n, l)), nil
	}
	return m.out(algebra.Slice(w, 0, l+n)), nil
}

func sizeOf(size any) (int, error) {
	if _, ok := size.(bool); ok {
		return 0, fmt.Errorf("%w: %T", ErrInvalidSize, size)
	}
	n, err := cast.ToIntE(size)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidSize, err)
	}
	return n, nil
}

// TakeWhile returns the longest prefix of x whose values satisfy pred.
func TakeWhile(pred, x any) (any, error) {
	if s, ok := asSeq(x); ok {
		g, err := lazy(pred)
		if err != nil {
			return nil, err
		}
		return s.TakeWhile(func(v any) bool { return fn.Truthy(g(v)) }), nil
	}
	w, m, n, err := prefix(pred, x)
	if err != nil {
		return nil, err
	}
	return m.out(algebra.Slice(w, 0, n)), nil
}

// DropWhile removes the longest prefix of x whose values satisfy pred.
func DropWhile(pred, x any) (any, error) {
	if s, ok := asSeq(x); ok {
		g, err := lazy(pred)
		if err != nil {
			return nil, err
		}
		return s.DropWhile(func(v any) bool { return fn.Truthy(g(v)) }), nil
	}
	w, m, n, err := prefix(pred, x)
	if err != nil {
		return nil, err
	}
	return m.out(algebra.Slice(w, n, w.Len())), nil
}

// prefix returns the length of the prefix of x satisfying pred.
func prefix(pred, x any) (algebra.Wrapper, mode, int, error) {
	c, err := newCaller(pred)
	if err != nil {
		return nil, 0, 0, err
	}
	w, m := lift(x)
	n := 0
	for _, v := range w.Values() {
		if !c.test(v) {
			break
		}
		n++
	}
	if c.err != nil {
		return nil, 0, 0, c.err
	}
	return w, m, n, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Ends
// ─────────────────────────────────────────────────────────────────────────────

// Head returns the first value of x as an [algebra.Identity], or
// [algebra.Empty] when x has no values. It is safe on unbounded sequences.
func Head(x any) (algebra.Wrapper, error) {
	return end(x, 1)
}

// Last returns the final value of x as an [algebra.Identity], or
// [algebra.Empty] when x has no values. An unbounded sequence has no last
// value and fails with [seq.ErrUnsupportedOperation].
func Last(x any) (algebra.Wrapper, error) {
	return end(x, -1)
}

func end(x any, n int) (algebra.Wrapper, error) {
	v, err := Take(n, x)
	if err != nil {
		return nil, err
	}
	var values []any
	switch t := v.(type) {
	case seq.Seq[any]:
		if values, err = t.Materialize(); err != nil {
			return nil, err
		}
	default:
		values = algebra.Resolve(v).Values()
	}
	if len(values) == 0 {
		return algebra.Empty{}, nil
	}
	return algebra.NewIdentity(values[0]), nil
}

// Tail returns x without its first value.
func Tail(x any) (any, error) { return Drop(1, x) }

// Init returns x without its last value.
func Init(x any) (any, error) { return Drop(-1, x) }
