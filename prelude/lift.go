package prelude

import (
	"fmt"
	"iter"

	"github.com/hasbyte1/go-prelude/algebra"
	"github.com/hasbyte1/go-prelude/fn"
	"github.com/hasbyte1/go-prelude/seq"
)

// mode records how a collection entered a combinator so the result can
// leave the same way.
type mode uint8

const (
	modeRaw mode = iota
	modeWrapper
	modeSeq
)

// lift resolves x into a Wrapper. Lazy sequences are not lifted; callers
// check for them with asSeq first.
func lift(x any) (algebra.Wrapper, mode) {
	if w, ok := x.(algebra.Wrapper); ok {
		return w, modeWrapper
	}
	return algebra.Resolve(x), modeRaw
}

func asSeq(x any) (seq.Seq[any], bool) {
	s, ok := x.(seq.Seq[any])
	return s, ok
}

// out converts w back to the caller's representation.
func (m mode) out(w algebra.Wrapper) any {
	switch m {
	case modeWrapper:
		return w
	case modeSeq:
		return seq.FromSlice(w.Values())
	}
	return w.Export()
}

// bounded materializes a sequence input into a List so that whole-collection
// operations can run on it.
func bounded(s seq.Seq[any]) (algebra.Wrapper, error) {
	items, err := s.Materialize()
	if err != nil {
		return nil, err
	}
	return algebra.NewList(items...), nil
}

// collection lifts x for an operation that needs every value. A sequence is
// materialized and reported as modeSeq.
func collection(x any) (algebra.Wrapper, mode, error) {
	if s, ok := asSeq(x); ok {
		w, err := bounded(s)
		return w, modeSeq, err
	}
	w, m := lift(x)
	return w, m, nil
}

// toSeq views any collection as a sequence of its values.
func toSeq(x any) seq.Seq[any] {
	if s, ok := asSeq(x); ok {
		return s
	}
	w, _ := lift(x)
	return seq.FromSlice(w.Values())
}

// ─────────────────────────────────────────────────────────────────────────────
// Calling user functions
// ─────────────────────────────────────────────────────────────────────────────

// caller invokes a dynamic callable and keeps the first failure, so the
// algebra's infallible MapFunc and FoldFunc shapes can report errors.
type caller struct {
	f   any
	err error
}

func newCaller(f any) (*caller, error) {
	if !fn.IsFunc(f) {
		return nil, fmt.Errorf("%w: %T", algebra.ErrNotCallable, f)
	}
	return &caller{f: f}, nil
}

func (c *caller) call(args ...any) any {
	if c.err != nil {
		return nil
	}
	v, err := fn.Invoke(c.f, args...)
	if err != nil {
		c.err = fmt.Errorf("%w: %w", algebra.ErrNotCallable, err)
	}
	return v
}

func (c *caller) unary(x any) any     { return c.call(x) }
func (c *caller) binary(a, b any) any { return c.call(a, b) }
func (c *caller) test(x any) bool     { return c.err == nil && fn.Truthy(c.call(x)) }

func (c *caller) result(v any) (any, error) {
	if c.err != nil {
		return nil, c.err
	}
	return v, nil
}

// lazy returns a call for use inside a lazy sequence, where there is no
// error return to report through.
func lazy(f any) (func(...any) any, error) {
	if !fn.IsFunc(f) {
		return nil, fmt.Errorf("%w: %T", algebra.ErrNotCallable, f)
	}
	return func(args ...any) any {
		v, err := fn.Invoke(f, args...)
		if err != nil {
			panic(fmt.Errorf("%w: %w", algebra.ErrNotCallable, err))
		}
		return v
	}, nil
}

// spliced yields the values a bind result contributes to a flattened
// sequence: a Text counts as one value and Empty contributes nothing.
func spliced(v any) iter.Seq[any] {
	return func(yield func(any) bool) {
		w := algebra.Resolve(v)
		if t, ok := w.(algebra.Text); ok {
			yield(t.String())
			return
		}
		for _, x := range w.Values() {
			if !yield(x) {
				return
			}
		}
	}
}
