package prelude

import (
	"github.com/hasbyte1/go-prelude/fn"
	"github.com/hasbyte1/go-prelude/seq"
)

// Iterate returns the unbounded sequence f(seed), f(f(seed)), ...
//
//	s, _ := prelude.Iterate(func(n int) int { return n + 1 }, 0)
//	prelude.Take(3, s) // 1, 2, 3
func Iterate(f, seed any) (seq.Seq[any], error) {
	step, err := fn.Unary(f)
	if err != nil {
		return seq.Seq[any]{}, err
	}
	return seq.Generate(step, seed), nil
}

// Repeat returns the unbounded sequence v, v, v, ...
func Repeat(v any) seq.Seq[any] {
	return seq.Repeat(v)
}

// Cycle repeats the values of x forever. An empty x fails with
// [seq.ErrEmptySource].
func Cycle(x any) (seq.Seq[any], error) {
	return seq.Cycle(toSeq(x))
}

// Times returns the bounded sequence of n results of calling f with no
// arguments. f is called again for every traversal.
func Times(f any, n int) (seq.Seq[any], error) {
	g, err := lazy(f)
	if err != nil {
		return seq.Seq[any]{}, err
	}
	return seq.Times(func() any { return g() }, n), nil
}

// Until applies f repeatedly starting from seed, yielding every result up to
// and including the first one that satisfies pred. A seed that already
// satisfies pred gives an empty sequence. The result has no known end.
func Until(pred, f, seed any) (seq.Seq[any], error) {
	test, err := fn.Predicate(pred)
	if err != nil {
		return seq.Seq[any]{}, err
	}
	step, err := fn.Unary(f)
	if err != nil {
		return seq.Seq[any]{}, err
	}
	return seq.Until(test, step, seed), nil
}

// Materialize returns every value of x as a fresh slice. An unbounded
// sequence fails with [seq.ErrNonTerminating].
func Materialize(x any) ([]any, error) {
	if s, ok := asSeq(x); ok {
		return s.Materialize()
	}
	w, _ := lift(x)
	return w.Values(), nil
}
