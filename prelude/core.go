package prelude

import (
	"strings"

	"github.com/hasbyte1/go-prelude/algebra"
	"github.com/hasbyte1/go-prelude/fn"
	"github.com/hasbyte1/go-prelude/seq"
)

// Map applies f to every value of x, keeping its shape. Dicts keep their
// keys and Text maps each character.
//
//	prelude.Map(func(n int) int { return n * 2 }, []int{1, 2, 3}) // [2 4 6]
func Map(f, x any) (any, error) {
	if s, ok := asSeq(x); ok {
		g, err := lazy(f)
		if err != nil {
			return nil, err
		}
		return seq.Map(s, func(v any) any { return g(v) }), nil
	}
	c, err := newCaller(f)
	if err != nil {
		return nil, err
	}
	w, m := lift(x)
	out := w.Map(c.unary)
	if c.err != nil {
		return nil, c.err
	}
	return m.out(out), nil
}

// Bind maps f over x and flattens one level of the results. Each result is
// resolved first, so f may return slices, strings, maps or wrappers.
//
//	prelude.Bind([]int{1, 2}, func(n int) []int { return []int{n, n} }) // [1 1 2 2]
func Bind(x, f any) (any, error) {
	if s, ok := asSeq(x); ok {
		g, err := lazy(f)
		if err != nil {
			return nil, err
		}
		return seq.FromIter(func(yield func(any) bool) {
			for v := range s.All() {
				for item := range spliced(g(v)) {
					if !yield(item) {
						return
					}
				}
			}
		}, s.Kind()), nil
	}
	c, err := newCaller(f)
	if err != nil {
		return nil, err
	}
	mw, err := algebra.AsMonad(x)
	if err != nil {
		return nil, err
	}
	_, m := lift(x)
	out := mw.Bind(c.unary)
	if c.err != nil {
		return nil, c.err
	}
	return m.out(out), nil
}

// Apply applies the functions held by fs to the values of x. A list of
// functions is zipped with the values position by position; a single
// function is applied to every value.
//
//	prelude.Apply([]any{double, succ}, []int{10, 20, 30}) // [20 21]
func Apply(fs, x any) (any, error) {
	ap, err := algebra.AsApplicative(fs)
	if err != nil {
		return nil, err
	}
	funcs, _ := ap.(algebra.Wrapper)
	if s, ok := asSeq(x); ok {
		if funcs != nil {
			switch funcs.Variant() {
			case algebra.VariantIdentity:
				return Map(funcs.Export(), s)
			case algebra.VariantList:
				// only as many values as there are functions are ever needed
				if s, err = s.Take(funcs.Len()); err != nil {
					return nil, err
				}
			}
		}
		w, err := bounded(s)
		if err != nil {
			return nil, err
		}
		out, err := ap.Apply(w)
		if err != nil {
			return nil, err
		}
		return modeSeq.out(out), nil
	}
	w, m := lift(x)
	out, err := ap.Apply(w)
	if err != nil {
		return nil, err
	}
	if _, ok := fs.(algebra.Wrapper); ok {
		m = modeWrapper
	}
	return m.out(out), nil
}

// Foldl reduces x from the left: f(f(f(init, x1), x2), ...).
//
//	prelude.Foldl(func(acc, n int) int { return acc - n }, 10, []int{1, 2}) // 7
func Foldl(f, init, x any) (any, error) {
	return foldWith(f, x, func(w algebra.Foldable, c *caller) any { return w.Foldl(c.binary, init) })
}

// Foldr reduces x from the right: f(x1, f(x2, ... f(xn, init))).
func Foldr(f, init, x any) (any, error) {
	return foldWith(f, x, func(w algebra.Foldable, c *caller) any { return w.Foldr(c.binary, init) })
}

func foldWith(f, x any, run func(algebra.Foldable, *caller) any) (any, error) {
	c, err := newCaller(f)
	if err != nil {
		return nil, err
	}
	w, err := foldable(x)
	if err != nil {
		return nil, err
	}
	return c.result(run(w, c))
}

// foldable lifts x for a fold. Sequences must be bounded.
func foldable(x any) (algebra.Foldable, error) {
	if s, ok := asSeq(x); ok {
		return bounded(s)
	}
	return algebra.AsFoldable(x)
}

// Filter keeps the values of x for which pred holds. Dicts keep the keys of
// the kept values and Text keeps characters.
func Filter(pred, x any) (any, error) {
	return filter(pred, x, true)
}

// Reject removes the values of x for which pred holds.
func Reject(pred, x any) (any, error) {
	return filter(pred, x, false)
}

func filter(pred, x any, keep bool) (any, error) {
	if s, ok := asSeq(x); ok {
		g, err := lazy(pred)
		if err != nil {
			return nil, err
		}
		test := func(v any) bool { return fn.Truthy(g(v)) == keep }
		return s.Filter(test), nil
	}
	c, err := newCaller(pred)
	if err != nil {
		return nil, err
	}
	w, m := lift(x)
	out := selectWhere(w, func(v any) bool { return c.test(v) == keep })
	if c.err != nil {
		return nil, c.err
	}
	return m.out(out), nil
}

// selectWhere keeps the positions of w whose value satisfies keep, in the
// same variant.
func selectWhere(w algebra.Wrapper, keep func(any) bool) algebra.Wrapper {
	switch v := w.(type) {
	case algebra.Empty:
		return v
	case algebra.Identity:
		if keep(v.Value()) {
			return v
		}
		return algebra.Empty{}
	case algebra.Dict:
		var entries []seq.Pair[any, any]
		for _, e := range v.Entries() {
			if keep(e.Second) {
				entries = append(entries, e)
			}
		}
		return algebra.NewDict(entries...)
	case algebra.Text:
		var b strings.Builder
		for _, ch := range v.Chars() {
			if keep(ch) {
				b.WriteString(ch)
			}
		}
		return algebra.NewText(b.String())
	}
	var items []any
	for _, x := range w.Values() {
		if keep(x) {
			items = append(items, x)
		}
	}
	return algebra.NewList(items...)
}
