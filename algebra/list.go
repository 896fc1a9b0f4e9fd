package algebra

import "slices"

// List is an ordered sequence of values.
type List struct {
	items []any
}

// NewList returns a List holding a copy of items.
func NewList(items ...any) List { return List{items: slices.Clone(items)} }

// Variant reports which variant the List is.
func (w List) Variant() Variant { return VariantList }

// Values returns a copy of the items.
func (w List) Values() []any { return slices.Clone(w.items) }

// Null reports whether the List holds no values.
func (w List) Null() bool { return len(w.items) == 0 }

// Len returns the number of held values.
func (w List) Len() int { return len(w.items) }

// Export returns the items as a fresh []any.
func (w List) Export() any {
	out := make([]any, len(w.items))
	copy(out, w.items)
	return out
}

// At returns the item at position i.
func (w List) At(i int) (any, bool) {
	if i < 0 || i >= len(w.items) {
		return nil, false
	}
	return w.items[i], true
}

// Elem reports whether any item equals x.
func (w List) Elem(x any) bool {
	return slices.ContainsFunc(w.items, func(v any) bool { return equalValues(v, x) })
}

// Map applies f to every held value.
func (w List) Map(f MapFunc) Wrapper {
	out := make([]any, len(w.items))
	for i, v := range w.items {
		out[i] = f(v)
	}
	return List{items: out}
}

// Apply calls the i-th function of w on the i-th value of other. The result
// is as long as the shorter of the two.
func (w List) Apply(other Wrapper) (Wrapper, error) {
	args := other.Values()
	n := min(len(w.items), len(args))
	out := make([]any, n)
	for i := range n {
		call, err := callable(w.items[i])
		if err != nil {
			return nil, err
		}
		if out[i], err = call(args[i]); err != nil {
			return nil, err
		}
	}
	return List{items: out}, nil
}

// Bind applies f to every item and splices the resolved results in order.
func (w List) Bind(f MapFunc) Wrapper {
	var out []any
	for _, v := range w.items {
		out = append(out, items(Resolve(f(v)))...)
	}
	return List{items: out}
}

// Foldl folds the values from the left, starting with init.
func (w List) Foldl(f FoldFunc, init any) any {
	acc := init
	for _, v := range w.items {
		acc = f(acc, v)
	}
	return acc
}

// Foldr folds the values from the right, starting with init.
func (w List) Foldr(f FoldFunc, init any) any {
	acc := init
	for i := len(w.items) - 1; i >= 0; i-- {
		acc = f(w.items[i], acc)
	}
	return acc
}

// Maximum returns the largest value.
func (w List) Maximum() (any, error) { return maximum(w.items) }

// Minimum returns the smallest value.
func (w List) Minimum() (any, error) { return minimum(w.items) }

// Sum adds the values.
func (w List) Sum() (any, error) { return sum(w.items) }

// Product multiplies the values.
func (w List) Product() (any, error) { return product(w.items) }

// Append adds the items of other at the end. A Text counts as one item.
func (w List) Append(other Wrapper) Wrapper {
	if other.Variant() == VariantEmpty {
		return w
	}
	return List{items: append(slices.Clone(w.items), items(other)...)}
}

// Concat resolves every item and combines them with Append:
//
//	NewList([]int{1, 2}, []int{3}).Concat() // → List [1 2 3]
func (w List) Concat() Wrapper { return concatValues(w.items) }

// items returns the values other contributes when spliced into a list.
func items(other Wrapper) []any {
	if t, ok := other.(Text); ok {
		return []any{t.s}
	}
	return other.Values()
}

func concatValues(values []any) Wrapper {
	if len(values) == 0 {
		return List{}
	}
	var acc Wrapper = Empty{}
	for _, v := range values {
		acc = acc.Append(Resolve(v))
	}
	return acc
}
