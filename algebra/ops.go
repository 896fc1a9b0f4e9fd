package algebra

import (
	"reflect"
	"slices"
	"strings"
)

// Equal reports whether a and b are the same variant holding equal values.
// Dicts compare by key, ignoring insertion order.
func Equal(a, b Wrapper) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Variant() != b.Variant() {
		return false
	}
	switch a.Variant() {
	case VariantEmpty:
		return true
	case VariantText:
		return reflect.DeepEqual(a.Export(), b.Export())
	case VariantDict:
		da, db := NewDict(entriesOf(a)...), NewDict(entriesOf(b)...)
		if da.Len() != db.Len() {
			return false
		}
		for _, k := range da.keys {
			v, ok := db.Get(k)
			if !ok || !equalValues(da.values[k], v) {
				return false
			}
		}
		return true
	}
	va, vb := a.Values(), b.Values()
	return slices.EqualFunc(va, vb, equalValues)
}

// Concat combines wrappers left to right with Append. No wrappers give
// [Empty].
func Concat(ws ...Wrapper) Wrapper {
	var acc Wrapper = Empty{}
	for _, w := range ws {
		acc = acc.Append(w)
	}
	return acc
}

// Slice returns positions [i, j) of w in the same variant. Bounds are
// clamped to the wrapper. A Dict keeps the keys of the kept entries and an
// Identity behaves as a one-element sequence.
func Slice(w Wrapper, i, j int) Wrapper {
	n := w.Len()
	i, j = min(max(i, 0), n), min(max(j, 0), n)
	if j < i {
		j = i
	}
	switch v := w.(type) {
	case Empty:
		return v
	case Identity:
		if i == 0 && j == 1 {
			return v
		}
		return Empty{}
	case Text:
		return Text{s: strings.Join(graphemes(v.s)[i:j], "")}
	case Dict:
		return NewDict(v.Entries()[i:j]...)
	}
	return List{items: w.Values()[i:j]}
}

// Reverse returns w with its positions reversed. Dict keys keep their values.
func Reverse(w Wrapper) Wrapper {
	switch v := w.(type) {
	case Empty, Identity:
		return v
	case Text:
		chars := graphemes(v.s)
		slices.Reverse(chars)
		return Text{s: strings.Join(chars, "")}
	case Dict:
		entries := v.Entries()
		slices.Reverse(entries)
		return NewDict(entries...)
	}
	values := w.Values()
	slices.Reverse(values)
	return List{items: values}
}
