package algebra

import (
	"slices"

	"github.com/hasbyte1/go-prelude/seq"
)

// Dict associates unique keys with values. Iteration follows insertion
// order; equality ignores it. Keys must satisfy [Hashable].
type Dict struct {
	keys   []any
	values map[any]any
}

// NewDict builds a Dict from key/value pairs. A repeated key keeps its first
// position and takes the later value.
func NewDict(entries ...seq.Pair[any, any]) Dict {
	var b dictBuilder
	for _, e := range entries {
		b.set(e.First, e.Second)
	}
	return b.dict()
}

// Variant reports which variant the Dict is.
func (w Dict) Variant() Variant { return VariantDict }

// Null reports whether the Dict has no keys.
func (w Dict) Null() bool { return len(w.keys) == 0 }

// Len returns the number of keys.
func (w Dict) Len() int { return len(w.keys) }

// Keys returns the keys in iteration order.
func (w Dict) Keys() []any { return slices.Clone(w.keys) }

// Get returns the value stored under key.
func (w Dict) Get(key any) (any, bool) {
	if !Hashable(key) {
		return nil, false
	}
	v, ok := w.values[key]
	return v, ok
}

// Entries returns the key/value pairs in iteration order.
func (w Dict) Entries() []seq.Pair[any, any] {
	out := make([]seq.Pair[any, any], len(w.keys))
	for i, k := range w.keys {
		out[i] = seq.Pair[any, any]{First: k, Second: w.values[k]}
	}
	return out
}

// Values returns the values in key order.
func (w Dict) Values() []any {
	out := make([]any, len(w.keys))
	for i, k := range w.keys {
		out[i] = w.values[k]
	}
	return out
}

// Set returns a copy of w with key bound to v.
func (w Dict) Set(key, v any) Dict {
	b := w.builder()
	b.set(key, v)
	return b.dict()
}

// Delete returns a copy of w without key.
func (w Dict) Delete(key any) Dict {
	var b dictBuilder
	for _, k := range w.keys {
		if k != key {
			b.set(k, w.values[k])
		}
	}
	return b.dict()
}

// Export returns a map[string]any when every key is a string and a
// map[any]any otherwise.
func (w Dict) Export() any {
	if w.stringKeys() {
		out := make(map[string]any, len(w.keys))
		for _, k := range w.keys {
			out[k.(string)] = w.values[k]
		}
		return out
	}
	out := make(map[any]any, len(w.keys))
	for _, k := range w.keys {
		out[k] = w.values[k]
	}
	return out
}

func (w Dict) stringKeys() bool {
	for _, k := range w.keys {
		if _, ok := k.(string); !ok {
			return false
		}
	}
	return true
}

// Elem reports whether any value equals x.
func (w Dict) Elem(x any) bool {
	return slices.ContainsFunc(w.Values(), func(v any) bool { return equalValues(v, x) })
}

// Map transforms every value and keeps the keys.
func (w Dict) Map(f MapFunc) Wrapper {
	var b dictBuilder
	for _, k := range w.keys {
		b.set(k, f(w.values[k]))
	}
	return b.dict()
}

// Apply calls the function stored under each key on other's value at the
// same key. Keys missing from either side are dropped. A List or other
// positional wrapper is keyed by position.
func (w Dict) Apply(other Wrapper) (Wrapper, error) {
	args := NewDict(entriesOf(other)...)
	var b dictBuilder
	for _, k := range w.keys {
		arg, ok := args.Get(k)
		if !ok {
			continue
		}
		call, err := callable(w.values[k])
		if err != nil {
			return nil, err
		}
		v, err := call(arg)
		if err != nil {
			return nil, err
		}
		b.set(k, v)
	}
	return b.dict(), nil
}

// Bind applies f to every value. A Dict result is merged in (later keys
// win), an Empty result removes the key and any other result is exported
// and kept under the original key.
func (w Dict) Bind(f MapFunc) Wrapper {
	var b dictBuilder
	for _, k := range w.keys {
		r := Resolve(f(w.values[k]))
		switch r.Variant() {
		case VariantDict:
			b.merge(entriesOf(r))
		case VariantEmpty:
		default:
			b.set(k, r.Export())
		}
	}
	return b.dict()
}

// Foldl folds the values in key order, starting with init.
func (w Dict) Foldl(f FoldFunc, init any) any {
	acc := init
	for _, k := range w.keys {
		acc = f(acc, w.values[k])
	}
	return acc
}

// Foldr folds the values in reverse key order, starting with init.
func (w Dict) Foldr(f FoldFunc, init any) any {
	acc := init
	for i := len(w.keys) - 1; i >= 0; i-- {
		acc = f(w.values[w.keys[i]], acc)
	}
	return acc
}

// Maximum returns the largest value.
func (w Dict) Maximum() (any, error) { return maximum(w.Values()) }

// Minimum returns the smallest value.
func (w Dict) Minimum() (any, error) { return minimum(w.Values()) }

// Sum adds the values.
func (w Dict) Sum() (any, error) { return sum(w.Values()) }

// Product multiplies the values.
func (w Dict) Product() (any, error) { return product(w.Values()) }

// Append merges other into w; keys of other win. List positions become int
// keys.
func (w Dict) Append(other Wrapper) Wrapper {
	if other.Variant() == VariantEmpty {
		return w
	}
	b := w.builder()
	b.merge(entriesOf(other))
	return b.dict()
}

// Concat combines the values in key order with Append.
func (w Dict) Concat() Wrapper { return concatValues(w.Values()) }

func (w Dict) builder() dictBuilder {
	b := dictBuilder{keys: slices.Clone(w.keys), values: make(map[any]any, len(w.keys))}
	for k, v := range w.values {
		b.values[k] = v
	}
	return b
}

// entriesOf returns the key/value view of any wrapper. Positional wrappers
// are keyed by index and a Text is a single entry at 0.
func entriesOf(w Wrapper) []seq.Pair[any, any] {
	switch v := w.(type) {
	case Dict:
		return v.Entries()
	case Text:
		return []seq.Pair[any, any]{{First: 0, Second: v.s}}
	}
	values := w.Values()
	out := make([]seq.Pair[any, any], len(values))
	for i, x := range values {
		out[i] = seq.Pair[any, any]{First: i, Second: x}
	}
	return out
}

// dictBuilder accumulates entries; the zero value is ready to use.
type dictBuilder struct {
	keys   []any
	values map[any]any
}

func (b *dictBuilder) set(k, v any) {
	if b.values == nil {
		b.values = make(map[any]any)
	}
	if _, ok := b.values[k]; !ok {
		b.keys = append(b.keys, k)
	}
	b.values[k] = v
}

func (b *dictBuilder) merge(entries []seq.Pair[any, any]) {
	for _, e := range entries {
		b.set(e.First, e.Second)
	}
}

func (b *dictBuilder) dict() Dict { return Dict{keys: b.keys, values: b.values} }
