package algebra

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"

	"github.com/hasbyte1/go-prelude/seq"
)

// Shape is the coercion decision for a raw value. It is computed once by
// [Classify] and drives [Resolve].
type Shape uint8

const (
	ShapeWrapper Shape = iota // already a Wrapper
	ShapeAbsent               // nil, nil pointer, nil interface, nil func
	ShapeText                 // string
	ShapeList                 // slice, array, map keyed 0..n-1, bounded Seq[any]
	ShapeDict                 // any other map
	ShapeScalar               // everything else
)

var shapeNames = [...]string{
	ShapeWrapper: "wrapper",
	ShapeAbsent:  "absent",
	ShapeText:    "text",
	ShapeList:    "list",
	ShapeDict:    "dict",
	ShapeScalar:  "scalar",
}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return "unknown"
}

// Classify decides which variant represents v. The first matching rule
// wins:
//
//  1. a Wrapper passes through
//  2. nil, or a nil pointer, interface or func, is absent
//  3. a string is text
//  4. slices, arrays, maps whose integer keys are exactly 0..len-1 and
//     bounded seq.Seq[any] values are lists
//  5. any other map is a dict
//  6. anything else, including an unbounded sequence, is a scalar
func Classify(v any) Shape {
	if v == nil {
		return ShapeAbsent
	}
	if _, ok := v.(Wrapper); ok {
		return ShapeWrapper
	}
	switch x := v.(type) {
	case string:
		return ShapeText
	case seq.Seq[any]:
		if x.IsBounded() {
			return ShapeList
		}
		return ShapeScalar
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Func:
		if rv.IsNil() {
			return ShapeAbsent
		}
	case reflect.Slice, reflect.Array:
		return ShapeList
	case reflect.Map:
		if positional(rv) {
			return ShapeList
		}
		return ShapeDict
	}
	return ShapeScalar
}

// Resolve lifts v into the variant chosen by [Classify]. Containers are
// copied, so later changes to v are not seen by the wrapper.
func Resolve(v any) Wrapper {
	switch Classify(v) {
	case ShapeWrapper:
		return v.(Wrapper)
	case ShapeAbsent:
		return Empty{}
	case ShapeText:
		return Text{s: v.(string)}
	case ShapeList:
		return List{items: listItems(v)}
	case ShapeDict:
		return dictOf(reflect.ValueOf(v))
	case ShapeScalar:
	}
	return Identity{value: v}
}

// Pure lifts a bare value into the smallest wrapper that holds it: Identity
// for a scalar, List for an ordered source and so on. It is [Resolve] under
// its algebraic name.
func Pure(v any) Wrapper { return Resolve(v) }

// ─────────────────────────────────────────────────────────────────────────────
// Capability coercion
// ─────────────────────────────────────────────────────────────────────────────

// AsFunctor returns v as a Functor. Every value has one.
func AsFunctor(v any) Functor {
	if f, ok := v.(Functor); ok {
		return f
	}
	return Resolve(v)
}

// AsApplicative returns v as an Applicative. A value that implements some
// capabilities of its own but not this one fails with [ErrNoCoercion].
func AsApplicative(v any) (Applicative, error) {
	if a, ok := v.(Applicative); ok {
		return a, nil
	}
	if foreign(v) {
		return nil, fmt.Errorf("%w: %T is not applicative", ErrNoCoercion, v)
	}
	return Resolve(v), nil
}

// AsMonad returns v as a Monad, with the same rules as [AsApplicative].
func AsMonad(v any) (Monad, error) {
	if m, ok := v.(Monad); ok {
		return m, nil
	}
	if foreign(v) {
		return nil, fmt.Errorf("%w: %T is not a monad", ErrNoCoercion, v)
	}
	return Resolve(v), nil
}

// AsFoldable returns v as a Foldable, with the same rules as
// [AsApplicative].
func AsFoldable(v any) (Foldable, error) {
	if f, ok := v.(Foldable); ok {
		return f, nil
	}
	if foreign(v) {
		return nil, fmt.Errorf("%w: %T is not foldable", ErrNoCoercion, v)
	}
	return Resolve(v), nil
}

// AsMonoid returns v as a Monoid. A value that implements other
// capabilities but not Append/Concat fails with [ErrNoMonoid].
func AsMonoid(v any) (Monoid, error) {
	if m, ok := v.(Monoid); ok {
		return m, nil
	}
	if foreign(v) {
		return nil, fmt.Errorf("%w: %T", ErrNoMonoid, v)
	}
	return Resolve(v), nil
}

// foreign reports whether v brings capability methods of its own.
func foreign(v any) bool {
	switch v.(type) {
	case Functor, Foldable, Monoid:
		return true
	}
	return false
}

// ─────────────────────────────────────────────────────────────────────────────
// Container inspection
// ─────────────────────────────────────────────────────────────────────────────

// positional reports whether a map is keyed by exactly the integers
// 0..len-1, each exactly once. A map with interface keys must hold at least
// one entry.
func positional(rv reflect.Value) bool {
	switch kind := rv.Type().Key().Kind(); {
	case kind == reflect.Interface:
		if rv.Len() == 0 {
			return false
		}
	case !integerKind(kind):
		return false
	}
	seen := make([]bool, rv.Len())
	for _, k := range rv.MapKeys() {
		i, ok := intOf(k)
		if !ok || i < 0 || i >= int64(len(seen)) || seen[i] {
			return false
		}
		seen[i] = true
	}
	return true
}

func integerKind(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Uintptr
}

func intOf(k reflect.Value) (int64, bool) {
	if k.Kind() == reflect.Interface {
		k = k.Elem()
	}
	switch {
	case k.CanInt():
		return k.Int(), true
	case k.CanUint():
		u := k.Uint()
		return int64(u), u <= 1<<62
	}
	return 0, false
}

func listItems(v any) []any {
	switch x := v.(type) {
	case []any:
		return slices.Clone(x)
	case seq.Seq[any]:
		out, _ := x.Materialize()
		return out
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Map {
		out := make([]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			i, _ := intOf(iter.Key())
			out[i] = iter.Value().Interface()
		}
		return out
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

func dictOf(rv reflect.Value) Dict {
	entries := make([]seq.Pair[any, any], 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		entries = append(entries, seq.Pair[any, any]{First: iter.Key().Interface(), Second: iter.Value().Interface()})
	}
	slices.SortFunc(entries, func(a, b seq.Pair[any, any]) int { return compareKeys(a.First, b.First) })
	var b dictBuilder
	b.merge(entries)
	return b.dict()
}

// compareKeys orders map keys: numbers first, compared numerically, then
// strings lexically, then everything else by its formatted form. Keys that
// still tie are ordered by type name and Go syntax so the order is total.
func compareKeys(a, b any) int {
	ra, rb := keyRank(a), keyRank(b)
	if ra != rb {
		return cmp.Compare(ra, rb)
	}
	var c int
	switch ra {
	case 0:
		na, _ := toNumber(a)
		nb, _ := toNumber(b)
		c = na.compare(nb)
	case 1:
		c = cmp.Compare(a.(string), b.(string))
	default:
		c = cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
	}
	if c != 0 {
		return c
	}
	if c = cmp.Compare(fmt.Sprintf("%T", a), fmt.Sprintf("%T", b)); c != 0 {
		return c
	}
	return cmp.Compare(fmt.Sprintf("%#v", a), fmt.Sprintf("%#v", b))
}

func keyRank(k any) int {
	if _, ok := k.(string); ok {
		return 1
	}
	if _, err := toNumber(k); err == nil {
		return 0
	}
	return 2
}
