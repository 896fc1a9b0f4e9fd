package algebra

import (
	"cmp"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/spf13/cast"

	"github.com/hasbyte1/go-prelude/fn"
)

// stringify renders x as text for Text results and joins.
func stringify(x any) string {
	switch v := x.(type) {
	case nil:
		return ""
	case string:
		return v
	case Text:
		return v.s
	case Wrapper:
		var b strings.Builder
		for _, item := range v.Values() {
			b.WriteString(stringify(item))
		}
		return b.String()
	}
	if s, err := cast.ToStringE(x); err == nil {
		return s
	}
	return fmt.Sprint(x)
}

// equalValues compares contained values. Wrappers compare structurally.
func equalValues(a, b any) bool {
	wa, okA := a.(Wrapper)
	wb, okB := b.(Wrapper)
	if okA || okB {
		return okA && okB && Equal(wa, wb)
	}
	return reflect.DeepEqual(a, b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Numbers
// ─────────────────────────────────────────────────────────────────────────────

type numKind uint8

const (
	kindInt numKind = iota
	kindInt64
	kindFloat
)

// number keeps both an exact integer and a float view so integer sums stay
// exact until a float joins in.
type number struct {
	kind numKind
	i    int64
	f    float64
}

func toNumber(x any) (number, error) {
	switch v := x.(type) {
	case int:
		return number{kind: kindInt, i: int64(v), f: float64(v)}, nil
	case uint:
		return unsigned(uint64(v)), nil
	case uint64:
		return unsigned(v), nil
	case int8, int16, int32, int64, uint8, uint16, uint32:
		i, err := cast.ToInt64E(v)
		if err != nil {
			return number{}, fmt.Errorf("%w: %v", ErrNotNumeric, err)
		}
		return number{kind: kindInt64, i: i, f: float64(i)}, nil
	case float32, float64:
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return number{}, fmt.Errorf("%w: %v", ErrNotNumeric, err)
		}
		return number{kind: kindFloat, f: f}, nil
	case string:
		f, err := cast.ToFloat64E(strings.TrimSpace(v))
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return number{}, fmt.Errorf("%w: %q", ErrNotNumeric, v)
		}
		return number{kind: kindFloat, f: f}, nil
	}
	return number{}, fmt.Errorf("%w: %T", ErrNotNumeric, x)
}

// unsigned keeps values above math.MaxInt64 as floats instead of letting
// them wrap negative.
func unsigned(u uint64) number {
	if u > math.MaxInt64 {
		return number{kind: kindFloat, f: float64(u)}
	}
	return number{kind: kindInt64, i: int64(u), f: float64(u)}
}

func (n number) add(o number) number {
	return number{kind: max(n.kind, o.kind), i: n.i + o.i, f: n.f + o.f}
}

func (n number) mul(o number) number {
	return number{kind: max(n.kind, o.kind), i: n.i * o.i, f: n.f * o.f}
}

func (n number) compare(o number) int {
	if n.kind != kindFloat && o.kind != kindFloat {
		return cmp.Compare(n.i, o.i)
	}
	return cmp.Compare(n.f, o.f)
}

func (n number) value() any {
	switch n.kind {
	case kindInt:
		return int(n.i)
	case kindInt64:
		return n.i
	default:
		return n.f
	}
}

// fold combines values numerically, starting from the integer identity.
func fold(values []any, identity int64, op func(number, number) number) (any, error) {
	acc := number{kind: kindInt, i: identity, f: float64(identity)}
	for _, v := range values {
		n, err := toNumber(v)
		if err != nil {
			return nil, err
		}
		acc = op(acc, n)
	}
	return acc.value(), nil
}

func sum(values []any) (any, error)     { return fold(values, 0, number.add) }
func product(values []any) (any, error) { return fold(values, 1, number.mul) }

// ─────────────────────────────────────────────────────────────────────────────
// Ordering
// ─────────────────────────────────────────────────────────────────────────────

// compare orders two contained values. Numbers and numeric strings compare
// numerically, other strings lexically, bools false before true.
func compare(a, b any) (int, error) {
	na, errA := toNumber(a)
	nb, errB := toNumber(b)
	if errA == nil && errB == nil {
		return na.compare(nb), nil
	}
	if sa, ok := a.(string); ok {
		if sb, ok := b.(string); ok {
			return strings.Compare(sa, sb), nil
		}
	}
	if ba, ok := a.(bool); ok {
		if bb, ok := b.(bool); ok {
			return boolRank(ba) - boolRank(bb), nil
		}
	}
	return 0, fmt.Errorf("%w: %T and %T", ErrIncomparable, a, b)
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

// extreme returns the value that wins every comparison with better.
func extreme(values []any, better func(int) bool) (any, error) {
	if len(values) == 0 {
		return nil, ErrEmptyCollection
	}
	best := values[0]
	for _, v := range values[1:] {
		c, err := compare(v, best)
		if err != nil {
			return nil, err
		}
		if better(c) {
			best = v
		}
	}
	return best, nil
}

func maximum(values []any) (any, error) { return extreme(values, func(c int) bool { return c > 0 }) }
func minimum(values []any) (any, error) { return extreme(values, func(c int) bool { return c < 0 }) }

// ─────────────────────────────────────────────────────────────────────────────
// Calling contained functions
// ─────────────────────────────────────────────────────────────────────────────

// callable turns a contained value into a one-argument call.
func callable(f any) (func(any) (any, error), error) {
	switch g := f.(type) {
	case MapFunc:
		return func(x any) (any, error) { return g(x), nil }, nil
	case func(any) any:
		return func(x any) (any, error) { return g(x), nil }, nil
	}
	if !fn.IsFunc(f) {
		return nil, fmt.Errorf("%w: %T", ErrNotCallable, f)
	}
	return func(x any) (any, error) {
		v, err := fn.Invoke(f, x)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNotCallable, err)
		}
		return v, nil
	}, nil
}

// mapErr maps w with a call that may fail and reports the first failure.
func mapErr(w Wrapper, call func(any) (any, error)) (Wrapper, error) {
	var first error
	out := w.Map(func(x any) any {
		v, err := call(x)
		if err != nil && first == nil {
			first = err
		}
		return v
	})
	if first != nil {
		return nil, first
	}
	return out, nil
}

// Hashable reports whether k can be used as a map key. Unlike
// reflect.Type.Comparable it looks inside interface values, so a struct
// field of type any holding a slice makes the key unhashable.
func Hashable(k any) bool {
	return k == nil || hashableValue(reflect.ValueOf(k))
}

func hashableValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Slice, reflect.Map, reflect.Func:
		return false
	case reflect.Interface:
		return v.IsNil() || hashableValue(v.Elem())
	case reflect.Struct:
		for i := range v.NumField() {
			if !hashableValue(v.Field(i)) {
				return false
			}
		}
	case reflect.Array:
		for i := range v.Len() {
			if !hashableValue(v.Index(i)) {
				return false
			}
		}
	}
	return true
}
