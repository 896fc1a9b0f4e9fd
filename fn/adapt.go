package fn

import (
	"fmt"
	"reflect"
)

// Unary adapts any one-argument function to func(any) any. The adapter
// panics if a call fails, for example because its argument cannot be
// converted to the parameter type.
//
//	upper, _ := fn.Unary(strings.ToUpper)
func Unary(f any) (func(any) any, error) {
	if g, ok := f.(func(any) any); ok {
		return g, nil
	}
	if err := acceptsOne(f); err != nil {
		return nil, err
	}
	return func(x any) any {
		v, err := Invoke(f, x)
		if err != nil {
			panic(err)
		}
		return v
	}, nil
}

// Binary adapts any two-argument function to func(any, any) any. Like
// [Unary], the adapter panics when a call fails.
func Binary(f any) (func(any, any) any, error) {
	if g, ok := f.(func(any, any) any); ok {
		return g, nil
	}
	if _, err := funcType(f); err != nil {
		return nil, err
	}
	return func(a, b any) any {
		v, err := Invoke(f, a, b)
		if err != nil {
			panic(err)
		}
		return v
	}, nil
}

// Predicate adapts any one-argument function to func(any) bool. A bool
// result is used as is; any other result counts as true when it is not the
// zero value of its type.
func Predicate(f any) (func(any) bool, error) {
	if g, ok := f.(func(any) bool); ok {
		return g, nil
	}
	u, err := Unary(f)
	if err != nil {
		return nil, err
	}
	return func(x any) bool { return Truthy(u(x)) }, nil
}

// Truthy reports whether v is true-like: a true bool or a non-zero value.
func Truthy(v any) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	if v == nil {
		return false
	}
	return !reflect.ValueOf(v).IsZero()
}

func acceptsOne(f any) error {
	rt, err := funcType(f)
	if err != nil {
		return err
	}
	n := rt.NumIn()
	if n <= 1 || (rt.IsVariadic() && n <= 2) {
		return nil
	}
	return fmt.Errorf("%w: %s takes %d arguments", ErrArity, rt, n)
}
