package fn

import (
	"fmt"
	"reflect"
)

// Func is the dynamic shape returned by the helpers in this package.
type Func func(args ...any) (any, error)

var errorType = reflect.TypeFor[error]()

// Invoke calls f with args and returns its first result.
//
// Extra arguments are passed along to variadic functions and dropped
// otherwise. A function whose last result is an error has that error
// returned; a function with no results returns nil.
func Invoke(f any, args ...any) (any, error) {
	switch g := f.(type) {
	case Func:
		return g(args...)
	case func(...any) (any, error):
		return g(args...)
	case func(any) any:
		if len(args) == 0 {
			return nil, fmt.Errorf("%w: want 1, got 0", ErrArity)
		}
		return g(args[0]), nil
	case func(...any) any:
		return g(args...), nil
	}
	out, err := call(f, args)
	if err != nil {
		return nil, err
	}
	return results(out)
}

// Arity returns the number of parameters f requires. The variadic
// parameter of a variadic function is not counted.
func Arity(f any) (int, error) {
	rt, err := funcType(f)
	if err != nil {
		return 0, err
	}
	if rt.IsVariadic() {
		return rt.NumIn() - 1, nil
	}
	return rt.NumIn(), nil
}

// IsFunc reports whether f is a non-nil func value.
func IsFunc(f any) bool {
	_, err := funcType(f)
	return err == nil
}

func funcType(f any) (reflect.Type, error) {
	rv := reflect.ValueOf(f)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return nil, fmt.Errorf("%w: %T", ErrNotFunc, f)
	}
	return rv.Type(), nil
}

func call(f any, args []any) ([]reflect.Value, error) {
	rt, err := funcType(f)
	if err != nil {
		return nil, err
	}
	n := rt.NumIn()
	required := n
	if rt.IsVariadic() {
		required--
	}
	if len(args) < required {
		return nil, fmt.Errorf("%w: want %d, got %d", ErrArity, required, len(args))
	}
	in := make([]reflect.Value, 0, len(args))
	for i, a := range args {
		var pt reflect.Type
		switch {
		case rt.IsVariadic() && i >= n-1:
			pt = rt.In(n - 1).Elem()
		case i < n:
			pt = rt.In(i)
		default:
			return reflect.ValueOf(f).Call(in), nil
		}
		v, err := convert(a, pt)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		in = append(in, v)
	}
	return reflect.ValueOf(f).Call(in), nil
}

func convert(a any, t reflect.Type) (reflect.Value, error) {
	if a == nil {
		switch t.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
			return reflect.Zero(t), nil
		}
		return reflect.Value{}, fmt.Errorf("%w: cannot use nil as %s", ErrArgType, t)
	}
	v := reflect.ValueOf(a)
	if v.Type().AssignableTo(t) {
		return v, nil
	}
	if numeric(v.Kind()) && numeric(t.Kind()) {
		return v.Convert(t), nil
	}
	return reflect.Value{}, fmt.Errorf("%w: cannot use %T as %s", ErrArgType, a, t)
}

func numeric(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Float64
}

func results(out []reflect.Value) (any, error) {
	if len(out) == 0 {
		return nil, nil
	}
	last := out[len(out)-1]
	if last.Type() == errorType {
		var err error
		if !last.IsNil() {
			err = last.Interface().(error)
		}
		if len(out) == 1 {
			return nil, err
		}
		return out[0].Interface(), err
	}
	return out[0].Interface(), nil
}
