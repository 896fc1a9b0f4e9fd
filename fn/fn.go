package fn

import "slices"

// Id returns its argument.
func Id[A any](a A) A { return a }

// Constant returns a function that ignores its arguments and returns a.
func Constant[A any](a A) func(...any) A {
	return func(...any) A { return a }
}

// Noop does nothing.
func Noop(...any) {}

// Compose composes unary functions right to left:
// Compose(f, g)(x) == f(g(x)). Compose() is the identity.
func Compose(fs ...func(any) any) func(any) any {
	return func(x any) any {
		for i := len(fs) - 1; i >= 0; i-- {
			x = fs[i](x)
		}
		return x
	}
}

// Pipe composes unary functions left to right:
// Pipe(f, g)(x) == g(f(x)).
func Pipe(fs ...func(any) any) func(any) any {
	return func(x any) any {
		for _, f := range fs {
			x = f(x)
		}
		return x
	}
}

// Flip returns a function that calls f with its arguments reversed.
func Flip(f any) Func {
	return func(args ...any) (any, error) {
		rev := slices.Clone(args)
		slices.Reverse(rev)
		return Invoke(f, rev...)
	}
}

// Flip2 is the typed two-argument form of [Flip].
func Flip2[A, B, C any](f func(A, B) C) func(B, A) C {
	return func(b B, a A) C { return f(a, b) }
}

// Partial binds the leading arguments of f.
//
//	inc := fn.Partial(func(a, b int) int { return a + b }, 1)
func Partial(f any, bound ...any) Func {
	bound = slices.Clone(bound)
	return func(more ...any) (any, error) {
		return Invoke(f, append(slices.Clone(bound), more...)...)
	}
}

// PartialEnd binds the trailing arguments of f.
func PartialEnd(f any, bound ...any) Func {
	bound = slices.Clone(bound)
	return func(more ...any) (any, error) {
		return Invoke(f, append(slices.Clone(more), bound...)...)
	}
}

// Splat adapts f to take its arguments as one slice.
func Splat(f any) func([]any) (any, error) {
	return func(args []any) (any, error) { return Invoke(f, args...) }
}

// Unsplat adapts a slice-taking f to take its arguments one by one.
func Unsplat[R any](f func([]any) R) func(...any) R {
	return func(args ...any) R { return f(args) }
}

// NthArg returns a function that yields its index-th argument, or def when
// there is no such argument.
func NthArg(index int, def any) Func {
	return func(args ...any) (any, error) {
		if index < 0 || index >= len(args) {
			return def, nil
		}
		return args[index], nil
	}
}

// NthArgs returns a function that yields the arguments at the given
// positions, in argument order. Missing positions are skipped.
func NthArgs(indices ...int) Func {
	return func(args ...any) (any, error) {
		out := make([]any, 0, len(indices))
		for i, a := range args {
			if slices.Contains(indices, i) {
				out = append(out, a)
			}
		}
		return out, nil
	}
}

// SetArity returns a function that passes at most n arguments to f.
func SetArity(f any, n int) Func {
	return func(args ...any) (any, error) {
		if len(args) > n {
			args = args[:max(n, 0)]
		}
		return Invoke(f, args...)
	}
}

// Curry returns a function that collects arguments until n have been given
// and then calls f with all of them. Each call with too few arguments
// returns a new Func, as an any, waiting for the rest. A negative n uses the
// arity of f.
func Curry(f any, n int) (Func, error) {
	if n < 0 {
		a, err := Arity(f)
		if err != nil {
			return nil, err
		}
		n = a
	}
	return curry(f, n), nil
}

func curry(f any, n int) Func {
	if n <= 0 {
		return func(args ...any) (any, error) { return Invoke(f, args...) }
	}
	return func(args ...any) (any, error) {
		bound := Partial(f, args...)
		if len(args) >= n {
			return bound()
		}
		return curry(bound, n-len(args)), nil
	}
}

// Once returns a function that calls f the first time and returns def on
// every later call.
func Once(f any, def any) Func {
	done := false
	return func(args ...any) (any, error) {
		if done {
			return def, nil
		}
		done = true
		return Invoke(f, args...)
	}
}
