package prelude

import (
	"fmt"
	"slices"
	"sync"

	"github.com/hasbyte1/go-prelude/algebra"
	"github.com/hasbyte1/go-prelude/fn"
)

// OpFunc is the signature of a registered operation. x is the collection
// the operation runs on and args are any extra arguments.
type OpFunc func(x any, args ...any) (any, error)

// opRegistry is the package-level, goroutine-safe operation store.
var opRegistry struct {
	mu  sync.RWMutex
	ops map[string]OpFunc
}

func init() {
	opRegistry.ops = builtins()
}

// RegisterOp adds a named operation to the registry, replacing any
// operation already registered under name. Safe to call from multiple
// goroutines.
//
//	prelude.RegisterOp("evens", func(x any, _ ...any) (any, error) {
//	    return prelude.Filter(prelude.Even[int], x)
//	})
//
//	res, _ := prelude.CallOp("evens", []int{1, 2, 3, 4}) // [2 4]
func RegisterOp(name string, op OpFunc) {
	opRegistry.mu.Lock()
	defer opRegistry.mu.Unlock()
	opRegistry.ops[name] = op
}

// HasOp reports whether an operation is registered under name.
func HasOp(name string) bool {
	opRegistry.mu.RLock()
	defer opRegistry.mu.RUnlock()
	_, ok := opRegistry.ops[name]
	return ok
}

// Ops returns the registered operation names in sorted order.
func Ops() []string {
	opRegistry.mu.RLock()
	defer opRegistry.mu.RUnlock()
	names := make([]string, 0, len(opRegistry.ops))
	for name := range opRegistry.ops {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// FlushOps removes every operation, including the built-ins, and then
// registers the built-ins again when restore is true.
// Intended for use in tests.
func FlushOps(restore bool) {
	opRegistry.mu.Lock()
	defer opRegistry.mu.Unlock()
	if restore {
		opRegistry.ops = builtins()
		return
	}
	opRegistry.ops = make(map[string]OpFunc)
}

// CallOp runs the named operation on x with args.
// Returns (nil, ErrOpNotFound) if nothing is registered under name.
func CallOp(name string, x any, args ...any) (any, error) {
	opRegistry.mu.RLock()
	op, ok := opRegistry.ops[name]
	opRegistry.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrOpNotFound, name)
	}
	return op(x, args...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Built-ins
// ─────────────────────────────────────────────────────────────────────────────

func builtins() map[string]OpFunc {
	return map[string]OpFunc{
		"sum":       unaryOp(Sum),
		"product":   unaryOp(Product),
		"maximum":   unaryOp(Maximum),
		"minimum":   unaryOp(Minimum),
		"reverse":   unaryOp(Reverse),
		"tail":      unaryOp(Tail),
		"init":      unaryOp(Init),
		"unzip":     unaryOp(Unzip),
		"fromPairs": unaryOp(FromPairs),
		"head":      unaryOp(wrapped(Head)),
		"last":      unaryOp(wrapped(Last)),
		"nub":       plainOp(Nub),
		"keys":      plainOp(Keys),
		"values":    plainOp(Values),
		"pairs":     plainOp(Pairs),
		"concat":    plainOp(Concat),
		"length": func(x any, _ ...any) (any, error) {
			return Length(x)
		},
		"null": func(x any, _ ...any) (any, error) {
			return Null(x), nil
		},
		"take": func(x any, args ...any) (any, error) {
			size, err := firstArg("take", args)
			if err != nil {
				return nil, err
			}
			return Take(size, x)
		},
		"drop": func(x any, args ...any) (any, error) {
			size, err := firstArg("drop", args)
			if err != nil {
				return nil, err
			}
			return Drop(size, x)
		},
		"chunk": func(x any, args ...any) (any, error) {
			size, err := firstArg("chunk", args)
			if err != nil {
				return nil, err
			}
			return Chunk(size, x)
		},
		"pluck": func(x any, args ...any) (any, error) {
			key, err := firstArg("pluck", args)
			if err != nil {
				return nil, err
			}
			return Pluck(key, x), nil
		},
	}
}

func unaryOp(f func(any) (any, error)) OpFunc {
	return func(x any, _ ...any) (any, error) { return f(x) }
}

func plainOp(f func(any) any) OpFunc {
	return func(x any, _ ...any) (any, error) { return f(x), nil }
}

// wrapped exports the Option-style result of Head and Last: the value, or
// nil when there is none.
func wrapped(f func(any) (algebra.Wrapper, error)) func(any) (any, error) {
	return func(x any) (any, error) {
		w, err := f(x)
		if err != nil {
			return nil, err
		}
		return w.Export(), nil
	}
}

func firstArg(name string, args []any) (any, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: %s needs an argument", fn.ErrArity, name)
	}
	return args[0], nil
}
