// Package prelude is the dynamic combinator layer over [algebra] and [seq].
//
// Every combinator accepts its collection as an any and lifts it with
// [algebra.Resolve], so the same call works on slices, maps, strings,
// wrappers and lazy sequences:
//
//	prelude.Sum([]int{1, 2, 3, 4})              // 10
//	prelude.Reverse("abc")                      // "cba"
//	prelude.Map(double, map[string]int{"a": 1}) // map[a:2]
//
// # Results
//
// The shape of a result follows the shape of the input:
//
//   - a Wrapper input gives a Wrapper
//   - a seq.Seq[any] input gives a seq.Seq[any], lazily where the operation
//     allows it
//   - any other input gives the exported raw value ([]any, map, string, ...)
//
// Head and Last are the exception: they always return an [algebra.Identity]
// holding the value, or [algebra.Empty] when there is none.
//
// # Callables
//
// Functions are accepted as any and called through [fn.Invoke], so a
// func(int) int can be mapped over []any{1, 2, 3}. A call that fails, for
// example on an argument of the wrong type, is reported as an error wrapping
// [algebra.ErrNotCallable]. Lazy sequence results call functions on demand
// and panic instead, the way [fn.Unary] does.
//
// # Operations
//
// Combinators taking no argument besides the collection are also registered
// by name (see [RegisterOp] and [CallOp]), which is how the prelude command
// runs them.
package prelude
