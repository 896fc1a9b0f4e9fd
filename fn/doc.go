// Package fn provides function-shaping helpers: composition, partial
// application, currying, argument selection, memoization and one-shot calls.
//
// Helpers that work on arbitrary Go functions take the function as an any
// and call it through reflection with [Invoke]. Arguments are converted to
// the parameter types where Go allows it (assignable values and numeric
// conversions), and a trailing error result is returned as the error:
//
//	add := func(a, b int) int { return a + b }
//	inc := fn.Partial(add, 1)
//	v, _ := inc(41) // 42
//
// Numeric literals arrive as int, so a func(float64) receives float64(1)
// when called with 1.
//
//	sum3, _ := fn.Curry(func(a, b, c int) int { return a + b + c }, -1)
//	step, _ := sum3(1)            // still waiting for two arguments
//	v, _    := step.(fn.Func)(2, 3) // 6
package fn
