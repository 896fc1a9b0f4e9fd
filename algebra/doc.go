// Package algebra lifts arbitrary Go values into wrappers that share one
// set of algebraic capabilities: Functor, Applicative, Monad, Foldable and
// Monoid.
//
// # Variants
//
// There are five closed variants, each a small immutable value type:
//
//   - [Identity] holds exactly one value
//   - [Empty] is the absence of a value
//   - [List] is an ordered sequence
//   - [Dict] maps unique keys to values, iterating in insertion order
//   - [Text] is a string seen as grapheme clusters
//
// Every variant implements [Wrapper], so code that only needs a capability
// can be written once:
//
//	w := algebra.Resolve([]int{1, 2, 3})
//	w.Map(func(x any) any { return x.(int) * 10 }).Export() // [10 20 30]
//	total, _ := w.Sum()                                     // 6
//
// # Coercion
//
// [Classify] decides the variant for a raw value with a fixed precedence and
// [Resolve] builds it. The decision is total and stable: the same shape
// always resolves to the same variant, and a map keyed exactly 0..n-1 is
// always a List, never a Dict.
//
// The Export method of every variant hands back a fresh raw container, so
// mutating it never affects the wrapper.
//
// # Laws
//
// Map preserves identity and composition. Pure is a left identity of Bind
// and each variant's [Variant.Unit] is a right identity:
//
//	algebra.Pure(x).Bind(f)   ≡ algebra.Resolve(f(x))
//	w.Bind(w.Variant().Unit)  ≡ w
//
// Append is associative with [Empty] as its identity element.
package algebra
