// Package seq provides a generic, lazily evaluated sequence type whose
// length may be finite, unknown or infinite.
//
// # Overview
//
// A [Seq][T] is an immutable recipe for producing values. Nothing is computed
// until a [Cursor] is opened and advanced, and every cursor owns its own
// position, so copies of a Seq never observe each other's progress:
//
//	naturals := seq.Generate(func(n int) int { return n + 1 }, 0) // 1, 2, 3, …
//	rest, _  := naturals.Drop(7)
//	five, _  := rest.Take(5)
//	out, _   := five.Materialize() // → [8 9 10 11 12]
//
// # Bounded and unbounded sequences
//
// Every sequence carries a [Kind]. [Bounded] sequences are guaranteed to end:
// they are backed by a slice, by a fixed number of calls ([Times]) or by a
// finite prefix of another sequence (Take with n ≥ 0). [Unbounded] sequences
// are driven by a step function with no known end ([Generate], [Repeat],
// [Cycle], [Until]).
//
// Operations that need to know where a sequence ends are refused on unbounded
// input instead of buffering forever:
//
//	_, err := naturals.Take(-1)   // errors.Is(err, seq.ErrUnsupportedOperation)
//	_, err  = naturals.Materialize() // errors.Is(err, seq.ErrNonTerminating)
//
// Predicate-based slicing ([Seq.TakeWhile], [Seq.DropWhile]) needs no length
// knowledge and works for both kinds.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type are package-level functions:
// [Map], [Zip], [Zip2], [Enumerate], [Chunk] and [Reduce].
//
// # Go iterators
//
// [Seq.All] adapts a sequence to an iter.Seq for use with range, and
// [FromIter] adopts an existing iterator.
package seq
