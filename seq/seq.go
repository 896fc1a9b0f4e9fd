package seq

import "iter"

// Kind reports whether a sequence is known to end.
type Kind uint8

const (
	// Bounded sequences are guaranteed to produce a finite number of values.
	Bounded Kind = iota
	// Unbounded sequences are driven by a step function with no known end.
	Unbounded
)

// String returns "bounded" or "unbounded".
func (k Kind) String() string {
	if k == Unbounded {
		return "unbounded"
	}
	return "bounded"
}

// source opens a fresh pull function together with its release hook.
type source[T any] func() (next func() (T, bool), stop func())

// Seq is an immutable, possibly infinite sequence of T.
//
// The zero value is an empty bounded sequence. A Seq holds no position of its
// own; every traversal goes through a new [Cursor].
type Seq[T any] struct {
	kind   Kind
	length int // -1 when unknown
	items  []T // backing slice when sliced is true; never mutated
	sliced bool
	open   source[T]
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// FromSlice creates a bounded sequence from a slice (the slice is copied).
func FromSlice[T any](items []T) Seq[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return fromItems(dst)
}

// Of creates a bounded sequence from a variadic list of items (copied).
func Of[T any](items ...T) Seq[T] { return FromSlice(items) }

// Empty returns an empty bounded sequence of T.
func Empty[T any]() Seq[T] { return fromItems[T](nil) }

// Range returns the bounded sequence start, start+1, …, end-1.
// It is empty when end <= start.
func Range(start, end int) Seq[int] {
	n := max(end-start, 0)
	return Seq[int]{
		kind:   Bounded,
		length: n,
		open: func() (func() (int, bool), func()) {
			i := start
			return func() (int, bool) {
				if i >= end {
					return 0, false
				}
				i++
				return i - 1, true
			}, nil
		},
	}
}

// Generate returns an unbounded sequence whose n-th value (counting from 1)
// is step applied n times to seed:
//
//	seq.Generate(func(n int) int { return n * 2 }, 1) // 2, 4, 8, 16, …
func Generate[T any](step func(T) T, seed T) Seq[T] {
	return Seq[T]{
		kind:   Unbounded,
		length: -1,
		open: func() (func() (T, bool), func()) {
			cur := seed
			return func() (T, bool) {
				cur = step(cur)
				return cur, true
			}, nil
		},
	}
}

// Repeat returns an unbounded sequence that yields v forever.
func Repeat[T any](v T) Seq[T] {
	return Seq[T]{
		kind:   Unbounded,
		length: -1,
		open: func() (func() (T, bool), func()) {
			return func() (T, bool) { return v, true }, nil
		},
	}
}

// Times returns a bounded sequence of the results of n calls to f.
// A negative n is treated as zero.
func Times[T any](f func() T, n int) Seq[T] {
	n = max(n, 0)
	return Seq[T]{
		kind:   Bounded,
		length: n,
		open: func() (func() (T, bool), func()) {
			count := 0
			return func() (T, bool) {
				var zero T
				if count >= n {
					return zero, false
				}
				count++
				return f(), true
			}, nil
		},
	}
}

// Until repeatedly applies step, starting from seed, and yields each result
// for as long as pred does not hold for the previous value. The sequence has
// no known end and is therefore [Unbounded], even when pred eventually holds.
//
//	seq.Until(func(n int) bool { return n >= 3 }, inc, 0) // 1, 2, 3
func Until[T any](pred func(T) bool, step func(T) T, seed T) Seq[T] {
	return Seq[T]{
		kind:   Unbounded,
		length: -1,
		open: func() (func() (T, bool), func()) {
			cur := seed
			return func() (T, bool) {
				if pred(cur) {
					var zero T
					return zero, false
				}
				cur = step(cur)
				return cur, true
			}, nil
		},
	}
}

// Cycle returns an unbounded sequence repeating the values of source.
//
// Values of a lazily produced source are cached during the first pass so
// they can be replayed. An unbounded source is returned unchanged. Returns
// [ErrEmptySource] when source yields nothing.
//
// When the length of source is not known, Cycle pulls its first value once
// on a separate cursor to check for emptiness, so a side-effecting producer
// runs one extra time before consumption starts.
func Cycle[T any](source Seq[T]) (Seq[T], error) {
	if source.kind == Unbounded {
		return source, nil
	}
	if n, ok := source.Len(); ok && n == 0 {
		return Seq[T]{}, ErrEmptySource
	}
	if !source.sliced && source.length < 0 {
		probe := source.Cursor()
		_, ok := probe.Next()
		probe.Close()
		if !ok {
			return Seq[T]{}, ErrEmptySource
		}
	}
	return Seq[T]{
		kind:   Unbounded,
		length: -1,
		open: func() (func() (T, bool), func()) {
			inner := source.Cursor()
			var cache []T
			replay := -1
			next := func() (T, bool) {
				if replay < 0 {
					if v, ok := inner.Next(); ok {
						cache = append(cache, v)
						return v, true
					}
					replay = 0
				}
				if len(cache) == 0 {
					var zero T
					return zero, false
				}
				v := cache[replay]
				replay = (replay + 1) % len(cache)
				return v, true
			}
			return next, inner.Close
		},
	}, nil
}

// FromIter adopts a Go iterator. The caller states the kind, since an
// iter.Seq does not say whether it ends.
func FromIter[T any](it iter.Seq[T], kind Kind) Seq[T] {
	return Seq[T]{
		kind:   kind,
		length: -1,
		open: func() (func() (T, bool), func()) {
			return iter.Pull(it)
		},
	}
}

func fromItems[T any](items []T) Seq[T] {
	return Seq[T]{kind: Bounded, length: len(items), items: items, sliced: true}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Kind reports whether s is [Bounded] or [Unbounded].
func (s Seq[T]) Kind() Kind { return s.kind }

// IsBounded reports whether s is guaranteed to end.
func (s Seq[T]) IsBounded() bool { return s.kind == Bounded }

// Len returns the number of values s produces when that number is known
// without evaluating it.
func (s Seq[T]) Len() (int, bool) {
	if s.sliced {
		return len(s.items), true
	}
	if s.open == nil {
		return 0, true
	}
	return s.length, s.length >= 0
}

// Cursor opens a new forward-only cursor positioned before the first value.
func (s Seq[T]) Cursor() *Cursor[T] {
	if s.sliced {
		items, i := s.items, 0
		return &Cursor[T]{next: func() (T, bool) {
			if i >= len(items) {
				var zero T
				return zero, false
			}
			i++
			return items[i-1], true
		}}
	}
	if s.open == nil {
		return &Cursor[T]{done: true}
	}
	next, stop := s.open()
	return &Cursor[T]{next: next, stop: stop}
}

// All returns an iterator over the values of s for use with range.
// Ranging over an unbounded sequence only ends when the loop breaks.
func (s Seq[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		c := s.Cursor()
		defer c.Close()
		for {
			v, ok := c.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Cursor
// ─────────────────────────────────────────────────────────────────────────────

// Cursor is a single forward pass over a [Seq]. It is not safe for
// concurrent use.
type Cursor[T any] struct {
	next func() (T, bool)
	stop func()
	pos  int
	done bool
}

// Next advances the cursor and returns the value at the new position.
// It returns the zero value and false once the sequence is exhausted; every
// later call returns false as well.
func (c *Cursor[T]) Next() (T, bool) {
	var zero T
	if c.done {
		return zero, false
	}
	v, ok := c.next()
	if !ok {
		c.Close()
		return zero, false
	}
	c.pos++
	return v, true
}

// Pos returns the number of values consumed so far.
func (c *Cursor[T]) Pos() int { return c.pos }

// Close releases the cursor. Exhausted cursors close themselves; Close only
// matters when a traversal is abandoned early. Calling it twice is harmless.
func (c *Cursor[T]) Close() {
	c.done = true
	if c.stop != nil {
		c.stop()
		c.stop = nil
	}
}
