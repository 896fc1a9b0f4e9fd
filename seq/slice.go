package seq

import "fmt"

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Take returns at most n values from the start of s. The result is always
// [Bounded]; asking for more values than s holds is not an error.
//
// A negative n returns the last |n| values (e.g. Take(-3) ≡ last 3 values).
// That requires knowing where s ends, so it fails with
// [ErrUnsupportedOperation] on an unbounded sequence.
func (s Seq[T]) Take(n int) (Seq[T], error) {
	if n < 0 {
		if s.kind == Unbounded {
			return Seq[T]{}, fmt.Errorf("%w: cannot take from the end of an unbounded sequence", ErrUnsupportedOperation)
		}
		return s.takeLast(-n), nil
	}
	if s.sliced {
		return fromItems(s.items[:min(n, len(s.items))]), nil
	}
	length := -1
	if l, ok := s.Len(); ok {
		length = min(n, l)
	}
	return Seq[T]{
		kind:   Bounded,
		length: length,
		open: func() (func() (T, bool), func()) {
			inner := s.Cursor()
			count := 0
			return func() (T, bool) {
				if count >= n {
					inner.Close()
					var zero T
					return zero, false
				}
				count++
				return inner.Next()
			}, inner.Close
		},
	}, nil
}

// takeLast keeps a ring of the last n values seen, so memory stays O(n)
// even for long lazily produced sequences.
func (s Seq[T]) takeLast(n int) Seq[T] {
	if s.sliced {
		return fromItems(s.items[max(len(s.items)-n, 0):])
	}
	length := -1
	if l, ok := s.Len(); ok {
		length = min(n, l)
	}
	return Seq[T]{
		kind:   Bounded,
		length: length,
		open: func() (func() (T, bool), func()) {
			var out []T
			filled := false
			i := 0
			return func() (T, bool) {
				if !filled {
					out = lastN(s, n)
					filled = true
				}
				if i >= len(out) {
					var zero T
					return zero, false
				}
				i++
				return out[i-1], true
			}, nil
		},
	}
}

func lastN[T any](s Seq[T], n int) []T {
	if n == 0 {
		return nil
	}
	ring := make([]T, 0, n)
	head := 0
	for v := range s.All() {
		if len(ring) < n {
			ring = append(ring, v)
			continue
		}
		ring[head] = v
		head = (head + 1) % n
	}
	out := make([]T, 0, len(ring))
	out = append(out, ring[head:]...)
	return append(out, ring[:head]...)
}

// TakeWhile returns the longest prefix of s whose values satisfy fn.
// The kind of s is preserved: the prefix of an unbounded sequence may never
// end if fn keeps holding.
func (s Seq[T]) TakeWhile(fn func(T) bool) Seq[T] {
	return Seq[T]{
		kind:   s.kind,
		length: -1,
		open: func() (func() (T, bool), func()) {
			inner := s.Cursor()
			return func() (T, bool) {
				v, ok := inner.Next()
				if !ok || !fn(v) {
					inner.Close()
					var zero T
					return zero, false
				}
				return v, true
			}, inner.Close
		},
	}
}

// TakeUntil returns values from the start until fn returns true (exclusive).
func (s Seq[T]) TakeUntil(fn func(T) bool) Seq[T] {
	return s.TakeWhile(func(v T) bool { return !fn(v) })
}

// Drop skips the first n values of s and returns the rest. Dropping more
// values than s holds yields an empty sequence.
//
// A negative n drops |n| values from the end, which fails with
// [ErrUnsupportedOperation] on an unbounded sequence.
func (s Seq[T]) Drop(n int) (Seq[T], error) {
	if n < 0 {
		if s.kind == Unbounded {
			return Seq[T]{}, fmt.Errorf("%w: cannot drop from the end of an unbounded sequence", ErrUnsupportedOperation)
		}
		return s.dropLast(-n), nil
	}
	if s.sliced {
		return fromItems(s.items[min(n, len(s.items)):]), nil
	}
	length := -1
	if l, ok := s.Len(); ok {
		length = max(l-n, 0)
	}
	return Seq[T]{
		kind:   s.kind,
		length: length,
		open: func() (func() (T, bool), func()) {
			inner := s.Cursor()
			skipped := false
			return func() (T, bool) {
				if !skipped {
					skipped = true
					for range n {
						if _, ok := inner.Next(); !ok {
							break
						}
					}
				}
				return inner.Next()
			}, inner.Close
		},
	}, nil
}

// dropLast delays values by n positions: a value is released only once n
// newer values have been seen, so the final n never come out.
func (s Seq[T]) dropLast(n int) Seq[T] {
	if s.sliced {
		return fromItems(s.items[:max(len(s.items)-n, 0)])
	}
	length := -1
	if l, ok := s.Len(); ok {
		length = max(l-n, 0)
	}
	return Seq[T]{
		kind:   Bounded,
		length: length,
		open: func() (func() (T, bool), func()) {
			inner := s.Cursor()
			ring := make([]T, 0, n)
			head := 0
			return func() (T, bool) {
				for {
					v, ok := inner.Next()
					if !ok {
						var zero T
						return zero, false
					}
					if n == 0 {
						return v, true
					}
					if len(ring) < n {
						ring = append(ring, v)
						continue
					}
					out := ring[head]
					ring[head] = v
					head = (head + 1) % n
					return out, true
				}
			}, inner.Close
		},
	}
}

// DropWhile skips values while fn returns true and returns the rest.
func (s Seq[T]) DropWhile(fn func(T) bool) Seq[T] {
	return Seq[T]{
		kind:   s.kind,
		length: -1,
		open: func() (func() (T, bool), func()) {
			inner := s.Cursor()
			dropping := true
			return func() (T, bool) {
				for {
					v, ok := inner.Next()
					if !ok {
						var zero T
						return zero, false
					}
					if dropping && fn(v) {
						continue
					}
					dropping = false
					return v, true
				}
			}, inner.Close
		},
	}
}

// DropUntil skips values until fn returns true, then returns the rest.
func (s Seq[T]) DropUntil(fn func(T) bool) Seq[T] {
	return s.DropWhile(func(v T) bool { return !fn(v) })
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation (type-preserving)
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a sequence of the values for which fn returns true.
// The kind of s is preserved.
func (s Seq[T]) Filter(fn func(T) bool) Seq[T] {
	return Seq[T]{
		kind:   s.kind,
		length: -1,
		open: func() (func() (T, bool), func()) {
			inner := s.Cursor()
			return func() (T, bool) {
				for {
					v, ok := inner.Next()
					if !ok || fn(v) {
						return v, ok
					}
				}
			}, inner.Close
		},
	}
}

// Reject returns a sequence with the values for which fn returns true
// removed. It is the complement of [Seq.Filter].
func (s Seq[T]) Reject(fn func(T) bool) Seq[T] {
	return s.Filter(func(v T) bool { return !fn(v) })
}

// Concat returns s followed by each of others in order. The result is
// [Unbounded] when any input is.
func (s Seq[T]) Concat(others ...Seq[T]) Seq[T] {
	all := append([]Seq[T]{s}, others...)
	kind, length := Bounded, 0
	for _, part := range all {
		if part.kind == Unbounded {
			kind = Unbounded
		}
		if l, ok := part.Len(); ok && length >= 0 {
			length += l
		} else {
			length = -1
		}
	}
	if kind == Unbounded {
		length = -1
	}
	return Seq[T]{
		kind:   kind,
		length: length,
		open: func() (func() (T, bool), func()) {
			idx := 0
			var cur *Cursor[T]
			next := func() (T, bool) {
				for idx < len(all) {
					if cur == nil {
						cur = all[idx].Cursor()
					}
					if v, ok := cur.Next(); ok {
						return v, true
					}
					cur = nil
					idx++
				}
				var zero T
				return zero, false
			}
			stop := func() {
				if cur != nil {
					cur.Close()
				}
			}
			return next, stop
		},
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Evaluation
// ─────────────────────────────────────────────────────────────────────────────

// Materialize evaluates s completely and returns its values as a new slice.
// Returns [ErrNonTerminating] for an unbounded sequence; bound it with Take
// first.
func (s Seq[T]) Materialize() ([]T, error) {
	if s.kind == Unbounded {
		return nil, ErrNonTerminating
	}
	if s.sliced {
		out := make([]T, len(s.items))
		copy(out, s.items)
		return out, nil
	}
	out := make([]T, 0, max(s.length, 0))
	for v := range s.All() {
		out = append(out, v)
	}
	return out, nil
}

// Head returns the first value of s together with a presence flag.
// It evaluates a single value, so it is safe on unbounded sequences.
func (s Seq[T]) Head() (T, bool) {
	c := s.Cursor()
	defer c.Close()
	return c.Next()
}
