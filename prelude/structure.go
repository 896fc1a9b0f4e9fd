package prelude

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/hasbyte1/go-prelude/algebra"
	"github.com/hasbyte1/go-prelude/seq"
)

// ─────────────────────────────────────────────────────────────────────────────
// Combining
// ─────────────────────────────────────────────────────────────────────────────

// Append combines x with each of more using the monoid of x: lists are
// extended, text is joined and maps are merged with later keys winning.
// A sequence x is extended lazily with the values of more.
//
//	prelude.Append([]int{1}, []int{2, 3}) // [1 2 3]
//	prelude.Append("ab", "cd")            // "abcd"
func Append(x any, more ...any) any {
	if s, ok := asSeq(x); ok {
		parts := make([]seq.Seq[any], len(more))
		for i, o := range more {
			parts[i] = toSeq(o)
		}
		return s.Concat(parts...)
	}
	w, m := lift(x)
	for _, o := range more {
		w = w.Append(algebra.Resolve(o))
	}
	return m.out(w)
}

// Concat flattens a collection of collections with their own monoid:
//
//	prelude.Concat([][]int{{1, 2}, {3}}) // [1 2 3]
//	prelude.Concat([]string{"ab", "cd"}) // "abcd"
//
// A sequence of collections is flattened lazily into their values.
func Concat(x any) any {
	if s, ok := asSeq(x); ok {
		return seq.FromIter(func(yield func(any) bool) {
			for v := range s.All() {
				for item := range spliced(v) {
					if !yield(item) {
						return
					}
				}
			}
		}, s.Kind())
	}
	w, m := lift(x)
	return m.out(w.Concat())
}

// Cons puts v in front of x. Text gets the string form of v prepended; an
// Identity or a Dict becomes a List.
func Cons(v, x any) any {
	if s, ok := asSeq(x); ok {
		return seq.Of(v).Concat(s)
	}
	w, m := lift(x)
	if w.Null() && w.Variant() != algebra.VariantText {
		return m.out(algebra.NewList(v))
	}
	return m.out(w.Variant().Unit(v).Append(w))
}

// Uncons splits x into its first value and the rest. The head follows the
// [Head] convention.
func Uncons(x any) (algebra.Wrapper, any, error) {
	head, err := Head(x)
	if err != nil {
		return nil, nil, err
	}
	tail, err := Tail(x)
	if err != nil {
		return nil, nil, err
	}
	return head, tail, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Keys and values
// ─────────────────────────────────────────────────────────────────────────────

// Keys returns the keys of a map, or the positions of any other collection.
func Keys(x any) any {
	if s, ok := asSeq(x); ok {
		return seq.Map(seq.Enumerate(s), func(p seq.Pair[int, any]) any { return p.First })
	}
	w, m := lift(x)
	return m.out(algebra.NewList(keysOf(w)...))
}

// Values returns the values of x as a list, in iteration order.
func Values(x any) any {
	if s, ok := asSeq(x); ok {
		return s
	}
	w, m := lift(x)
	return m.out(algebra.NewList(w.Values()...))
}

func keysOf(w algebra.Wrapper) []any {
	if d, ok := w.(algebra.Dict); ok {
		return d.Keys()
	}
	keys := make([]any, w.Len())
	for i := range keys {
		keys[i] = i
	}
	return keys
}

// Pairs returns the [key, value] pairs of x. Positional collections are
// keyed by index.
//
//	prelude.Pairs(map[string]int{"a": 1, "b": 2}) // [[a 1] [b 2]]
func Pairs(x any) any {
	if s, ok := asSeq(x); ok {
		return seq.Map(seq.Enumerate(s), func(p seq.Pair[int, any]) any { return []any{p.First, p.Second} })
	}
	w, m := lift(x)
	keys, values := keysOf(w), w.Values()
	rows := make([]algebra.Wrapper, len(keys))
	for i := range keys {
		rows[i] = algebra.NewList(keys[i], values[i])
	}
	return nest(m, rows)
}

// FromPairs builds a map from [key, value] pairs, the inverse of [Pairs].
// Every element must hold exactly two values and a comparable key, or
// FromPairs fails with [ErrInvalidPairs]. A repeated key takes the later
// value.
func FromPairs(x any) (any, error) {
	w, m, err := collection(x)
	if err != nil {
		return nil, err
	}
	var entries []seq.Pair[any, any]
	for i, v := range w.Values() {
		pair, ok := pairOf(v)
		if !ok {
			return nil, fmt.Errorf("%w: element %d is %T", ErrInvalidPairs, i, v)
		}
		entries = append(entries, pair)
	}
	d := algebra.NewDict(entries...)
	if m == modeWrapper {
		return d, nil
	}
	return d.Export(), nil
}

func pairOf(v any) (seq.Pair[any, any], bool) {
	if p, ok := v.(seq.Pair[any, any]); ok {
		return p, algebra.Hashable(p.First)
	}
	w := algebra.Resolve(v)
	if w.Variant() != algebra.VariantList || w.Len() != 2 {
		return seq.Pair[any, any]{}, false
	}
	kv := w.Values()
	return seq.Pair[any, any]{First: kv[0], Second: kv[1]}, algebra.Hashable(kv[0])
}

// ─────────────────────────────────────────────────────────────────────────────
// Zipping and grouping
// ─────────────────────────────────────────────────────────────────────────────

// Zip combines collections position by position into rows. The result is as
// long as the shortest input. When any input is a sequence the rows are
// produced lazily, and zipping only unbounded sequences fails with
// [seq.ErrUnsupportedOperation].
//
//	prelude.Zip([]int{1, 2, 3}, []string{"a", "b"}) // [[1 a] [2 b]]
func Zip(xs ...any) (any, error) {
	lazyInput := false
	for _, x := range xs {
		if _, ok := asSeq(x); ok {
			lazyInput = true
		}
	}
	if lazyInput {
		seqs := make([]seq.Seq[any], len(xs))
		for i, x := range xs {
			seqs[i] = toSeq(x)
		}
		z, err := seq.Zip(seqs...)
		if err != nil {
			return nil, err
		}
		return seq.Map(z, func(row []any) any { return row }), nil
	}
	if len(xs) == 0 {
		return []any{}, nil
	}
	columns := make([][]any, len(xs))
	n := -1
	for i, x := range xs {
		columns[i] = algebra.Resolve(x).Values()
		if n < 0 || len(columns[i]) < n {
			n = len(columns[i])
		}
	}
	rows := make([]algebra.Wrapper, n)
	for r := range n {
		row := make([]any, len(xs))
		for c := range columns {
			row[c] = columns[c][r]
		}
		rows[r] = algebra.NewList(row...)
	}
	_, m := lift(xs[0])
	return nest(m, rows), nil
}

// Unzip turns rows back into columns, the inverse of [Zip]. Rows longer
// than the shortest one are cut to its length. A row that is not a list
// fails with [ErrInvalidPairs].
//
//	prelude.Unzip([][]any{{1, "a"}, {2, "b"}}) // [[1 2] [a b]]
func Unzip(x any) (any, error) {
	w, m, err := collection(x)
	if err != nil {
		return nil, err
	}
	var rows [][]any
	width := -1
	for i, v := range w.Values() {
		row := algebra.Resolve(v)
		if row.Variant() != algebra.VariantList {
			return nil, fmt.Errorf("%w: row %d is %T", ErrInvalidPairs, i, v)
		}
		values := row.Values()
		if width < 0 || len(values) < width {
			width = len(values)
		}
		rows = append(rows, values)
	}
	columns := make([]algebra.Wrapper, max(width, 0))
	for c := range columns {
		col := make([]any, len(rows))
		for r := range rows {
			col[r] = rows[r][c]
		}
		columns[c] = algebra.NewList(col...)
	}
	return nest(m, columns), nil
}

// Chunk splits x into consecutive groups of size values, each in the
// variant of x. The last group may be shorter.
//
//	prelude.Chunk(2, []int{1, 2, 3}) // [[1 2] [3]]
//	prelude.Chunk(2, "abcde")        // [ab cd e]
func Chunk(size, x any) (any, error) {
	n, err := sizeOf(size)
	if err != nil {
		return nil, err
	}
	if s, ok := asSeq(x); ok {
		c, err := seq.Chunk(s, n)
		if err != nil {
			return nil, err
		}
		return seq.Map(c, func(group []any) any { return group }), nil
	}
	if n <= 0 {
		return nil, seq.ErrInvalidChunkSize
	}
	w, m := lift(x)
	var groups []algebra.Wrapper
	for i := 0; i < w.Len(); i += n {
		groups = append(groups, algebra.Slice(w, i, i+n))
	}
	return nest(m, groups), nil
}

// nest returns a collection of wrappers in the caller's representation. Raw
// callers get a []any of exported values.
func nest(m mode, parts []algebra.Wrapper) any {
	if m == modeWrapper {
		items := make([]any, len(parts))
		for i, p := range parts {
			items[i] = p
		}
		return algebra.NewList(items...)
	}
	out := make([]any, len(parts))
	for i, p := range parts {
		out[i] = p.Export()
	}
	if m == modeSeq {
		return seq.FromSlice(out)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Nub
// ─────────────────────────────────────────────────────────────────────────────

// Nub removes repeated values, keeping the first occurrence of each. A map
// keeps the first key holding each value. On a sequence it works lazily and
// remembers every distinct value seen so far.
//
//	prelude.Nub([]int{3, 1, 3, 2, 1}) // [3 1 2]
func Nub(x any) any {
	if s, ok := asSeq(x); ok {
		return seq.FromIter(func(yield func(any) bool) {
			seen := newSeenSet()
			for v := range s.All() {
				if seen.add(v) && !yield(v) {
					return
				}
			}
		}, s.Kind())
	}
	w, m := lift(x)
	seen := newSeenSet()
	return m.out(selectWhere(w, seen.add))
}

// seenSet buckets values by a hash of their printed form and compares
// within a bucket, so values that are not comparable can be tracked too.
type seenSet struct {
	buckets map[uint64][]any
}

func newSeenSet() *seenSet {
	return &seenSet{buckets: make(map[uint64][]any)}
}

// add records v and reports whether it was not seen before.
func (s *seenSet) add(v any) bool {
	h := xxhash.Sum64String(canonical(v))
	for _, prev := range s.buckets[h] {
		if same(prev, v) {
			return false
		}
	}
	s.buckets[h] = append(s.buckets[h], v)
	return true
}

func canonical(v any) string {
	if w, ok := v.(algebra.Wrapper); ok {
		return w.Variant().String() + ":" + canonical(w.Export())
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%T:%#v", v, v)
	return b.String()
}

func same(a, b any) bool {
	wa, okA := a.(algebra.Wrapper)
	wb, okB := b.(algebra.Wrapper)
	if okA || okB {
		return okA && okB && algebra.Equal(wa, wb)
	}
	return reflect.DeepEqual(a, b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Pluck
// ─────────────────────────────────────────────────────────────────────────────

// Pluck looks key up in every value of x. A string key may be a dot path
// into nested values; missing keys give nil.
//
//	users := []map[string]any{{"name": "ada"}, {"name": "alan"}}
//	prelude.Pluck("name", users) // [ada alan]
func Pluck(key, x any) any {
	pick := func(v any) any {
		w := algebra.Resolve(v)
		var found any
		if path, ok := key.(string); ok {
			found, _ = algebra.Path(w, path)
		} else {
			found, _ = algebra.Get(w, key)
		}
		return found
	}
	if s, ok := asSeq(x); ok {
		return seq.Map(s, pick)
	}
	w, m := lift(x)
	return m.out(w.Map(pick))
}
