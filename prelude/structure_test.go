package prelude_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-prelude/algebra"
	"github.com/hasbyte1/go-prelude/prelude"
	"github.com/hasbyte1/go-prelude/seq"
)

func TestAppend(t *testing.T) {
	assertDiff(t, []any{1, 2, 3}, prelude.Append([]int{1}, []int{2, 3}))
	assertDiff(t, "abcd", prelude.Append("ab", "cd"))
	assertDiff(t, map[string]any{"a": 9, "b": 2}, prelude.Append(map[string]int{"a": 1, "b": 2}, map[string]int{"a": 9}))
	assertDiff(t, []any{1}, prelude.Append(nil, []int{1}))

	// two single values make a two-element list
	got := prelude.Append(algebra.NewIdentity(1), algebra.NewIdentity(2))
	assert.Equal(t, algebra.NewList(1, 2), got)

	lazy := prelude.Append(seq.Of[any](1), []int{2}, "x")
	assertDiff(t, []any{1, 2, "x"}, materialize(t, lazy))
}

func TestConcat(t *testing.T) {
	assertDiff(t, []any{1, 2, 3}, prelude.Concat([][]int{{1, 2}, {3}}))
	assertDiff(t, "abcd", prelude.Concat([]string{"ab", "cd"}))
	assertDiff(t, []any{}, prelude.Concat([]any{}))

	flat := prelude.Concat(seq.Of[any]([]int{1}, nil, []int{2, 3}))
	assertDiff(t, []any{1, 2, 3}, materialize(t, flat))
}

func TestConsUncons(t *testing.T) {
	assertDiff(t, []any{0, 1, 2}, prelude.Cons(0, []int{1, 2}))
	assertDiff(t, "xyz", prelude.Cons("x", "yz"))
	assertDiff(t, []any{1}, prelude.Cons(1, nil))
	assertDiff(t, []any{0, 1, 2}, materialize(t, prelude.Cons(0, seq.Of[any](1, 2))))

	head, tail, err := prelude.Uncons([]int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, algebra.NewIdentity(1), head)
	assertDiff(t, []any{2, 3}, tail)

	head, tail, err = prelude.Uncons([]int{})
	require.NoError(t, err)
	assert.Equal(t, algebra.VariantEmpty, head.Variant())
	assertDiff(t, []any{}, tail)
}

func TestKeysValues(t *testing.T) {
	m := map[string]int{"b": 2, "a": 1}
	assertDiff(t, []any{"a", "b"}, prelude.Keys(m))
	assertDiff(t, []any{1, 2}, prelude.Values(m))
	assertDiff(t, []any{0, 1}, prelude.Keys([]string{"x", "y"}))
	assertDiff(t, []any{"h", "i"}, prelude.Values("hi"))

	keys := prelude.Keys(seq.Of[any]("x", "y", "z"))
	assertDiff(t, []any{0, 1, 2}, materialize(t, keys))
}

func TestPairsRoundTrip(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2}
	pairs := prelude.Pairs(m)
	assertDiff(t, []any{[]any{"a", 1}, []any{"b", 2}}, pairs)

	back := need(t)(prelude.FromPairs(pairs))
	assertDiff(t, map[string]any{"a": 1, "b": 2}, back)

	assertDiff(t, []any{[]any{0, "x"}}, prelude.Pairs([]string{"x"}))
}

func TestFromPairs(t *testing.T) {
	got := need(t)(prelude.FromPairs([]any{
		seq.Pair[any, any]{First: 1, Second: "one"},
		[]any{2, "two"},
		[]any{1, "uno"},
	}))
	assertDiff(t, map[any]any{1: "uno", 2: "two"}, got)

	d := need(t)(prelude.FromPairs(algebra.NewList([]any{"k", "v"})))
	assert.Equal(t, algebra.VariantDict, d.(algebra.Wrapper).Variant())

	_, err := prelude.FromPairs([]any{[]any{1}})
	assert.ErrorIs(t, err, prelude.ErrInvalidPairs)

	_, err = prelude.FromPairs([]any{[]any{[]int{1}, 2}})
	assert.ErrorIs(t, err, prelude.ErrInvalidPairs)
}

type tagged struct{ Tag any }

func TestFromPairsKeyHoldingSlice(t *testing.T) {
	_, err := prelude.FromPairs([]any{[]any{tagged{Tag: []int{1}}, "v"}})
	assert.ErrorIs(t, err, prelude.ErrInvalidPairs)

	_, err = prelude.FromPairs([]any{seq.Pair[any, any]{First: tagged{Tag: map[string]int{}}, Second: "v"}})
	assert.ErrorIs(t, err, prelude.ErrInvalidPairs)

	got := need(t)(prelude.FromPairs([]any{[]any{tagged{Tag: 1}, "v"}}))
	assertDiff(t, map[any]any{tagged{Tag: 1}: "v"}, got)
}

func TestZip(t *testing.T) {
	got := need(t)(prelude.Zip([]int{1, 2, 3}, []string{"a", "b"}))
	assertDiff(t, []any{[]any{1, "a"}, []any{2, "b"}}, got)

	assertDiff(t, []any{}, need(t)(prelude.Zip()))

	lazy := need(t)(prelude.Zip(naturals(), []string{"a", "b"}))
	assertDiff(t, []any{[]any{1, "a"}, []any{2, "b"}}, materialize(t, lazy))

	_, err := prelude.Zip(naturals(), prelude.Repeat(0))
	assert.ErrorIs(t, err, seq.ErrUnsupportedOperation)
}

func TestUnzip(t *testing.T) {
	got := need(t)(prelude.Unzip([]any{[]any{1, "a"}, []any{2, "b", "extra"}}))
	assertDiff(t, []any{[]any{1, 2}, []any{"a", "b"}}, got)

	assertDiff(t, []any{}, need(t)(prelude.Unzip([]any{})))

	_, err := prelude.Unzip([]any{1})
	assert.ErrorIs(t, err, prelude.ErrInvalidPairs)
}

func TestZipUnzipInverse(t *testing.T) {
	a, b := []any{1, 2, 3}, []any{"x", "y", "z"}
	rows := need(t)(prelude.Zip(a, b))
	assertDiff(t, []any{a, b}, need(t)(prelude.Unzip(rows)))
}

func TestChunk(t *testing.T) {
	assertDiff(t, []any{[]any{1, 2}, []any{3}}, need(t)(prelude.Chunk(2, []int{1, 2, 3})))
	assertDiff(t, []any{"ab", "cd", "e"}, need(t)(prelude.Chunk(2, "abcde")))

	_, err := prelude.Chunk(0, []int{1})
	assert.ErrorIs(t, err, seq.ErrInvalidChunkSize)
	_, err = prelude.Chunk(0, naturals())
	assert.ErrorIs(t, err, seq.ErrInvalidChunkSize)
	_, err = prelude.Chunk("big", []int{1})
	assert.ErrorIs(t, err, prelude.ErrInvalidSize)

	chunks := need(t)(prelude.Chunk(3, naturals()))
	first, err := prelude.Head(chunks)
	require.NoError(t, err)
	assertDiff(t, []any{1, 2, 3}, first.Export())
}

func TestNub(t *testing.T) {
	assertDiff(t, []any{3, 1, 2}, prelude.Nub([]int{3, 1, 3, 2, 1}))
	assertDiff(t, "abc", prelude.Nub("abcabc"))
	assertDiff(t, map[string]any{"a": 1, "c": 2}, prelude.Nub(map[string]int{"a": 1, "b": 1, "c": 2}))

	// values that cannot be map keys are still deduplicated
	got := prelude.Nub([]any{[]int{1}, []int{1}, []int{2}})
	assertDiff(t, []any{[]int{1}, []int{2}}, got)

	// equal numbers of different types stay distinct
	assertDiff(t, []any{1, int64(1)}, prelude.Nub([]any{1, int64(1), 1}))

	c, err := prelude.Cycle([]int{1, 2})
	require.NoError(t, err)
	head := need(t)(prelude.Take(2, prelude.Nub(c)))
	assertDiff(t, []any{1, 2}, materialize(t, head))
}

func TestPluck(t *testing.T) {
	users := []map[string]any{
		{"name": "ada", "langs": []string{"analytical"}},
		{"name": "alan", "langs": []string{"turing", "ace"}},
		{"id": 3},
	}
	assertDiff(t, []any{"ada", "alan", nil}, prelude.Pluck("name", users))
	assertDiff(t, []any{nil, "ace", nil}, prelude.Pluck("langs.1", users))
	assertDiff(t, []any{1, 3}, prelude.Pluck(0, [][]int{{1, 2}, {3}}))

	lazy := prelude.Pluck("name", seq.Of[any](map[string]any{"name": "x"}))
	assertDiff(t, []any{"x"}, materialize(t, lazy))
}
