package fn_test

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-prelude/fn"
)

func add(a, b int) int { return a + b }

func TestInvoke(t *testing.T) {
	v, err := fn.Invoke(add, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	v, err = fn.Invoke(strings.ToUpper, "go")
	require.NoError(t, err)
	assert.Equal(t, "GO", v)

	// numeric arguments are converted to the parameter type
	v, err = fn.Invoke(func(f float64) float64 { return f / 2 }, 3)
	require.NoError(t, err)
	assert.Equal(t, 1.5, v)
}

func TestInvokeErrors(t *testing.T) {
	_, err := fn.Invoke(add, 1)
	assert.ErrorIs(t, err, fn.ErrArity)

	_, err = fn.Invoke(42, 1)
	assert.ErrorIs(t, err, fn.ErrNotFunc)

	_, err = fn.Invoke(strings.ToUpper, 7)
	assert.ErrorIs(t, err, fn.ErrArgType)

	boom := errors.New("boom")
	_, err = fn.Invoke(func(int) (int, error) { return 0, boom }, 1)
	assert.ErrorIs(t, err, boom)

	_, err = fn.Invoke(func() error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestInvokeDropsExtraArguments(t *testing.T) {
	v, err := fn.Invoke(strconv.Itoa, 7, "ignored")
	require.NoError(t, err)
	assert.Equal(t, "7", v)
}

func TestInvokeVariadic(t *testing.T) {
	sum := func(base int, rest ...int) int {
		for _, r := range rest {
			base += r
		}
		return base
	}
	v, err := fn.Invoke(sum, 1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 6, v)
}

func TestArity(t *testing.T) {
	n, err := fn.Arity(add)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = fn.Arity(func(string, ...int) {})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = fn.Arity("nope")
	assert.ErrorIs(t, err, fn.ErrNotFunc)
}

func TestComposeAndPipe(t *testing.T) {
	double := func(x any) any { return x.(int) * 2 }
	succ := func(x any) any { return x.(int) + 1 }
	assert.Equal(t, 7, fn.Compose(succ, double)(3))
	assert.Equal(t, 8, fn.Pipe(succ, double)(3))
	assert.Equal(t, 3, fn.Compose()(3))
}

func TestFlip(t *testing.T) {
	sub := func(a, b int) int { return a - b }
	v, err := fn.Flip(sub)(1, 10)
	require.NoError(t, err)
	assert.Equal(t, 9, v)
	assert.Equal(t, 9, fn.Flip2(sub)(1, 10))
}

func TestPartial(t *testing.T) {
	join := func(a, b, c string) string { return a + b + c }
	v, err := fn.Partial(join, "a")("b", "c")
	require.NoError(t, err)
	assert.Equal(t, "abc", v)

	v, err = fn.PartialEnd(join, "c")("a", "b")
	require.NoError(t, err)
	assert.Equal(t, "abc", v)
}

func TestSplatUnsplat(t *testing.T) {
	v, err := fn.Splat(add)([]any{4, 5})
	require.NoError(t, err)
	assert.Equal(t, 9, v)

	count := fn.Unsplat(func(args []any) int { return len(args) })
	assert.Equal(t, 3, count(1, "x", nil))
}

func TestNthArg(t *testing.T) {
	v, _ := fn.NthArg(1, "none")("a", "b")
	assert.Equal(t, "b", v)
	v, _ = fn.NthArg(5, "none")("a", "b")
	assert.Equal(t, "none", v)

	v, _ = fn.NthArgs(2, 0, 9)("a", "b", "c")
	assert.Equal(t, []any{"a", "c"}, v)
}

func TestSetArity(t *testing.T) {
	v, err := fn.SetArity(fn.Unsplat(func(args []any) int { return len(args) }), 2)(1, 2, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestCurry(t *testing.T) {
	sum3 := func(a, b, c int) int { return a + b + c }
	curried, err := fn.Curry(sum3, -1)
	require.NoError(t, err)

	step, err := curried(1)
	require.NoError(t, err)
	next, ok := step.(fn.Func)
	require.True(t, ok, "partial call should return a Func, got %T", step)

	step, err = next(2)
	require.NoError(t, err)
	v, err := step.(fn.Func)(3)
	require.NoError(t, err)
	assert.Equal(t, 6, v)

	v, err = curried(1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 6, v)
}

func TestCurryExplicitCount(t *testing.T) {
	concat := fn.Unsplat(func(args []any) string {
		var b strings.Builder
		for _, a := range args {
			b.WriteString(a.(string))
		}
		return b.String()
	})
	curried, err := fn.Curry(concat, 2)
	require.NoError(t, err)
	step, _ := curried("x")
	v, err := step.(fn.Func)("y")
	require.NoError(t, err)
	assert.Equal(t, "xy", v)
}

func TestMemoize(t *testing.T) {
	calls := 0
	square := fn.Memoize(func(n int) int { calls++; return n * n })
	for range 3 {
		v, err := square(4)
		require.NoError(t, err)
		assert.Equal(t, 16, v)
	}
	v, _ := square(5)
	assert.Equal(t, 25, v)
	assert.Equal(t, 2, calls)
}

func TestMemoizeKeysByType(t *testing.T) {
	calls := 0
	id := fn.Memoize(func(x any) any { calls++; return x })
	_, _ = id(1)
	_, _ = id("1")
	_, _ = id(int64(1))
	assert.Equal(t, 3, calls)
}

func TestOnce(t *testing.T) {
	calls := 0
	setup := fn.Once(func() string { calls++; return "ready" }, "skipped")
	first, _ := setup()
	second, _ := setup()
	assert.Equal(t, "ready", first)
	assert.Equal(t, "skipped", second)
	assert.Equal(t, 1, calls)
}

func TestUnaryAndPredicate(t *testing.T) {
	upper, err := fn.Unary(strings.ToUpper)
	require.NoError(t, err)
	assert.Equal(t, "AB", upper("ab"))

	_, err = fn.Unary(add)
	assert.ErrorIs(t, err, fn.ErrArity)

	even, err := fn.Predicate(func(n int) bool { return n%2 == 0 })
	require.NoError(t, err)
	assert.True(t, even(4))
	assert.False(t, even(3))

	nonEmpty, err := fn.Predicate(strings.TrimSpace)
	require.NoError(t, err)
	assert.True(t, nonEmpty(" x "))
	assert.False(t, nonEmpty("  "))

	assert.Panics(t, func() { upper(3) })
}

func TestBinary(t *testing.T) {
	b, err := fn.Binary(add)
	require.NoError(t, err)
	assert.Equal(t, 7, b(3, 4))
}

func TestConstantAndId(t *testing.T) {
	assert.Equal(t, "k", fn.Constant("k")(1, 2, 3))
	assert.Equal(t, 9, fn.Id(9))
	fn.Noop(1, 2)
}
