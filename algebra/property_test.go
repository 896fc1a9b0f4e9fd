package algebra_test

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/hasbyte1/go-prelude/algebra"
)

const propertyN = 500

func randInt(rng *rand.Rand) int {
	return rng.IntN(2001) - 1000
}

// randLetters returns a random lower-case ASCII string of length [0, 6].
func randLetters(rng *rand.Rand) string {
	b := make([]byte, rng.IntN(7))
	for i := range b {
		b[i] = byte('a' + rng.IntN(26))
	}
	return string(b)
}

// randWrapper returns a random wrapper of any variant. Lists and dicts hold
// ints; text holds lower-case letters.
func randWrapper(rng *rand.Rand) algebra.Wrapper {
	switch rng.IntN(5) {
	case 0:
		return algebra.NewIdentity(randInt(rng))
	case 1:
		return algebra.Empty{}
	case 2:
		items := make([]any, rng.IntN(6))
		for i := range items {
			items[i] = randInt(rng)
		}
		return algebra.NewList(items...)
	case 3:
		d := algebra.NewDict()
		for range rng.IntN(5) {
			d = d.Set(randLetters(rng), randInt(rng))
		}
		return d
	}
	return algebra.NewText(randLetters(rng))
}

// f and g keep ints as ints and single characters as single characters, so
// they compose on every variant.
func f(x any) any {
	if s, ok := x.(string); ok {
		return strings.ToUpper(s)
	}
	return x.(int)*2 + 1
}

func g(x any) any {
	if s, ok := x.(string); ok {
		return string(s[0] + 1)
	}
	return x.(int) - 7
}

func id(x any) any { return x }

// TestPropertyFunctorIdentity: w.Map(id) ≡ w
func TestPropertyFunctorIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		w := randWrapper(rng)
		if got := w.Map(id); !algebra.Equal(got, w) {
			t.Fatalf("functor identity: %v != %v", got.Export(), w.Export())
		}
	}
}

// TestPropertyFunctorComposition: w.Map(f).Map(g) ≡ w.Map(g ∘ f)
func TestPropertyFunctorComposition(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		w := randWrapper(rng)
		left := w.Map(f).Map(g)
		right := w.Map(func(x any) any { return g(f(x)) })
		if !algebra.Equal(left, right) {
			t.Fatalf("functor composition: %v != %v (w=%v)", left.Export(), right.Export(), w.Export())
		}
	}
}

// TestPropertyMonadLeftIdentity: Pure(a).Bind(k) ≡ Resolve(k(a))
func TestPropertyMonadLeftIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	ks := []algebra.MapFunc{
		func(x any) any { return x.(int) * 3 },
		func(x any) any { return []any{x, x.(int) + 1} },
		func(x any) any { return map[string]any{"v": x} },
		func(any) any { return nil },
	}
	for range propertyN {
		a := randInt(rng)
		k := ks[rng.IntN(len(ks))]
		left := algebra.Pure(a).Bind(k)
		right := algebra.Resolve(k(a))
		if !algebra.Equal(left, right) {
			t.Fatalf("left identity: %v != %v (a=%d)", left.Export(), right.Export(), a)
		}
	}
}

// TestPropertyMonadRightIdentity: w.Bind(w.Variant().Unit) ≡ w
func TestPropertyMonadRightIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		w := randWrapper(rng)
		if got := w.Bind(func(x any) any { return w.Variant().Unit(x) }); !algebra.Equal(got, w) {
			t.Fatalf("right identity: %v != %v", got.Export(), w.Export())
		}
		if w.Variant() == algebra.VariantText {
			continue
		}
		if got := w.Bind(func(x any) any { return algebra.Pure(x) }); !algebra.Equal(got, w) {
			t.Fatalf("right identity with Pure: %v != %v", got.Export(), w.Export())
		}
	}
}

// TestPropertyListBindAssociativity:
// w.Bind(k).Bind(h) ≡ w.Bind(x => Resolve(k(x)).Bind(h))
func TestPropertyListBindAssociativity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	k := func(x any) any { return []any{x, x.(int) * 10} }
	h := func(x any) any {
		if x.(int)%2 == 0 {
			return nil
		}
		return []any{x, x}
	}
	for range propertyN {
		items := make([]any, rng.IntN(6))
		for i := range items {
			items[i] = randInt(rng)
		}
		w := algebra.NewList(items...)
		left := w.Bind(k).Bind(h)
		right := w.Bind(func(x any) any { return algebra.Resolve(k(x)).Bind(h) })
		if !algebra.Equal(left, right) {
			t.Fatalf("associativity: %v != %v", left.Export(), right.Export())
		}
	}
}

// TestPropertyAppendEmptyIdentity: Empty ++ w ≡ w ≡ w ++ Empty
func TestPropertyAppendEmptyIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		w := randWrapper(rng)
		if got := (algebra.Empty{}).Append(w); !algebra.Equal(got, w) {
			t.Fatalf("left identity: %v != %v", got.Export(), w.Export())
		}
		if got := w.Append(algebra.Empty{}); !algebra.Equal(got, w) {
			t.Fatalf("right identity: %v != %v", got.Export(), w.Export())
		}
	}
}

// TestPropertyAppendAssociativity: (a ++ b) ++ c ≡ a ++ (b ++ c) for wrappers
// of one family.
func TestPropertyAppendAssociativity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	same := func(v algebra.Variant) algebra.Wrapper {
		for {
			if w := randWrapper(rng); w.Variant() == v {
				return w
			}
		}
	}
	families := []algebra.Variant{algebra.VariantList, algebra.VariantDict, algebra.VariantText}
	for range propertyN {
		v := families[rng.IntN(len(families))]
		a, b, c := same(v), same(v), same(v)
		left := a.Append(b).Append(c)
		right := a.Append(b.Append(c))
		if !algebra.Equal(left, right) {
			t.Fatalf("associativity (%s): %v != %v", v, left.Export(), right.Export())
		}
	}
}

// TestPropertyFoldsAgreeOnSum: Foldl(+) ≡ Foldr(+) ≡ Sum for int lists.
func TestPropertyFoldsAgreeOnSum(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	plus := func(a, b any) any { return a.(int) + b.(int) }
	for range propertyN {
		items := make([]any, rng.IntN(8))
		for i := range items {
			items[i] = randInt(rng)
		}
		w := algebra.NewList(items...)
		s, err := w.Sum()
		if err != nil {
			t.Fatal(err)
		}
		if l, r := w.Foldl(plus, 0), w.Foldr(plus, 0); l != s || r != s {
			t.Fatalf("folds disagree: foldl=%v foldr=%v sum=%v", l, r, s)
		}
	}
}
