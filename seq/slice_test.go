package seq_test

import (
	"errors"
	"testing"

	"github.com/hasbyte1/go-prelude/seq"
)

// ─── Take / Drop on infinite sequences ────────────────────────────────────────

func TestTakeAfterDropOnInfiniteSequence(t *testing.T) {
	got := collect(t, mustTake(t, mustDrop(t, naturals(), 7), 5))
	assertSlice(t, got, []int{8, 9, 10, 11, 12})
}

func TestTakeFromEndOfUnboundedFails(t *testing.T) {
	_, err := naturals().Take(-1)
	if !errors.Is(err, seq.ErrUnsupportedOperation) {
		t.Fatalf("Take(-1) err = %v; want ErrUnsupportedOperation", err)
	}
}

func TestDropFromEndOfUnboundedFails(t *testing.T) {
	_, err := seq.Repeat(0).Drop(-2)
	if !errors.Is(err, seq.ErrUnsupportedOperation) {
		t.Fatalf("Drop(-2) err = %v; want ErrUnsupportedOperation", err)
	}
}

func TestTakeBoundsUnbounded(t *testing.T) {
	s := mustTake(t, naturals(), 3)
	if !s.IsBounded() {
		t.Fatal("Take(n >= 0) should produce a bounded sequence")
	}
	if n, ok := s.Len(); ok {
		t.Fatalf("Len of a prefix of an unbounded sequence should be unknown, got %d", n)
	}
}

func TestMaterializeUnboundedFails(t *testing.T) {
	if _, err := naturals().Materialize(); !errors.Is(err, seq.ErrNonTerminating) {
		t.Fatalf("Materialize err = %v; want ErrNonTerminating", err)
	}
}

// ─── Take / Drop on bounded sequences ─────────────────────────────────────────

func TestTakeBounded(t *testing.T) {
	s := seq.Of(1, 2, 3, 4, 5)
	assertSlice(t, collect(t, mustTake(t, s, 2)), []int{1, 2})
	assertSlice(t, collect(t, mustTake(t, s, 99)), []int{1, 2, 3, 4, 5})
	assertSlice(t, collect(t, mustTake(t, s, -2)), []int{4, 5})
	assertSlice(t, collect(t, mustTake(t, s, -99)), []int{1, 2, 3, 4, 5})
	assertSlice(t, collect(t, mustTake(t, s, 0)), []int{})
}

func TestDropBounded(t *testing.T) {
	s := seq.Of(1, 2, 3, 4, 5)
	assertSlice(t, collect(t, mustDrop(t, s, 2)), []int{3, 4, 5})
	assertSlice(t, collect(t, mustDrop(t, s, 99)), []int{})
	assertSlice(t, collect(t, mustDrop(t, s, -2)), []int{1, 2, 3})
	assertSlice(t, collect(t, mustDrop(t, s, -99)), []int{})
}

func TestTakeDropFromEndOfLazyBounded(t *testing.T) {
	lazy := mustTake(t, naturals(), 6) // 1..6, length unknown
	assertSlice(t, collect(t, mustTake(t, lazy, -2)), []int{5, 6})
	assertSlice(t, collect(t, mustDrop(t, lazy, -2)), []int{1, 2, 3, 4})
	assertSlice(t, collect(t, mustDrop(t, lazy, -10)), []int{})
	assertSlice(t, collect(t, mustTake(t, lazy, -10)), []int{1, 2, 3, 4, 5, 6})
}

func TestTakeDropComplement(t *testing.T) {
	sources := map[string]seq.Seq[int]{
		"slice": seq.Of(3, 1, 4, 1, 5, 9, 2, 6),
		"lazy":  seq.Times(func() int { return 7 }, 8),
		"range": seq.Range(10, 18),
	}
	for name, s := range sources {
		t.Run(name, func(t *testing.T) {
			want := collect(t, s)
			for n := 0; n <= len(want); n++ {
				head := mustTake(t, s, n)
				tail := mustDrop(t, s, n)
				assertSlice(t, collect(t, head.Concat(tail)), want)
			}
		})
	}
}

func TestTakeLenKnown(t *testing.T) {
	if n, ok := mustTake(t, seq.Range(0, 10), 3).Len(); !ok || n != 3 {
		t.Fatalf("Len = %d, %v; want 3, true", n, ok)
	}
	if n, ok := mustDrop(t, seq.Range(0, 10), 12).Len(); !ok || n != 0 {
		t.Fatalf("Len = %d, %v; want 0, true", n, ok)
	}
}

// ─── Predicate forms ──────────────────────────────────────────────────────────

func TestTakeWhileOnInfinite(t *testing.T) {
	got := collect(t, mustTake(t, naturals().TakeWhile(func(n int) bool { return n < 4 }), 100))
	assertSlice(t, got, []int{1, 2, 3})
}

func TestTakeUntil(t *testing.T) {
	got := collect(t, seq.Of(1, 2, 3, 4).TakeUntil(func(n int) bool { return n == 3 }))
	assertSlice(t, got, []int{1, 2})
}

func TestDropWhileOnInfinite(t *testing.T) {
	s := naturals().DropWhile(func(n int) bool { return n < 10 })
	if s.Kind() != seq.Unbounded {
		t.Fatal("DropWhile should keep the kind")
	}
	assertSlice(t, collect(t, mustTake(t, s, 3)), []int{10, 11, 12})
}

func TestDropUntil(t *testing.T) {
	got := collect(t, seq.Of(5, 6, 7, 8).DropUntil(func(n int) bool { return n == 7 }))
	assertSlice(t, got, []int{7, 8})
}

func TestDropWhileOnlyDropsPrefix(t *testing.T) {
	got := collect(t, seq.Of(1, 1, 2, 1).DropWhile(func(n int) bool { return n == 1 }))
	assertSlice(t, got, []int{2, 1})
}

// ─── Filter / Concat ──────────────────────────────────────────────────────────

func TestFilterInfinite(t *testing.T) {
	evens := naturals().Filter(func(n int) bool { return n%2 == 0 })
	assertSlice(t, collect(t, mustTake(t, evens, 3)), []int{2, 4, 6})
}

func TestReject(t *testing.T) {
	got := collect(t, seq.Of(1, 2, 3, 4).Reject(func(n int) bool { return n%2 == 0 }))
	assertSlice(t, got, []int{1, 3})
}

func TestConcatKind(t *testing.T) {
	s := seq.Of(1, 2).Concat(naturals())
	if s.Kind() != seq.Unbounded {
		t.Fatal("Concat with an unbounded part should be unbounded")
	}
	assertSlice(t, collect(t, mustTake(t, s, 4)), []int{1, 2, 1, 2})

	b := seq.Of(1).Concat(seq.Range(5, 7), seq.Empty[int]())
	if n, ok := b.Len(); !ok || n != 3 {
		t.Fatalf("Len = %d, %v; want 3, true", n, ok)
	}
	assertSlice(t, collect(t, b), []int{1, 5, 6})
}

func TestHead(t *testing.T) {
	v, ok := naturals().Head()
	if !ok || v != 1 {
		t.Fatalf("Head = %v, %v; want 1, true", v, ok)
	}
}
