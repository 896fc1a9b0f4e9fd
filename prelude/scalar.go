package prelude

import (
	"golang.org/x/exp/constraints"

	"github.com/hasbyte1/go-prelude/fn"
)

// Number is the set of types the arithmetic helpers accept.
type Number interface {
	constraints.Integer | constraints.Float
}

// ─────────────────────────────────────────────────────────────────────────────
// Arithmetic
//
// These are the plain two-argument callables that Foldl, Map and friends
// consume, e.g. prelude.Foldl(prelude.Add[int], 0, xs). Divide and Modulus
// panic on an integer zero divisor like the operators they wrap.
// ─────────────────────────────────────────────────────────────────────────────

func Add[T Number](a, b T) T      { return a + b }
func Subtract[T Number](a, b T) T { return a - b }
func Multiply[T Number](a, b T) T { return a * b }
func Divide[T Number](a, b T) T   { return a / b }

func Modulus[T constraints.Integer](a, b T) T { return a % b }

// ─────────────────────────────────────────────────────────────────────────────
// Comparison
// ─────────────────────────────────────────────────────────────────────────────

func Gt[T constraints.Ordered](a, b T) bool  { return a > b }
func Lt[T constraints.Ordered](a, b T) bool  { return a < b }
func Gte[T constraints.Ordered](a, b T) bool { return a >= b }
func Lte[T constraints.Ordered](a, b T) bool { return a <= b }

func Equals[T comparable](a, b T) bool { return a == b }

// Not negates the truthiness of v: false, nil and zero values give true.
func Not(v any) bool { return !fn.Truthy(v) }

func Even[T constraints.Integer](n T) bool { return n%2 == 0 }
func Odd[T constraints.Integer](n T) bool  { return n%2 != 0 }
