package algebra

// MapFunc transforms one contained value.
type MapFunc func(any) any

// FoldFunc combines a value with an accumulator. Foldl passes
// (accumulator, value); Foldr passes (value, accumulator).
type FoldFunc func(any, any) any

// ─────────────────────────────────────────────────────────────────────────────
// Capabilities
// ─────────────────────────────────────────────────────────────────────────────

// Functor values can be transformed element-wise without changing shape.
type Functor interface {
	Map(f MapFunc) Wrapper
	// Export returns a fresh raw container holding the values.
	Export() any
}

// Applicative values can apply contained functions to another wrapper.
type Applicative interface {
	Functor
	Apply(other Wrapper) (Wrapper, error)
}

// Monad values can sequence functions that return new containers, flattening
// one level of nesting.
type Monad interface {
	Applicative
	Bind(f MapFunc) Wrapper
}

// Foldable values can be reduced to a single value.
type Foldable interface {
	Foldl(f FoldFunc, init any) any
	Foldr(f FoldFunc, init any) any
	Null() bool
	Len() int
	Elem(x any) bool
	Maximum() (any, error)
	Minimum() (any, error)
	Sum() (any, error)
	Product() (any, error)
	// Values returns the contained values in iteration order.
	Values() []any
}

// Monoid values can be combined with an associative operation that has
// [Empty] as its identity element.
type Monoid interface {
	Append(other Wrapper) Wrapper
	Concat() Wrapper
}

// Wrapper is a value lifted into one of the five variants. Every variant
// implements the full capability set.
type Wrapper interface {
	Monad
	Foldable
	Monoid
	Variant() Variant
}

var (
	_ Wrapper = Identity{}
	_ Wrapper = Empty{}
	_ Wrapper = List{}
	_ Wrapper = Dict{}
	_ Wrapper = Text{}
)

// ─────────────────────────────────────────────────────────────────────────────
// Variant
// ─────────────────────────────────────────────────────────────────────────────

// Variant names the concrete shape of a [Wrapper].
type Variant uint8

const (
	VariantIdentity Variant = iota
	VariantEmpty
	VariantList
	VariantDict
	VariantText
)

var variantNames = [...]string{
	VariantIdentity: "identity",
	VariantEmpty:    "empty",
	VariantList:     "list",
	VariantDict:     "dict",
	VariantText:     "text",
}

// String returns the lower-case variant name.
func (v Variant) String() string {
	if int(v) < len(variantNames) {
		return variantNames[v]
	}
	return "unknown"
}

// Unit is the associated constructor of the variant: it lifts a bare value
// into the smallest wrapper of that family. A Dict has no key to store a bare
// value under, and an Empty holds nothing, so both lift into Identity.
func (v Variant) Unit(x any) Wrapper {
	switch v {
	case VariantList:
		return List{items: []any{x}}
	case VariantText:
		return Text{s: stringify(x)}
	default:
		return Identity{value: x}
	}
}
