package algebra

// Identity holds exactly one value.
type Identity struct {
	value any
}

// NewIdentity wraps v without inspecting it.
func NewIdentity(v any) Identity { return Identity{value: v} }

// Value returns the held value.
func (w Identity) Value() any { return w.value }

// Variant reports which variant the Identity is.
func (w Identity) Variant() Variant { return VariantIdentity }

// Export returns the held value as a plain Go value.
func (w Identity) Export() any { return w.value }

// Values returns the held values in iteration order.
func (w Identity) Values() []any { return []any{w.value} }

// Null is always false.
func (w Identity) Null() bool { return false }

// Len is always 1.
func (w Identity) Len() int { return 1 }

// Elem reports whether x equals the held value.
func (w Identity) Elem(x any) bool { return equalValues(w.value, x) }

// Map returns Identity(f(v)).
func (w Identity) Map(f MapFunc) Wrapper { return Identity{value: f(w.value)} }

// Apply calls the held function on every value of other.
func (w Identity) Apply(other Wrapper) (Wrapper, error) {
	call, err := callable(w.value)
	if err != nil {
		return nil, err
	}
	return mapErr(other, call)
}

// Bind returns the resolved result of f(v).
func (w Identity) Bind(f MapFunc) Wrapper { return Resolve(f(w.value)) }

// Foldl folds the values from the left, starting with init.
func (w Identity) Foldl(f FoldFunc, init any) any { return f(init, w.value) }

// Foldr folds the values from the right, starting with init.
func (w Identity) Foldr(f FoldFunc, init any) any { return f(w.value, init) }

// Maximum returns the largest value.
func (w Identity) Maximum() (any, error) { return w.value, nil }

// Minimum returns the smallest value.
func (w Identity) Minimum() (any, error) { return w.value, nil }

// Sum adds the values.
func (w Identity) Sum() (any, error) { return sum(w.Values()) }

// Product multiplies the values.
func (w Identity) Product() (any, error) { return product(w.Values()) }

// Append treats the identity as a one-element list, so two identities
// combine into a two-element List.
func (w Identity) Append(other Wrapper) Wrapper {
	if other.Variant() == VariantEmpty {
		return w
	}
	return List{items: []any{w.value}}.Append(other)
}

// Concat resolves the held value.
func (w Identity) Concat() Wrapper { return Resolve(w.value) }
