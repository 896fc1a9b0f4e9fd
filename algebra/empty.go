package algebra

// Empty is the absence of a value and the identity element of Append.
type Empty struct{}

// Variant reports which variant Empty is.
func (Empty) Variant() Variant { return VariantEmpty }

// Export returns nil.
func (Empty) Export() any { return nil }

// Values returns nil.
func (Empty) Values() []any { return nil }

// Null is always true.
func (Empty) Null() bool { return true }

// Len is always 0.
func (Empty) Len() int { return 0 }

// Elem is always false.
func (Empty) Elem(any) bool { return false }

// Map returns Empty without calling f.
func (Empty) Map(MapFunc) Wrapper { return Empty{} }

// Apply returns Empty.
func (Empty) Apply(Wrapper) (Wrapper, error) { return Empty{}, nil }

// Bind returns Empty without calling f.
func (Empty) Bind(MapFunc) Wrapper { return Empty{} }

// Foldl returns init.
func (Empty) Foldl(_ FoldFunc, init any) any { return init }

// Foldr returns init.
func (Empty) Foldr(_ FoldFunc, init any) any { return init }

// Maximum fails with ErrEmptyCollection.
func (Empty) Maximum() (any, error) { return nil, ErrEmptyCollection }

// Minimum fails with ErrEmptyCollection.
func (Empty) Minimum() (any, error) { return nil, ErrEmptyCollection }

// Sum of nothing is 0.
func (Empty) Sum() (any, error) { return 0, nil }

// Product of nothing is 1.
func (Empty) Product() (any, error) { return 1, nil }

// Append returns other unchanged.
func (Empty) Append(other Wrapper) Wrapper { return other }

// Concat returns Empty.
func (Empty) Concat() Wrapper { return Empty{} }
