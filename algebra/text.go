package algebra

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// Text is a string viewed as a sequence of user-perceived characters
// (grapheme clusters), so "é" written with a combining accent is one value.
type Text struct {
	s string
}

// NewText wraps s.
func NewText(s string) Text { return Text{s: s} }

// String returns the text.
func (w Text) String() string { return w.s }

// Variant reports which variant the Text is.
func (w Text) Variant() Variant { return VariantText }

// Export returns the text as a string.
func (w Text) Export() any { return w.s }

// Null reports whether the text is empty.
func (w Text) Null() bool { return w.s == "" }

// Len returns the number of grapheme clusters.
func (w Text) Len() int { return uniseg.GraphemeClusterCount(w.s) }

// Chars returns the grapheme clusters of the text.
func (w Text) Chars() []string { return graphemes(w.s) }

// Values returns the characters as []any.
func (w Text) Values() []any {
	chars := graphemes(w.s)
	out := make([]any, len(chars))
	for i, c := range chars {
		out[i] = c
	}
	return out
}

// Elem reports whether x is one of the characters.
func (w Text) Elem(x any) bool {
	c, ok := x.(string)
	if !ok {
		return false
	}
	for _, ch := range graphemes(w.s) {
		if ch == c {
			return true
		}
	}
	return false
}

// Map transforms each character and joins the results as text.
func (w Text) Map(f MapFunc) Wrapper {
	var b strings.Builder
	for _, c := range graphemes(w.s) {
		b.WriteString(stringify(f(c)))
	}
	return Text{s: b.String()}
}

// Apply only succeeds on an empty Text, which holds no functions.
func (w Text) Apply(Wrapper) (Wrapper, error) {
	if w.s != "" {
		return nil, fmt.Errorf("%w: text holds characters, not functions", ErrNotCallable)
	}
	return Text{}, nil
}

// Bind applies f to each character and joins the resolved results.
func (w Text) Bind(f MapFunc) Wrapper {
	var b strings.Builder
	for _, c := range graphemes(w.s) {
		b.WriteString(stringify(Resolve(f(c))))
	}
	return Text{s: b.String()}
}

// Foldl folds the characters from the left, starting with init.
func (w Text) Foldl(f FoldFunc, init any) any {
	acc := init
	for _, c := range graphemes(w.s) {
		acc = f(acc, c)
	}
	return acc
}

// Foldr folds the characters from the right, starting with init.
func (w Text) Foldr(f FoldFunc, init any) any {
	chars := graphemes(w.s)
	acc := init
	for i := len(chars) - 1; i >= 0; i-- {
		acc = f(chars[i], acc)
	}
	return acc
}

// Maximum returns the greatest character.
func (w Text) Maximum() (any, error) { return maximum(w.Values()) }

// Minimum returns the least character.
func (w Text) Minimum() (any, error) { return minimum(w.Values()) }

// Sum adds the characters as numbers.
func (w Text) Sum() (any, error) { return sum(w.Values()) }

// Product multiplies the characters as numbers.
func (w Text) Product() (any, error) { return product(w.Values()) }

// Append joins the items of other to the end of the text.
func (w Text) Append(other Wrapper) Wrapper {
	if other.Variant() == VariantEmpty {
		return w
	}
	return Text{s: w.s + stringify(other)}
}

// Concat of a Text is the Text itself.
func (w Text) Concat() Wrapper { return w }

func graphemes(s string) []string {
	if s == "" {
		return nil
	}
	out := make([]string, 0, len(s))
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}
