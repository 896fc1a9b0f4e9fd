package prelude

import (
	"strings"

	"github.com/hasbyte1/go-prelude/algebra"
)

// Words splits s around runs of white space.
func Words(s string) []string { return strings.Fields(s) }

// Unwords joins words with single spaces.
func Unwords(words []string) string { return strings.Join(words, " ") }

// Lines splits s at newlines. A trailing carriage return is removed from
// every line and an empty s has no lines.
func Lines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Unlines joins lines with newlines.
func Unlines(lines []string) string { return strings.Join(lines, "\n") }

// Chars splits s into user-perceived characters, so "e" followed by a
// combining accent is one character.
func Chars(s string) []string { return algebra.NewText(s).Chars() }

// Unchars concatenates characters back into a string.
func Unchars(chars []string) string { return strings.Join(chars, "") }
