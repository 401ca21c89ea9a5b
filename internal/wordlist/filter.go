// Package wordlist provides word list filtering helpers.
package wordlist

import "github.com/verte-zerg/ppm/internal/keys"

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// Typable keeps words made only of glyphs that can be typed.
func Typable(word string) bool {
	return keys.Typable(word)
}

// Filter returns the words accepted by keep, preserving order.
func Filter(words []string, keep FilterFunc) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if keep(w) {
			out = append(out, w)
		}
	}
	return out
}
