// Package session implements the typing test state machine.
package session

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Style tags a glyph for rendering.
type Style int

const (
	StylePlain Style = iota
	StyleCorrect
	StyleIncorrect
	StyleCurrent
	StyleOverflow
)

// StyledGlyph is a single glyph of a word view.
type StyledGlyph struct {
	Glyph string
	Style Style
}

// Character is one target glyph of a word.
type Character struct {
	Glyph   string
	Typed   bool
	Correct bool
}

// Word tracks the keystrokes typed against one target word.
type Word struct {
	Chars             []Character
	WrittenChars      []string
	ExtraWrittenChars []string
	Typed             bool
	Correct           bool
}

// NewWord splits text into one Character per rune.
func NewWord(text string) *Word {
	chars := make([]Character, 0, len(text))
	for _, r := range text {
		chars = append(chars, Character{Glyph: string(r)})
	}
	return &Word{
		Chars:        chars,
		WrittenChars: make([]string, 0, len(chars)*2),
	}
}

// Text returns the target word.
func (w *Word) Text() string {
	var b strings.Builder
	for _, c := range w.Chars {
		b.WriteString(c.Glyph)
	}
	return b.String()
}

// Update records glyph typed at position at. Positions past the end of the
// word are recorded as overflow.
func (w *Word) Update(glyph string, at int) {
	if at >= 0 && at < len(w.Chars) {
		w.Chars[at].Typed = true
		w.Chars[at].Correct = glyph == w.Chars[at].Glyph
	}
	w.WrittenChars = append(w.WrittenChars, glyph)
	if at >= len(w.Chars) {
		w.ExtraWrittenChars = append(w.ExtraWrittenChars, glyph)
	}
}

// UndoLast reverts the Update made at position at.
func (w *Word) UndoLast(at int) {
	if len(w.WrittenChars) == 0 {
		return
	}
	w.WrittenChars = w.WrittenChars[:len(w.WrittenChars)-1]
	if at >= len(w.Chars) {
		if n := len(w.ExtraWrittenChars); n > 0 {
			w.ExtraWrittenChars = w.ExtraWrittenChars[:n-1]
		}
		return
	}
	if at >= 0 {
		w.Chars[at].Typed = false
		w.Chars[at].Correct = false
	}
}

// IsCorrect reports whether the written glyphs match the word exactly.
func (w *Word) IsCorrect() bool {
	if len(w.WrittenChars) != len(w.Chars) {
		return false
	}
	for i, c := range w.Chars {
		if c.Glyph != w.WrittenChars[i] {
			return false
		}
	}
	return true
}

// DrawnWidth returns the number of columns the word occupies once accents
// are folded into their base letters and standalone marks are dropped.
func (w *Word) DrawnWidth() int {
	total := 0
	for _, c := range w.Chars {
		total += glyphWidth(c.Glyph)
	}
	for _, g := range w.ExtraWrittenChars {
		total += glyphWidth(g)
	}
	return total
}

// Glyphs returns the word as styled glyphs. currentChar is only used when
// isCurrent is set.
func (w *Word) Glyphs(currentChar int, isCurrent bool) []StyledGlyph {
	out := make([]StyledGlyph, 0, len(w.Chars)+len(w.ExtraWrittenChars))
	for i, c := range w.Chars {
		style := StylePlain
		switch {
		case c.Typed && c.Correct:
			style = StyleCorrect
		case c.Typed:
			style = StyleIncorrect
		case isCurrent && i == currentChar:
			style = StyleCurrent
		}
		out = append(out, StyledGlyph{Glyph: c.Glyph, Style: style})
	}
	// Past the end of the word the cursor sits on the last overflow glyph.
	last := len(w.ExtraWrittenChars) - 1
	for i, g := range w.ExtraWrittenChars {
		style := StyleOverflow
		if isCurrent && i == last && currentChar >= len(w.Chars) {
			style = StyleCurrent
		}
		out = append(out, StyledGlyph{Glyph: g, Style: style})
	}
	return out
}

var zeroWidthMarks = map[string]struct{}{
	"'": {},
	"´": {},
	"`": {},
	"~": {},
	"¨": {},
}

func glyphWidth(glyph string) int {
	if _, ok := zeroWidthMarks[glyph]; ok {
		return 0
	}
	return runewidth.StringWidth(foldAccents(glyph))
}

func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
