package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/ppm/internal/session"
)

// Line holds the indexes of the words drawn on one row.
type Line struct {
	Words []int
}

// Layout wraps words of the given drawn widths onto lines narrower than
// lineWidth in a single greedy pass. The column starts at 1; a word that
// would reach lineWidth starts a new line, and a separating space is only
// drawn when the next word still fits after it.
func Layout(widths []int, lineWidth int) []Line {
	if len(widths) == 0 {
		return nil
	}
	lines := []Line{{}}
	x := 1
	for i, w := range widths {
		if x+w >= lineWidth && len(lines[len(lines)-1].Words) > 0 {
			lines = append(lines, Line{})
			x = 1
		}
		cur := &lines[len(lines)-1]
		cur.Words = append(cur.Words, i)
		x += w
		if i < len(widths)-1 && widths[i+1]+x < lineWidth {
			x++
		}
	}
	return lines
}

func wordWidths(words []*session.Word) []int {
	widths := make([]int, len(words))
	for i, w := range words {
		widths[i] = w.DrawnWidth()
	}
	return widths
}

func renderWord(w *session.Word, currentChar int, isCurrent bool) string {
	var b strings.Builder
	for _, g := range w.Glyphs(currentChar, isCurrent) {
		b.WriteString(styleFor(g.Style).Render(g.Glyph))
	}
	return b.String()
}

func renderText(s *session.Session, lineWidth int) string {
	words := s.Words()
	wordIdx, charIdx := s.Cursor()
	lines := Layout(wordWidths(words), lineWidth)
	rows := make([]string, 0, len(lines))
	for _, line := range lines {
		parts := make([]string, 0, len(line.Words))
		for _, i := range line.Words {
			parts = append(parts, renderWord(words[i], charIdx, i == wordIdx))
		}
		rows = append(rows, strings.Join(parts, " "))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
