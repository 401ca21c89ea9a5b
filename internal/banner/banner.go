// Package banner prints the closing result screen.
package banner

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/common-nighthawk/go-figure"

	"github.com/verte-zerg/ppm/internal/model"
	"github.com/verte-zerg/ppm/internal/session"
	"github.com/verte-zerg/ppm/internal/stats"
)

var bannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)

// Lines renders text as large ASCII art.
func Lines(text string) []string {
	return figure.NewFigure(text, "standard", false).Slicify()
}

// Render prints the speed banner, the summary lines and the missed words.
func Render(w io.Writer, r model.Result, words []*session.Word) error {
	for _, line := range Lines(stats.FormatWPM(r)) {
		if _, err := fmt.Fprintln(w, bannerStyle.Render(line)); err != nil {
			return err
		}
	}
	if err := stats.RenderSummary(w, r); err != nil {
		return err
	}
	return stats.RenderMistakes(w, words)
}
