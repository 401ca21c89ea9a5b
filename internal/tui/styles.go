package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/ppm/internal/session"
)

var (
	plainStyle     = lipgloss.NewStyle()
	correctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	incorrectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	currentStyle   = lipgloss.NewStyle().Underline(true)
	overflowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	infoStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

func styleFor(s session.Style) lipgloss.Style {
	switch s {
	case session.StyleCorrect:
		return correctStyle
	case session.StyleIncorrect:
		return incorrectStyle
	case session.StyleCurrent:
		return currentStyle
	case session.StyleOverflow:
		return overflowStyle
	default:
		return plainStyle
	}
}
