// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/verte-zerg/ppm/internal/keys"
	"github.com/verte-zerg/ppm/internal/model"
	"github.com/verte-zerg/ppm/internal/session"
	"github.com/verte-zerg/ppm/internal/stats"
)

const readyPrompt = "Quando estiver pronto comece a digitar..."

// ErrNoColor is returned when the terminal cannot render colors.
var ErrNoColor = errors.New("seu terminal não suporta cor")

type keyMap struct {
	Quit key.Binding
}

var defaultKeyMap = keyMap{
	Quit: key.NewBinding(key.WithKeys("ctrl+c", "esc")),
}

// Model implements the Bubble Tea typing UI.
type Model struct {
	session  *session.Session
	maxWidth int
	keys     keyMap

	width  int
	height int

	result  *model.Result
	aborted bool
}

// NewModel constructs a typing TUI model over a prepared session. maxWidth
// caps the text width in columns.
func NewModel(s *session.Session, maxWidth int) *Model {
	return &Model{
		session:  s,
		maxWidth: maxWidth,
		keys:     defaultKeyMap,
	}
}

// CheckTerminal verifies that f is a terminal able to render colors.
func CheckTerminal(f *os.File) error {
	if !term.IsTerminal(int(f.Fd())) {
		return fmt.Errorf("%w: output is not a terminal", ErrNoColor)
	}
	if termenv.NewOutput(f).ColorProfile() == termenv.Ascii {
		return ErrNoColor
	}
	return nil
}

// Result returns the test metrics, or nil when the test was abandoned.
func (m *Model) Result() *model.Result {
	return m.result
}

// Aborted reports whether the user quit before finishing.
func (m *Model) Aborted() bool {
	return m.aborted
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.aborted = true
			return m, tea.Quit
		}
		for _, k := range decodeKey(msg) {
			m.session.Press(k)
			if m.session.Done() {
				return m, m.finish()
			}
		}
		return m, nil
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.session.Done() {
		return ""
	}
	lineWidth := m.lineWidth()
	text := renderText(m.session, lineWidth)
	content := lipgloss.JoinVertical(lipgloss.Left, text, "", "", m.renderStatus())
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) lineWidth() int {
	width := m.maxWidth
	if m.width > 0 && (width <= 0 || m.width/2 < width) {
		width = m.width / 2
	}
	if width < 1 {
		width = 1
	}
	return width
}

func (m *Model) renderStatus() string {
	if !m.session.Started() {
		return infoStyle.Render(readyPrompt)
	}
	elapsed := m.session.Elapsed().Truncate(time.Second)
	return infoStyle.Render(fmt.Sprintf("%d letras / %s", m.session.TypedCharacters(), elapsed))
}

func (m *Model) finish() tea.Cmd {
	m.session.Finish()
	r := stats.Compute(m.session.Words(), m.session.Elapsed())
	m.result = &r
	return tea.Quit
}

func decodeKey(msg tea.KeyMsg) []session.Key {
	switch msg.Type {
	case tea.KeySpace:
		return []session.Key{{Kind: session.KeySpace}}
	case tea.KeyBackspace:
		return []session.Key{{Kind: session.KeyBackspace}}
	case tea.KeyRunes:
		out := make([]session.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			if r == ' ' {
				out = append(out, session.Key{Kind: session.KeySpace})
				continue
			}
			glyph, ok := keys.DecodeRune(r)
			if !ok {
				continue
			}
			out = append(out, session.Key{Kind: session.KeyGlyph, Glyph: glyph})
		}
		return out
	default:
		return nil
	}
}
