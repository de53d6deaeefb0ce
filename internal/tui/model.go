package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbsmedya/edgarviz/internal/render"
	"github.com/dbsmedya/edgarviz/internal/treesearch"
)

const (
	defaultColumnWidth = 36
	minColumnWidth     = 24
)

var noticeStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FBBF24")).
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#FBBF24")).
	Padding(0, 1)

// Model is the bubbletea model of the walkthrough.
type Model struct {
	session *treesearch.Session
	keys    KeyMap
	help    help.Model
	styles  render.TreeStyles

	// notice blocks input until the next key press dismisses it
	notice   string
	quitting bool
}

// New returns a model driving s.
func New(s *treesearch.Session) Model {
	return Model{
		session: s,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		styles:  render.DefaultTreeStyles(defaultColumnWidth),
	}
}

// Notice returns the pending notice, if any.
func (m Model) Notice() string {
	return m.notice
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		steps := m.session.Dataset().StepCount()
		width := msg.Width / steps
		if width < minColumnWidth {
			width = minColumnWidth
		}
		m.styles = render.DefaultTreeStyles(width - 1)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.notice != "" {
			m.notice = ""
			return m, nil
		}

		var action Action
		switch {
		case key.Matches(msg, m.keys.Reveal):
			action = ActionReveal
		case key.Matches(msg, m.keys.Next):
			action = ActionNext
		case key.Matches(msg, m.keys.Prev):
			action = ActionPrev
		default:
			return m, nil
		}
		if err := Apply(m.session, action); err != nil {
			m.notice = Notice(err)
		}
		return m, nil
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	parts := []string{render.Tree(m.session, m.styles)}
	if m.notice != "" {
		parts = append(parts, noticeStyle.Render(m.notice+"  (press any key)"))
	}
	parts = append(parts, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
