// Package pane is a scrollable tab body that shows pre-rendered content,
// a placeholder while empty, or an error.
package pane

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	placeholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

type Model struct {
	viewport    viewport.Model
	placeholder string
	content     string
	err         string
	loading     bool
}

func New(placeholder string, width, height int) Model {
	return Model{
		viewport:    viewport.New(width, height),
		placeholder: placeholder,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = height
	m.render()
}

// SetContent replaces the body and scrolls back to the top. Empty content shows the placeholder.
func (m *Model) SetContent(content string) {
	m.content = content
	m.err = ""
	m.loading = false
	m.render()
	m.viewport.GotoTop()
}

// SetError shows msg instead of the content until the next SetContent.
func (m *Model) SetError(msg string) {
	m.err = msg
	m.loading = false
	m.render()
}

// SetLoading drops the current body and shows a loading notice until the
// next SetContent or SetError.
func (m *Model) SetLoading() {
	m.content = ""
	m.err = ""
	m.loading = true
	m.render()
	m.viewport.GotoTop()
}

// Content returns what the pane currently displays, without scrolling.
func (m Model) Content() string {
	switch {
	case m.loading:
		return placeholderStyle.Render("Loading…")
	case m.err != "":
		return errorStyle.Render(m.err)
	case m.content == "":
		return placeholderStyle.Render(m.placeholder)
	default:
		return m.content
	}
}

func (m *Model) render() {
	m.viewport.SetContent(m.Content())
}
