package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/hay-kot/tidy/internal/core/styles"
)

// View renders the model.
func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	content := m.renderMain()
	if m.ui == stateShowingHelp {
		w, h := m.width, m.height
		if w == 0 {
			w = 80
		}
		if h == 0 {
			h = 24
		}
		content = m.help.Overlay(content, w, h)
	}

	v := tea.NewView(content)
	v.AltScreen = true
	return v
}

func (m Model) renderMain() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render("todos"),
		m.input.View(),
		"",
		m.list.View(),
		"",
		m.filters.View(),
		m.renderStatus(),
	)
}

func (m Model) renderStatus() string {
	if m.status != "" {
		if m.statusErr {
			return styles.TextErrorStyle.Render(m.status)
		}
		return styles.TextSuccessStyle.Render(m.status)
	}

	hints := make([]string, 0, len(m.keys.shortHelp()))
	for _, b := range m.keys.shortHelp() {
		h := b.Help()
		hints = append(hints, h.Key+" "+h.Desc)
	}
	return styles.TextMutedStyle.Render(strings.Join(hints, " • "))
}
