package apply

import (
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
)

var screenStyle = lipgloss.NewStyle().Padding(1, 2)

// View implements tea.Model.
func (m Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

func (m Model) render() string {
	if m.quitting {
		return ""
	}

	content := screenStyle.Render(m.dialog.View())

	switch m.state {
	case stateSummary:
		content = m.summary.Overlay(content, m.width, m.height)
	case stateConfirmDiscard:
		content = m.confirm.Overlay(content, m.width, m.height)
	}

	return content
}
