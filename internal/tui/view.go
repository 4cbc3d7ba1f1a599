package tui

import (
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateEntries:
		content = docStyle.Render(m.entryTable.View())
	case StateInsights:
		content = docStyle.Render(m.insightsPanel.View())
	case StateHabits:
		content = docStyle.Render(m.habitList.View())
	case StateAddEntry:
		content = docStyle.Render(m.entryForm.View())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		statusStyle.Render(m.status),
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var rendered []string
	for _, t := range tabs {
		if m.state == t.state || (m.state == StateAddEntry && t.state == StateEntries) {
			rendered = append(rendered, activeTabStyle.Render(t.title))
		} else {
			rendered = append(rendered, inactiveTabStyle.Render(t.title))
		}
	}
	user := m.User()
	if user == "" {
		user = "all users"
	}
	rendered = append(rendered, userStyle.Render("user: "+user))
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
