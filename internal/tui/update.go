package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/mindlog/internal/storage"
	"github.com/julianstephens/mindlog/internal/tui/components/entrytable"
)

// chromeHeight is the rows taken by tabs, status line, help and padding
const chromeHeight = 7

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state == StateAddEntry {
		return m.updateAddEntry(msg)
	}

	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		w, h := msg.Width-4, msg.Height-chromeHeight
		if h < 3 {
			h = 3
		}
		m.entryTable.SetSize(w, h)
		m.insightsPanel.SetSize(w, h)
		m.habitList.SetSize(w, h)
		return m, nil

	case entrytable.AddEntryMsg:
		return m, m.startAddEntry()

	case tea.KeyMsg:
		if m.state == StateHabits && m.habitList.Filtering() {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			m.state = nextTab(m.state, 1)
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = nextTab(m.state, -1)
			return m, nil
		case key.Matches(msg, m.keys.User):
			m.userIdx = (m.userIdx + 1) % len(m.users)
			m.status = ""
			m.reload()
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			m.settings = storage.SettingsOrDefault(m.store)
			m.loadUsers()
			m.status = "Refreshed"
			m.reload()
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case StateEntries:
		m.entryTable, cmd = m.entryTable.Update(msg)
	case StateInsights:
		m.insightsPanel, cmd = m.insightsPanel.Update(msg)
	case StateHabits:
		m.habitList, cmd = m.habitList.Update(msg)
	}
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) updateAddEntry(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = StateEntries
		return m, nil
	}

	f, cmd := m.entryForm.Update(msg)
	if f, ok := f.(*huh.Form); ok {
		m.entryForm = f
	}

	switch m.entryForm.State {
	case huh.StateCompleted:
		if err := m.saveEntry(); err != nil {
			m.status = fmt.Sprintf("Failed to save entry: %v", err)
		}
		m.state = StateEntries
	case huh.StateAborted:
		m.state = StateEntries
	}
	return m, cmd
}

func nextTab(s SessionState, step int) SessionState {
	for i, t := range tabs {
		if t.state == s {
			return tabs[(i+step+len(tabs))%len(tabs)].state
		}
	}
	return StateEntries
}
