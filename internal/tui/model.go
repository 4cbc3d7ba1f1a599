package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/mindlog/internal/constants"
	"github.com/julianstephens/mindlog/internal/form"
	"github.com/julianstephens/mindlog/internal/logger"
	"github.com/julianstephens/mindlog/internal/models"
	"github.com/julianstephens/mindlog/internal/storage"
	"github.com/julianstephens/mindlog/internal/tui/components/entrytable"
	"github.com/julianstephens/mindlog/internal/tui/components/habitlist"
	"github.com/julianstephens/mindlog/internal/tui/components/insights"
	"github.com/julianstephens/mindlog/internal/validation"
)

type SessionState int

const (
	StateEntries SessionState = iota
	StateInsights
	StateHabits
	StateAddEntry
)

// tabs are the states reachable with tab/shift+tab
var tabs = []struct {
	state SessionState
	title string
}{
	{StateEntries, "Entries"},
	{StateInsights, "Insights"},
	{StateHabits, "Habits"},
}

type Model struct {
	store         storage.Provider
	state         SessionState
	keys          KeyMap
	help          help.Model
	entryTable    entrytable.Model
	insightsPanel insights.Model
	habitList     habitlist.Model
	entryForm     *huh.Form
	entryInput    *form.EntryInput
	users         []string // "" selects every user
	userIdx       int
	settings      models.Settings
	status        string
	quitting      bool
	width         int
	height        int
	now           func() time.Time
}

func NewModel(store storage.Provider) Model {
	m := Model{
		store:         store,
		state:         StateEntries,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		entryTable:    entrytable.New(nil, 0, 0),
		insightsPanel: insights.New(0, 0),
		habitList:     habitlist.New(nil, 0, 0),
		now:           time.Now,
	}
	m.settings = storage.SettingsOrDefault(store)
	m.loadUsers()
	for i, u := range m.users {
		if u == m.settings.DefaultUser {
			m.userIdx = i
		}
	}
	m.reload()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// User is the selected user, "" for all users
func (m Model) User() string {
	if m.userIdx < len(m.users) {
		return m.users[m.userIdx]
	}
	return ""
}

func (m *Model) loadUsers() {
	users, err := m.store.GetUsers()
	if err != nil {
		logger.Warn("Failed to load users", "error", err)
		users = nil
	}
	m.users = append([]string{""}, users...)
	if m.userIdx >= len(m.users) {
		m.userIdx = 0
	}
}

// reload refreshes every tab from the store for the selected user
func (m *Model) reload() {
	user := m.User()

	entries, err := m.store.GetEntries(storage.Filter{User: user})
	if err != nil {
		m.status = fmt.Sprintf("Failed to load entries: %v", err)
		entries = nil
	}
	m.entryTable.SetEntries(entries)
	m.insightsPanel.SetHistory(entries, m.settings.InsightWindow)

	habits, err := m.store.GetHabits(storage.Filter{User: user, Last: constants.RecentHabitCount})
	if err != nil {
		m.status = fmt.Sprintf("Failed to load habits: %v", err)
		habits = nil
	}
	m.habitList.SetHabits(habits, user == "")
}

func (m *Model) startAddEntry() tea.Cmd {
	user := m.User()
	if user == "" {
		user = m.settings.DefaultUser
	}
	m.entryInput = &form.EntryInput{User: user, Date: m.now().Format(constants.DateFormat)}
	m.entryForm = form.NewEntryForm(m.entryInput)
	m.state = StateAddEntry
	return m.entryForm.Init()
}

// saveEntry stores the completed form and selects the entry's user
func (m *Model) saveEntry() error {
	entry, err := m.entryInput.Entry(m.now())
	if err != nil {
		return err
	}
	saved, err := m.store.AddEntry(entry)
	if err != nil {
		return err
	}
	logger.Info("Entry saved", "user", saved.User, "date", saved.Date, "score", saved.CognitiveScore)

	m.status = fmt.Sprintf("Saved: %s %s, cognitive score %.2f", saved.User, saved.Date, saved.CognitiveScore)
	if issues := validation.New().ValidateEntry(saved); len(issues) > 0 {
		m.status += fmt.Sprintf(" (%d warning(s))", len(issues))
	}

	m.loadUsers()
	if m.User() != "" {
		for i, u := range m.users {
			if u == saved.User {
				m.userIdx = i
			}
		}
	}
	m.reload()
	return nil
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.User, m.keys.Refresh, m.keys.Quit, m.keys.Help}
	if m.state == StateEntries {
		keys = append(keys, m.entryTable.Keys()...)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.User, m.keys.Refresh}

	var actions []key.Binding
	if m.state == StateEntries {
		actions = m.entryTable.Keys()
	}
	return [][]key.Binding{global, navigation, actions}
}
