package entrytable

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/mindlog/internal/models"
)

type AddEntryMsg struct{}

type KeyMap struct {
	Add key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add entry"),
		),
	}
}

var columns = []table.Column{
	{Title: "Date", Width: 10},
	{Title: "Name", Width: 12},
	{Title: "Focus", Width: 5},
	{Title: "Hyper", Width: 5},
	{Title: "Impuls", Width: 6},
	{Title: "Sleep", Width: 5},
	{Title: "Distr", Width: 5},
	{Title: "Tasks", Width: 5},
	{Title: "Screen", Width: 6},
	{Title: "Mood", Width: 5},
	{Title: "Score", Width: 6},
	{Title: "Notes", Width: 20},
}

type Model struct {
	table table.Model
	keys  KeyMap
	count int
}

func New(entries []models.DailyEntry, width, height int) Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
		table.WithWidth(width),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(s)

	m := Model{table: t, keys: DefaultKeyMap()}
	m.SetEntries(entries)
	return m
}

// SetEntries shows the newest entry first and selects it
func (m *Model) SetEntries(entries []models.DailyEntry) {
	rows := make([]table.Row, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		rows = append(rows, Row(entries[i]))
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
	m.count = len(entries)
}

// Row renders one entry as table cells; absent metrics show as "-"
func Row(e models.DailyEntry) table.Row {
	return table.Row{
		e.Date,
		e.User,
		intCell(e.Focus),
		intCell(e.Hyperactivity),
		intCell(e.Impulsivity),
		floatCell(e.SleepHours),
		intCell(e.Distractions),
		intCell(e.TasksCompleted),
		floatCell(e.ScreenTime),
		string(e.Mood),
		strconv.FormatFloat(e.CognitiveScore, 'f', 2, 64),
		e.Notes,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.keys.Add) {
		return m, func() tea.Msg { return AddEntryMsg{} }
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.count == 0 {
		return "\n  No entries yet.\n  Press 'a' to log one."
	}
	return m.table.View()
}

func (m *Model) SetSize(width, height int) {
	m.table.SetWidth(width)
	m.table.SetHeight(height)
}

func (m Model) Keys() []key.Binding {
	return []key.Binding{m.keys.Add}
}

func intCell(p *int) string {
	if p == nil {
		return "-"
	}
	return strconv.Itoa(*p)
}

func floatCell(p *float64) string {
	if p == nil {
		return "-"
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}
