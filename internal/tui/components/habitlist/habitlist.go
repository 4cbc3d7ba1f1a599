package habitlist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/mindlog/internal/models"
)

type Item struct {
	Habit    models.HabitEntry
	WithUser bool
}

func (i Item) Title() string {
	if i.WithUser {
		return i.Habit.Date + "  " + i.Habit.User
	}
	return i.Habit.Date
}

func (i Item) Description() string {
	desc := fmt.Sprintf("Ex %dm, Study %dm, Screen %dm", i.Habit.ExerciseMinutes, i.Habit.StudyMinutes, i.Habit.ScreenMinutes)
	if i.Habit.Notes != "" {
		desc += " | " + i.Habit.Notes
	}
	return desc
}

func (i Item) FilterValue() string { return i.Habit.Date + " " + i.Habit.Notes }

type Model struct {
	list list.Model
}

func New(habits []models.HabitEntry, width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "Recent habits"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	m := Model{list: l}
	m.SetHabits(habits, false)
	return m
}

// SetHabits lists habits newest first
func (m *Model) SetHabits(habits []models.HabitEntry, withUser bool) {
	items := make([]list.Item, 0, len(habits))
	for i := len(habits) - 1; i >= 0; i-- {
		items = append(items, Item{Habit: habits[i], WithUser: withUser})
	}
	m.list.SetItems(items)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return "\n  No habits recorded.\n  Use 'mindlog habit add' to log some."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// Filtering reports whether the list is capturing keys for its filter
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}
