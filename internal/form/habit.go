package form

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/mindlog/internal/dates"
	"github.com/julianstephens/mindlog/internal/models"
)

// HabitInput holds the raw text typed into the habit form
type HabitInput struct {
	User     string
	Date     string
	Exercise string
	Study    string
	Screen   string
	Notes    string
}

// NewHabitForm returns a form bound to in
func NewHabitForm(in *HabitInput) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&in.User),
			huh.NewInput().Title("Date").Placeholder("YYYY-MM-DD").Value(&in.Date).Validate(ValidateDate),
			huh.NewInput().Title("Exercise minutes").Value(&in.Exercise).Validate(ValidateInt),
			huh.NewInput().Title("Study minutes").Value(&in.Study).Validate(ValidateInt),
			huh.NewInput().Title("Screen minutes").Value(&in.Screen).Validate(ValidateInt),
			huh.NewInput().Title("Notes").Value(&in.Notes),
		),
	)
}

// Habit converts the input into a habit entry; blank minutes count as 0
func (in HabitInput) Habit(now time.Time) (models.HabitEntry, error) {
	h := models.HabitEntry{
		User:  strings.TrimSpace(in.User),
		Date:  dates.NormalizeOr(in.Date, now),
		Notes: strings.TrimSpace(in.Notes),
	}
	fields := []struct {
		name string
		raw  string
		dst  *int
	}{
		{"exercise minutes", in.Exercise, &h.ExerciseMinutes},
		{"study minutes", in.Study, &h.StudyMinutes},
		{"screen minutes", in.Screen, &h.ScreenMinutes},
	}
	for _, f := range fields {
		n, err := optionalInt(f.raw)
		if err != nil {
			return h, fmt.Errorf("%s: %w", f.name, err)
		}
		if n != nil {
			*f.dst = *n
		}
	}
	return h, nil
}
