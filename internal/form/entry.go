// Package form builds the interactive entry and habit forms.
package form

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/mindlog/internal/analysis"
	"github.com/julianstephens/mindlog/internal/dates"
	"github.com/julianstephens/mindlog/internal/models"
)

// EntryInput holds the raw text typed into the entry form
type EntryInput struct {
	User          string
	Date          string
	Focus         string
	Hyperactivity string
	Impulsivity   string
	Sleep         string
	Distractions  string
	Tasks         string
	Screen        string
	Mood          string
	Notes         string
}

// NewEntryForm returns a form bound to in
func NewEntryForm(in *EntryInput) *huh.Form {
	moods := []huh.Option[string]{huh.NewOption("(none)", "")}
	for _, m := range models.Moods {
		moods = append(moods, huh.NewOption(string(m), string(m)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&in.User),
			huh.NewInput().Title("Date").Placeholder("YYYY-MM-DD").Value(&in.Date).Validate(ValidateDate),
			huh.NewInput().Title("Focus (1-10)").Value(&in.Focus).Validate(ValidateInt),
			huh.NewInput().Title("Hyperactivity (1-10)").Value(&in.Hyperactivity).Validate(ValidateInt),
			huh.NewInput().Title("Impulsivity (1-10)").Value(&in.Impulsivity).Validate(ValidateInt),
		),
		huh.NewGroup(
			huh.NewInput().Title("Sleep hours").Value(&in.Sleep).Validate(ValidateNumber),
			huh.NewInput().Title("Distractions").Value(&in.Distractions).Validate(ValidateInt),
			huh.NewInput().Title("Tasks completed").Value(&in.Tasks).Validate(ValidateInt),
			huh.NewInput().Title("Screen time (hours)").Value(&in.Screen).Validate(ValidateNumber),
			huh.NewSelect[string]().Title("Mood").Options(moods...).Value(&in.Mood),
			huh.NewText().Title("Notes").Value(&in.Notes),
		),
	)
}

// Entry converts the input into a scored entry. Blank scale fields are
// absent; blank sleep, screen, distraction and task fields take defaults.
func (in EntryInput) Entry(now time.Time) (models.DailyEntry, error) {
	var err error
	e := models.DailyEntry{
		User:  strings.TrimSpace(in.User),
		Date:  dates.NormalizeOr(in.Date, now),
		Mood:  models.ParseMood(in.Mood),
		Notes: strings.TrimSpace(in.Notes),
	}
	ints := []struct {
		name string
		raw  string
		dst  **int
	}{
		{"focus", in.Focus, &e.Focus},
		{"hyperactivity", in.Hyperactivity, &e.Hyperactivity},
		{"impulsivity", in.Impulsivity, &e.Impulsivity},
		{"distractions", in.Distractions, &e.Distractions},
		{"tasks completed", in.Tasks, &e.TasksCompleted},
	}
	for _, f := range ints {
		if *f.dst, err = optionalInt(f.raw); err != nil {
			return e, fmt.Errorf("%s: %w", f.name, err)
		}
	}
	if e.SleepHours, err = optionalFloat(in.Sleep); err != nil {
		return e, fmt.Errorf("sleep hours: %w", err)
	}
	if e.ScreenTime, err = optionalFloat(in.Screen); err != nil {
		return e, fmt.Errorf("screen time: %w", err)
	}

	e = e.WithDefaults()
	e.CognitiveScore = analysis.ComputeCognitiveScore(e)
	return e, nil
}

// ValidateDate accepts blank input or any recognised date
func ValidateDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, ok := dates.Parse(s); !ok {
		return fmt.Errorf("not a date")
	}
	return nil
}

// ValidateInt accepts blank input or a whole number
func ValidateInt(s string) error {
	_, err := optionalInt(s)
	return err
}

// ValidateNumber accepts blank input or a number
func ValidateNumber(s string) error {
	_, err := optionalFloat(s)
	return err
}

func optionalInt(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("%q is not a whole number", s)
	}
	return &n, nil
}

func optionalFloat(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	f, ok := models.ParseNumber(s)
	if !ok {
		return nil, fmt.Errorf("%q is not a number", s)
	}
	return &f, nil
}
