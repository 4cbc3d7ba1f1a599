package validation

import (
	"fmt"
	"math"
	"strings"

	"github.com/julianstephens/mindlog/internal/analysis"
	"github.com/julianstephens/mindlog/internal/dates"
	"github.com/julianstephens/mindlog/internal/models"
)

// IssueType classifies a suspicious value
type IssueType string

const (
	IssueOutOfRange  IssueType = "out_of_range"
	IssueNegative    IssueType = "negative"
	IssueUnknownMood IssueType = "unknown_mood"
	IssueBadDate     IssueType = "invalid_date"
	IssueScoreRange  IssueType = "score_out_of_range"
	IssueFractional  IssueType = "fractional"
	IssueScoreDrift  IssueType = "score_mismatch"
)

// scoreTolerance absorbs the two-decimal rounding of stored scores
const scoreTolerance = 0.01

// Issue is one suspicious value in one entry. Issues are warnings: entries
// are stored regardless.
type Issue struct {
	Type    IssueType
	EntryID string
	User    string
	Date    string
	Field   string
	Message string
}

// Result collects the issues found in a set of entries
type Result struct {
	Checked int
	Issues  []Issue
}

// HasIssues returns true if any value looked wrong
func (r *Result) HasIssues() bool {
	return len(r.Issues) > 0
}

// FormatReport returns a human-readable list of the issues
func (r *Result) FormatReport() string {
	if !r.HasIssues() {
		return fmt.Sprintf("No issues found in %d entries.", r.Checked)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d issue(s) in %d entries:\n", len(r.Issues), r.Checked)
	for _, is := range r.Issues {
		fmt.Fprintf(&b, "- %s %s: %s\n", is.Date, is.User, is.Message)
	}
	return b.String()
}

// Validator checks entries against the intended metric ranges
type Validator struct {
	ScaleMin, ScaleMax float64
	MaxSleepHours      float64
	MaxScreenHours     float64
}

// New returns a validator for the 1-10 self-report scale
func New() *Validator {
	return &Validator{
		ScaleMin:       1,
		ScaleMax:       10,
		MaxSleepHours:  24,
		MaxScreenHours: 24,
	}
}

// ValidateEntries reports out-of-range values without rejecting anything
func (v *Validator) ValidateEntries(entries []models.DailyEntry) Result {
	res := Result{Checked: len(entries)}
	for _, e := range entries {
		res.Issues = append(res.Issues, v.ValidateEntry(e)...)
	}
	return res
}

// ValidateEntry lists the issues of a single entry
func (v *Validator) ValidateEntry(e models.DailyEntry) []Issue {
	var issues []Issue
	add := func(t IssueType, field, format string, args ...any) {
		issues = append(issues, Issue{
			Type:    t,
			EntryID: e.ID,
			User:    e.User,
			Date:    e.Date,
			Field:   field,
			Message: fmt.Sprintf(format, args...),
		})
	}

	scale := []struct {
		field string
		value *int
	}{
		{"focus", e.Focus},
		{"hyperactivity", e.Hyperactivity},
		{"impulsivity", e.Impulsivity},
	}
	for _, s := range scale {
		if s.value == nil {
			continue
		}
		if n := float64(*s.value); n < v.ScaleMin || n > v.ScaleMax {
			add(IssueOutOfRange, s.field, "%s %d outside %g-%g", s.field, *s.value, v.ScaleMin, v.ScaleMax)
		}
	}

	counts := []struct {
		field string
		value *int
	}{
		{"distractions", e.Distractions},
		{"tasks_completed", e.TasksCompleted},
	}
	for _, c := range counts {
		if c.value != nil && *c.value < 0 {
			add(IssueNegative, c.field, "%s is negative (%d)", c.field, *c.value)
		}
	}

	if e.SleepHours != nil && (*e.SleepHours < 0 || *e.SleepHours > v.MaxSleepHours) {
		add(IssueOutOfRange, "sleep_hours", "sleep_hours %g outside 0-%g", *e.SleepHours, v.MaxSleepHours)
	}
	if e.ScreenTime != nil && (*e.ScreenTime < 0 || *e.ScreenTime > v.MaxScreenHours) {
		add(IssueOutOfRange, "screen_time", "screen_time %g outside 0-%g", *e.ScreenTime, v.MaxScreenHours)
	}

	if e.Mood != models.MoodNone && !e.Mood.Known() {
		add(IssueUnknownMood, "mood", "unknown mood %q (expected Good, Okay or Bad)", e.Mood)
	}

	if _, ok := dates.Parse(e.Date); !ok {
		add(IssueBadDate, "entry_date", "date %q is not a calendar date", e.Date)
	}

	if e.CognitiveScore < 0 || e.CognitiveScore > 10 {
		add(IssueScoreRange, "cognitive_score", "cognitive score %g outside 0-10", e.CognitiveScore)
	}

	return issues
}

// ValidateRecords checks imported rows before they are typed: whole-number
// metrics holding fractions (they are rounded when stored) and stored
// scores that disagree with the score recomputed from the row.
func (v *Validator) ValidateRecords(records []models.Record) Result {
	res := Result{Checked: len(records)}
	for _, r := range records {
		res.Issues = append(res.Issues, v.ValidateRecord(r)...)
	}
	return res
}

// ValidateRecord lists the issues of a single imported row
func (v *Validator) ValidateRecord(r models.Record) []Issue {
	var issues []Issue
	add := func(t IssueType, field, format string, args ...any) {
		issues = append(issues, Issue{
			Type:    t,
			User:    r.String(models.FieldUser),
			Date:    r.String(models.FieldDate),
			Field:   field,
			Message: fmt.Sprintf(format, args...),
		})
	}

	whole := []models.Field{
		models.FieldFocus,
		models.FieldHyperactivity,
		models.FieldImpulsivity,
		models.FieldDistractions,
		models.FieldTasksCompleted,
	}
	for _, f := range whole {
		if n, ok := r.Fractional(f); ok {
			add(IssueFractional, f.Machine, "%s %g is not a whole number, stored as %d", f.Machine, n, int(math.Round(n)))
		}
	}

	if stored, ok := r.Lookup(models.FieldCognitiveScore); ok {
		if want := analysis.ScoreRecord(r); math.Abs(stored-want) > scoreTolerance {
			add(IssueScoreDrift, models.FieldCognitiveScore.Machine, "cognitive score %g differs from recomputed %g", stored, want)
		}
	}

	return issues
}
