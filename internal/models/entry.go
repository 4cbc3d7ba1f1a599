package models

import (
	"strings"
	"time"
)

// Mood is the self-reported mood category of a day
type Mood string

const (
	MoodGood Mood = "Good"
	MoodOkay Mood = "Okay"
	MoodBad  Mood = "Bad"
	MoodNone Mood = ""
)

// Moods lists the recognized mood categories in display order
var Moods = []Mood{MoodGood, MoodOkay, MoodBad}

// ParseMood returns the canonical mood for s, matching case-insensitively.
// Unrecognized values are kept verbatim so they can be reported by validation.
func ParseMood(s string) Mood {
	for _, m := range Moods {
		if strings.EqualFold(string(m), s) {
			return m
		}
	}
	return Mood(strings.TrimSpace(s))
}

// Known reports whether m is one of the enumerated categories
func (m Mood) Known() bool {
	for _, k := range Moods {
		if m == k {
			return true
		}
	}
	return false
}

// DailyEntry is one self-reported observation for one user and date.
// Metric fields are nil when the value was never recorded.
type DailyEntry struct {
	ID             string    `json:"id"`
	User           string    `json:"user"`
	Date           string    `json:"date"` // YYYY-MM-DD format
	Focus          *int      `json:"focus,omitempty"`
	Hyperactivity  *int      `json:"hyperactivity,omitempty"`
	Impulsivity    *int      `json:"impulsivity,omitempty"`
	SleepHours     *float64  `json:"sleep_hours,omitempty"`
	ScreenTime     *float64  `json:"screen_time,omitempty"`
	Distractions   *int      `json:"distractions,omitempty"`
	TasksCompleted *int      `json:"tasks_completed,omitempty"`
	Mood           Mood      `json:"mood"`
	Notes          string    `json:"notes"`
	CognitiveScore float64   `json:"cognitive_score"`
	Advice         string    `json:"advice"`
	CreatedAt      time.Time `json:"created_at"`
}

// WithDefaults fills the unset sleep, screen time, distraction and task
// metrics with their defaults. The 1-10 scale metrics stay absent.
func (e DailyEntry) WithDefaults() DailyEntry {
	if e.SleepHours == nil {
		e.SleepHours = Float(DefaultSleepHours)
	}
	if e.ScreenTime == nil {
		e.ScreenTime = Float(DefaultMetric)
	}
	if e.Distractions == nil {
		e.Distractions = Int(int(DefaultMetric))
	}
	if e.TasksCompleted == nil {
		e.TasksCompleted = Int(int(DefaultMetric))
	}
	return e
}

// Int returns a pointer to v, for building entries in code
func Int(v int) *int { return &v }

// Float returns a pointer to v, for building entries in code
func Float(v float64) *float64 { return &v }

// IntOr dereferences p, returning def when p is nil
func IntOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

// FloatOr dereferences p, returning def when p is nil
func FloatOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

// IntValue converts an optional integer metric to an optional float
func IntValue(p *int) *float64 {
	if p == nil {
		return nil
	}
	v := float64(*p)
	return &v
}
