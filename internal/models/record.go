package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/mindlog/internal/constants"
)

// Record is a semi-structured row as read from a spreadsheet, a CSV file or
// a database row map. Every field may appear under its machine key or its
// display key.
type Record map[string]any

// Field names a record column under both naming conventions
type Field struct {
	Machine string
	Display string
}

var (
	FieldUser           = Field{"user", "Name"}
	FieldDate           = Field{"entry_date", "Date"}
	FieldFocus          = Field{"focus", "Focus"}
	FieldHyperactivity  = Field{"hyperactivity", "Hyperactivity"}
	FieldImpulsivity    = Field{"impulsivity", "Impulsivity"}
	FieldSleepHours     = Field{"sleep_hours", "Sleep Hours"}
	FieldDistractions   = Field{"distractions", "Distractions"}
	FieldTasksCompleted = Field{"tasks_completed", "Tasks Completed"}
	FieldScreenTime     = Field{"screen_time", "Screen Time"}
	FieldMood           = Field{"mood", "Mood"}
	FieldNotes          = Field{"notes", "Notes"}
	FieldCognitiveScore = Field{"cognitive_score", "Cognitive Score"}
	FieldAdvice         = Field{"advice", "Advice"}
)

// Defaults applied when a metric is missing from a record
const (
	DefaultSleepHours = 7.0
	DefaultMetric     = 0.0
)

// Raw returns the first non-blank value stored under the machine key or,
// failing that, the display key.
func (r Record) Raw(f Field) (any, bool) {
	for _, k := range []string{f.Machine, f.Display} {
		v, ok := r[k]
		if !ok || isBlank(v) {
			continue
		}
		return v, true
	}
	return nil, false
}

// Lookup returns the numeric value of f. The machine key wins over the
// display key; a value that does not parse is treated as missing.
func (r Record) Lookup(f Field) (float64, bool) {
	for _, k := range []string{f.Machine, f.Display} {
		v, ok := r[k]
		if !ok {
			continue
		}
		if n, ok := ParseNumber(v); ok {
			return n, true
		}
	}
	return 0, false
}

// Number returns the numeric value of f or def
func (r Record) Number(f Field, def float64) float64 {
	if n, ok := r.Lookup(f); ok {
		return n
	}
	return def
}

// String returns the textual value of f, or "" when absent
func (r Record) String(f Field) string {
	v, ok := r.Raw(f)
	if !ok {
		return ""
	}
	return strings.TrimSpace(stringify(v))
}

// ParseNumber converts v to a float. Strings are trimmed before parsing;
// NaN and infinities are rejected.
func ParseNumber(v any) (float64, bool) {
	var n float64
	switch x := v.(type) {
	case nil:
		return 0, false
	case float64:
		n = x
	case float32:
		n = float64(x)
	case int:
		n = float64(x)
	case int32:
		n = float64(x)
	case int64:
		n = float64(x)
	case *int:
		if x == nil {
			return 0, false
		}
		n = float64(*x)
	case *float64:
		if x == nil {
			return 0, false
		}
		n = *x
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		n = f
	case []byte:
		return ParseNumber(string(x))
	default:
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// ParseNumberOrDefault returns the numeric value of v, or def when v is
// absent or not numeric.
func ParseNumberOrDefault(v any, def float64) float64 {
	if n, ok := ParseNumber(v); ok {
		return n
	}
	return def
}

// EntryFromRecord converts a record into a typed entry. Missing or
// unparseable focus, hyperactivity and impulsivity are left nil; the other
// metrics take their defaults. Whole-number metrics are rounded to the
// nearest integer. The cognitive score is taken from the record as-is (0
// when absent). The user falls back to constants.UnknownUser and the date
// is left for the caller to resolve.
func EntryFromRecord(r Record) DailyEntry {
	e := DailyEntry{
		User:           r.String(FieldUser),
		Date:           r.String(FieldDate),
		Focus:          r.optionalInt(FieldFocus),
		Hyperactivity:  r.optionalInt(FieldHyperactivity),
		Impulsivity:    r.optionalInt(FieldImpulsivity),
		SleepHours:     r.optionalFloat(FieldSleepHours),
		ScreenTime:     r.optionalFloat(FieldScreenTime),
		Distractions:   r.optionalInt(FieldDistractions),
		TasksCompleted: r.optionalInt(FieldTasksCompleted),
		Mood:           ParseMood(r.String(FieldMood)),
		Notes:          r.String(FieldNotes),
		CognitiveScore: r.Number(FieldCognitiveScore, DefaultMetric),
		Advice:         r.String(FieldAdvice),
	}
	if e.User == "" {
		e.User = constants.UnknownUser
	}
	return e.WithDefaults()
}

// Fractional reports whether f holds a number with a fractional part
func (r Record) Fractional(f Field) (float64, bool) {
	n, ok := r.Lookup(f)
	if !ok {
		return 0, false
	}
	return n, n != math.Trunc(n)
}

// ToRecord renders the entry with display keys, the layout used by
// spreadsheet export. Absent metrics are nil.
func (e DailyEntry) ToRecord() Record {
	return Record{
		FieldUser.Display:           e.User,
		FieldDate.Display:           e.Date,
		FieldFocus.Display:          intOrNil(e.Focus),
		FieldHyperactivity.Display:  intOrNil(e.Hyperactivity),
		FieldImpulsivity.Display:    intOrNil(e.Impulsivity),
		FieldSleepHours.Display:     floatOrNil(e.SleepHours),
		FieldDistractions.Display:   intOrNil(e.Distractions),
		FieldTasksCompleted.Display: intOrNil(e.TasksCompleted),
		FieldMood.Display:           string(e.Mood),
		FieldNotes.Display:          e.Notes,
		FieldCognitiveScore.Display: e.CognitiveScore,
		FieldAdvice.Display:         e.Advice,
		FieldScreenTime.Display:     floatOrNil(e.ScreenTime),
	}
}

func (r Record) optionalInt(f Field) *int {
	n, ok := r.Lookup(f)
	if !ok {
		return nil
	}
	v := int(math.Round(n))
	return &v
}

func (r Record) optionalFloat(f Field) *float64 {
	n, ok := r.Lookup(f)
	if !ok {
		return nil
	}
	return &n
}

func intOrNil(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

func floatOrNil(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

func isBlank(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(x) == ""
	}
	return false
}

func stringify(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case []byte:
		return string(x)
	case time.Time:
		return x.Format(constants.DateFormat)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}
