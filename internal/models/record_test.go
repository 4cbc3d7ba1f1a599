package models

import (
	"testing"
)

func TestRecordLookupPrefersMachineKey(t *testing.T) {
	r := Record{"sleep_hours": 6.5, "Sleep Hours": 9.0}
	got, ok := r.Lookup(FieldSleepHours)
	if !ok || got != 6.5 {
		t.Errorf("Lookup = (%v, %v), want (6.5, true)", got, ok)
	}
}

func TestRecordLookupFallsBackToDisplayKey(t *testing.T) {
	tests := []struct {
		name   string
		record Record
		want   float64
		wantOK bool
	}{
		{"display only", Record{"Focus": 8}, 8, true},
		{"display string", Record{"Focus": " 7 "}, 7, true},
		{"machine unparseable", Record{"focus": "high", "Focus": 5}, 5, true},
		{"machine blank", Record{"focus": "", "Focus": "4"}, 4, true},
		{"neither", Record{"notes": "x"}, 0, false},
		{"nil value", Record{"focus": nil}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.record.Lookup(FieldFocus)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Lookup = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestRecordNumberDefault(t *testing.T) {
	r := Record{"Sleep Hours": "n/a"}
	if got := r.Number(FieldSleepHours, DefaultSleepHours); got != 7 {
		t.Errorf("Number = %v, want 7", got)
	}
}

func TestParseNumberOrDefault(t *testing.T) {
	tests := []struct {
		in   any
		want float64
	}{
		{"3.5", 3.5},
		{"", -1},
		{"abc", -1},
		{nil, -1},
		{int64(4), 4},
		{float32(2.5), 2.5},
		{"NaN", -1},
		{"Inf", -1},
		{[]byte("12"), 12},
		{true, -1},
	}

	for _, tt := range tests {
		if got := ParseNumberOrDefault(tt.in, -1); got != tt.want {
			t.Errorf("ParseNumberOrDefault(%#v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEntryFromRecord(t *testing.T) {
	r := Record{
		"Name":            "ana",
		"Date":            "2024-03-01",
		"focus":           "6",
		"Hyperactivity":   3.0,
		"Sleep Hours":     "7.5",
		"Tasks Completed": "",
		"Mood":            "good",
		"Notes":           " tired ",
		"Cognitive Score": "5.25",
	}

	e := EntryFromRecord(r)

	if e.User != "ana" || e.Date != "2024-03-01" {
		t.Errorf("user/date = %q/%q", e.User, e.Date)
	}
	if e.Focus == nil || *e.Focus != 6 {
		t.Errorf("Focus = %v, want 6", e.Focus)
	}
	if e.Hyperactivity == nil || *e.Hyperactivity != 3 {
		t.Errorf("Hyperactivity = %v, want 3", e.Hyperactivity)
	}
	if e.SleepHours == nil || *e.SleepHours != 7.5 {
		t.Errorf("SleepHours = %v, want 7.5", e.SleepHours)
	}
	if e.TasksCompleted == nil || *e.TasksCompleted != 0 {
		t.Errorf("TasksCompleted = %v, want 0", e.TasksCompleted)
	}
	if e.Impulsivity != nil {
		t.Error("expected unset impulsivity to stay nil")
	}
	if FloatOr(e.ScreenTime, -1) != 0 || IntOr(e.Distractions, -1) != 0 {
		t.Error("expected unset screen time and distractions to default to 0")
	}
	if e.Mood != MoodGood {
		t.Errorf("Mood = %q, want Good", e.Mood)
	}
	if e.Notes != "tired" {
		t.Errorf("Notes = %q", e.Notes)
	}
	if e.CognitiveScore != 5.25 {
		t.Errorf("CognitiveScore = %v, want 5.25", e.CognitiveScore)
	}
}

func TestEntryFromRecordDefaults(t *testing.T) {
	e := EntryFromRecord(Record{})
	if e.User != "Unknown" {
		t.Errorf("User = %q, want Unknown", e.User)
	}
	if e.CognitiveScore != 0 {
		t.Errorf("CognitiveScore = %v, want 0", e.CognitiveScore)
	}
	if e.Mood != MoodNone {
		t.Errorf("Mood = %q, want empty", e.Mood)
	}
	if FloatOr(e.SleepHours, -1) != DefaultSleepHours || e.Focus != nil {
		t.Errorf("metric defaults not applied: %+v", e)
	}
}

func TestWithDefaultsKeepsSetValues(t *testing.T) {
	e := DailyEntry{SleepHours: Float(5), Distractions: Int(4)}.WithDefaults()
	if *e.SleepHours != 5 || *e.Distractions != 4 {
		t.Errorf("set values overwritten: %+v", e)
	}
	if *e.ScreenTime != 0 || *e.TasksCompleted != 0 {
		t.Errorf("unset values not defaulted: %+v", e)
	}
}

func TestRecordFractional(t *testing.T) {
	tests := []struct {
		record Record
		want   bool
	}{
		{Record{"focus": 7.5}, true},
		{Record{"Focus": "7.25"}, true},
		{Record{"focus": 7.0}, false},
		{Record{"focus": "8"}, false},
		{Record{}, false},
	}
	for _, tt := range tests {
		if _, got := tt.record.Fractional(FieldFocus); got != tt.want {
			t.Errorf("Fractional(%v) = %v, want %v", tt.record, got, tt.want)
		}
	}
}

func TestToRecordRoundTrip(t *testing.T) {
	e := DailyEntry{
		User:           "ben",
		Date:           "2024-01-02",
		Focus:          Int(5),
		SleepHours:     Float(6.25),
		Mood:           MoodBad,
		CognitiveScore: 3.1,
	}

	back := EntryFromRecord(e.ToRecord())

	if back.User != e.User || back.Date != e.Date || back.Mood != e.Mood {
		t.Errorf("round trip changed identity fields: %+v", back)
	}
	if IntOr(back.Focus, -1) != 5 || FloatOr(back.SleepHours, -1) != 6.25 {
		t.Errorf("round trip changed metrics: %+v", back)
	}
	if back.Hyperactivity != nil {
		t.Error("absent hyperactivity should stay absent")
	}
}

func TestParseMood(t *testing.T) {
	tests := map[string]Mood{
		"Good":  MoodGood,
		"okay":  MoodOkay,
		"BAD":   MoodBad,
		"":      MoodNone,
		" meh ": Mood("meh"),
	}
	for in, want := range tests {
		if got := ParseMood(in); got != want {
			t.Errorf("ParseMood(%q) = %q, want %q", in, got, want)
		}
	}
	if Mood("meh").Known() {
		t.Error("meh should not be a known mood")
	}
}
