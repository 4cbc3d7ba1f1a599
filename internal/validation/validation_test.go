package validation

import (
	"strings"
	"testing"

	"github.com/julianstephens/mindlog/internal/models"
)

func TestValidateEntry(t *testing.T) {
	tests := []struct {
		name  string
		entry models.DailyEntry
		want  []IssueType
	}{
		{
			name: "clean",
			entry: models.DailyEntry{
				Date: "2024-01-01", Focus: models.Int(7), SleepHours: models.Float(8),
				TasksCompleted: models.Int(0), Mood: models.MoodGood, CognitiveScore: 6,
			},
		},
		{
			name:  "focus above scale",
			entry: models.DailyEntry{Date: "2024-01-01", Focus: models.Int(12)},
			want:  []IssueType{IssueOutOfRange},
		},
		{
			name:  "zero hyperactivity below scale",
			entry: models.DailyEntry{Date: "2024-01-01", Hyperactivity: models.Int(0)},
			want:  []IssueType{IssueOutOfRange},
		},
		{
			name:  "negative counts",
			entry: models.DailyEntry{Date: "2024-01-01", Distractions: models.Int(-1), TasksCompleted: models.Int(-3)},
			want:  []IssueType{IssueNegative, IssueNegative},
		},
		{
			name:  "sleep and screen",
			entry: models.DailyEntry{Date: "2024-01-01", SleepHours: models.Float(30), ScreenTime: models.Float(-2)},
			want:  []IssueType{IssueOutOfRange, IssueOutOfRange},
		},
		{
			name:  "unknown mood and bad date",
			entry: models.DailyEntry{Date: "someday", Mood: models.Mood("meh")},
			want:  []IssueType{IssueUnknownMood, IssueBadDate},
		},
		{
			name:  "score out of range",
			entry: models.DailyEntry{Date: "2024-01-01", CognitiveScore: 11},
			want:  []IssueType{IssueScoreRange},
		},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.ValidateEntry(tt.entry)
			if len(got) != len(tt.want) {
				t.Fatalf("ValidateEntry() = %+v, want types %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i].Type != tt.want[i] {
					t.Errorf("issue %d type = %s, want %s", i, got[i].Type, tt.want[i])
				}
			}
		})
	}
}

func TestValidateEntriesReport(t *testing.T) {
	v := New()
	entries := []models.DailyEntry{
		{User: "ana", Date: "2024-01-01", Focus: models.Int(5)},
		{User: "ana", Date: "2024-01-02", Focus: models.Int(15)},
	}

	res := v.ValidateEntries(entries)
	if res.Checked != 2 || !res.HasIssues() || len(res.Issues) != 1 {
		t.Fatalf("ValidateEntries() = %+v", res)
	}
	report := res.FormatReport()
	if !strings.Contains(report, "2024-01-02 ana: focus 15 outside 1-10") {
		t.Errorf("FormatReport() = %q", report)
	}

	clean := v.ValidateEntries(entries[:1])
	if clean.HasIssues() || !strings.HasPrefix(clean.FormatReport(), "No issues found") {
		t.Errorf("clean report = %q", clean.FormatReport())
	}
}

func TestValidateRecord(t *testing.T) {
	tests := []struct {
		name   string
		record models.Record
		want   []IssueType
	}{
		{"clean", models.Record{"focus": 8, "cognitive_score": 4.7}, nil},
		{"no stored score", models.Record{"focus": 8}, nil},
		{"fraction matching score", models.Record{"focus": 7.5, "cognitive_score": 4.5}, []IssueType{IssueFractional}},
		{"score drift", models.Record{"focus": 8, "cognitive_score": 9}, []IssueType{IssueScoreDrift}},
		{
			"display keys",
			models.Record{"Name": "ana", "Date": "2024-01-01", "Focus": "7.5", "Cognitive Score": "1"},
			[]IssueType{IssueFractional, IssueScoreDrift},
		},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.ValidateRecord(tt.record)
			if len(got) != len(tt.want) {
				t.Fatalf("ValidateRecord() = %+v, want types %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i].Type != tt.want[i] {
					t.Errorf("issue %d type = %s, want %s", i, got[i].Type, tt.want[i])
				}
			}
		})
	}
}

func TestValidateRecordsReport(t *testing.T) {
	records := []models.Record{
		{"Name": "ana", "Date": "2024-01-01", "Focus": "7.5", "Cognitive Score": "4.5"},
		{"Name": "ana", "Date": "2024-01-02", "Focus": "8", "Cognitive Score": "4.7"},
	}

	res := New().ValidateRecords(records)
	if res.Checked != 2 || len(res.Issues) != 1 {
		t.Fatalf("ValidateRecords() = %+v", res)
	}
	if !strings.Contains(res.FormatReport(), "2024-01-01 ana: focus 7.5 is not a whole number, stored as 8") {
		t.Errorf("FormatReport() = %q", res.FormatReport())
	}
}
