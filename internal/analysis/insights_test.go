package analysis

import (
	"testing"

	"github.com/julianstephens/mindlog/internal/models"
)

func TestGenerateInsightsEmpty(t *testing.T) {
	got := GenerateInsights(nil, DefaultInsightWindow)
	if len(got) != 1 || got[0] != MsgNoData {
		t.Errorf("GenerateInsights(nil) = %v", got)
	}
}

func TestGenerateInsightsFocusSlope(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   string
	}{
		{"improved", []int{3, 4, 5, 6, 7, 8, 9}, MsgFocusImproved},
		{"declined", []int{9, 8, 7, 6, 5, 4, 3}, MsgFocusDeclined},
		{"stable", []int{5, 6, 5, 6, 5, 6, 6}, MsgFocusStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateInsights(entriesWithFocus(tt.values...), DefaultInsightWindow)
			if !contains(got, tt.want) {
				t.Errorf("GenerateInsights() = %v, want %q", got, tt.want)
			}
		})
	}
}

func TestGenerateInsightsSortsByDate(t *testing.T) {
	h := []models.DailyEntry{
		{Date: "2024-01-03", Focus: models.Int(9)},
		{Date: "2024-01-01", Focus: models.Int(2)},
		{Date: "2024-01-02", Focus: models.Int(5)},
	}
	if got := GenerateInsights(h, DefaultInsightWindow); !contains(got, MsgFocusImproved) {
		t.Errorf("expected improvement after sorting, got %v", got)
	}
	if h[0].Date != "2024-01-03" {
		t.Error("GenerateInsights must not reorder the caller's slice")
	}
}

func TestGenerateInsightsWindow(t *testing.T) {
	// early decline falls outside a window of 3
	h := entriesWithFocus(9, 8, 1, 2, 3)
	if got := GenerateInsights(h, 3); !contains(got, MsgFocusImproved) {
		t.Errorf("GenerateInsights(window=3) = %v", got)
	}
	if got := GenerateInsights(h, 5); !contains(got, MsgFocusDeclined) {
		t.Errorf("GenerateInsights(window=5) = %v", got)
	}
}

func TestGenerateInsightsScreenSleepProductivity(t *testing.T) {
	tests := []struct {
		name  string
		entry models.DailyEntry
		want  []string
	}{
		{
			"high screen low sleep",
			models.DailyEntry{ScreenTime: models.Float(7), SleepHours: models.Float(5), TasksCompleted: models.Int(5)},
			[]string{MsgScreenHigh, MsgSleepBelow, MsgProductivityGood},
		},
		{
			"moderate screen",
			models.DailyEntry{ScreenTime: models.Float(5), SleepHours: models.Float(8), TasksCompleted: models.Int(1)},
			[]string{MsgScreenModerate, MsgProductivityLow},
		},
		{
			"no tasks reads low",
			models.DailyEntry{Notes: "x"},
			[]string{MsgProductivityLow},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.entry.Date = "2024-02-01"
			got := GenerateInsights([]models.DailyEntry{tt.entry}, DefaultInsightWindow)
			if len(got) != len(tt.want) {
				t.Fatalf("GenerateInsights() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("insight[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestGenerateInsightsNotEnoughPattern(t *testing.T) {
	h := []models.DailyEntry{{Date: "2024-01-01"}}
	got := GenerateInsights(h, 0)
	if len(got) != 1 || got[0] != MsgNotEnoughPattern {
		t.Errorf("GenerateInsights(window=0) = %v", got)
	}
}
