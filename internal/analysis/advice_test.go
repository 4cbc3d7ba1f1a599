package analysis

import (
	"testing"

	"github.com/julianstephens/mindlog/internal/models"
)

func entriesWithFocus(values ...int) []models.DailyEntry {
	out := make([]models.DailyEntry, len(values))
	for i, v := range values {
		out[i] = models.DailyEntry{
			Date:  dateN(i),
			Focus: models.Int(v),
		}
	}
	return out
}

func dateN(i int) string {
	return "2024-01-" + string(rune('0'+(i+1)/10)) + string(rune('0'+(i+1)%10))
}

func contains(msgs []string, want string) bool {
	for _, m := range msgs {
		if m == want {
			return true
		}
	}
	return false
}

func TestRuleBasedAdviceEmpty(t *testing.T) {
	for _, h := range [][]models.DailyEntry{nil, {}} {
		got := RuleBasedAdvice(h)
		if len(got) != 1 || got[0] != MsgNoData {
			t.Errorf("RuleBasedAdvice(%v) = %v, want [%q]", h, got, MsgNoData)
		}
	}
}

func TestRuleBasedAdviceFocus(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   string
	}{
		{"low", []int{3, 3, 2, 4, 3, 3, 3}, MsgLowFocus},
		{"moderate", []int{5, 5, 5, 5, 5, 5, 5}, MsgModerateFocus},
		{"stable", []int{7, 6, 8, 7, 7, 7, 7}, MsgStableFocus},
		{"only last seven count", []int{1, 1, 1, 1, 7, 7, 7, 7, 7, 7, 7}, MsgStableFocus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RuleBasedAdvice(entriesWithFocus(tt.values...))
			if got[0] != tt.want {
				t.Errorf("first advice = %q, want %q", got[0], tt.want)
			}
			n := 0
			for _, m := range got {
				if m == MsgLowFocus || m == MsgModerateFocus || m == MsgStableFocus {
					n++
				}
			}
			if n != 1 {
				t.Errorf("expected exactly one focus message, got %v", got)
			}
		})
	}
}

func TestRuleBasedAdviceSleepAndScreen(t *testing.T) {
	tests := []struct {
		name   string
		sleep  float64
		screen float64
		want   []string
		absent []string
	}{
		{"low sleep very high screen", 5, 9, []string{MsgLowSleep, MsgVeryHighScreen}, []string{MsgHighScreen}},
		{"ok sleep high screen", 7, 6, []string{MsgHighScreen}, []string{MsgLowSleep, MsgVeryHighScreen}},
		{"moderate screen", 8, 4, []string{MsgModerateScreen}, []string{MsgHighScreen}},
		{"low screen", 8, 1, nil, []string{MsgModerateScreen, MsgHighScreen, MsgVeryHighScreen}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := []models.DailyEntry{{
				Date:       "2024-01-01",
				SleepHours: models.Float(tt.sleep),
				ScreenTime: models.Float(tt.screen),
			}}
			got := RuleBasedAdvice(h)
			for _, w := range tt.want {
				if !contains(got, w) {
					t.Errorf("missing %q in %v", w, got)
				}
			}
			for _, a := range tt.absent {
				if contains(got, a) {
					t.Errorf("unexpected %q in %v", a, got)
				}
			}
		})
	}
}

func TestRuleBasedAdviceProductivity(t *testing.T) {
	tests := []struct {
		name  string
		entry models.DailyEntry
		want  bool
	}{
		{"few tasks no focus", models.DailyEntry{TasksCompleted: models.Int(1)}, true},
		{"few tasks low focus", models.DailyEntry{TasksCompleted: models.Int(1), Focus: models.Int(4)}, true},
		{"few tasks good focus", models.DailyEntry{TasksCompleted: models.Int(1), Focus: models.Int(6)}, false},
		{"enough tasks", models.DailyEntry{TasksCompleted: models.Int(3), Focus: models.Int(2)}, false},
		{"no tasks recorded", models.DailyEntry{Focus: models.Int(2)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := contains(RuleBasedAdvice([]models.DailyEntry{tt.entry}), MsgLowProductivity)
			if got != tt.want {
				t.Errorf("low productivity fired = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRuleBasedAdviceMood(t *testing.T) {
	moods := func(ms ...models.Mood) []models.DailyEntry {
		out := make([]models.DailyEntry, len(ms))
		for i, m := range ms {
			out[i] = models.DailyEntry{Date: dateN(i), Mood: m}
		}
		return out
	}

	tests := []struct {
		name string
		h    []models.DailyEntry
		want bool
	}{
		{"recent bad", moods(models.MoodGood, models.MoodBad, models.MoodBad, models.MoodOkay), true},
		{"recent good", moods(models.MoodBad, models.MoodBad, models.MoodGood, models.MoodGood), false},
		{"no moods at all", moods("", "", ""), false},
		{"empty counts as okay", moods(models.MoodBad, models.MoodOkay, "", models.MoodOkay), false},
		{"unknown counts as okay", moods(models.MoodBad, models.MoodOkay, "meh", models.MoodOkay), false},
		{"all bad", moods(models.MoodBad, models.MoodBad, models.MoodBad), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := contains(RuleBasedAdvice(tt.h), MsgLowMood)
			if got != tt.want {
				t.Errorf("low mood fired = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRuleBasedAdviceMoodUsesWholeHistory(t *testing.T) {
	// moods older than the advice window still count toward the last three
	h := make([]models.DailyEntry, 0, 10)
	for i := 0; i < 10; i++ {
		e := models.DailyEntry{Date: dateN(i)}
		if i >= 7 {
			e.Mood = models.MoodBad
		}
		h = append(h, e)
	}
	if !contains(RuleBasedAdvice(h), MsgLowMood) {
		t.Error("expected low mood advice")
	}
}

func TestRuleBasedAdviceFallback(t *testing.T) {
	h := []models.DailyEntry{{Date: "2024-01-01", Notes: "nothing measured"}}
	got := RuleBasedAdvice(h)
	if len(got) != 1 || got[0] != MsgNoSpecificAdvice {
		t.Errorf("RuleBasedAdvice() = %v, want fallback", got)
	}
}

func TestRuleBasedAdviceDistinct(t *testing.T) {
	histories := [][]models.DailyEntry{
		entriesWithFocus(1, 2, 3),
		{
			{Focus: models.Int(2), SleepHours: models.Float(4), ScreenTime: models.Float(10), TasksCompleted: models.Int(0), Mood: models.MoodBad},
			{Focus: models.Int(3), SleepHours: models.Float(5), ScreenTime: models.Float(9), TasksCompleted: models.Int(1), Mood: models.MoodBad},
		},
	}

	for _, h := range histories {
		got := RuleBasedAdvice(h)
		seen := map[string]bool{}
		for _, m := range got {
			if seen[m] {
				t.Errorf("duplicate advice %q in %v", m, got)
			}
			seen[m] = true
		}
	}
}

func TestDedupe(t *testing.T) {
	got := dedupe([]string{"a", "b", "a", "c", "b"})
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("dedupe() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("dedupe()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
