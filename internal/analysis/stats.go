package analysis

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/julianstephens/mindlog/internal/models"
)

// tail returns the last n entries, or all of them when fewer
func tail(entries []models.DailyEntry, n int) []models.DailyEntry {
	if n <= 0 {
		return nil
	}
	if len(entries) <= n {
		return entries
	}
	return entries[len(entries)-n:]
}

// present collects the non-nil values selected by get
func present(entries []models.DailyEntry, get func(models.DailyEntry) *float64) []float64 {
	var out []float64
	for _, e := range entries {
		if v := get(e); v != nil {
			out = append(out, *v)
		}
	}
	return out
}

// mean is the arithmetic mean, ok is false for an empty slice
func mean(xs []float64) (float64, bool) {
	if len(xs) == 0 {
		return 0, false
	}
	return stat.Mean(xs, nil), true
}

func sortedByDate(entries []models.DailyEntry) []models.DailyEntry {
	out := make([]models.DailyEntry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out
}

func focusOf(e models.DailyEntry) *float64  { return models.IntValue(e.Focus) }
func tasksOf(e models.DailyEntry) *float64  { return models.IntValue(e.TasksCompleted) }
func sleepOf(e models.DailyEntry) *float64  { return e.SleepHours }
func screenOf(e models.DailyEntry) *float64 { return e.ScreenTime }
func scoreOf(e models.DailyEntry) *float64 {
	v := e.CognitiveScore
	return &v
}
