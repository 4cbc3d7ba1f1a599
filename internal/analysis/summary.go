package analysis

import "github.com/julianstephens/mindlog/internal/models"

// Summary holds dashboard averages over a set of entries. An average is nil
// when no entry recorded the metric.
type Summary struct {
	Entries    int
	AvgFocus   *float64
	AvgScore   *float64
	AvgSleep   *float64
	AvgScreen  *float64
	BestDay    *models.DailyEntry
	MoodCounts map[models.Mood]int
}

// Summarize computes averages and the best-scoring day of entries. Ties for
// best day go to the earliest entry in the given order.
func Summarize(entries []models.DailyEntry) Summary {
	s := Summary{
		Entries:    len(entries),
		AvgFocus:   meanPtr(present(entries, focusOf)),
		AvgScore:   meanPtr(present(entries, scoreOf)),
		AvgSleep:   meanPtr(present(entries, sleepOf)),
		AvgScreen:  meanPtr(present(entries, screenOf)),
		MoodCounts: MoodCounts(entries),
	}
	for i := range entries {
		if s.BestDay == nil || entries[i].CognitiveScore > s.BestDay.CognitiveScore {
			best := entries[i]
			s.BestDay = &best
		}
	}
	return s
}

// MoodCounts tallies non-empty moods
func MoodCounts(entries []models.DailyEntry) map[models.Mood]int {
	counts := make(map[models.Mood]int)
	for _, e := range entries {
		if e.Mood != models.MoodNone {
			counts[e.Mood]++
		}
	}
	return counts
}

func meanPtr(xs []float64) *float64 {
	m, ok := mean(xs)
	if !ok {
		return nil
	}
	m = round2(m)
	return &m
}
