package transfer

import (
	"sort"
	"strconv"
	"time"

	"github.com/julianstephens/mindlog/internal/dates"
	"github.com/julianstephens/mindlog/internal/models"
)

// RecordsToEntries converts imported rows into entries. The stored cognitive
// score is taken as-is; dates that cannot be read fall back to now's date.
func RecordsToEntries(records []models.Record, now time.Time) []models.DailyEntry {
	entries := make([]models.DailyEntry, 0, len(records))
	for _, r := range records {
		e := models.EntryFromRecord(r)
		e.Date = dates.NormalizeOr(e.Date, now)
		entries = append(entries, e)
	}
	return entries
}

// SortByDate orders entries by date, keeping the relative order of ties
func SortByDate(entries []models.DailyEntry) []models.DailyEntry {
	out := make([]models.DailyEntry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

func cellText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return ""
}
