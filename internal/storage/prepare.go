package storage

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/mindlog/internal/constants"
	"github.com/julianstephens/mindlog/internal/dates"
	"github.com/julianstephens/mindlog/internal/models"
)

// PrepareEntry fills the fields a store assigns on write: id, creation
// time, the placeholder user and today's date when missing.
func PrepareEntry(e models.DailyEntry) models.DailyEntry {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	e.CreatedAt = e.CreatedAt.UTC()
	e.User = strings.TrimSpace(e.User)
	if e.User == "" {
		e.User = constants.UnknownUser
	}
	e.Date = dates.NormalizeOr(e.Date, time.Now())
	return e
}

// PrepareHabit is PrepareEntry for habit rows
func PrepareHabit(h models.HabitEntry) models.HabitEntry {
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	if h.CreatedAt.IsZero() {
		h.CreatedAt = time.Now()
	}
	h.CreatedAt = h.CreatedAt.UTC()
	h.User = strings.TrimSpace(h.User)
	if h.User == "" {
		h.User = constants.UnknownUser
	}
	h.Date = dates.NormalizeOr(h.Date, time.Now())
	return h
}
