package sqlite

import (
	"fmt"
	"time"

	"github.com/julianstephens/mindlog/internal/logger"
	"github.com/julianstephens/mindlog/internal/models"
	"github.com/julianstephens/mindlog/internal/storage"
)

func (s *Store) AddHabit(h models.HabitEntry) (models.HabitEntry, error) {
	h = storage.PrepareHabit(h)
	_, err := s.db.Exec(`
		INSERT INTO habits (id, user_name, entry_date, exercise_minutes, study_minutes, screen_minutes, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		h.ID, h.User, h.Date, h.ExerciseMinutes, h.StudyMinutes, h.ScreenMinutes, h.Notes,
		h.CreatedAt.Format(timestampLayout))
	if err != nil {
		return models.HabitEntry{}, fmt.Errorf("failed to add habit: %w", err)
	}
	logger.Debug("habit added", "id", h.ID, "user", h.User, "date", h.Date)
	return h, nil
}

func (s *Store) GetHabits(f storage.Filter) ([]models.HabitEntry, error) {
	where, args := f.Where(storage.QuestionMark)
	rows, err := s.db.Query(`
		SELECT id, user_name, entry_date, exercise_minutes, study_minutes, screen_minutes, notes, created_at
		FROM habits`+where+" ORDER BY entry_date, created_at, rowid", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.HabitEntry
	for rows.Next() {
		var h models.HabitEntry
		var createdAt string
		if err := rows.Scan(&h.ID, &h.User, &h.Date, &h.ExerciseMinutes, &h.StudyMinutes, &h.ScreenMinutes, &h.Notes, &createdAt); err != nil {
			return nil, err
		}
		h.CreatedAt, err = time.Parse(timestampLayout, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		habits = append(habits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return storage.TailOf(habits, f), nil
}
