package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/julianstephens/mindlog/internal/constants"
	"github.com/julianstephens/mindlog/internal/logger"
	"github.com/julianstephens/mindlog/internal/models"
	"github.com/julianstephens/mindlog/internal/storage"
)

const insertEntrySQL = `
	INSERT INTO entries (
		id, user_name, entry_date, focus, hyperactivity, impulsivity,
		sleep_hours, screen_time, distractions, tasks_completed,
		mood, notes, cognitive_score, advice, created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func insertEntry(db execer, e models.DailyEntry) error {
	_, err := db.Exec(insertEntrySQL,
		e.ID, e.User, e.Date,
		storage.NullableInt(e.Focus),
		storage.NullableInt(e.Hyperactivity),
		storage.NullableInt(e.Impulsivity),
		storage.NullableFloat(e.SleepHours),
		storage.NullableFloat(e.ScreenTime),
		storage.NullableInt(e.Distractions),
		storage.NullableInt(e.TasksCompleted),
		string(e.Mood), e.Notes, e.CognitiveScore, e.Advice, e.CreatedAt,
	)
	return err
}

func (s *Store) AddEntry(e models.DailyEntry) (models.DailyEntry, error) {
	e = storage.PrepareEntry(e)
	if err := insertEntry(s.db, e); err != nil {
		return models.DailyEntry{}, fmt.Errorf("failed to add entry: %w", err)
	}
	logger.Debug("entry added", "id", e.ID, "user", e.User, "date", e.Date, "score", e.CognitiveScore)
	return e, nil
}

func (s *Store) AddEntries(entries []models.DailyEntry) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	for i, e := range entries {
		if err := insertEntry(tx, storage.PrepareEntry(e)); err != nil {
			return 0, fmt.Errorf("failed to add entry %d: %w", i+1, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	logger.Info("entries added", "count", len(entries))
	return len(entries), nil
}

func (s *Store) GetEntries(f storage.Filter) ([]models.DailyEntry, error) {
	where, args := f.Where(storage.Dollar)
	rows, err := s.db.Query(`
		SELECT id, user_name, entry_date, focus, hyperactivity, impulsivity,
			sleep_hours, screen_time, distractions, tasks_completed,
			mood, notes, cognitive_score, advice, created_at
		FROM entries`+where+" ORDER BY entry_date, created_at, id", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.DailyEntry
	for rows.Next() {
		var e models.DailyEntry
		var date time.Time
		var focus, hyper, imp, dist, tasks sql.NullInt64
		var sleep, screen sql.NullFloat64
		var mood string

		if err := rows.Scan(&e.ID, &e.User, &date, &focus, &hyper, &imp,
			&sleep, &screen, &dist, &tasks,
			&mood, &e.Notes, &e.CognitiveScore, &e.Advice, &e.CreatedAt); err != nil {
			return nil, err
		}

		e.Date = date.Format(constants.DateFormat)
		e.Focus = storage.IntPtr(focus)
		e.Hyperactivity = storage.IntPtr(hyper)
		e.Impulsivity = storage.IntPtr(imp)
		e.Distractions = storage.IntPtr(dist)
		e.TasksCompleted = storage.IntPtr(tasks)
		e.SleepHours = storage.FloatPtr(sleep)
		e.ScreenTime = storage.FloatPtr(screen)
		e.Mood = models.Mood(mood)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return storage.TailOf(entries, f), nil
}

func (s *Store) GetUsers() ([]string, error) {
	rows, err := s.db.Query(`
		SELECT DISTINCT user_name FROM entries
		WHERE TRIM(user_name) <> ''
		ORDER BY user_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []string
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (s *Store) AddHabit(h models.HabitEntry) (models.HabitEntry, error) {
	h = storage.PrepareHabit(h)
	_, err := s.db.Exec(`
		INSERT INTO habits (id, user_name, entry_date, exercise_minutes, study_minutes, screen_minutes, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		h.ID, h.User, h.Date, h.ExerciseMinutes, h.StudyMinutes, h.ScreenMinutes, h.Notes, h.CreatedAt)
	if err != nil {
		return models.HabitEntry{}, fmt.Errorf("failed to add habit: %w", err)
	}
	logger.Debug("habit added", "id", h.ID, "user", h.User, "date", h.Date)
	return h, nil
}

func (s *Store) GetHabits(f storage.Filter) ([]models.HabitEntry, error) {
	where, args := f.Where(storage.Dollar)
	rows, err := s.db.Query(`
		SELECT id, user_name, entry_date, exercise_minutes, study_minutes, screen_minutes, notes, created_at
		FROM habits`+where+" ORDER BY entry_date, created_at, id", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.HabitEntry
	for rows.Next() {
		var h models.HabitEntry
		var date time.Time
		if err := rows.Scan(&h.ID, &h.User, &date, &h.ExerciseMinutes, &h.StudyMinutes, &h.ScreenMinutes, &h.Notes, &h.CreatedAt); err != nil {
			return nil, err
		}
		h.Date = date.Format(constants.DateFormat)
		habits = append(habits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return storage.TailOf(habits, f), nil
}
