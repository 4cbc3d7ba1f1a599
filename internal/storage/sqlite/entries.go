package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/julianstephens/mindlog/internal/logger"
	"github.com/julianstephens/mindlog/internal/models"
	"github.com/julianstephens/mindlog/internal/storage"
)

const insertEntrySQL = `
	INSERT INTO entries (
		id, user_name, entry_date, focus, hyperactivity, impulsivity,
		sleep_hours, screen_time, distractions, tasks_completed,
		mood, notes, cognitive_score, advice, created_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

const selectEntrySQL = `
	SELECT id, user_name, entry_date, focus, hyperactivity, impulsivity,
		sleep_hours, screen_time, distractions, tasks_completed,
		mood, notes, cognitive_score, advice, created_at
	FROM entries`

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
		string(e.Mood), e.Notes, e.CognitiveScore, e.Advice,
		e.CreatedAt.Format(timestampLayout),
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
	where, args := f.Where(storage.QuestionMark)
	rows, err := s.db.Query(selectEntrySQL+where+" ORDER BY entry_date, created_at, rowid", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.DailyEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return storage.TailOf(entries, f), nil
}

func scanEntry(rows *sql.Rows) (models.DailyEntry, error) {
	var e models.DailyEntry
	var focus, hyper, imp, dist, tasks sql.NullInt64
	var sleep, screen sql.NullFloat64
	var mood, createdAt string

	err := rows.Scan(&e.ID, &e.User, &e.Date, &focus, &hyper, &imp,
		&sleep, &screen, &dist, &tasks,
		&mood, &e.Notes, &e.CognitiveScore, &e.Advice, &createdAt)
	if err != nil {
		return models.DailyEntry{}, err
	}

	e.Focus = storage.IntPtr(focus)
	e.Hyperactivity = storage.IntPtr(hyper)
	e.Impulsivity = storage.IntPtr(imp)
	e.Distractions = storage.IntPtr(dist)
	e.TasksCompleted = storage.IntPtr(tasks)
	e.SleepHours = storage.FloatPtr(sleep)
	e.ScreenTime = storage.FloatPtr(screen)
	e.Mood = models.Mood(mood)

	e.CreatedAt, err = time.Parse(timestampLayout, createdAt)
	if err != nil {
		return models.DailyEntry{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	return e, nil
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
