package models

import "time"

// HabitEntry records daily habit minutes for a user.
// It is joined with DailyEntry by (user, date) only for display.
type HabitEntry struct {
	ID              string    `json:"id"`
	User            string    `json:"user"`
	Date            string    `json:"date"` // YYYY-MM-DD format
	ExerciseMinutes int       `json:"exercise_minutes"`
	StudyMinutes    int       `json:"study_minutes"`
	ScreenMinutes   int       `json:"screen_minutes"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
}
