package storage

import (
	"errors"

	"github.com/julianstephens/mindlog/internal/constants"
	"github.com/julianstephens/mindlog/internal/migration"
	"github.com/julianstephens/mindlog/internal/models"
)

var (
	// ErrNotInitialized is returned by Load when no database exists yet
	ErrNotInitialized = errors.New("storage not initialized, run 'mindlog init' first")
	// ErrSettingsNotFound is returned when the settings table is empty
	ErrSettingsNotFound = errors.New("settings not found")
)

// Provider is the persistence boundary. Entries and habits are append-only;
// reads come back in ascending date order.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Daily entries
	AddEntry(models.DailyEntry) (models.DailyEntry, error)
	// AddEntries stores a batch in one transaction and returns how many were written
	AddEntries([]models.DailyEntry) (int, error)
	GetEntries(Filter) ([]models.DailyEntry, error)
	// GetUsers returns the distinct non-empty user names, sorted
	GetUsers() ([]string, error)

	// Habits
	AddHabit(models.HabitEntry) (models.HabitEntry, error)
	GetHabits(Filter) ([]models.HabitEntry, error)

	// Schema
	SchemaStatus() (migration.Status, error)
	Migrate(logFn func(string)) (int, error)

	// Utils
	GetConfigPath() string
}

// DefaultSettings are written by Init and returned when none are stored
func DefaultSettings() models.Settings {
	return models.Settings{
		InsightWindow: constants.DefaultInsightWindow,
		AutoBackup:    constants.DefaultAutoBackup,
	}
}

// SettingsOrDefault loads settings from p, falling back to DefaultSettings
// when none are stored or a stored value is unusable.
func SettingsOrDefault(p Provider) models.Settings {
	s, err := p.GetSettings()
	if err != nil {
		return DefaultSettings()
	}
	if s.InsightWindow <= 0 {
		s.InsightWindow = DefaultSettings().InsightWindow
	}
	return s
}
