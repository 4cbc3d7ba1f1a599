package storage

import (
	"fmt"
	"strconv"

	"github.com/julianstephens/mindlog/internal/models"
)

// Settings keys in the key/value settings table
const (
	KeyDefaultUser   = "default_user"
	KeyInsightWindow = "insight_window"
	KeyAutoBackup    = "auto_backup"
)

// SettingsPairs flattens settings into key/value rows, in a stable order
func SettingsPairs(s models.Settings) [][2]string {
	return [][2]string{
		{KeyDefaultUser, s.DefaultUser},
		{KeyInsightWindow, strconv.Itoa(s.InsightWindow)},
		{KeyAutoBackup, strconv.FormatBool(s.AutoBackup)},
	}
}

// SettingsFromPairs rebuilds settings from stored rows. Unknown keys are
// ignored; keys that are absent keep their defaults.
func SettingsFromPairs(rows map[string]string) (models.Settings, error) {
	if len(rows) == 0 {
		return models.Settings{}, ErrSettingsNotFound
	}

	s := DefaultSettings()
	if v, ok := rows[KeyDefaultUser]; ok {
		s.DefaultUser = v
	}
	if v, ok := rows[KeyInsightWindow]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return models.Settings{}, fmt.Errorf("parsing %s: %w", KeyInsightWindow, err)
		}
		s.InsightWindow = n
	}
	if v, ok := rows[KeyAutoBackup]; ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return models.Settings{}, fmt.Errorf("parsing %s: %w", KeyAutoBackup, err)
		}
		s.AutoBackup = b
	}
	return s, nil
}

// SetSetting applies one key/value update, validating the value
func SetSetting(s *models.Settings, key, value string) error {
	switch key {
	case KeyDefaultUser:
		s.DefaultUser = value
	case KeyInsightWindow:
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("%s must be a positive integer", KeyInsightWindow)
		}
		s.InsightWindow = n
	case KeyAutoBackup:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s must be true or false", KeyAutoBackup)
		}
		s.AutoBackup = b
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}
