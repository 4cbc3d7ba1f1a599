package models

// Settings are the persisted application preferences
type Settings struct {
	DefaultUser   string `json:"default_user"`
	InsightWindow int    `json:"insight_window"`
	AutoBackup    bool   `json:"auto_backup"`
}
