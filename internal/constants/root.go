package constants

const (
	AppName            = "mindlog"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/mindlog/mindlog.db"
	DefaultConfigFile  = "~/.config/mindlog/config.json"
	DefaultModelsDir   = "~/.config/mindlog/models"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// EnvDBConnection holds a PostgreSQL connection string when no --config is given
	EnvDBConnection = "MINDLOG_DB_CONNECTION"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "mindlog-"
	BackupFileSuffix = ".db"

	// UnknownUser is stored when an entry arrives without a name
	UnknownUser = "Unknown"

	// Settings defaults
	DefaultInsightWindow = 7
	DefaultAutoBackup    = true

	// RecentHabitCount is how many habit rows the recent-habits views show
	RecentHabitCount = 7
)
