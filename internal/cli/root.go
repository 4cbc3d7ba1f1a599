package cli

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/julianstephens/mindlog/internal/backup"
	"github.com/julianstephens/mindlog/internal/dates"
	"github.com/julianstephens/mindlog/internal/logger"
	"github.com/julianstephens/mindlog/internal/models"
	"github.com/julianstephens/mindlog/internal/storage"
	"github.com/julianstephens/mindlog/internal/storage/sqlite"
)

type Context struct {
	Store     storage.Provider
	ModelsDir string
	Now       func() time.Time
}

// HistoryFlags select the entries a command reads. Dates that cannot be
// parsed are ignored.
type HistoryFlags struct {
	User string `short:"u" help:"Only entries for this user (default: the default_user setting)."`
	From string `help:"Start date, inclusive."`
	To   string `help:"End date, inclusive."`
	All  bool   `help:"Include every user, ignoring default_user."`
}

// Filter resolves the flags against the stored default user
func (f HistoryFlags) Filter(defaultUser string) storage.Filter {
	user := strings.TrimSpace(f.User)
	if user == "" && !f.All {
		user = defaultUser
	}
	return storage.Filter{
		User:  user,
		Start: dates.Normalize(f.From),
		End:   dates.Normalize(f.To),
	}
}

// Clock returns the current time, honoring an injected Now
func (c *Context) Clock() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// Settings returns stored settings or the defaults
func (c *Context) Settings() models.Settings {
	return storage.SettingsOrDefault(c.Store)
}

// History loads the entries selected by f
func (c *Context) History(f HistoryFlags) ([]models.DailyEntry, storage.Filter, error) {
	filter := f.Filter(c.Settings().DefaultUser)
	entries, err := c.Store.GetEntries(filter)
	return entries, filter, err
}

// BackupManager returns a backup manager for file-backed stores
func (c *Context) BackupManager() (*backup.Manager, bool) {
	if _, ok := c.Store.(*sqlite.Store); !ok {
		return nil, false
	}
	return backup.NewManager(c.Store.GetConfigPath()), true
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	if !c.Settings().AutoBackup {
		return
	}
	mgr, ok := c.BackupManager()
	if !ok {
		return
	}
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ExpandPath resolves a leading ~ to the user's home directory
func ExpandPath(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}

// UserLabel is the display name for an optional user filter
func UserLabel(user string) string {
	if user == "" {
		return "all users"
	}
	return user
}
