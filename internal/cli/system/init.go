package system

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/mindlog/internal/cli"
	"github.com/julianstephens/mindlog/internal/keyring"
	"github.com/julianstephens/mindlog/internal/storage"
	"github.com/julianstephens/mindlog/internal/storage/postgres"
	"github.com/julianstephens/mindlog/internal/storage/sqlite"
)

type InitCmd struct {
	Force  bool   `help:"Force reset by deleting existing database before initialization."`
	Source string `help:"Source database path or connection string to copy data from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if _, ok := ctx.Store.(*sqlite.Store); !ok {
			return errors.New("--force is only supported for SQLite storage")
		}
		dbPath := ctx.Store.GetConfigPath()
		if c.Source != "" {
			absDB, errDB := filepath.Abs(dbPath)
			absSource, errSrc := filepath.Abs(c.Source)
			if errDB == nil && errSrc == nil && absDB == absSource {
				return fmt.Errorf("cannot use --force when source and destination are the same: %s", dbPath)
			}
		}
		if _, err := os.Stat(dbPath); err == nil {
			// Close first to prevent file locking issues
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing database: %w", err)
			}
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("failed to delete existing database: %w", err)
			}
			fmt.Printf("Deleted existing database at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing database: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized mindlog storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Source != "" {
		fmt.Printf("Copying data from: %s\n", c.Source)
		if err := CopyData(c.Source, ctx.Store); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		fmt.Println("Migration completed successfully!")
	}
	return nil
}

// OpenSource opens a store to read from. PostgreSQL sources must not embed
// a password.
func OpenSource(source string) (storage.Provider, error) {
	if keyring.IsPostgres(source) {
		if valid, err := postgres.ValidateConnString(source); !valid {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return nil, fmt.Errorf("PostgreSQL source connection string contains embedded credentials. Use environment variables or .pgpass instead")
			}
			return nil, err
		}
		return postgres.New(source), nil
	}
	return sqlite.NewStore(cli.ExpandPath(source)), nil
}

// CopyData copies settings, entries and habits from source into dst
func CopyData(source string, dst storage.Provider) error {
	src, err := OpenSource(source)
	if err != nil {
		return err
	}
	if err := src.Load(); err != nil {
		return fmt.Errorf("failed to load source database: %w", err)
	}
	defer src.Close()

	fmt.Println("  Copying settings...")
	settings, err := src.GetSettings()
	if err != nil && !errors.Is(err, storage.ErrSettingsNotFound) {
		return fmt.Errorf("failed to get settings from source: %w", err)
	}
	if err == nil {
		if err := dst.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings to destination: %w", err)
		}
	}

	fmt.Println("  Copying entries...")
	entries, err := src.GetEntries(storage.Filter{})
	if err != nil {
		return fmt.Errorf("failed to get entries from source: %w", err)
	}
	n, err := dst.AddEntries(entries)
	if err != nil {
		return fmt.Errorf("failed to add entries: %w", err)
	}
	fmt.Printf("    Copied %d entries\n", n)

	fmt.Println("  Copying habits...")
	habits, err := src.GetHabits(storage.Filter{})
	if err != nil {
		return fmt.Errorf("failed to get habits from source: %w", err)
	}
	for _, h := range habits {
		if _, err := dst.AddHabit(h); err != nil {
			return fmt.Errorf("failed to add habit %s: %w", h.ID, err)
		}
	}
	fmt.Printf("    Copied %d habits\n", len(habits))
	return nil
}
