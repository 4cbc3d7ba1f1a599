package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/julianstephens/mindlog/internal/cli"
	"github.com/julianstephens/mindlog/internal/cli/backups"
	"github.com/julianstephens/mindlog/internal/cli/entries"
	"github.com/julianstephens/mindlog/internal/cli/habits"
	"github.com/julianstephens/mindlog/internal/cli/review"
	"github.com/julianstephens/mindlog/internal/cli/settings"
	"github.com/julianstephens/mindlog/internal/cli/system"
	"github.com/julianstephens/mindlog/internal/constants"
	apperrors "github.com/julianstephens/mindlog/internal/errors"
	"github.com/julianstephens/mindlog/internal/keyring"
	"github.com/julianstephens/mindlog/internal/logger"
	"github.com/julianstephens/mindlog/internal/storage"
	"github.com/julianstephens/mindlog/internal/storage/postgres"
	"github.com/julianstephens/mindlog/internal/storage/sqlite"
)

var CLI struct {
	Version   kong.VersionFlag
	Config    string `help:"SQLite database path or PostgreSQL connection string. PostgreSQL passwords must NOT be embedded; use the environment, .pgpass or the OS keyring." env:"MINDLOG_DB" default:"${default_config}"`
	ModelsDir string `help:"Directory holding trained prediction models." env:"MINDLOG_MODELS_DIR" default:"${default_models}"`
	Debug     bool   `help:"Log debug output to stderr." env:"MINDLOG_DEBUG"`

	Init     system.InitCmd       `cmd:"" help:"Initialize mindlog storage."`
	Migrate  system.MigrateCmd    `cmd:"" help:"Run database migrations."`
	Doctor   system.DoctorCmd     `cmd:"" help:"Run health checks and diagnostics."`
	Tui      system.TuiCmd        `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Entry    entries.EntryCmd     `cmd:"" help:"Log and list daily entries."`
	Import   entries.ImportCmd    `cmd:"" help:"Import entries from a spreadsheet or CSV file."`
	Export   entries.ExportCmd    `cmd:"" help:"Export entries to a spreadsheet or CSV file."`
	Advice   review.AdviceCmd     `cmd:"" help:"Show rule-based suggestions."`
	Insights review.InsightsCmd   `cmd:"" help:"Compare recent days with earlier history."`
	Summary  review.SummaryCmd    `cmd:"" help:"Show averages and the best day."`
	Predict  review.PredictCmd    `cmd:"" help:"Predict next-day focus."`
	Chart    review.ChartCmd      `cmd:"" help:"Draw trend charts in the terminal."`
	Report   review.ReportCmd     `cmd:"" help:"Write a PDF report."`
	Habit    habits.HabitCmd      `cmd:"" help:"Log and review daily habits."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
	Users    settings.UsersCmd    `cmd:"" help:"List users with logged entries."`
	Validate system.ValidateCmd   `cmd:"" help:"Check stored entries for out-of-range values."`
	Backup   struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
	Keyring system.KeyringCmd `cmd:"" help:"Manage the PostgreSQL connection string in the OS keyring."`
}

// commands that open the store themselves or never touch it
var skipLoad = map[string]bool{
	"init":    true,
	"doctor":  true,
	"keyring": true,
}

func main() {
	// a missing .env is fine
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("ADHD and cognitive-performance daily tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Configuration(kong.JSON, constants.DefaultConfigFile),
		kong.Vars{
			"version":        constants.Version,
			"default_config": constants.DefaultConfigPath,
			"default_models": constants.DefaultModelsDir,
			"recent_habits":  strconv.Itoa(constants.RecentHabitCount),
		},
	)

	store, logDir, err := openStore(CLI.Config)
	if err != nil {
		fmt.Fprintln(os.Stderr, apperrors.Format(err))
		os.Exit(1)
	}

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: logDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	appCtx := &cli.Context{
		Store:     store,
		ModelsDir: cli.ExpandPath(CLI.ModelsDir),
	}

	command := strings.Fields(ctx.Command())
	if len(command) > 0 && !skipLoad[command[0]] {
		if err := store.Load(); err != nil {
			apperrors.Fatal(apperrors.StorageUnavailable(err))
		}
	}
	defer store.Close()

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		apperrors.Fatal(err)
	}
}

// openStore picks PostgreSQL when a connection string is configured and
// SQLite otherwise. The second result is the directory for log files.
func openStore(config string) (storage.Provider, string, error) {
	defaultDir := filepath.Dir(cli.ExpandPath(constants.DefaultConfigPath))

	explicit := config != constants.DefaultConfigPath
	connStr, source := keyring.ResolveConnectionString(config, explicit)
	if source == keyring.SourceNone {
		path := cli.ExpandPath(config)
		return sqlite.NewStore(path), filepath.Dir(path), nil
	}

	if valid, err := postgres.ValidateConnString(connStr); !valid {
		switch {
		case !errors.Is(err, postgres.ErrEmbeddedCredentials):
			return nil, "", err
		case source == keyring.SourceFlag:
			return nil, "", fmt.Errorf("PostgreSQL connection strings given with --config must not embed a password; use %s, .pgpass or 'mindlog keyring set' instead", constants.EnvDBConnection)
		}
		// passwords from the environment or the keyring are accepted
	}
	return postgres.New(connStr), defaultDir, nil
}
