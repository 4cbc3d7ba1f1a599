package system

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/mindlog/internal/cli"
	"github.com/julianstephens/mindlog/internal/constants"
	"github.com/julianstephens/mindlog/internal/storage"
	"github.com/julianstephens/mindlog/internal/validation"
)

var (
	listProcessesFunc = ps.Processes
	getpidFunc        = os.Getpid
)

// errSkipped marks a check that does not apply to the current store
var errSkipped = errors.New("skipped")

type checkResult int

const (
	resultOK checkResult = iota
	resultWarn
	resultFail
	resultSkip
)

type check struct {
	name     string
	needsDB  bool
	warnOnly bool
	run      func(ctx *cli.Context) error
}

var checks = []check{
	{name: "Schema version", needsDB: true, run: checkSchemaVersion},
	{name: "Settings", needsDB: true, run: checkSettings},
	{name: "Backups present", warnOnly: true, run: checkBackupsPresent},
	{name: "Entry data", needsDB: true, warnOnly: true, run: checkEntryData},
	{name: "Clock/timezone", run: func(*cli.Context) error { return checkClock(time.Now()) }},
	{name: "Other mindlog processes", warnOnly: true, run: func(*cli.Context) error { return checkOtherProcesses() }},
}

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := true
	if err := checkDBReachable(ctx); err != nil {
		report("Database reachable", resultFail, err)
		hasError = true
		dbReachable = false
	} else {
		report("Database reachable", resultOK, nil)
	}

	for _, c := range checks {
		if c.needsDB && !dbReachable {
			report(c.name, resultSkip, errors.New("database not reachable"))
			continue
		}
		err := c.run(ctx)
		switch {
		case err == nil:
			report(c.name, resultOK, nil)
		case errors.Is(err, errSkipped):
			report(c.name, resultSkip, err)
		case c.warnOnly:
			report(c.name, resultWarn, err)
		default:
			report(c.name, resultFail, err)
			hasError = true
		}
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func report(name string, r checkResult, err error) {
	switch r {
	case resultOK:
		fmt.Printf("✓ %s: OK\n", name)
	case resultWarn:
		fmt.Printf("⚠ %s: WARNING\n", name)
		fmt.Printf("   %v\n", err)
	case resultFail:
		fmt.Printf("❌ %s: FAIL\n", name)
		fmt.Printf("   Error: %v\n", err)
	case resultSkip:
		fmt.Printf("⊘ %s: SKIPPED (%v)\n", name, err)
	}
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	st, err := ctx.Store.SchemaStatus()
	if err != nil {
		return err
	}
	if !st.UpToDate() {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d (run 'mindlog migrate')", st.Current, st.Latest)
	}
	return nil
}

func checkSettings(ctx *cli.Context) error {
	s, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if s.InsightWindow < 1 {
		return fmt.Errorf("%s is %d, expected a positive number", storage.KeyInsightWindow, s.InsightWindow)
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr, ok := ctx.BackupManager()
	if !ok {
		return fmt.Errorf("%w: not a SQLite database", errSkipped)
	}
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'mindlog backup create'")
	}
	return nil
}

func checkEntryData(ctx *cli.Context) error {
	entries, err := ctx.Store.GetEntries(storage.Filter{})
	if err != nil {
		return fmt.Errorf("failed to get entries: %w", err)
	}
	result := validation.New().ValidateEntries(entries)
	if result.HasIssues() {
		return fmt.Errorf("%d suspicious value(s) in %d entries (run 'mindlog validate' for details)", len(result.Issues), result.Checked)
	}
	return nil
}

func checkClock(now time.Time) error {
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}

// checkOtherProcesses warns when another mindlog process, such as an open
// TUI, could be holding the database.
func checkOtherProcesses() error {
	procs, err := listProcessesFunc()
	if err != nil {
		return fmt.Errorf("failed to list processes: %w", err)
	}
	self := getpidFunc()
	var pids []string
	for _, p := range procs {
		if p.Pid() == self {
			continue
		}
		exe := strings.TrimSuffix(filepath.Base(p.Executable()), ".exe")
		if exe == constants.AppName {
			pids = append(pids, fmt.Sprint(p.Pid()))
		}
	}
	if len(pids) > 0 {
		return fmt.Errorf("other mindlog processes are running (pid %s); close them before restoring backups", strings.Join(pids, ", "))
	}
	return nil
}
