package entries

import (
	"fmt"
	"os"

	"github.com/julianstephens/mindlog/internal/cli"
	"github.com/julianstephens/mindlog/internal/logger"
	"github.com/julianstephens/mindlog/internal/transfer"
	"github.com/julianstephens/mindlog/internal/validation"
)

type ImportCmd struct {
	Path   string `arg:"" type:"existingfile" help:"Spreadsheet (.xlsx) or CSV file to import."`
	User   string `short:"u" help:"Store every imported row under this user."`
	DryRun bool   `help:"Read and check the file without storing anything."`
}

func (c *ImportCmd) Run(ctx *cli.Context) error {
	records, err := transfer.ReadRecords(c.Path)
	if err != nil {
		return err
	}
	v := validation.New()
	if rows := v.ValidateRecords(records); rows.HasIssues() {
		fmt.Fprint(os.Stderr, rows.FormatReport())
	}

	entries := transfer.RecordsToEntries(records, ctx.Clock())
	if c.User != "" {
		for i := range entries {
			entries[i].User = c.User
		}
	}

	result := v.ValidateEntries(entries)
	if result.HasIssues() {
		fmt.Fprint(os.Stderr, result.FormatReport())
	}

	if c.DryRun {
		fmt.Printf("Read %d entries from %s (dry run, nothing stored)\n", len(entries), c.Path)
		return nil
	}
	if len(entries) == 0 {
		fmt.Println("No entries found in file")
		return nil
	}

	ctx.PerformAutomaticBackup()

	n, err := ctx.Store.AddEntries(entries)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}
	logger.Info("Imported entries", "path", c.Path, "count", n)
	fmt.Printf("Imported %d entries from %s\n", n, c.Path)
	return nil
}

type ExportCmd struct {
	cli.HistoryFlags `embed:""`
	Path             string `arg:"" help:"Output file (.xlsx or .csv)."`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	entries, filter, err := ctx.History(c.HistoryFlags)
	if err != nil {
		return fmt.Errorf("failed to get entries: %w", err)
	}
	if err := transfer.WriteFile(c.Path, entries); err != nil {
		return err
	}
	logger.Info("Exported entries", "path", c.Path, "count", len(entries), "user", filter.User)
	fmt.Printf("Exported %d entries for %s to %s\n", len(entries), cli.UserLabel(filter.User), c.Path)
	return nil
}
