package system

import (
	"fmt"

	"github.com/julianstephens/mindlog/internal/cli"
	"github.com/julianstephens/mindlog/internal/validation"
)

type ValidateCmd struct {
	cli.HistoryFlags `embed:""`
	Strict           bool `help:"Exit with an error when issues are found."`
}

func (c *ValidateCmd) Run(ctx *cli.Context) error {
	entries, _, err := ctx.History(c.HistoryFlags)
	if err != nil {
		return fmt.Errorf("failed to get entries: %w", err)
	}

	result := validation.New().ValidateEntries(entries)
	fmt.Println(result.FormatReport())
	if c.Strict && result.HasIssues() {
		return fmt.Errorf("validation found %d issue(s)", len(result.Issues))
	}
	return nil
}
