package review

import (
	"fmt"

	"github.com/julianstephens/mindlog/internal/analysis"
	"github.com/julianstephens/mindlog/internal/cli"
	"github.com/julianstephens/mindlog/internal/logger"
	"github.com/julianstephens/mindlog/internal/report"
)

type ReportCmd struct {
	cli.HistoryFlags `embed:""`
	Path             string `arg:"" help:"Output PDF file."`
}

func (c *ReportCmd) Run(ctx *cli.Context) error {
	history, filter, err := ctx.History(c.HistoryFlags)
	if err != nil {
		return fmt.Errorf("failed to get entries: %w", err)
	}

	data := report.Data{
		User:     filter.User,
		Entries:  history,
		Insights: analysis.GenerateInsights(history, ctx.Settings().InsightWindow),
		Advice:   analysis.RuleBasedAdvice(history),
	}
	if err := report.Save(data, c.Path); err != nil {
		return err
	}
	logger.Info("Report written", "path", c.Path, "entries", len(history))
	fmt.Printf("Report for %s written to %s\n", cli.UserLabel(filter.User), c.Path)
	return nil
}
