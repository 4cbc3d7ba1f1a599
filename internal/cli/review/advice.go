package review

import (
	"fmt"

	"github.com/julianstephens/mindlog/internal/analysis"
	"github.com/julianstephens/mindlog/internal/cli"
)

type AdviceCmd struct {
	cli.HistoryFlags `embed:""`
}

func (c *AdviceCmd) Run(ctx *cli.Context) error {
	history, _, err := ctx.History(c.HistoryFlags)
	if err != nil {
		return fmt.Errorf("failed to get entries: %w", err)
	}

	fmt.Println("Suggestions:")
	printList(analysis.RuleBasedAdvice(history))
	return nil
}

type InsightsCmd struct {
	cli.HistoryFlags `embed:""`
	Window           int `short:"w" help:"Number of recent entries to analyze (default: the insight_window setting)."`
}

func (c *InsightsCmd) Run(ctx *cli.Context) error {
	history, _, err := ctx.History(c.HistoryFlags)
	if err != nil {
		return fmt.Errorf("failed to get entries: %w", err)
	}

	window := c.Window
	if window <= 0 {
		window = ctx.Settings().InsightWindow
	}
	fmt.Printf("Insights (last %d entries):\n", window)
	printList(analysis.GenerateInsights(history, window))
	return nil
}

func printList(lines []string) {
	for _, l := range lines {
		fmt.Println("- " + l)
	}
}
