package review

import (
	"fmt"

	"github.com/julianstephens/mindlog/internal/chart"
	"github.com/julianstephens/mindlog/internal/cli"
)

type ChartCmd struct {
	cli.HistoryFlags `embed:""`
	Kind             string `arg:"" optional:"" enum:"all,focus,score,sleep,screen,mood" default:"all" help:"Chart to draw: all, focus, score, sleep, screen or mood."`
	Height           int    `help:"Chart height in rows." default:"10"`
	Width            int    `help:"Chart width in columns." default:"60"`
}

func (c *ChartCmd) Run(ctx *cli.Context) error {
	history, _, err := ctx.History(c.HistoryFlags)
	if err != nil {
		return fmt.Errorf("failed to get entries: %w", err)
	}

	kinds := chart.Kinds
	if c.Kind != "all" {
		kinds = []chart.Kind{chart.Kind(c.Kind)}
	}

	opts := chart.Options{Height: c.Height, Width: c.Width}
	for i, k := range kinds {
		out, err := chart.Render(k, history, opts)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Println()
		}
		fmt.Println(out)
	}
	return nil
}
