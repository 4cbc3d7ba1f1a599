package review

import (
	"fmt"
	"strconv"

	"github.com/julianstephens/mindlog/internal/analysis"
	"github.com/julianstephens/mindlog/internal/cli"
	"github.com/julianstephens/mindlog/internal/models"
)

type SummaryCmd struct {
	cli.HistoryFlags `embed:""`
}

func (c *SummaryCmd) Run(ctx *cli.Context) error {
	history, filter, err := ctx.History(c.HistoryFlags)
	if err != nil {
		return fmt.Errorf("failed to get entries: %w", err)
	}

	fmt.Printf("Summary for %s\n", cli.UserLabel(filter.User))
	fmt.Print(FormatSummary(analysis.Summarize(history)))
	return nil
}

// FormatSummary renders the dashboard cards as text. Missing averages show
// as "-".
func FormatSummary(s analysis.Summary) string {
	best := "-"
	if s.BestDay != nil {
		best = fmt.Sprintf("%s (%.2f)", s.BestDay.Date, s.BestDay.CognitiveScore)
	}

	out := fmt.Sprintf("  Entries:             %d\n", s.Entries)
	out += fmt.Sprintf("  Avg focus:           %s\n", avg(s.AvgFocus))
	out += fmt.Sprintf("  Avg cognitive score: %s\n", avg(s.AvgScore))
	out += fmt.Sprintf("  Avg sleep:           %s\n", avg(s.AvgSleep))
	out += fmt.Sprintf("  Avg screen time:     %s\n", avg(s.AvgScreen))
	out += fmt.Sprintf("  Best day:            %s\n", best)

	if len(s.MoodCounts) > 0 {
		out += "  Moods:              "
		for _, m := range models.Moods {
			out += fmt.Sprintf(" %s %d", m, s.MoodCounts[m])
		}
		out += "\n"
	}
	return out
}

func avg(p *float64) string {
	if p == nil {
		return "-"
	}
	return strconv.FormatFloat(*p, 'f', 2, 64)
}
