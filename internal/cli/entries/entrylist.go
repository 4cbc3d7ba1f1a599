package entries

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/julianstephens/mindlog/internal/cli"
	"github.com/julianstephens/mindlog/internal/models"
)

type EntryListCmd struct {
	cli.HistoryFlags `embed:""`
	Last             int `short:"n" help:"Show only the most recent N entries."`
}

func (c *EntryListCmd) Run(ctx *cli.Context) error {
	filter := c.Filter(ctx.Settings().DefaultUser)
	filter.Last = c.Last

	entries, err := ctx.Store.GetEntries(filter)
	if err != nil {
		return fmt.Errorf("failed to get entries: %w", err)
	}
	if len(entries) == 0 {
		fmt.Println("No entries found")
		return nil
	}

	fmt.Println(Table(entries))
	return nil
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// Table renders entries as a bordered table
func Table(entries []models.DailyEntry) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Date", "Name", "Focus", "Hyper", "Impuls", "Sleep", "Distr", "Tasks", "Screen", "Mood", "Score", "Notes").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, e := range entries {
		t.Row(
			e.Date,
			e.User,
			intCell(e.Focus),
			intCell(e.Hyperactivity),
			intCell(e.Impulsivity),
			floatCell(e.SleepHours),
			intCell(e.Distractions),
			intCell(e.TasksCompleted),
			floatCell(e.ScreenTime),
			string(e.Mood),
			strconv.FormatFloat(e.CognitiveScore, 'f', 2, 64),
			e.Notes,
		)
	}
	return t.String()
}

func intCell(p *int) string {
	if p == nil {
		return "-"
	}
	return strconv.Itoa(*p)
}

func floatCell(p *float64) string {
	if p == nil {
		return "-"
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}
