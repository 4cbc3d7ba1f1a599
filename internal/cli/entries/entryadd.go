package entries

import (
	"fmt"
	"os"
	"strings"

	"github.com/julianstephens/mindlog/internal/analysis"
	"github.com/julianstephens/mindlog/internal/cli"
	"github.com/julianstephens/mindlog/internal/dates"
	"github.com/julianstephens/mindlog/internal/form"
	"github.com/julianstephens/mindlog/internal/logger"
	"github.com/julianstephens/mindlog/internal/models"
	"github.com/julianstephens/mindlog/internal/validation"
)

type EntryCmd struct {
	Add  EntryAddCmd  `cmd:"" help:"Log a daily entry."`
	List EntryListCmd `cmd:"" help:"List logged entries." default:"1"`
}

type EntryAddCmd struct {
	User          string   `short:"u" help:"User name (default: the default_user setting)."`
	Date          string   `help:"Entry date (default: today)."`
	Focus         *int     `help:"Focus, 1-10."`
	Hyperactivity *int     `help:"Hyperactivity, 1-10."`
	Impulsivity   *int     `help:"Impulsivity, 1-10."`
	Sleep         *float64 `help:"Hours slept."`
	Distractions  *int     `help:"Number of distractions."`
	Tasks         *int     `help:"Tasks completed."`
	Screen        *float64 `help:"Screen time in hours."`
	Mood          string   `help:"Mood: Good, Okay or Bad."`
	Notes         string   `help:"Free-form notes."`
	Interactive   bool     `short:"i" help:"Fill the entry in with an interactive form."`
}

func (c *EntryAddCmd) Run(ctx *cli.Context) error {
	settings := ctx.Settings()

	var entry models.DailyEntry
	if c.Interactive {
		in := form.EntryInput{User: c.User, Date: c.Date}
		if in.User == "" {
			in.User = settings.DefaultUser
		}
		if err := form.NewEntryForm(&in).Run(); err != nil {
			return err
		}
		e, err := in.Entry(ctx.Clock())
		if err != nil {
			return err
		}
		entry = e
	} else {
		entry = c.entry(ctx)
	}

	if entry.User == "" {
		entry.User = settings.DefaultUser
	}

	for _, issue := range validation.New().ValidateEntry(entry) {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", issue.Message)
	}

	saved, err := ctx.Store.AddEntry(entry)
	if err != nil {
		return fmt.Errorf("failed to save entry: %w", err)
	}
	logger.Info("Entry saved", "user", saved.User, "date", saved.Date, "score", saved.CognitiveScore)

	fmt.Printf("Saved: %s %s, cognitive score %.2f\n", saved.User, saved.Date, saved.CognitiveScore)
	return nil
}

func (c *EntryAddCmd) entry(ctx *cli.Context) models.DailyEntry {
	e := models.DailyEntry{
		User:           strings.TrimSpace(c.User),
		Date:           dates.NormalizeOr(c.Date, ctx.Clock()),
		Focus:          c.Focus,
		Hyperactivity:  c.Hyperactivity,
		Impulsivity:    c.Impulsivity,
		SleepHours:     c.Sleep,
		Distractions:   c.Distractions,
		TasksCompleted: c.Tasks,
		ScreenTime:     c.Screen,
		Mood:           models.ParseMood(c.Mood),
		Notes:          c.Notes,
	}.WithDefaults()
	e.CognitiveScore = analysis.ComputeCognitiveScore(e)
	return e
}
