package habits

import (
	"fmt"
	"strings"

	"github.com/julianstephens/mindlog/internal/cli"
	"github.com/julianstephens/mindlog/internal/constants"
	"github.com/julianstephens/mindlog/internal/dates"
	"github.com/julianstephens/mindlog/internal/form"
	"github.com/julianstephens/mindlog/internal/logger"
	"github.com/julianstephens/mindlog/internal/models"
	"github.com/julianstephens/mindlog/internal/storage"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Log exercise, study and screen minutes for a day."`
	List   HabitListCmd   `cmd:"" help:"List habit entries."`
	Recent HabitRecentCmd `cmd:"" help:"Show the most recent habit entries." default:"1"`
}

type HabitAddCmd struct {
	User        string `short:"u" help:"User name (default: the default_user setting)."`
	Date        string `help:"Date (default: today)."`
	Exercise    int    `help:"Exercise minutes."`
	Study       int    `help:"Study minutes."`
	Screen      int    `help:"Screen minutes."`
	Notes       string `help:"Free-form notes."`
	Interactive bool   `short:"i" help:"Fill the habit entry in with an interactive form."`
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	defaultUser := ctx.Settings().DefaultUser

	var h models.HabitEntry
	if c.Interactive {
		in := form.HabitInput{User: c.User, Date: c.Date}
		if in.User == "" {
			in.User = defaultUser
		}
		if err := form.NewHabitForm(&in).Run(); err != nil {
			return err
		}
		var err error
		if h, err = in.Habit(ctx.Clock()); err != nil {
			return err
		}
	} else {
		if c.Exercise < 0 || c.Study < 0 || c.Screen < 0 {
			return fmt.Errorf("minutes cannot be negative")
		}
		h = models.HabitEntry{
			User:            strings.TrimSpace(c.User),
			Date:            dates.NormalizeOr(c.Date, ctx.Clock()),
			ExerciseMinutes: c.Exercise,
			StudyMinutes:    c.Study,
			ScreenMinutes:   c.Screen,
			Notes:           c.Notes,
		}
	}
	if h.User == "" {
		h.User = defaultUser
	}

	saved, err := ctx.Store.AddHabit(h)
	if err != nil {
		return fmt.Errorf("failed to save habit: %w", err)
	}
	logger.Info("Habit saved", "user", saved.User, "date", saved.Date)
	fmt.Printf("Habit saved: %s %s\n", saved.User, saved.Date)
	return nil
}

type HabitListCmd struct {
	cli.HistoryFlags `embed:""`
}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	filter := c.Filter(ctx.Settings().DefaultUser)
	habits, err := ctx.Store.GetHabits(filter)
	if err != nil {
		return fmt.Errorf("failed to get habits: %w", err)
	}
	printHabits(habits, filter.User == "")
	return nil
}

type HabitRecentCmd struct {
	User string `short:"u" help:"User name (default: the default_user setting)."`
	N    int    `short:"n" help:"Number of entries to show." default:"${recent_habits}"`
}

func (c *HabitRecentCmd) Run(ctx *cli.Context) error {
	user := c.User
	if user == "" {
		user = ctx.Settings().DefaultUser
	}
	n := c.N
	if n <= 0 {
		n = constants.RecentHabitCount
	}

	habits, err := ctx.Store.GetHabits(storage.Filter{User: user, Last: n})
	if err != nil {
		return fmt.Errorf("failed to get habits: %w", err)
	}
	printHabits(habits, user == "")
	return nil
}

// FormatHabit renders one habit entry as a summary line
func FormatHabit(h models.HabitEntry, withUser bool) string {
	line := fmt.Sprintf("%s: Ex %dm, Study %dm, Screen %dm", h.Date, h.ExerciseMinutes, h.StudyMinutes, h.ScreenMinutes)
	if withUser {
		line = h.User + " " + line
	}
	if h.Notes != "" {
		line += " (" + h.Notes + ")"
	}
	return line
}

func printHabits(habits []models.HabitEntry, withUser bool) {
	if len(habits) == 0 {
		fmt.Println("No habits recorded")
		return
	}
	for _, h := range habits {
		fmt.Println(FormatHabit(h, withUser))
	}
}
