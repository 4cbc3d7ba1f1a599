package habits

import (
	"path/filepath"
	"testing"

	"github.com/julianstephens/mindlog/internal/cli"
	"github.com/julianstephens/mindlog/internal/models"
	"github.com/julianstephens/mindlog/internal/storage"
	"github.com/julianstephens/mindlog/internal/storage/sqlite"
)

func TestFormatHabit(t *testing.T) {
	h := models.HabitEntry{User: "alice", Date: "2024-01-01", ExerciseMinutes: 30, StudyMinutes: 45, ScreenMinutes: 120}
	tests := []struct {
		name     string
		notes    string
		withUser bool
		want     string
	}{
		{"plain", "", false, "2024-01-01: Ex 30m, Study 45m, Screen 120m"},
		{"with user", "", true, "alice 2024-01-01: Ex 30m, Study 45m, Screen 120m"},
		{"with notes", "gym", false, "2024-01-01: Ex 30m, Study 45m, Screen 120m (gym)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h.Notes = tt.notes
			if got := FormatHabit(h, tt.withUser); got != tt.want {
				t.Errorf("FormatHabit() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHabitAddCmd(t *testing.T) {
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	ctx := &cli.Context{Store: store}

	if err := (&HabitAddCmd{User: "alice", Exercise: -5}).Run(ctx); err == nil {
		t.Error("negative minutes should be rejected")
	}
	if err := (&HabitAddCmd{User: "alice", Date: "2024-01-01", Exercise: 20, Study: 10}).Run(ctx); err != nil {
		t.Fatalf("habit add failed: %v", err)
	}
	habits, err := store.GetHabits(storage.Filter{User: "alice"})
	if err != nil || len(habits) != 1 || habits[0].ExerciseMinutes != 20 {
		t.Errorf("unexpected habits: %+v (%v)", habits, err)
	}
	if err := (&HabitRecentCmd{User: "alice", N: 5}).Run(ctx); err != nil {
		t.Errorf("habit recent failed: %v", err)
	}
}
