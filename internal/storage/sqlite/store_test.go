package sqlite

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/julianstephens/mindlog/internal/models"
	"github.com/julianstephens/mindlog/internal/storage"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "mindlog.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestLoadBeforeInit(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); !errors.Is(err, storage.ErrNotInitialized) {
		t.Errorf("Load() error = %v, want ErrNotInitialized", err)
	}
}

func TestInitThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "mindlog.db")
	store := NewStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if _, err := store.AddEntry(models.DailyEntry{User: "ana", Date: "2024-01-01"}); err != nil {
		t.Fatalf("AddEntry() failed: %v", err)
	}
	store.Close()

	reopened := NewStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	defer reopened.Close()

	entries, err := reopened.GetEntries(storage.Filter{})
	if err != nil || len(entries) != 1 {
		t.Fatalf("GetEntries() = (%d entries, %v), want 1", len(entries), err)
	}

	st, err := reopened.SchemaStatus()
	if err != nil || !st.UpToDate() {
		t.Errorf("SchemaStatus() = %+v, %v", st, err)
	}
}

func TestDefaultSettings(t *testing.T) {
	store := setupTestStore(t)

	got, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() failed: %v", err)
	}
	if got != storage.DefaultSettings() {
		t.Errorf("GetSettings() = %+v, want defaults", got)
	}

	want := models.Settings{DefaultUser: "ana", InsightWindow: 14, AutoBackup: false}
	if err := store.SaveSettings(want); err != nil {
		t.Fatalf("SaveSettings() failed: %v", err)
	}
	got, err = store.GetSettings()
	if err != nil || got != want {
		t.Errorf("GetSettings() = %+v, %v, want %+v", got, err, want)
	}
}

func TestAddEntryRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	in := models.DailyEntry{
		User:           "ana",
		Date:           "2024-03-02",
		Focus:          models.Int(7),
		Hyperactivity:  models.Int(2),
		SleepHours:     models.Float(6.5),
		ScreenTime:     models.Float(3.25),
		TasksCompleted: models.Int(0),
		Mood:           models.MoodOkay,
		Notes:          "ok day",
		CognitiveScore: 5.55,
	}

	saved, err := store.AddEntry(in)
	if err != nil {
		t.Fatalf("AddEntry() failed: %v", err)
	}
	if saved.ID == "" || saved.CreatedAt.IsZero() {
		t.Error("AddEntry() should assign ID and CreatedAt")
	}

	entries, err := store.GetEntries(storage.Filter{User: "ana"})
	if err != nil || len(entries) != 1 {
		t.Fatalf("GetEntries() = (%d, %v)", len(entries), err)
	}
	got := entries[0]

	if got.ID != saved.ID || got.User != "ana" || got.Date != "2024-03-02" {
		t.Errorf("identity fields differ: %+v", got)
	}
	if models.IntOr(got.Focus, -1) != 7 || models.IntOr(got.Hyperactivity, -1) != 2 {
		t.Errorf("integer metrics differ: %+v", got)
	}
	if got.Impulsivity != nil || got.Distractions != nil {
		t.Error("unset metrics should read back as nil")
	}
	if got.TasksCompleted == nil || *got.TasksCompleted != 0 {
		t.Error("a recorded zero must stay distinct from absent")
	}
	if models.FloatOr(got.SleepHours, -1) != 6.5 || models.FloatOr(got.ScreenTime, -1) != 3.25 {
		t.Errorf("real metrics differ: %+v", got)
	}
	if got.Mood != models.MoodOkay || got.Notes != "ok day" || got.CognitiveScore != 5.55 {
		t.Errorf("text fields differ: %+v", got)
	}
	if !got.CreatedAt.Equal(saved.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, saved.CreatedAt)
	}
}

func TestAddEntryDefaults(t *testing.T) {
	store := setupTestStore(t)

	saved, err := store.AddEntry(models.DailyEntry{Date: "03/04/2024"})
	if err != nil {
		t.Fatalf("AddEntry() failed: %v", err)
	}
	if saved.User != "Unknown" {
		t.Errorf("User = %q, want Unknown", saved.User)
	}
	if saved.Date != "2024-03-04" {
		t.Errorf("Date = %q, want normalized 2024-03-04", saved.Date)
	}
}

func TestGetEntriesFilterAndOrder(t *testing.T) {
	store := setupTestStore(t)

	batch := []models.DailyEntry{
		{User: "ana", Date: "2024-01-03", Notes: "a3"},
		{User: "ben", Date: "2024-01-01", Notes: "b1"},
		{User: "ana", Date: "2024-01-01", Notes: "a1"},
		{User: "ana", Date: "2024-01-02", Notes: "a2"},
		{User: "ana", Date: "2024-01-02", Notes: "a2-second"},
	}
	n, err := store.AddEntries(batch)
	if err != nil || n != len(batch) {
		t.Fatalf("AddEntries() = (%d, %v)", n, err)
	}

	tests := []struct {
		name   string
		filter storage.Filter
		want   []string
	}{
		{"all", storage.Filter{}, []string{"b1", "a1", "a2", "a2-second", "a3"}},
		{"user", storage.Filter{User: "ana"}, []string{"a1", "a2", "a2-second", "a3"}},
		{"range", storage.Filter{Start: "2024-01-02", End: "2024-01-02"}, []string{"a2", "a2-second"}},
		{"user and start", storage.Filter{User: "ana", Start: "2024-01-03"}, []string{"a3"}},
		{"last two", storage.Filter{User: "ana", Last: 2}, []string{"a2-second", "a3"}},
		{"no match", storage.Filter{User: "zoe"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.GetEntries(tt.filter)
			if err != nil {
				t.Fatalf("GetEntries() failed: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("GetEntries() returned %d entries, want %d", len(got), len(tt.want))
			}
			for i, w := range tt.want {
				if got[i].Notes != w {
					t.Errorf("entry %d = %q, want %q", i, got[i].Notes, w)
				}
			}
		})
	}
}

func TestGetUsers(t *testing.T) {
	store := setupTestStore(t)

	for _, u := range []string{"zoe", "ana", "zoe", ""} {
		if _, err := store.AddEntry(models.DailyEntry{User: u, Date: "2024-01-01"}); err != nil {
			t.Fatal(err)
		}
	}

	users, err := store.GetUsers()
	if err != nil {
		t.Fatalf("GetUsers() failed: %v", err)
	}
	want := []string{"Unknown", "ana", "zoe"}
	if len(users) != len(want) {
		t.Fatalf("GetUsers() = %v, want %v", users, want)
	}
	for i := range want {
		if users[i] != want[i] {
			t.Errorf("GetUsers()[%d] = %q, want %q", i, users[i], want[i])
		}
	}
}

func TestHabits(t *testing.T) {
	store := setupTestStore(t)

	for i, d := range []string{"2024-01-02", "2024-01-01", "2024-01-03"} {
		h := models.HabitEntry{User: "ana", Date: d, ExerciseMinutes: 10 * (i + 1), StudyMinutes: 30, ScreenMinutes: 90}
		if _, err := store.AddHabit(h); err != nil {
			t.Fatalf("AddHabit() failed: %v", err)
		}
	}
	if _, err := store.AddHabit(models.HabitEntry{User: "ben", Date: "2024-01-05"}); err != nil {
		t.Fatal(err)
	}

	habits, err := store.GetHabits(storage.Filter{User: "ana"})
	if err != nil {
		t.Fatalf("GetHabits() failed: %v", err)
	}
	if len(habits) != 3 {
		t.Fatalf("GetHabits() returned %d, want 3", len(habits))
	}
	if habits[0].Date != "2024-01-01" || habits[0].ExerciseMinutes != 20 {
		t.Errorf("first habit = %+v", habits[0])
	}

	recent, err := store.GetHabits(storage.Filter{User: "ana", Last: 1})
	if err != nil || len(recent) != 1 || recent[0].Date != "2024-01-03" {
		t.Errorf("recent habits = %+v, %v", recent, err)
	}
}
