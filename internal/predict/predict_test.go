package predict

import (
	"fmt"
	"math"
	"os"
	"testing"
	"time"

	"github.com/julianstephens/mindlog/internal/models"
)

var trainedAt = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func completeEntry(day, focus int) models.DailyEntry {
	return models.DailyEntry{
		User:           "alice",
		Date:           fmt.Sprintf("2024-01-%02d", day),
		Focus:          models.Int(focus),
		Hyperactivity:  models.Int(3),
		Impulsivity:    models.Int(2 + day%3),
		SleepHours:     models.Float(6 + float64(day%4)/2),
		Distractions:   models.Int(day % 5),
		TasksCompleted: models.Int(2 + day%3),
		ScreenTime:     models.Float(3),
		CognitiveScore: float64(focus) / 2,
	}
}

func history(focus ...int) []models.DailyEntry {
	var out []models.DailyEntry
	for i, f := range focus {
		out = append(out, completeEntry(i+1, f))
	}
	return out
}

func newTestPredictor(t *testing.T) *Predictor {
	t.Helper()
	p := New(t.TempDir())
	p.now = func() time.Time { return trainedAt }
	return p
}

func TestTrainInsufficientData(t *testing.T) {
	h := history(5, 6, 7, 8)
	h = append(h, models.DailyEntry{Date: "2024-01-09", Focus: models.Int(5)})
	if CompleteRows(h) != 4 {
		t.Fatalf("expected 4 complete rows, got %d", CompleteRows(h))
	}
	if _, err := Train("alice", h, trainedAt); err != ErrInsufficientData {
		t.Errorf("expected ErrInsufficientData, got %v", err)
	}
}

func TestTrainConstantTarget(t *testing.T) {
	m, err := Train("alice", history(6, 6, 6, 6, 6, 6), trainedAt)
	if err != nil {
		t.Fatalf("Train failed: %v", err)
	}
	if m.Samples != 5 {
		t.Errorf("samples = %d, want 5", m.Samples)
	}
	got := m.Predict(completeEntry(7, 6))
	if math.Abs(got-6) > 1e-9 {
		t.Errorf("constant history should predict 6, got %v", got)
	}
}

func TestTrainTracksTrend(t *testing.T) {
	// next-day focus rises with today's focus
	m, err := Train("alice", history(2, 3, 4, 5, 6, 7, 8, 9), trainedAt)
	if err != nil {
		t.Fatalf("Train failed: %v", err)
	}
	low := m.Predict(completeEntry(20, 2))
	high := m.Predict(completeEntry(20, 9))
	if high <= low {
		t.Errorf("prediction should grow with focus: low %v high %v", low, high)
	}
}

func TestPredictNextDayUnavailable(t *testing.T) {
	p := newTestPredictor(t)

	if _, ok, err := p.PredictNextDay("alice", nil, false); ok || err != nil {
		t.Errorf("empty history: ok=%v err=%v", ok, err)
	}
	if _, ok, err := p.PredictNextDay("alice", history(5, 6, 7), false); ok || err != nil {
		t.Errorf("short history: ok=%v err=%v", ok, err)
	}
	if _, err := os.Stat(p.ModelPath("alice")); !os.IsNotExist(err) {
		t.Error("no model should be written without enough data")
	}
}

func TestPredictNextDayPersistsModel(t *testing.T) {
	p := newTestPredictor(t)

	got, ok, err := p.PredictNextDay("alice", history(6, 6, 6, 6, 6, 6), false)
	if err != nil || !ok {
		t.Fatalf("PredictNextDay: ok=%v err=%v", ok, err)
	}
	if got != 6 {
		t.Errorf("prediction = %v, want 6", got)
	}

	stored, err := p.Load("alice")
	if err != nil || stored == nil {
		t.Fatalf("model not stored: %v", err)
	}
	if !stored.TrainedAt.Equal(trainedAt) {
		t.Errorf("trained at %v", stored.TrainedAt)
	}

	// the stored model is reused even when history alone could not train one
	got, ok, err = p.PredictNextDay("alice", history(6), false)
	if err != nil || !ok || got != 6 {
		t.Errorf("cached prediction: %v ok=%v err=%v", got, ok, err)
	}

	// retraining on new data replaces the model
	if _, ok, _ := p.PredictNextDay("alice", history(6), true); ok {
		t.Error("retrain on short history should be unavailable")
	}
	got, ok, err = p.PredictNextDay("alice", history(8, 8, 8, 8, 8), true)
	if err != nil || !ok || got != 8 {
		t.Errorf("retrained prediction: %v ok=%v err=%v", got, ok, err)
	}
}

func TestPredictNextDayCorruptModel(t *testing.T) {
	p := newTestPredictor(t)
	if err := os.WriteFile(p.ModelPath("alice"), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	got, ok, err := p.PredictNextDay("alice", history(4, 4, 4, 4, 4), false)
	if err != nil || !ok || got != 4 {
		t.Errorf("corrupt model should be retrained: %v ok=%v err=%v", got, ok, err)
	}
}

func TestPredictRoundsToTwoDecimals(t *testing.T) {
	p := newTestPredictor(t)
	got, ok, err := p.PredictNextDay("alice", history(3, 7, 4, 9, 5, 8, 2), false)
	if err != nil || !ok {
		t.Fatalf("PredictNextDay: ok=%v err=%v", ok, err)
	}
	if math.Abs(got*100-math.Round(got*100)) > 1e-9 {
		t.Errorf("prediction %v not rounded to 2 decimals", got)
	}
}

func TestSlug(t *testing.T) {
	tests := map[string]string{
		"Alice":       "alice",
		"  Bob Smith": "bob_smith",
		"../etc":      "___etc",
		"":            "unknown",
		"///":         "unknown",
		"Zoë-2":       "zoë-2",
	}
	for in, want := range tests {
		if got := Slug(in); got != want {
			t.Errorf("Slug(%q) = %q, want %q", in, got, want)
		}
	}
}
