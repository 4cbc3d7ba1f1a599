package predict

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	apperrors "github.com/julianstephens/mindlog/internal/errors"
	"github.com/julianstephens/mindlog/internal/logger"
	"github.com/julianstephens/mindlog/internal/models"
)

// Predictor trains, stores and applies per-user models under a directory
type Predictor struct {
	dir string
	now func() time.Time
}

func New(dir string) *Predictor {
	return &Predictor{dir: dir, now: time.Now}
}

// ModelPath is where the model for user is stored
func (p *Predictor) ModelPath(user string) string {
	return filepath.Join(p.dir, Slug(user)+"_model.json")
}

// PredictNextDay forecasts focus for the day after the last entry of
// history. A stored model is reused unless retrain is set. ok is false when
// there is no history or too little complete data to train; err is only
// set when the model cannot be written.
func (p *Predictor) PredictNextDay(user string, history []models.DailyEntry, retrain bool) (value float64, ok bool, err error) {
	if len(history) == 0 {
		return 0, false, nil
	}

	var m *Model
	if !retrain {
		m, err = p.Load(user)
		if err != nil {
			logger.Warn("Ignoring unreadable prediction model", "user", user, "error", err)
			m = nil
		}
	}

	if m == nil {
		m, err = Train(user, history, p.now())
		if errors.Is(err, ErrInsufficientData) {
			return 0, false, nil
		}
		if err != nil {
			logger.Warn("Prediction model training failed", "user", user, "error", err)
			return 0, false, nil
		}
		if err := p.Save(m); err != nil {
			return 0, false, err
		}
		logger.Info("Trained prediction model", "user", user, "samples", m.Samples)
	}

	pred := m.Predict(history[len(history)-1])
	return math.Round(pred*100) / 100, true, nil
}

// Load reads the stored model for user, returning nil when none exists
func (p *Predictor) Load(user string) (*Model, error) {
	path := p.ModelPath(user)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.IO(path, err)
	}
	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse model %s: %w", path, err)
	}
	if !m.valid() {
		return nil, fmt.Errorf("model %s has the wrong shape", path)
	}
	return &m, nil
}

// Save writes m to its model path
func (p *Predictor) Save(m *Model) error {
	if err := os.MkdirAll(p.dir, 0o700); err != nil {
		return apperrors.IO(p.dir, err)
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	path := p.ModelPath(m.User)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return apperrors.IO(path, err)
	}
	return nil
}

// Slug makes a user name safe for use in a file name
func Slug(user string) string {
	s := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' {
			return unicode.ToLower(r)
		}
		return '_'
	}, strings.TrimSpace(user))
	if strings.Trim(s, "_") == "" {
		return "unknown"
	}
	return s
}
