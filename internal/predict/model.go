// Package predict fits a per-user linear model that forecasts the next
// day's focus from the current day's metrics.
package predict

import (
	"errors"
	"math"
	"time"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/julianstephens/mindlog/internal/models"
)

// MinCompleteRows is the fewest complete entries a model is trained on
const MinCompleteRows = 5

// ridge keeps the normal equations solvable when there are fewer samples
// than features or a feature never varies.
const ridge = 1e-3

// Features are the model inputs, in coefficient order
var Features = []string{
	models.FieldFocus.Display,
	models.FieldHyperactivity.Display,
	models.FieldImpulsivity.Display,
	models.FieldSleepHours.Display,
	models.FieldDistractions.Display,
	models.FieldTasksCompleted.Display,
	models.FieldScreenTime.Display,
	models.FieldCognitiveScore.Display,
}

// ErrInsufficientData is returned by Train when there are too few complete
// entries.
var ErrInsufficientData = errors.New("not enough complete entries to train")

// Model is a fitted linear model over standardized features
type Model struct {
	User         string    `json:"user"`
	Features     []string  `json:"features"`
	Means        []float64 `json:"means"`
	Scales       []float64 `json:"scales"`
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
	Samples      int       `json:"samples"`
	TrainedAt    time.Time `json:"trained_at"`
}

// featureValues returns the entry's features; a nil slot means absent
func featureValues(e models.DailyEntry) []*float64 {
	score := e.CognitiveScore
	return []*float64{
		models.IntValue(e.Focus),
		models.IntValue(e.Hyperactivity),
		models.IntValue(e.Impulsivity),
		e.SleepHours,
		models.IntValue(e.Distractions),
		models.IntValue(e.TasksCompleted),
		e.ScreenTime,
		&score,
	}
}

// complete returns the feature vector when every feature is present
func complete(e models.DailyEntry) ([]float64, bool) {
	vals := featureValues(e)
	out := make([]float64, len(vals))
	for i, v := range vals {
		if v == nil {
			return nil, false
		}
		out[i] = *v
	}
	return out, true
}

// CompleteRows counts entries that carry every feature
func CompleteRows(history []models.DailyEntry) int {
	n := 0
	for _, e := range history {
		if _, ok := complete(e); ok {
			n++
		}
	}
	return n
}

// Train fits a model on consecutive complete entries of history, which must
// be in date order. Each complete entry is paired with the focus of the
// next complete entry.
func Train(user string, history []models.DailyEntry, now time.Time) (*Model, error) {
	var rows [][]float64
	for _, e := range history {
		if v, ok := complete(e); ok {
			rows = append(rows, v)
		}
	}
	if len(rows) < MinCompleteRows {
		return nil, ErrInsufficientData
	}

	k := len(Features)
	n := len(rows) - 1
	means := make([]float64, k)
	scales := make([]float64, k)
	col := make([]float64, n)
	for j := 0; j < k; j++ {
		for i := 0; i < n; i++ {
			col[i] = rows[i][j]
		}
		m, sd := stat.PopMeanStdDev(col, nil)
		means[j] = m
		if sd == 0 || math.IsNaN(sd) {
			sd = 1
		}
		scales[j] = sd
	}

	x := mat.NewDense(n, k, nil)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < k; j++ {
			x.Set(i, j, (rows[i][j]-means[j])/scales[j])
		}
		y[i] = rows[i+1][0]
	}
	yMean := stat.Mean(y, nil)
	centered := make([]float64, n)
	for i, v := range y {
		centered[i] = v - yMean
	}

	var xtx mat.Dense
	xtx.Mul(x.T(), x)
	sym := mat.NewSymDense(k, nil)
	for i := 0; i < k; i++ {
		for j := i; j < k; j++ {
			v := xtx.At(i, j)
			if i == j {
				v += ridge
			}
			sym.SetSym(i, j, v)
		}
	}

	var xty mat.VecDense
	xty.MulVec(x.T(), mat.NewVecDense(n, centered))

	var chol mat.Cholesky
	if ok := chol.Factorize(sym); !ok {
		return nil, errors.New("failed to factorize training matrix")
	}
	var beta mat.VecDense
	if err := chol.SolveVecTo(&beta, &xty); err != nil {
		return nil, err
	}

	coef := make([]float64, k)
	for j := range coef {
		coef[j] = beta.AtVec(j)
	}
	return &Model{
		User:         user,
		Features:     append([]string(nil), Features...),
		Means:        means,
		Scales:       scales,
		Coefficients: coef,
		Intercept:    yMean,
		Samples:      n,
		TrainedAt:    now.UTC(),
	}, nil
}

// Predict applies the model to e. Absent features take their training mean.
func (m *Model) Predict(e models.DailyEntry) float64 {
	sum := m.Intercept
	for j, v := range featureValues(e) {
		if v == nil || j >= len(m.Coefficients) {
			continue
		}
		sum += m.Coefficients[j] * (*v - m.Means[j]) / m.Scales[j]
	}
	return sum
}

func (m *Model) valid() bool {
	k := len(Features)
	return len(m.Coefficients) == k && len(m.Means) == k && len(m.Scales) == k
}
