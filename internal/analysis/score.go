package analysis

import (
	"math"

	"github.com/julianstephens/mindlog/internal/models"
)

// Score weights
const (
	weightFocus        = 0.40
	weightTasks        = 0.20
	weightSleep        = 0.15
	weightImpulse      = 0.15
	weightDistractions = 0.20
	weightScreen       = 0.10

	idealSleepHours = 7.0
	maxScreenHours  = 12.0
	metricScale     = 10.0
)

// ComputeCognitiveScore maps a daily entry to a cognitive index in [0, 10],
// rounded to two decimals. Missing metrics take their defaults (sleep 7,
// everything else 0). It never fails.
func ComputeCognitiveScore(e models.DailyEntry) float64 {
	return score(metrics{
		focus:  float64(models.IntOr(e.Focus, 0)),
		hyper:  float64(models.IntOr(e.Hyperactivity, 0)),
		imp:    float64(models.IntOr(e.Impulsivity, 0)),
		sleep:  models.FloatOr(e.SleepHours, models.DefaultSleepHours),
		tasks:  float64(models.IntOr(e.TasksCompleted, 0)),
		dist:   float64(models.IntOr(e.Distractions, 0)),
		screen: models.FloatOr(e.ScreenTime, 0),
	})
}

// ScoreRecord scores a semi-structured record. Values are used as read,
// so fractional whole-number metrics are not rounded first.
func ScoreRecord(r models.Record) float64 {
	return score(metrics{
		focus:  r.Number(models.FieldFocus, models.DefaultMetric),
		hyper:  r.Number(models.FieldHyperactivity, models.DefaultMetric),
		imp:    r.Number(models.FieldImpulsivity, models.DefaultMetric),
		sleep:  r.Number(models.FieldSleepHours, models.DefaultSleepHours),
		tasks:  r.Number(models.FieldTasksCompleted, models.DefaultMetric),
		dist:   r.Number(models.FieldDistractions, models.DefaultMetric),
		screen: r.Number(models.FieldScreenTime, models.DefaultMetric),
	})
}

type metrics struct {
	focus, hyper, imp, sleep, tasks, dist, screen float64
}

func score(m metrics) float64 {
	focusNorm := m.focus / metricScale
	tasksNorm := math.Min(m.tasks, metricScale) / metricScale
	sleepNorm := math.Max(0, 1-math.Abs(idealSleepHours-m.sleep)/idealSleepHours)
	negHyper := (m.hyper/metricScale + m.imp/metricScale) / 2
	screenNorm := math.Min(m.screen/maxScreenHours, 1)
	distNorm := math.Min(m.dist/metricScale, 1)

	positive := weightFocus*focusNorm + weightTasks*tasksNorm + weightSleep*sleepNorm
	negative := weightImpulse*(negHyper+weightDistractions*distNorm) + weightScreen*screenNorm

	raw := clamp(positive-negative, 0, 1)
	return round2(raw * metricScale)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
