// Package chart draws terminal line charts of entry metrics.
package chart

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/julianstephens/mindlog/internal/analysis"
	"github.com/julianstephens/mindlog/internal/models"
)

// NoData is rendered in place of a chart with nothing to plot
const NoData = "No data"

const (
	DefaultHeight   = 10
	DefaultWidth    = 60
	movingAvgWindow = 2
	// the moving average overlay needs at least this many points
	movingAvgMin = 3
)

// Kind selects a chart
type Kind string

const (
	KindFocus  Kind = "focus"
	KindScore  Kind = "score"
	KindSleep  Kind = "sleep"
	KindScreen Kind = "screen"
	KindMood   Kind = "mood"
)

// Kinds lists every chart in display order
var Kinds = []Kind{KindFocus, KindScore, KindSleep, KindScreen, KindMood}

// Options controls chart size
type Options struct {
	Height int
	Width  int
}

func (o Options) withDefaults() Options {
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	return o
}

// Render draws one chart for entries, which are expected in date order
func Render(kind Kind, entries []models.DailyEntry, opts Options) (string, error) {
	opts = opts.withDefaults()
	switch kind {
	case KindFocus:
		return FocusTrend(entries, opts), nil
	case KindScore:
		return trend("Cognitive score", series(entries, func(e models.DailyEntry) *float64 {
			v := e.CognitiveScore
			return &v
		}), opts), nil
	case KindSleep:
		return trend("Sleep hours", series(entries, func(e models.DailyEntry) *float64 { return e.SleepHours }), opts), nil
	case KindScreen:
		return trend("Screen time (hours)", series(entries, func(e models.DailyEntry) *float64 { return e.ScreenTime }), opts), nil
	case KindMood:
		return MoodDistribution(entries, opts.Width), nil
	}
	return "", fmt.Errorf("unknown chart %q (choose from %s)", kind, kindList())
}

// FocusTrend plots focus with a two-point moving average overlaid once there
// are enough points.
func FocusTrend(entries []models.DailyEntry, opts Options) string {
	opts = opts.withDefaults()
	values := series(entries, func(e models.DailyEntry) *float64 { return models.IntValue(e.Focus) })
	if len(values) == 0 {
		return NoData
	}
	if len(values) < movingAvgMin {
		return trend("Focus", values, opts)
	}
	return asciigraph.PlotMany(
		[][]float64{values, MovingAverage(values, movingAvgWindow)},
		asciigraph.Height(opts.Height),
		asciigraph.Width(opts.Width),
		asciigraph.Precision(1),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Red),
		asciigraph.SeriesLegends("focus", "2-day average"),
		asciigraph.Caption("Focus"),
	)
}

// MovingAverage returns the trailing mean over window points. Positions
// without a full window are NaN.
func MovingAverage(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	for i := range values {
		if window <= 0 || i+1 < window {
			out[i] = math.NaN()
			continue
		}
		sum := 0.0
		for _, v := range values[i+1-window : i+1] {
			sum += v
		}
		out[i] = sum / float64(window)
	}
	return out
}

// MoodDistribution renders a horizontal bar per mood
func MoodDistribution(entries []models.DailyEntry, width int) string {
	counts := analysis.MoodCounts(entries)
	if len(counts) == 0 {
		return NoData
	}
	if width <= 0 {
		width = DefaultWidth
	}

	moods := append([]models.Mood(nil), models.Moods...)
	var extra []models.Mood
	for m := range counts {
		if !m.Known() {
			extra = append(extra, m)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	moods = append(moods, extra...)

	max, label := 0, 0
	for _, m := range moods {
		if counts[m] > max {
			max = counts[m]
		}
		if len(m) > label {
			label = len(m)
		}
	}
	barMax := width - label - 8
	if barMax < 1 {
		barMax = 1
	}

	var b strings.Builder
	b.WriteString("Mood distribution\n")
	for _, m := range moods {
		n := counts[m]
		bar := int(math.Round(float64(n) / float64(max) * float64(barMax)))
		fmt.Fprintf(&b, "%-*s %s %d\n", label, m, strings.Repeat("█", bar), n)
	}
	return strings.TrimRight(b.String(), "\n")
}

func trend(caption string, values []float64, opts Options) string {
	if len(values) == 0 {
		return NoData
	}
	return asciigraph.Plot(values,
		asciigraph.Height(opts.Height),
		asciigraph.Width(opts.Width),
		asciigraph.Precision(1),
		asciigraph.Caption(caption),
	)
}

func series(entries []models.DailyEntry, get func(models.DailyEntry) *float64) []float64 {
	var out []float64
	for _, e := range entries {
		if v := get(e); v != nil {
			out = append(out, *v)
		}
	}
	return out
}

func kindList() string {
	names := make([]string, len(Kinds))
	for i, k := range Kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}
