package analysis

import "github.com/julianstephens/mindlog/internal/models"

// Insight messages
const (
	MsgFocusImproved    = "Focus has improved over the period."
	MsgFocusDeclined    = "Focus has declined recently."
	MsgFocusStable      = "Focus relatively stable."
	MsgScreenHigh       = "Average screen time is high — consider limiting leisure screen time."
	MsgScreenModerate   = "Screen time moderate — avoid screens before sleep."
	MsgSleepBelow       = "Sleep below recommended—improving sleep may boost focus."
	MsgProductivityGood = "Productivity good; maintain routine."
	MsgProductivityLow  = "Productivity low; try smaller goals."
	MsgNotEnoughPattern = "Not enough pattern yet — keep logging consistently."
)

// DefaultInsightWindow is the window used when the caller has no preference
const DefaultInsightWindow = 7

const (
	slopeThreshold      = 0.2
	highScreenAbove     = 6.0
	moderateScreenAbove = 4.0
	insightSleepBelow   = 6.5
	productiveTasksFrom = 4.0
)

// GenerateInsights sorts history by date and summarizes trends over its last
// windowSize entries. A non-positive windowSize yields an empty window.
func GenerateInsights(history []models.DailyEntry, windowSize int) []string {
	if len(history) == 0 {
		return []string{MsgNoData}
	}

	window := tail(sortedByDate(history), windowSize)
	var out []string

	if focus := present(window, focusOf); len(focus) >= 2 {
		slope := (focus[len(focus)-1] - focus[0]) / float64(len(focus))
		switch {
		case slope > slopeThreshold:
			out = append(out, MsgFocusImproved)
		case slope < -slopeThreshold:
			out = append(out, MsgFocusDeclined)
		default:
			out = append(out, MsgFocusStable)
		}
	}

	if screenMean, ok := mean(present(window, screenOf)); ok {
		switch {
		case screenMean > highScreenAbove:
			out = append(out, MsgScreenHigh)
		case screenMean > moderateScreenAbove:
			out = append(out, MsgScreenModerate)
		}
	}

	if sleepMean, ok := mean(present(window, sleepOf)); ok && sleepMean < insightSleepBelow {
		out = append(out, MsgSleepBelow)
	}

	if len(window) > 0 {
		// no recorded tasks reads as low productivity
		tasksMean, _ := mean(present(window, tasksOf))
		if tasksMean >= productiveTasksFrom {
			out = append(out, MsgProductivityGood)
		} else {
			out = append(out, MsgProductivityLow)
		}
	}

	if len(out) == 0 {
		return []string{MsgNotEnoughPattern}
	}
	return out
}
