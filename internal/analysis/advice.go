package analysis

import "github.com/julianstephens/mindlog/internal/models"

// Advice messages
const (
	MsgNoData           = "No data available."
	MsgLowFocus         = "Low recent focus — try Pomodoro (25/5) and reduce distractions."
	MsgModerateFocus    = "Focus moderate — short breaks & prioritized task list could help."
	MsgStableFocus      = "Focus stable — keep routine."
	MsgLowSleep         = "Sleep is low — aim for 7–8 hours."
	MsgVeryHighScreen   = "Very high screen time (>8h/day). Strongly reduce leisure screen time."
	MsgHighScreen       = "High screen time — reduce non-essential use, use app timers."
	MsgModerateScreen   = "Moderate screen time — avoid screens before bed."
	MsgLowProductivity  = "Low productivity — break tasks into 15–20 minute chunks."
	MsgLowMood          = "Recent mood is low — consider talking to someone or relaxation exercises."
	MsgNoSpecificAdvice = "No specific suggestions; continue tracking to build patterns."
)

// AdviceWindow is the number of most recent entries the advisory rules inspect
const AdviceWindow = 7

// Advice thresholds
const (
	lowFocusBelow       = 4.0
	moderateFocusBelow  = 6.0
	lowSleepBelow       = 6.5
	veryHighScreenFrom  = 8.0
	highScreenFrom      = 6.0
	moderateScreenFrom  = 4.0
	lowTasksBelow       = 2.0
	productiveFocusFrom = 5.0
	moodWindow          = 3
	lowMoodBelow        = 1.0
)

// Mood weights used by the low-mood rule
var moodValues = map[models.Mood]float64{
	models.MoodGood: 2,
	models.MoodOkay: 1,
	models.MoodBad:  0,
}

// DefaultMoodValue is the weight of an empty or unrecognized mood
const DefaultMoodValue = 1.0

// RuleBasedAdvice inspects the most recent entries of history, which must be
// in chronological order, and returns distinct suggestions in rule order.
func RuleBasedAdvice(history []models.DailyEntry) []string {
	if len(history) == 0 {
		return []string{MsgNoData}
	}

	recent := tail(history, AdviceWindow)
	var out []string

	focusMean, hasFocus := mean(present(recent, focusOf))
	if hasFocus {
		switch {
		case focusMean < lowFocusBelow:
			out = append(out, MsgLowFocus)
		case focusMean < moderateFocusBelow:
			out = append(out, MsgModerateFocus)
		default:
			out = append(out, MsgStableFocus)
		}
	}

	if sleepMean, ok := mean(present(recent, sleepOf)); ok && sleepMean < lowSleepBelow {
		out = append(out, MsgLowSleep)
	}

	if screenMean, ok := mean(present(recent, screenOf)); ok {
		switch {
		case screenMean >= veryHighScreenFrom:
			out = append(out, MsgVeryHighScreen)
		case screenMean >= highScreenFrom:
			out = append(out, MsgHighScreen)
		case screenMean >= moderateScreenFrom:
			out = append(out, MsgModerateScreen)
		}
	}

	// an absent focus counts as permitting the productivity warning
	if tasksMean, ok := mean(present(recent, tasksOf)); ok && tasksMean < lowTasksBelow {
		if !hasFocus || focusMean < productiveFocusFrom {
			out = append(out, MsgLowProductivity)
		}
	}

	if moods := recentMoods(history, moodWindow); len(moods) > 0 {
		if m, _ := mean(moods); m < lowMoodBelow {
			out = append(out, MsgLowMood)
		}
	}

	out = dedupe(out)
	if len(out) == 0 {
		return []string{MsgNoSpecificAdvice}
	}
	return out
}

// recentMoods maps the moods of the last n entries of history to weights.
// It returns nil when no entry in history has a mood at all.
func recentMoods(history []models.DailyEntry, n int) []float64 {
	hasMood := false
	for _, e := range history {
		if e.Mood != models.MoodNone {
			hasMood = true
			break
		}
	}
	if !hasMood {
		return nil
	}

	var vals []float64
	for _, e := range tail(history, n) {
		v, ok := moodValues[e.Mood]
		if !ok {
			v = DefaultMoodValue
		}
		vals = append(vals, v)
	}
	return vals
}

func dedupe(msgs []string) []string {
	seen := make(map[string]struct{}, len(msgs))
	out := msgs[:0]
	for _, m := range msgs {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}
