package scoring

import "github.com/KatzVentures/FounderLeverageDashboard/internal/model"

// Component weight shares of the overall 100-point scale. The four
// live components sum to 90; the remaining 10 points are headroom left
// by the retired Process Maturity section.
var componentWeights = map[model.Component]int{
	model.ComponentTimeAllocation:    30,
	model.ComponentDelegationQuality: 25,
	model.ComponentStrategicFocus:    20,
	model.ComponentOperatingRhythm:   15,
}

// ComponentWeight returns a component's share of the 100-point scale
func ComponentWeight(c model.Component) int {
	return componentWeights[c]
}

// Components lists the live scoring components in display order
func Components() []model.Component {
	return []model.Component{
		model.ComponentTimeAllocation,
		model.ComponentDelegationQuality,
		model.ComponentStrategicFocus,
		model.ComponentOperatingRhythm,
	}
}

var frequencyOptions = []string{"Daily", "Weekly", "Occasionally", "Rarely"}

// questionCatalog is the static, ordered assessment. Dropdown options
// are ordered best-first for normal questions; reverse-scored
// questions keep the same option order and flip the curve instead.
var questionCatalog = []model.Question{
	// Where your time actually goes
	{ID: "q1", Text: "How often do you block time for deep, focused work?", Type: model.QuestionTypeDropdown, Options: frequencyOptions, Component: model.ComponentTimeAllocation, Points: 4},
	{ID: "q2", Text: "How often do you get pulled into strategy and big-picture thinking?", Type: model.QuestionTypeDropdown, Options: frequencyOptions, Component: model.ComponentTimeAllocation, Points: 4},
	{ID: "q3", Text: "How often do you lead or attend scheduled team meetings?", Type: model.QuestionTypeDropdown, Options: frequencyOptions, Component: model.ComponentTimeAllocation, Points: 3},
	{ID: "q4", Text: "How often do you give guidance to accelerate results/projects?", Type: model.QuestionTypeDropdown, Options: frequencyOptions, Component: model.ComponentTimeAllocation, Points: 3},
	{ID: "q5", Text: "How often do you get pulled into unscheduled tasks?", Type: model.QuestionTypeDropdown, Options: frequencyOptions, Component: model.ComponentTimeAllocation, Points: 3, ReverseScored: true},
	{ID: "q6", Text: "How often do you take over tasks your team should do?", Type: model.QuestionTypeDropdown, Options: frequencyOptions, Component: model.ComponentTimeAllocation, Points: 3, ReverseScored: true},

	// What you shouldn't own (anymore)
	{ID: "q7", Text: "How confident are you in your team's decisions?", Type: model.QuestionTypeDropdown, Options: []string{"Fully Confident", "Very Confident", "Mostly Confident", "Somewhat Confident", "Not Confident"}, Component: model.ComponentDelegationQuality, Points: 4},
	{ID: "q8", Text: "How often can you coach or mentor your reports?", Type: model.QuestionTypeDropdown, Options: frequencyOptions, Component: model.ComponentDelegationQuality, Points: 3},
	{ID: "q9", Text: "How often do you reset or clarify team responsibilities?", Type: model.QuestionTypeDropdown, Options: frequencyOptions, Component: model.ComponentDelegationQuality, Points: 3},
	{ID: "q10", Text: "How often do you ensure follow-through on delegated tasks?", Type: model.QuestionTypeDropdown, Options: frequencyOptions, Component: model.ComponentDelegationQuality, Points: 3},
	{ID: "q11", Text: "How often do you make decisions your team should own?", Type: model.QuestionTypeDropdown, Options: frequencyOptions, Component: model.ComponentDelegationQuality, Points: 3, ReverseScored: true},
	{ID: "q12", Text: "How often do you redo work instead of giving feedback?", Type: model.QuestionTypeDropdown, Options: frequencyOptions, Component: model.ComponentDelegationQuality, Points: 3, ReverseScored: true},

	// How you protect (or destroy) your focus
	{ID: "q13", Text: "I protect time for thinking, not just doing", Type: model.QuestionTypeToggle, Component: model.ComponentStrategicFocus, Points: 3},
	{ID: "q14", Text: "I end each week with a clear review or recap", Type: model.QuestionTypeToggle, Component: model.ComponentStrategicFocus, Points: 2},
	{ID: "q15", Text: "I start each day with a clear priority list", Type: model.QuestionTypeToggle, Component: model.ComponentStrategicFocus, Points: 2},
	{ID: "q16", Text: "I batch communications and shallow work", Type: model.QuestionTypeToggle, Component: model.ComponentStrategicFocus, Points: 2},
	{ID: "q17", Text: "I keep working even when I'm mentally exhausted", Type: model.QuestionTypeToggle, Component: model.ComponentStrategicFocus, Points: 2, ReverseScored: true},
	{ID: "q18", Text: "I'm always busy with tasks that feel urgent but aren't strategic", Type: model.QuestionTypeToggle, Component: model.ComponentStrategicFocus, Points: 2, ReverseScored: true},

	// Your personal operating system
	{ID: "q19", Text: "I plan my week in advance with clear priorities", Type: model.QuestionTypeToggle, Component: model.ComponentOperatingRhythm, Points: 2},
	{ID: "q20", Text: "I review my P&L & key financials at least monthly", Type: model.QuestionTypeToggle, Component: model.ComponentOperatingRhythm, Points: 2},
	{ID: "q21", Text: "I schedule time weekly for learning or growth", Type: model.QuestionTypeToggle, Component: model.ComponentOperatingRhythm, Points: 2},
	{ID: "q22", Text: "I block time each week for recovery or rest", Type: model.QuestionTypeToggle, Component: model.ComponentOperatingRhythm, Points: 2},
	{ID: "q23", Text: "I start most days by checking Slack or email", Type: model.QuestionTypeToggle, Component: model.ComponentOperatingRhythm, Points: 2, ReverseScored: true},
	{ID: "q24", Text: "I often step in to fix issues my team could resolve themselves", Type: model.QuestionTypeToggle, Component: model.ComponentOperatingRhythm, Points: 2, ReverseScored: true},
}

// Questions returns the full ordered catalog
func Questions() []model.Question {
	out := make([]model.Question, len(questionCatalog))
	copy(out, questionCatalog)
	return out
}

// QuestionsForComponent returns the catalog filtered to one component,
// preserving order
func QuestionsForComponent(c model.Component) []model.Question {
	var out []model.Question
	for _, q := range questionCatalog {
		if q.Component == c {
			out = append(out, q)
		}
	}
	return out
}

// Position-based scoring curves. Index 0 is the best answer on normal
// questions and the worst on reverse-scored ones.
var (
	curveDropdown5        = []float64{1.0, 0.75, 0.5, 0.25, 0.0}
	curveDropdown4        = []float64{1.0, 0.66, 0.33, 0.0}
	curveDropdown4Reverse = []float64{0.0, 0.33, 0.66, 1.0}
	curveDropdown5Reverse = []float64{0.0, 0.25, 0.5, 0.75, 1.0}
)

// dropdownMultiplier maps an option position to its scoring multiplier
// for a question with the given option count and direction. Positions
// beyond the curve clamp to the last entry.
func dropdownMultiplier(optionCount, position int, reverse bool) float64 {
	var curve []float64
	switch {
	case optionCount == 4 && reverse:
		curve = curveDropdown4Reverse
	case optionCount == 4:
		curve = curveDropdown4
	case reverse:
		curve = curveDropdown5Reverse
	default:
		curve = curveDropdown5
	}
	if position >= len(curve) {
		position = len(curve) - 1
	}
	return curve[position]
}

// toggleMultiplier maps a boolean answer to its scoring multiplier
func toggleMultiplier(value, reverse bool) float64 {
	if value != reverse {
		return 1.0
	}
	return 0.0
}
