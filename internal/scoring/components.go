package scoring

import (
	"math"

	"github.com/KatzVentures/FounderLeverageDashboard/internal/model"
)

// BehavioralContribution supplies the data-driven half of a component
// score. Self-assessment answers are scaled onto only half of each
// component's weight; the other half is reserved for behavioral
// signal enrichment. DefaultBehavioralContribution holds that slot at
// a flat half-weight until real signal scoring lands.
type BehavioralContribution func(c model.Component, weight float64) float64

// DefaultBehavioralContribution returns the flat placeholder
// half-weight for every component.
func DefaultBehavioralContribution(_ model.Component, weight float64) float64 {
	return weight * 0.5
}

// ComponentScore scores one component from self-assessment answers.
// Unanswered or malformed answers contribute zero points. The result
// is an integer in [0, weight].
func ComponentScore(c model.Component, answers model.AssessmentAnswers, behavioral BehavioralContribution) int {
	if behavioral == nil {
		behavioral = DefaultBehavioralContribution
	}

	questions := QuestionsForComponent(c)
	maxPoints := 0
	selfPoints := 0.0

	for _, q := range questions {
		maxPoints += q.Points

		answer, ok := answers[q.ID]
		if !ok {
			continue
		}

		switch q.Type {
		case model.QuestionTypeDropdown:
			if answer.Kind != model.AnswerText {
				continue
			}
			position := optionIndex(q.Options, answer.Text)
			if position < 0 {
				continue
			}
			selfPoints += float64(q.Points) * dropdownMultiplier(len(q.Options), position, q.ReverseScored)
		case model.QuestionTypeToggle:
			if answer.Kind != model.AnswerBool {
				continue
			}
			selfPoints += float64(q.Points) * toggleMultiplier(answer.Bool, q.ReverseScored)
		}
	}

	weight := float64(ComponentWeight(c))
	if maxPoints == 0 {
		return 0
	}

	selfScaled := selfPoints / float64(maxPoints) * (weight * 0.5)
	score := math.Round(selfScaled + behavioral(c, weight))

	return int(math.Min(score, weight))
}

// ComponentScoresFor scores all four components
func ComponentScoresFor(answers model.AssessmentAnswers, behavioral BehavioralContribution) model.ComponentScores {
	return model.ComponentScores{
		TimeAllocation:    ComponentScore(model.ComponentTimeAllocation, answers, behavioral),
		DelegationQuality: ComponentScore(model.ComponentDelegationQuality, answers, behavioral),
		StrategicFocus:    ComponentScore(model.ComponentStrategicFocus, answers, behavioral),
		OperatingRhythm:   ComponentScore(model.ComponentOperatingRhythm, answers, behavioral),
	}
}

// TotalScore sums the component scores, clamped to [0,100]
func TotalScore(answers model.AssessmentAnswers, behavioral BehavioralContribution) int {
	total := 0
	for _, c := range Components() {
		total += ComponentScore(c, answers, behavioral)
	}
	if total > 100 {
		return 100
	}
	if total < 0 {
		return 0
	}
	return total
}

func optionIndex(options []string, value string) int {
	for i, opt := range options {
		if opt == value {
			return i
		}
	}
	return -1
}
