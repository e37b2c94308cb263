package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KatzVentures/FounderLeverageDashboard/internal/model"
)

// bestAnswers answers every question with its best option: first
// dropdown option for normal questions, last for reverse-scored, and
// the toggle value opposite the reverse flag.
func bestAnswers() model.AssessmentAnswers {
	answers := model.AssessmentAnswers{}
	for _, q := range Questions() {
		switch q.Type {
		case model.QuestionTypeDropdown:
			if q.ReverseScored {
				answers[q.ID] = model.TextAnswer(q.Options[len(q.Options)-1])
			} else {
				answers[q.ID] = model.TextAnswer(q.Options[0])
			}
		case model.QuestionTypeToggle:
			answers[q.ID] = model.BoolAnswer(!q.ReverseScored)
		}
	}
	return answers
}

// worstAnswers inverts bestAnswers
func worstAnswers() model.AssessmentAnswers {
	answers := model.AssessmentAnswers{}
	for _, q := range Questions() {
		switch q.Type {
		case model.QuestionTypeDropdown:
			if q.ReverseScored {
				answers[q.ID] = model.TextAnswer(q.Options[0])
			} else {
				answers[q.ID] = model.TextAnswer(q.Options[len(q.Options)-1])
			}
		case model.QuestionTypeToggle:
			answers[q.ID] = model.BoolAnswer(q.ReverseScored)
		}
	}
	return answers
}

func TestComponentWeightsSumTo90(t *testing.T) {
	total := 0
	for _, c := range Components() {
		total += ComponentWeight(c)
	}
	assert.Equal(t, 90, total)
}

func TestEmptyAnswersScoreAtFloor(t *testing.T) {
	// With no answers, only the flat behavioral half-weight remains:
	// round(15) + round(12.5) + round(10) + round(7.5)
	scores := ComponentScoresFor(model.AssessmentAnswers{}, nil)

	assert.Equal(t, 15, scores.TimeAllocation)
	assert.Equal(t, 13, scores.DelegationQuality)
	assert.Equal(t, 10, scores.StrategicFocus)
	assert.Equal(t, 8, scores.OperatingRhythm)
	assert.Equal(t, 46, TotalScore(model.AssessmentAnswers{}, nil))
}

func TestBestAnswersReachComponentWeights(t *testing.T) {
	answers := bestAnswers()
	scores := ComponentScoresFor(answers, nil)

	assert.Equal(t, 30, scores.TimeAllocation)
	assert.Equal(t, 25, scores.DelegationQuality)
	assert.Equal(t, 20, scores.StrategicFocus)
	assert.Equal(t, 15, scores.OperatingRhythm)

	score := TotalScore(answers, nil)
	assert.Equal(t, 90, score)
	assert.Equal(t, "Elite Operator", StageForScore(float64(score)).Name)
}

func TestWorstAnswersEqualFloor(t *testing.T) {
	// Worst self-assessment contributes zero points, so only the
	// behavioral placeholder remains, same as answering nothing
	assert.Equal(t, TotalScore(model.AssessmentAnswers{}, nil), TotalScore(worstAnswers(), nil))
}

func TestMalformedAnswersContributeZero(t *testing.T) {
	answers := model.AssessmentAnswers{
		"q1":  model.BoolAnswer(true),        // dropdown answered with a bool
		"q13": model.TextAnswer("yes"),       // toggle answered with text
		"q2":  model.TextAnswer("Sometimes"), // not a member of the options
		"q99": model.TextAnswer("Daily"),     // unknown question id
	}
	assert.Equal(t, 46, TotalScore(answers, nil))
}

func TestPartialAnswersScaleOntoHalfWeight(t *testing.T) {
	answers := model.AssessmentAnswers{
		"q1": model.TextAnswer("Daily"),  // 4 * 1.0
		"q2": model.TextAnswer("Weekly"), // 4 * 0.66
		"q5": model.TextAnswer("Rarely"), // reverse scored, 3 * 1.0
	}

	// selfPoints 9.64 of 20, scaled onto 15, plus the 15-point
	// behavioral half: round(7.23 + 15)
	assert.Equal(t, 22, ComponentScore(model.ComponentTimeAllocation, answers, nil))
}

func TestReverseScoredToggle(t *testing.T) {
	// q23 is reverse scored: answering false is the good outcome
	goodHabit := model.AssessmentAnswers{"q23": model.BoolAnswer(false)}
	badHabit := model.AssessmentAnswers{"q23": model.BoolAnswer(true)}

	good := ComponentScore(model.ComponentOperatingRhythm, goodHabit, nil)
	bad := ComponentScore(model.ComponentOperatingRhythm, badHabit, nil)
	assert.Greater(t, good, bad)
}

func TestComponentScoreCappedAtWeight(t *testing.T) {
	inflated := func(_ model.Component, weight float64) float64 {
		return weight * 10
	}

	for _, c := range Components() {
		got := ComponentScore(c, bestAnswers(), inflated)
		require.Equal(t, ComponentWeight(c), got)
	}
}

func TestScoreBounds(t *testing.T) {
	cases := []model.AssessmentAnswers{
		{},
		bestAnswers(),
		worstAnswers(),
		{"q1": model.TextAnswer("Daily")},
	}
	for _, answers := range cases {
		score := TotalScore(answers, nil)
		require.GreaterOrEqual(t, score, 0)
		require.LessOrEqual(t, score, 100)
	}
}
