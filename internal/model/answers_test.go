package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerValueUnmarshalJSON(t *testing.T) {
	var answers AssessmentAnswers
	payload := []byte(`{
		"q1": "Daily",
		"q13": true,
		"q17": false,
		"q2": 42,
		"q3": null,
		"name": "Dana"
	}`)

	require.NoError(t, json.Unmarshal(payload, &answers))

	assert.Equal(t, AnswerText, answers["q1"].Kind)
	assert.Equal(t, "Daily", answers["q1"].Text)

	assert.Equal(t, AnswerBool, answers["q13"].Kind)
	assert.True(t, answers["q13"].Bool)
	assert.Equal(t, AnswerBool, answers["q17"].Kind)
	assert.False(t, answers["q17"].Bool)

	// Unexpected shapes decode without error but stay invalid, so one
	// bad field never rejects a whole submission
	assert.Equal(t, AnswerInvalid, answers["q2"].Kind)
	assert.Equal(t, AnswerInvalid, answers["q3"].Kind)

	assert.Equal(t, "Dana", answers.Name())
}

func TestAnswerValueMarshalJSON(t *testing.T) {
	answers := AssessmentAnswers{
		"q1":  TextAnswer("Weekly"),
		"q13": BoolAnswer(true),
	}

	data, err := json.Marshal(answers)
	require.NoError(t, err)

	var decoded AssessmentAnswers
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, answers, decoded)
}

func TestReservedFieldHelpers(t *testing.T) {
	answers := AssessmentAnswers{
		AnswerKeyName:         TextAnswer("Dana Whitfield"),
		AnswerKeyEmail:        TextAnswer("dana@example.com"),
		AnswerKeyRevenueRange: TextAnswer("$1M-$5M"),
	}

	assert.Equal(t, "Dana Whitfield", answers.Name())
	assert.Equal(t, "dana@example.com", answers.Email())
	assert.Equal(t, "$1M-$5M", answers.RevenueRange())

	empty := AssessmentAnswers{}
	assert.Empty(t, empty.Name())
	assert.Empty(t, empty.Email())

	// Reserved keys answered with the wrong type read as empty
	wrongType := AssessmentAnswers{AnswerKeyEmail: BoolAnswer(true)}
	assert.Empty(t, wrongType.Email())
}

func TestKnownEmailCategory(t *testing.T) {
	for _, c := range []EmailCategory{
		CategoryDelegatableOperational,
		CategoryStrategicInput,
		CategoryTeamCoordination,
		CategoryExternalCritical,
		CategoryFirefighting,
		CategoryPersonalIgnore,
	} {
		assert.True(t, KnownEmailCategory(c))
	}
	assert.False(t, KnownEmailCategory("SPAM"))
	assert.False(t, KnownEmailCategory(""))
}
