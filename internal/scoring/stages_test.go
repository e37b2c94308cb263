package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStagePartition(t *testing.T) {
	for score := 0; score <= 100; score++ {
		matches := 0
		for _, s := range Stages() {
			if score >= s.MinScore && score <= s.MaxScore {
				matches++
			}
		}
		require.Equalf(t, 1, matches, "score %d must match exactly one stage", score)
	}
}

func TestStageForScoreBoundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0, "Crisis State"},
		{29, "Crisis State"},
		{30, "Firefighter Mode"},
		{49, "Firefighter Mode"},
		{50, "Overloaded Founder"},
		{69, "Overloaded Founder"},
		{70, "Stretched Leader"},
		{89, "Stretched Leader"},
		{90, "Elite Operator"},
		{100, "Elite Operator"},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.want, StageForScore(tt.score).Name, "score %v", tt.score)
	}
}

func TestStageForScoreClampsOutOfRange(t *testing.T) {
	assert.Equal(t, "Crisis State", StageForScore(-15).Name)
	assert.Equal(t, "Elite Operator", StageForScore(140).Name)
}

func TestStageForScoreNonFinite(t *testing.T) {
	assert.Equal(t, "Crisis State", StageForScore(math.NaN()).Name)
	assert.Equal(t, "Crisis State", StageForScore(math.Inf(1)).Name)
	assert.Equal(t, "Crisis State", StageForScore(math.Inf(-1)).Name)
}

func TestStageMonotonicity(t *testing.T) {
	// tierRank maps each stage to its quality order, worst first
	tierRank := map[string]int{}
	stages := Stages()
	for i, s := range stages {
		tierRank[s.Name] = len(stages) - i
	}

	prev := 0
	for score := 0; score <= 100; score++ {
		rank := tierRank[StageForScore(float64(score)).Name]
		require.GreaterOrEqualf(t, rank, prev, "stage quality regressed at score %d", score)
		prev = rank
	}
}
