package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KatzVentures/FounderLeverageDashboard/internal/model"
)

func TestExtractEmailMetricsIgnoreSentinel(t *testing.T) {
	// Personal signals stay out of business counts even at full
	// confidence
	signals := []model.EmailSignal{
		{ThreadID: "t1", Category: model.CategoryPersonalIgnore, Confidence: 0.99},
		{ThreadID: "t2", Category: model.CategoryPersonalIgnore, Confidence: 1.0, SuggestedAction: "delegate to assistant"},
		{ThreadID: "t3", Category: model.CategoryDelegatableOperational, Confidence: 0.9},
	}

	got := ExtractEmailMetrics(signals, nil)
	assert.Equal(t, 2, got.PersonalIgnoredCount)
	assert.Equal(t, 1, got.DelegatableCount)
	assert.Equal(t, 0, got.AutomatableCount)
}

func TestExtractEmailMetricsConfidenceGate(t *testing.T) {
	signals := []model.EmailSignal{
		{ThreadID: "t1", Category: model.CategoryDelegatableOperational, Confidence: 0.69},
		{ThreadID: "t2", Category: model.CategoryDelegatableOperational, Confidence: 0.7},
		{ThreadID: "t3", Category: model.CategoryFirefighting, Confidence: 0.5},
	}

	got := ExtractEmailMetrics(signals, nil)
	assert.Equal(t, 1, got.DelegatableCount)
}

func TestExtractEmailMetricsSpecScenario(t *testing.T) {
	// 15 records: 5 ignored at high confidence, 10 delegatable below
	// the threshold. Nothing counts.
	var signals []model.EmailSignal
	for i := 0; i < 5; i++ {
		signals = append(signals, model.EmailSignal{Category: model.CategoryPersonalIgnore, Confidence: 0.9})
	}
	for i := 0; i < 10; i++ {
		signals = append(signals, model.EmailSignal{Category: model.CategoryDelegatableOperational, Confidence: 0.5})
	}

	got := ExtractEmailMetrics(signals, nil)
	assert.Equal(t, 0, got.DelegatableCount)
	assert.Equal(t, 0, got.AutomatableCount)
	assert.Equal(t, 5, got.PersonalIgnoredCount)
}

func TestExtractEmailMetricsDelegatable(t *testing.T) {
	tests := []struct {
		name   string
		signal model.EmailSignal
		want   bool
	}{
		{"operational category", model.EmailSignal{Category: model.CategoryDelegatableOperational, Confidence: 0.8}, true},
		{"team coordination", model.EmailSignal{Category: model.CategoryTeamCoordination, Confidence: 0.8}, true},
		{"firefighting", model.EmailSignal{Category: model.CategoryFirefighting, Confidence: 0.8}, true},
		{"strategic input", model.EmailSignal{Category: model.CategoryStrategicInput, Confidence: 0.8}, false},
		{"suggested delegation", model.EmailSignal{Category: model.CategoryExternalCritical, Confidence: 0.8, SuggestedAction: "Delegate follow-up to ops"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractEmailMetrics([]model.EmailSignal{tt.signal}, nil)
			assert.Equal(t, tt.want, got.DelegatableCount == 1)
		})
	}
}

func TestExtractEmailMetricsAutomatable(t *testing.T) {
	tests := []struct {
		name   string
		signal model.EmailSignal
		want   bool
	}{
		{"status update drain", model.EmailSignal{Category: model.CategoryDelegatableOperational, TimeDrainType: "Status Update Requests", Confidence: 0.8}, true},
		{"information request drain", model.EmailSignal{Category: model.CategoryDelegatableOperational, TimeDrainType: "Information Request", Confidence: 0.8}, true},
		{"recurring drain", model.EmailSignal{Category: model.CategoryDelegatableOperational, TimeDrainType: "Recurring order checks", Confidence: 0.8}, true},
		{"drain on wrong category", model.EmailSignal{Category: model.CategoryTeamCoordination, TimeDrainType: "Status Update", Confidence: 0.8}, false},
		{"explicit automate suggestion", model.EmailSignal{Category: model.CategoryTeamCoordination, SuggestedAction: "Automate with a shared dashboard", Confidence: 0.8}, true},
		{"plain operational", model.EmailSignal{Category: model.CategoryDelegatableOperational, Confidence: 0.8}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractEmailMetrics([]model.EmailSignal{tt.signal}, nil)
			assert.Equal(t, tt.want, got.AutomatableCount == 1)
		})
	}
}

func TestExtractEmailMetricsCount(t *testing.T) {
	signals := []model.EmailSignal{
		{Category: model.CategoryDelegatableOperational, Confidence: 0.9},
		{Category: model.CategoryStrategicInput, Confidence: 0.9},
		{Category: model.CategoryPersonalIgnore, Confidence: 0.9},
		{Category: model.CategoryTeamCoordination, Confidence: 0.4},
	}

	// Provider count wins when present
	withRaw := ExtractEmailMetrics(signals, &model.RawMetrics{MessageCount: 120})
	assert.Equal(t, 120, withRaw.Count)

	// Otherwise 2.5 messages per business thread: 3 threads -> 8
	noRaw := ExtractEmailMetrics(signals, nil)
	assert.Equal(t, 8, noRaw.Count)
}

func TestExtractMeetingMetrics(t *testing.T) {
	signals := []model.MeetingSignal{
		{EventID: "e1", IsWasteful: true, Confidence: 0.9},
		{EventID: "e2", IsWasteful: true, Confidence: 0.6}, // below gate
		{EventID: "e3", IsWasteful: false, Confidence: 0.95},
	}

	got := ExtractMeetingMetrics(signals, &model.RawMetrics{MeetingCount: 12, WeeklyMeetingHours: 9.25})
	assert.Equal(t, 12, got.Count)
	assert.Equal(t, 1, got.WastefulCount)
	assert.Equal(t, 9.3, got.WeeklyHours)
}

func TestExtractMeetingMetricsEstimatesHours(t *testing.T) {
	signals := []model.MeetingSignal{
		{EventID: "e1", Confidence: 0.9},
		{EventID: "e2", Confidence: 0.9},
	}

	// No provider hours: 2 events at 30 min across a 4.3-week month
	got := ExtractMeetingMetrics(signals, nil)
	assert.Equal(t, 2, got.Count)
	assert.Equal(t, 0.2, got.WeeklyHours)
}

func TestExtractMeetingMetricsEmpty(t *testing.T) {
	got := ExtractMeetingMetrics(nil, nil)
	assert.Zero(t, got.Count)
	assert.Zero(t, got.WastefulCount)
	assert.Zero(t, got.WeeklyHours)
}
