package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KatzVentures/FounderLeverageDashboard/internal/config"
	"github.com/KatzVentures/FounderLeverageDashboard/internal/model"
)

func disabledAnalyzer() *AnalyzerService {
	return &AnalyzerService{config: &config.AIConfig{}}
}

func TestCategorizeEmailsFallback(t *testing.T) {
	threads := []model.EmailThread{
		{ThreadID: "t1", Subject: "Invoice #4821 from supplier", MessageCount: 3},
		{ThreadID: "t2", Subject: "Any update on the Henderson project?", MessageCount: 5},
		{ThreadID: "t3", Subject: "URGENT: site is down", MessageCount: 8},
		{ThreadID: "t4", Subject: "Weekly newsletter: growth tips", MessageCount: 1},
		{ThreadID: "t5", Subject: "Q3 roadmap and budget thoughts", MessageCount: 4},
	}

	signals := disabledAnalyzer().CategorizeEmails(context.Background(), threads)
	require.Len(t, signals, 5)

	byID := map[string]model.EmailSignal{}
	for _, s := range signals {
		byID[s.ThreadID] = s
	}

	assert.Equal(t, model.CategoryDelegatableOperational, byID["t1"].Category)
	assert.Equal(t, model.CategoryDelegatableOperational, byID["t2"].Category)
	assert.Equal(t, "Status Update Requests", byID["t2"].TimeDrainType)
	assert.Equal(t, model.CategoryFirefighting, byID["t3"].Category)
	assert.Equal(t, model.CategoryPersonalIgnore, byID["t4"].Category)
	assert.Equal(t, model.CategoryStrategicInput, byID["t5"].Category)

	// Fallback confidence sits exactly at the trust threshold
	for _, s := range signals {
		assert.Equal(t, 0.7, s.Confidence)
	}
}

func TestCategorizeEmailsFallbackIsDeterministic(t *testing.T) {
	threads := []model.EmailThread{
		{ThreadID: "t1", Subject: "Invoice processing"},
		{ThreadID: "t2", Subject: "Checking in on status"},
	}

	a := disabledAnalyzer()
	first := a.CategorizeEmails(context.Background(), threads)
	second := a.CategorizeEmails(context.Background(), threads)
	assert.Equal(t, first, second)
}

func TestCategorizeMeetingsFallback(t *testing.T) {
	events := []model.CalendarEvent{
		{EventID: "e1", Title: "Daily standup", IsRecurring: true},
		{EventID: "e2", Title: "Partner call", HasExternalAttendees: true},
		{EventID: "e3", Title: "Quarterly planning", AttendeeCount: 6},
	}

	signals := disabledAnalyzer().CategorizeMeetings(context.Background(), events)
	require.Len(t, signals, 3)

	assert.Equal(t, "Status Meeting", signals[0].Category)
	assert.True(t, signals[0].IsWasteful)
	assert.Equal(t, "External Meeting", signals[1].Category)
	assert.False(t, signals[1].IsWasteful)
	assert.Equal(t, "Planning", signals[2].Category)
}

func TestSynthesizeSolutionsDisabled(t *testing.T) {
	signals := []model.EmailSignal{{ThreadID: "t1", Category: model.CategoryTeamCoordination, Confidence: 0.9}}
	assert.Nil(t, disabledAnalyzer().SynthesizeSolutions(context.Background(), signals, nil))
}

func TestSanitizeEmailSignals(t *testing.T) {
	batch := []model.EmailThread{{ThreadID: "t1"}, {ThreadID: "t2"}}
	raw := []model.EmailSignal{
		{ThreadID: "t1", Category: model.CategoryFirefighting, Confidence: 1.7},
		{ThreadID: "t2", Category: "MADE_UP_CATEGORY", Confidence: 0.9},
		{ThreadID: "t9", Category: model.CategoryFirefighting, Confidence: 0.9},
	}

	got := sanitizeEmailSignals(raw, batch)
	require.Len(t, got, 1)
	assert.Equal(t, "t1", got[0].ThreadID)
	assert.Equal(t, 1.0, got[0].Confidence)
}

func TestSanitizeMeetingSignals(t *testing.T) {
	batch := []model.CalendarEvent{{EventID: "e1"}}
	raw := []model.MeetingSignal{
		{EventID: "e1", Confidence: -0.5},
		{EventID: "e7", Confidence: 0.9},
	}

	got := sanitizeMeetingSignals(raw, batch)
	require.Len(t, got, 1)
	assert.Equal(t, 0.0, got[0].Confidence)
}
