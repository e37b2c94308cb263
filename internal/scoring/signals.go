package scoring

import (
	"strings"

	"github.com/KatzVentures/FounderLeverageDashboard/internal/model"
)

// MinConfidence is the trust threshold below which a categorized
// signal is excluded from every aggregate count.
const MinConfidence = 0.7

// assumed minutes per meeting when the provider gave no durations
const defaultMeetingMinutes = 30.0

// EmailMetrics are the aggregate counts extracted from categorized
// email signals
type EmailMetrics struct {
	Count                int
	DelegatableCount     int
	AutomatableCount     int
	PersonalIgnoredCount int
}

// MeetingMetrics are the aggregate counts extracted from categorized
// meeting signals
type MeetingMetrics struct {
	Count         int
	WeeklyHours   float64
	WastefulCount int
}

// ExtractEmailMetrics tallies delegatable and automatable work from
// categorizer output. PERSONAL_IGNORE signals never contribute to
// business counts regardless of confidence — uncertain content must
// not leak into scoring — and everything else needs confidence at or
// above MinConfidence.
func ExtractEmailMetrics(signals []model.EmailSignal, raw *model.RawMetrics) EmailMetrics {
	var business []model.EmailSignal
	ignored := 0
	for _, s := range signals {
		if s.Category == model.CategoryPersonalIgnore {
			ignored++
			continue
		}
		business = append(business, s)
	}

	m := EmailMetrics{PersonalIgnoredCount: ignored}

	for _, s := range business {
		if s.Confidence < MinConfidence {
			continue
		}
		if emailDelegatable(s) {
			m.DelegatableCount++
		}
		if emailAutomatable(s) {
			m.AutomatableCount++
		}
	}

	// Total message count: provider metrics when available, otherwise
	// an average of 2.5 messages per business thread.
	switch {
	case raw != nil && raw.MessageCount > 0:
		m.Count = raw.MessageCount
	default:
		m.Count = int(float64(len(business))*2.5 + 0.5)
	}

	return m
}

func emailDelegatable(s model.EmailSignal) bool {
	switch s.Category {
	case model.CategoryDelegatableOperational, model.CategoryTeamCoordination, model.CategoryFirefighting:
		return true
	}
	return strings.Contains(strings.ToLower(s.SuggestedAction), "delegate")
}

// Automatable work is the repetitive subset of delegatable work:
// status/lookup drain patterns, or an explicit automation suggestion.
func emailAutomatable(s model.EmailSignal) bool {
	drain := strings.ToLower(s.TimeDrainType)
	action := strings.ToLower(s.SuggestedAction)

	if s.Category == model.CategoryDelegatableOperational {
		if strings.Contains(drain, "status update") ||
			strings.Contains(drain, "information request") ||
			strings.Contains(drain, "recurring") {
			return true
		}
	}
	return strings.Contains(action, "automate")
}

// ExtractMeetingMetrics tallies wasteful meetings and estimates the
// weekly meeting load. When the provider supplied no weekly hours, the
// estimate assumes defaultMeetingMinutes per event over a month.
func ExtractMeetingMetrics(signals []model.MeetingSignal, raw *model.RawMetrics) MeetingMetrics {
	m := MeetingMetrics{Count: len(signals)}
	if raw != nil && raw.MeetingCount > 0 {
		m.Count = raw.MeetingCount
	}

	for _, s := range signals {
		if s.Confidence >= MinConfidence && s.IsWasteful {
			m.WastefulCount++
		}
	}

	switch {
	case raw != nil && raw.WeeklyMeetingHours > 0:
		m.WeeklyHours = round1(raw.WeeklyMeetingHours)
	case m.Count > 0:
		m.WeeklyHours = round1(float64(m.Count) * defaultMeetingMinutes / 60 / WeeksPerMonth)
	}

	return m
}
