package model

// EmailCategory is the closed label set the categorizer assigns to an
// email thread. PERSONAL_IGNORE is the sentinel for personal content
// that must never reach business metrics.
type EmailCategory string

const (
	CategoryDelegatableOperational EmailCategory = "DELEGATABLE_OPERATIONAL"
	CategoryStrategicInput         EmailCategory = "STRATEGIC_INPUT"
	CategoryTeamCoordination       EmailCategory = "TEAM_COORDINATION"
	CategoryExternalCritical       EmailCategory = "EXTERNAL_CRITICAL"
	CategoryFirefighting           EmailCategory = "FIREFIGHTING"
	CategoryPersonalIgnore         EmailCategory = "PERSONAL_IGNORE"
)

// KnownEmailCategory reports whether the categorizer returned a label
// from the closed set. Unknown labels are excluded from all tallies.
func KnownEmailCategory(c EmailCategory) bool {
	switch c {
	case CategoryDelegatableOperational, CategoryStrategicInput,
		CategoryTeamCoordination, CategoryExternalCritical,
		CategoryFirefighting, CategoryPersonalIgnore:
		return true
	}
	return false
}

// EmailSignal is one categorized email thread from the external
// categorizer
type EmailSignal struct {
	ThreadID        string        `json:"threadId" bson:"threadId"`
	Category        EmailCategory `json:"category" bson:"category"`
	TimeDrainType   string        `json:"timeDrainType,omitempty" bson:"timeDrainType,omitempty"`
	Confidence      float64       `json:"confidence" bson:"confidence"` // 0-1
	Reasoning       string        `json:"reasoning,omitempty" bson:"reasoning,omitempty"`
	SuggestedAction string        `json:"suggestedAction,omitempty" bson:"suggestedAction,omitempty"`
}

// MeetingSignal is one categorized calendar event from the external
// categorizer
type MeetingSignal struct {
	EventID         string  `json:"eventId" bson:"eventId"`
	Category        string  `json:"category" bson:"category"`
	MeetingType     string  `json:"meetingType,omitempty" bson:"meetingType,omitempty"`
	IsWasteful      bool    `json:"isWasteful" bson:"isWasteful"`
	Confidence      float64 `json:"confidence" bson:"confidence"` // 0-1
	Reasoning       string  `json:"reasoning,omitempty" bson:"reasoning,omitempty"`
	SuggestedAction string  `json:"suggestedAction,omitempty" bson:"suggestedAction,omitempty"`
}

// RawMetrics are provider-level counts passed alongside (or instead
// of) per-item signals in deep-analysis mode
type RawMetrics struct {
	ThreadCount        int     `json:"threadCount" bson:"threadCount"`
	MessageCount       int     `json:"messageCount" bson:"messageCount"`
	MeetingCount       int     `json:"meetingCount" bson:"meetingCount"`
	WeeklyMeetingHours float64 `json:"weeklyMeetingHours" bson:"weeklyMeetingHours"`
	PendingReplyCount  int     `json:"pendingReplyCount" bson:"pendingReplyCount"`
}

// AISolution is a synthesized intervention suggestion produced by the
// external categorizer's solutions pass. The engine only wraps it with
// deterministic savings estimates.
type AISolution struct {
	Name        string   `json:"name" bson:"name"`
	Description string   `json:"description" bson:"description"`
	Tools       []string `json:"tools" bson:"tools"`
}

// EmailThread is the sanitized thread summary sent to the categorizer
type EmailThread struct {
	ThreadID     string   `json:"threadId"`
	Subject      string   `json:"subject"`
	Participants []string `json:"participants,omitempty"`
	MessageCount int      `json:"messageCount"`
	Snippet      string   `json:"snippet,omitempty"`
}

// CalendarEvent is the event summary sent to the categorizer
type CalendarEvent struct {
	EventID              string `json:"eventId"`
	Title                string `json:"title"`
	Description          string `json:"description,omitempty"`
	DurationMinutes      int    `json:"durationMinutes"`
	AttendeeCount        int    `json:"attendeeCount"`
	HasExternalAttendees bool   `json:"hasExternalAttendees"`
	IsRecurring          bool   `json:"isRecurring"`
}
