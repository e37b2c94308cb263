package model

import "time"

// Assessment is one respondent's submission plus its latest computed
// result. Results are always re-derivable from Answers (and Signals,
// when deep analysis ran).
type Assessment struct {
	ID             string            `json:"id" bson:"_id,omitempty"`
	Answers        AssessmentAnswers `json:"answers" bson:"answers"`
	Mode           AnalysisMode      `json:"mode" bson:"mode"`
	EmailSignals   []EmailSignal     `json:"emailSignals,omitempty" bson:"emailSignals,omitempty"`
	MeetingSignals []MeetingSignal   `json:"meetingSignals,omitempty" bson:"meetingSignals,omitempty"`
	RawMetrics     *RawMetrics       `json:"rawMetrics,omitempty" bson:"rawMetrics,omitempty"`
	Solutions      []AISolution      `json:"solutions,omitempty" bson:"solutions,omitempty"`
	Result         *ResultRecord     `json:"result,omitempty" bson:"result,omitempty"`
	CreatedAt      time.Time         `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt" bson:"updatedAt"`
}

// AssessmentSession is the short-lived funnel state kept in Redis so
// the results page can be reloaded without resubmitting
type AssessmentSession struct {
	ID           string            `json:"id"`
	AssessmentID string            `json:"assessmentId"`
	Answers      AssessmentAnswers `json:"answers,omitempty"`
	Result       *ResultRecord     `json:"result,omitempty"`
	Views        int               `json:"views"`
	CreatedAt    time.Time         `json:"createdAt"`
}

// Lead is the record pushed to the CRM after a successful scoring run
type Lead struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Score        int    `json:"score"`
	StageName    string `json:"stageName"`
	StageEmoji   string `json:"stageEmoji"`
	RevenueRange string `json:"revenueRange,omitempty"`
}
