package model

// QuestionType defines the answer domain of a question
type QuestionType string

const (
	QuestionTypeDropdown QuestionType = "dropdown" // Enumerated choice
	QuestionTypeToggle   QuestionType = "toggle"   // Boolean yes/no
)

// Component identifies which scoring component a question feeds
type Component string

const (
	ComponentTimeAllocation    Component = "timeAllocation"
	ComponentDelegationQuality Component = "delegationQuality"
	ComponentStrategicFocus    Component = "strategicFocus"
	ComponentOperatingRhythm   Component = "operatingRhythm"
)

// Question is one item in the static assessment catalog
type Question struct {
	ID            string       `json:"id"`
	Text          string       `json:"text"`
	Type          QuestionType `json:"type"`
	Options       []string     `json:"options,omitempty"` // Dropdown only, ordered best-first (worst-first when reverse scored)
	Component     Component    `json:"component"`
	Points        int          `json:"points"`
	ReverseScored bool         `json:"reverseScored,omitempty"`
}
