package model

// AnalysisMode selects between self-assessment-only scoring and the
// deep email/calendar signal path
type AnalysisMode string

const (
	ModeAnswersOnly  AnalysisMode = "ANSWERS_ONLY"
	ModeDeepAnalysis AnalysisMode = "DEEP_ANALYSIS"
)

// ComponentScores holds the four per-component scores, each capped at
// its component's weight share
type ComponentScores struct {
	TimeAllocation    int `json:"timeAllocation" bson:"timeAllocation"`
	DelegationQuality int `json:"delegationQuality" bson:"delegationQuality"`
	StrategicFocus    int `json:"strategicFocus" bson:"strategicFocus"`
	OperatingRhythm   int `json:"operatingRhythm" bson:"operatingRhythm"`
}

// TimeCategory is one slice of the Worthy/Whirlwind/Wasted split
type TimeCategory struct {
	Category   string `json:"category" bson:"category"`
	Percentage int    `json:"percentage" bson:"percentage"`
	Color      string `json:"color" bson:"color"`
}

// EmailLoad summarizes weekly email volume and the delegatable/
// automatable share of it
type EmailLoad struct {
	Count            int     `json:"count" bson:"count"`
	Hours            float64 `json:"hours" bson:"hours"` // weekly
	DelegatableCount int     `json:"delegatableCount" bson:"delegatableCount"`
	AutomatableCount int     `json:"automatableCount" bson:"automatableCount"`
}

// MeetingCostSummary is the monthly dollar figure plus the weekly
// meeting footprint behind it
type MeetingCostSummary struct {
	Amount      int     `json:"amount" bson:"amount"` // monthly, nearest $100
	Count       int     `json:"count" bson:"count"`
	WeeklyHours float64 `json:"weeklyHours" bson:"weeklyHours"`
}

// ResponseLag captures decisions waiting on the respondent
type ResponseLag struct {
	Pending  int     `json:"pending" bson:"pending"`
	AvgHours float64 `json:"avgHours" bson:"avgHours"`
}

// TimeBreakdownEntry is one of the four fixed activity buckets
type TimeBreakdownEntry struct {
	Category    string  `json:"category" bson:"category"`
	Percentage  int     `json:"percentage" bson:"percentage"`
	Hours       float64 `json:"hours" bson:"hours"`
	Automatable float64 `json:"automatable" bson:"automatable"`
}

// TimeLeak is the top-leak narrative plus its dollar value
type TimeLeak struct {
	TotalHoursWasted float64 `json:"totalHoursWasted" bson:"totalHoursWasted"` // weekly
	WeeklyValue      int     `json:"weeklyValue" bson:"weeklyValue"`
	MonthlyValue     int     `json:"monthlyValue" bson:"monthlyValue"`
	TopLeak          string  `json:"topLeak" bson:"topLeak"`
	Description      string  `json:"description" bson:"description"`
}

// AutomationPattern is one recurring automatable request type
type AutomationPattern struct {
	Type       string `json:"type" bson:"type"`
	Count      int    `json:"count" bson:"count"`
	Percentage int    `json:"percentage" bson:"percentage"`
}

// AutomationMetrics is the automation-vs-delegation economics block,
// present only when automatable work was found
type AutomationMetrics struct {
	WeeklyHours           float64             `json:"weeklyHours" bson:"weeklyHours"`
	MonthlyHours          float64             `json:"monthlyHours" bson:"monthlyHours"`
	MonthlyCost           int                 `json:"monthlyCost" bson:"monthlyCost"`
	Patterns              []AutomationPattern `json:"patterns" bson:"patterns"`
	BuildCost             int                 `json:"buildCost" bson:"buildCost"`
	MonthlyMaintenance    int                 `json:"monthlyMaintenance" bson:"monthlyMaintenance"`
	BreakEvenMonths       float64             `json:"breakEvenMonths" bson:"breakEvenMonths"`
	FirstYearSavings      int                 `json:"firstYearSavings" bson:"firstYearSavings"`
	DelegationAlternative int                 `json:"delegationAlternative" bson:"delegationAlternative"`
}

// Opportunity is one ranked recommendation with projected savings
type Opportunity struct {
	ID                 int    `json:"id" bson:"id"`
	Emoji              string `json:"emoji" bson:"emoji"`
	Title              string `json:"title" bson:"title"`
	Description        string `json:"description" bson:"description"`
	Tools              string `json:"tools,omitempty" bson:"tools,omitempty"`
	TimeSaved          string `json:"timeSaved" bson:"timeSaved"`
	WeeklySavings      int    `json:"weeklySavings" bson:"weeklySavings"`
	MonthlySavings     int    `json:"monthlySavings" bson:"monthlySavings"`
	BuildCost          int    `json:"buildCost" bson:"buildCost"`
	MonthlyMaintenance int    `json:"monthlyMaintenance" bson:"monthlyMaintenance"`
	BreakEvenWeeks     int    `json:"breakEvenWeeks" bson:"breakEvenWeeks"`
	ROI                string `json:"roi" bson:"roi"`
	ImplementationTime string `json:"implementationTime" bson:"implementationTime"`
	Priority           string `json:"priority" bson:"priority"` // "high" or "medium"
	Type               string `json:"type" bson:"type"`         // "automation", "ai-assisted", "ai-powered"
}

// ResultMeta records how a result was produced
type ResultMeta struct {
	AnalysisMode AnalysisMode `json:"analysisMode" bson:"analysisMode"`
	EmailUsed    bool         `json:"emailUsed" bson:"emailUsed"`
	CalendarUsed bool         `json:"calendarUsed" bson:"calendarUsed"`
	FallbackUsed bool         `json:"fallbackUsed" bson:"fallbackUsed"`
}

// ResultRecord is the engine's sole output: fully populated on every
// scoring run, never mutated afterwards, safe to serialize
type ResultRecord struct {
	Score             int                  `json:"score" bson:"score"`
	ComponentScores   ComponentScores      `json:"componentScores" bson:"componentScores"`
	TimeCategories    []TimeCategory       `json:"timeCategories" bson:"timeCategories"`
	EmailLoad         EmailLoad            `json:"emailLoad" bson:"emailLoad"`
	AutomationMetrics *AutomationMetrics   `json:"automationMetrics,omitempty" bson:"automationMetrics,omitempty"`
	MeetingCost       MeetingCostSummary   `json:"meetingCost" bson:"meetingCost"`
	ResponseLag       ResponseLag          `json:"responseLag" bson:"responseLag"`
	TimeBreakdown     []TimeBreakdownEntry `json:"timeBreakdown" bson:"timeBreakdown"`
	TimeLeak          TimeLeak             `json:"timeLeak" bson:"timeLeak"`
	AIOpportunities   []Opportunity        `json:"aiOpportunities" bson:"aiOpportunities"`
	Meta              ResultMeta           `json:"meta" bson:"meta"`
}
