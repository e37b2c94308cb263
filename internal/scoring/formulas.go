package scoring

import "math"

// Economic constants behind every cost/value formula. Dollar outputs
// round to the nearest $100 and hour outputs to one decimal, applied
// once at each formula's exit so intermediate values never compound
// rounding error.
const (
	HourlyRate = 250.0 // founder's effective $/hr

	EmailReadMinutes     = 2.0
	EmailResponseMinutes = 5.0

	MeetingPrepMinutes          = 10.0
	MeetingContextSwitchMinutes = 0.0
	MeetingFollowupMinutes      = 5.0

	WeeksPerMonth = 4.3

	// Monthly time-back caps (hours)
	MaxEmailTimeback       = 10.0
	MaxMeetingPrepTimeback = 8.0
	MaxDecisionTimeback    = 5.0
	MaxAutomationTimeback  = 12.0
	MaxTotalTimeback       = 25.0

	// Automation economics
	AutomationBuildRate          = 150.0 // $/hr to build a workflow
	AutomationMonthlyMaintenance = 100.0 // hosting + upkeep
	AssistantHourlyRate          = 35.0  // delegation comparison
)

// round1 rounds to one decimal place
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// roundTo100 rounds a dollar amount to the nearest $100
func roundTo100(v float64) int {
	return int(math.Round(v/100)) * 100
}

// EmailCostResult is the monthly time and dollar cost of handling
// delegatable email personally
type EmailCostResult struct {
	Hours float64 `json:"hours"`
	Cost  int     `json:"cost"`
}

// EmailCost estimates the monthly cost of delegatable email. 60% of
// delegatable items are assumed to need a response; all need reading.
func EmailCost(delegatableCount, totalCount int) EmailCostResult {
	responseMinutes := float64(delegatableCount) * 0.6 * EmailResponseMinutes
	readMinutes := float64(delegatableCount) * EmailReadMinutes
	weeklyMinutes := responseMinutes + readMinutes
	monthlyHours := weeklyMinutes / 60 * WeeksPerMonth

	return EmailCostResult{
		Hours: round1(monthlyHours),
		Cost:  roundTo100(monthlyHours * HourlyRate),
	}
}

// MeetingCostResult separates reported meeting hours from the true
// footprint including prep and follow-up overhead
type MeetingCostResult struct {
	ActualHours  float64 `json:"actualHours"`  // weekly, as reported
	TrueHours    float64 `json:"trueHours"`    // weekly, with overhead
	MonthlyHours float64 `json:"monthlyHours"`
	MonthlyCost  int     `json:"monthlyCost"`
}

// MeetingCost estimates the monthly cost of the weekly meeting load
func MeetingCost(weeklyMeetings int, weeklyHours float64) MeetingCostResult {
	overheadMinutes := float64(weeklyMeetings) * (MeetingPrepMinutes + MeetingContextSwitchMinutes + MeetingFollowupMinutes)
	weeklyMinutes := weeklyHours*60 + overheadMinutes
	trueWeeklyHours := weeklyMinutes / 60
	monthlyHours := trueWeeklyHours * WeeksPerMonth

	return MeetingCostResult{
		ActualHours:  round1(weeklyHours),
		TrueHours:    round1(trueWeeklyHours),
		MonthlyHours: round1(monthlyHours),
		MonthlyCost:  roundTo100(monthlyHours * HourlyRate),
	}
}

// AutomationEconomics is the build-vs-run side of an automation
type AutomationEconomics struct {
	BuildCost          int     `json:"buildCost"`
	MonthlyMaintenance int     `json:"monthlyMaintenance"`
	BreakEvenMonths    float64 `json:"breakEvenMonths"`
	FirstYearSavings   int     `json:"firstYearSavings"`
}

// DelegationEconomics prices the same time relief via hired help
type DelegationEconomics struct {
	MonthlyCost int `json:"monthlyCost"`
	AnnualCost  int `json:"annualCost"`
}

// AutomationCostResult compares automating automatable work against
// delegating it
type AutomationCostResult struct {
	WeeklyHours  float64             `json:"weeklyHours"`
	MonthlyHours float64             `json:"monthlyHours"`
	MonthlyCost  int                 `json:"monthlyCost"`
	Automation   AutomationEconomics `json:"automation"`
	Delegation   DelegationEconomics `json:"delegation"`
}

// AutomationCost estimates the economics of automating repetitive
// work. Automatable items carry a higher response-rate assumption
// (70%) than generic delegatable email.
func AutomationCost(automatableCount, totalCount int) AutomationCostResult {
	responseMinutes := float64(automatableCount) * 0.7 * EmailResponseMinutes
	readMinutes := float64(automatableCount) * EmailReadMinutes
	weeklyHours := (responseMinutes + readMinutes) / 60
	monthlyHours := weeklyHours * WeeksPerMonth
	monthlyCost := monthlyHours * HourlyRate

	// Build effort scales with volume, bounded to a 10-20h estimate
	buildHours := math.Min(math.Max(10, float64(automatableCount)/10), 20)
	buildCost := buildHours * AutomationBuildRate
	breakEvenMonths := buildCost / (monthlyCost - AutomationMonthlyMaintenance)

	delegationMonthly := weeklyHours * WeeksPerMonth * AssistantHourlyRate

	return AutomationCostResult{
		WeeklyHours:  round1(weeklyHours),
		MonthlyHours: round1(monthlyHours),
		MonthlyCost:  roundTo100(monthlyCost),
		Automation: AutomationEconomics{
			BuildCost:          roundTo100(buildCost),
			MonthlyMaintenance: int(AutomationMonthlyMaintenance),
			BreakEvenMonths:    round1(breakEvenMonths),
			FirstYearSavings:   int(math.Round(monthlyCost*12 - buildCost - AutomationMonthlyMaintenance*12)),
		},
		Delegation: DelegationEconomics{
			MonthlyCost: roundTo100(delegationMonthly),
			AnnualCost:  roundTo100(delegationMonthly * 12),
		},
	}
}

// TimebackBreakdown itemizes the monthly hours returned per category
type TimebackBreakdown struct {
	Email      float64 `json:"email"`
	Meetings   float64 `json:"meetings"`
	Decisions  float64 `json:"decisions"`
	Automation float64 `json:"automation"`
}

// TimebackResult is the total monthly time-back estimate
type TimebackResult struct {
	Hours     float64           `json:"hours"`
	Cost      int               `json:"cost"`
	Breakdown TimebackBreakdown `json:"breakdown"`
}

// AITimeback sums four independently capped monthly relief estimates,
// then applies the global cap. Per-category caps bind first, so the
// total cap only matters when several categories are near their
// individual limits at once.
func AITimeback(delegatableCount, weeklyMeetingCount, pendingCount, automatableCount int) TimebackResult {
	emailMinutes := float64(delegatableCount) * 0.5 * 3.5
	emailHours := math.Min(emailMinutes/60*WeeksPerMonth, MaxEmailTimeback)

	meetingMinutes := float64(weeklyMeetingCount) * MeetingPrepMinutes
	meetingHours := math.Min(meetingMinutes/60*WeeksPerMonth, MaxMeetingPrepTimeback)

	decisionMinutes := float64(pendingCount) * 5
	decisionHours := math.Min(decisionMinutes/60, MaxDecisionTimeback)

	automationHours := 0.0
	if automatableCount > 0 {
		automationMinutes := float64(automatableCount) * 0.8 * 4
		automationHours = math.Min(automationMinutes/60*WeeksPerMonth, MaxAutomationTimeback)
	}

	totalHours := math.Min(emailHours+meetingHours+decisionHours+automationHours, MaxTotalTimeback)

	return TimebackResult{
		Hours: round1(totalHours),
		Cost:  roundTo100(totalHours * HourlyRate),
		Breakdown: TimebackBreakdown{
			Email:      round1(emailHours),
			Meetings:   round1(meetingHours),
			Decisions:  round1(decisionHours),
			Automation: round1(automationHours),
		},
	}
}

// WeeklyValue prices weekly hours at the founder's rate
func WeeklyValue(hours float64) int {
	return int(math.Round(hours * HourlyRate))
}
