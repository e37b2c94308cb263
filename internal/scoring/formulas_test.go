package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailCost(t *testing.T) {
	// 100 delegatable: 100*0.6*5 response + 100*2 read = 500 weekly
	// minutes, 35.83 monthly hours at $250/hr
	got := EmailCost(100, 200)
	assert.Equal(t, 35.8, got.Hours)
	assert.Equal(t, 9000, got.Cost)
}

func TestEmailCostZero(t *testing.T) {
	got := EmailCost(0, 0)
	assert.Equal(t, 0.0, got.Hours)
	assert.Equal(t, 0, got.Cost)
}

func TestMeetingCost(t *testing.T) {
	// 10 meetings add 150 overhead minutes to 12 reported hours
	got := MeetingCost(10, 12)
	assert.Equal(t, 12.0, got.ActualHours)
	assert.Equal(t, 14.5, got.TrueHours)
	assert.Equal(t, 62.4, got.MonthlyHours)
	assert.Equal(t, 15600, got.MonthlyCost)
}

func TestAutomationCost(t *testing.T) {
	got := AutomationCost(50, 100)

	assert.Equal(t, 4.6, got.WeeklyHours)
	assert.Equal(t, 19.7, got.MonthlyHours)
	assert.Equal(t, 4900, got.MonthlyCost)

	// 50 items -> 10 build hours at $150
	assert.Equal(t, 1500, got.Automation.BuildCost)
	assert.Equal(t, 100, got.Automation.MonthlyMaintenance)
	assert.Equal(t, 0.3, got.Automation.BreakEvenMonths)
	assert.Equal(t, 56425, got.Automation.FirstYearSavings)

	assert.Equal(t, 700, got.Delegation.MonthlyCost)
	assert.Equal(t, 8300, got.Delegation.AnnualCost)
}

func TestAutomationCostBuildHoursCapped(t *testing.T) {
	// 300 items would imply 30 build hours; the estimate caps at 20
	got := AutomationCost(300, 400)
	assert.Equal(t, 3000, got.Automation.BuildCost)
}

func TestAITimebackCaps(t *testing.T) {
	// Every category far over its cap: per-category caps bind, then
	// the global cap trims the sum
	got := AITimeback(200, 20, 100, 300)

	assert.Equal(t, 10.0, got.Breakdown.Email)
	assert.Equal(t, 8.0, got.Breakdown.Meetings)
	assert.Equal(t, 5.0, got.Breakdown.Decisions)
	assert.Equal(t, 12.0, got.Breakdown.Automation)
	assert.Equal(t, 25.0, got.Hours)
}

func TestAITimebackNeverExceedsGlobalCap(t *testing.T) {
	for _, n := range []int{0, 1, 10, 100, 1000, 100000} {
		got := AITimeback(n, n, n, n)
		require.LessOrEqualf(t, got.Hours, 25.0, "count %d", n)
	}
}

func TestAITimebackSmallCounts(t *testing.T) {
	got := AITimeback(10, 2, 3, 0)

	assert.Equal(t, 1.3, got.Breakdown.Email)
	assert.Equal(t, 1.4, got.Breakdown.Meetings)
	assert.Equal(t, 0.3, got.Breakdown.Decisions)
	assert.Equal(t, 0.0, got.Breakdown.Automation)
	assert.Equal(t, 2.9, got.Hours)
	assert.Equal(t, 700, got.Cost)
}

func TestDollarOutputsAreMultiplesOf100(t *testing.T) {
	for _, n := range []int{1, 7, 13, 42, 99, 250, 777} {
		assert.Zero(t, EmailCost(n, n*2).Cost%100)
		assert.Zero(t, MeetingCost(n, float64(n)).MonthlyCost%100)
		assert.Zero(t, AITimeback(n, n, n, n).Cost%100)
	}
}

func TestHourOutputsHaveOneDecimal(t *testing.T) {
	oneDecimal := func(v float64) bool {
		return v == math.Round(v*10)/10
	}

	for _, n := range []int{3, 17, 81, 333} {
		assert.True(t, oneDecimal(EmailCost(n, n*2).Hours))
		assert.True(t, oneDecimal(MeetingCost(n, float64(n)*1.3).TrueHours))
		assert.True(t, oneDecimal(AITimeback(n, n, n, n).Hours))
	}
}

func TestWeeklyValue(t *testing.T) {
	assert.Equal(t, 1125, WeeklyValue(4.5))
	assert.Equal(t, 0, WeeklyValue(0))
}
