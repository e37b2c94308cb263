package scoring

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/KatzVentures/FounderLeverageDashboard/internal/model"
)

// Input is everything a scoring run consumes. The engine reads no
// ambient state: the orchestration layer loads answers and signals and
// passes them here as values.
type Input struct {
	Mode           model.AnalysisMode
	Answers        model.AssessmentAnswers
	EmailSignals   []model.EmailSignal
	MeetingSignals []model.MeetingSignal
	RawMetrics     *model.RawMetrics
	Solutions      []model.AISolution

	// Behavioral overrides the data-driven half-weight seam; nil uses
	// the flat placeholder.
	Behavioral BehavioralContribution
}

const weeklyWorkHours = 40.0

// wastedDivisor bounds the deep-mode Wasted estimate; a tunable
// heuristic, not a derived constant.
const wastedDivisor = 10.0

// default response-lag estimate when the provider reports pending
// replies without timing data
const defaultPendingAvgHours = 8.0

// Calculate runs the full scoring pipeline and returns a fully-shaped
// ResultRecord. Identical inputs always produce identical records.
func Calculate(in Input) model.ResultRecord {
	score := TotalScore(in.Answers, in.Behavioral)
	componentScores := ComponentScoresFor(in.Answers, in.Behavioral)

	var (
		email        EmailMetrics
		meeting      MeetingMetrics
		pending      int
		pendingAvg   float64
		fallbackUsed bool
	)

	if in.Mode == model.ModeDeepAnalysis {
		switch {
		case len(in.EmailSignals) > 0:
			email = ExtractEmailMetrics(in.EmailSignals, in.RawMetrics)
		case in.RawMetrics != nil:
			// No per-item categorization: estimate shares from raw
			// provider counts.
			email = EmailMetrics{
				Count:            maxInt(in.RawMetrics.MessageCount, in.RawMetrics.ThreadCount),
				DelegatableCount: int(math.Round(float64(in.RawMetrics.ThreadCount) * 0.4)),
				AutomatableCount: int(math.Round(float64(in.RawMetrics.ThreadCount) * 0.3)),
			}
			fallbackUsed = true
		}

		if len(in.MeetingSignals) > 0 {
			meeting = ExtractMeetingMetrics(in.MeetingSignals, in.RawMetrics)
		} else if in.RawMetrics != nil {
			meeting = MeetingMetrics{
				Count:       in.RawMetrics.MeetingCount,
				WeeklyHours: round1(in.RawMetrics.WeeklyMeetingHours),
			}
		}

		if in.RawMetrics != nil {
			pending = in.RawMetrics.PendingReplyCount
		}
		pendingAvg = defaultPendingAvgHours
	}

	emailCost := EmailCost(email.DelegatableCount, email.Count)
	meetingCost := MeetingCost(meeting.Count, meeting.WeeklyHours)

	var automation *model.AutomationMetrics
	if email.AutomatableCount > 0 {
		automation = buildAutomationMetrics(email, in.EmailSignals)
	}

	worthy := math.Max(30, float64(score)*0.6)
	var wasted float64
	if in.Mode == model.ModeDeepAnalysis {
		wasted = math.Max(10, math.Min(40, (float64(email.AutomatableCount)+meeting.WeeklyHours)/wastedDivisor))
	} else {
		wasted = math.Max(10, float64(100-score))
	}
	whirlwind := math.Max(0, 100-worthy-wasted)

	return model.ResultRecord{
		Score:           score,
		ComponentScores: componentScores,
		TimeCategories: []model.TimeCategory{
			{Category: "Worthy", Percentage: roundInt(worthy), Color: "#4CAF50"},
			{Category: "Whirlwind", Percentage: roundInt(whirlwind), Color: "#EDDF00"},
			{Category: "Wasted", Percentage: roundInt(wasted), Color: "#F44336"},
		},
		EmailLoad: model.EmailLoad{
			Count:            email.Count,
			Hours:            round1(emailCost.Hours / WeeksPerMonth),
			DelegatableCount: email.DelegatableCount,
			AutomatableCount: email.AutomatableCount,
		},
		AutomationMetrics: automation,
		MeetingCost: model.MeetingCostSummary{
			Amount:      meetingCost.MonthlyCost,
			Count:       meeting.Count,
			WeeklyHours: meeting.WeeklyHours,
		},
		ResponseLag: model.ResponseLag{
			Pending:  pending,
			AvgHours: pendingAvg,
		},
		TimeBreakdown:   buildTimeBreakdown(worthy, whirlwind, wasted, email.AutomatableCount),
		TimeLeak:        buildTimeLeak(emailCost, email, meeting, in.EmailSignals),
		AIOpportunities: buildOpportunities(email, meeting, automation, in.EmailSignals, in.MeetingSignals, in.Solutions),
		Meta: model.ResultMeta{
			AnalysisMode: in.Mode,
			EmailUsed:    in.Mode == model.ModeDeepAnalysis && (len(in.EmailSignals) > 0 || in.RawMetrics != nil),
			CalendarUsed: in.Mode == model.ModeDeepAnalysis && (len(in.MeetingSignals) > 0 || in.RawMetrics != nil),
			FallbackUsed: fallbackUsed,
		},
	}
}

// buildTimeBreakdown allocates a fixed 40-hour work week across the
// four activity buckets from the Worthy/Whirlwind/Wasted split
func buildTimeBreakdown(worthy, whirlwind, wasted float64, automatableCount int) []model.TimeBreakdownEntry {
	doing := worthy / 100 * weeklyWorkHours
	coordinating := whirlwind / 100 * weeklyWorkHours
	strategic := worthy / 100 * weeklyWorkHours * 0.3
	admin := wasted / 100 * weeklyWorkHours

	// ~9 min of every automatable email lands in hands-on work
	automatableHours := float64(automatableCount) * 0.15

	return []model.TimeBreakdownEntry{
		{Category: "Doing the work", Percentage: roundInt(doing / weeklyWorkHours * 100), Hours: round1(doing), Automatable: round1(automatableHours)},
		{Category: "Coordinating others", Percentage: roundInt(coordinating / weeklyWorkHours * 100), Hours: round1(coordinating), Automatable: 0},
		{Category: "Strategic decisions", Percentage: roundInt(strategic / weeklyWorkHours * 100), Hours: round1(strategic), Automatable: 0},
		{Category: "Admin & overhead", Percentage: roundInt(admin / weeklyWorkHours * 100), Hours: round1(admin), Automatable: round1(automatableHours * 0.2)},
	}
}

// buildTimeLeak prices the weekly email plus meeting-overhead drain.
// Only prep/follow-up overhead counts, never full meeting duration.
func buildTimeLeak(emailCost EmailCostResult, email EmailMetrics, meeting MeetingMetrics, signals []model.EmailSignal) model.TimeLeak {
	emailWeeklyHours := emailCost.Hours / WeeksPerMonth
	overheadWeeklyHours := float64(meeting.Count) * (MeetingPrepMinutes + MeetingFollowupMinutes) / 60
	totalWeekly := emailWeeklyHours + overheadWeeklyHours

	topLeak := "Email coordination and meeting overhead"
	description := fmt.Sprintf("You're spending %d hours per week on tasks that could be automated or delegated.", roundInt(totalWeekly))

	if drain := dominantDrainType(signals); drain != "" {
		switch {
		case strings.Contains(drain, "status update"):
			topLeak = "Status update loops and repetitive requests"
			description = fmt.Sprintf("You're spending %d hours per week responding to status updates and repetitive information requests that could be automated.", roundInt(totalWeekly))
		case strings.Contains(drain, "coordination"):
			topLeak = "Coordination overhead and email back-and-forth"
			description = fmt.Sprintf("You're spending %d hours per week on coordination emails that could be streamlined or delegated.", roundInt(totalWeekly))
		case strings.Contains(drain, "information request"):
			topLeak = "Manual information lookups and data requests"
			description = fmt.Sprintf("You're spending %d hours per week answering information requests that could be automated with simple systems.", roundInt(totalWeekly))
		}
	} else if email.AutomatableCount > email.DelegatableCount {
		topLeak = "Manual process work that could be automated"
		description = fmt.Sprintf("You're spending %d hours per week on repetitive process work that could be fully automated with simple workflows.", roundInt(totalWeekly))
	} else if email.Count > 50 {
		description = fmt.Sprintf("You're spending %d hours per week on email coordination and meeting overhead that could be automated or delegated.", roundInt(totalWeekly))
	}

	overheadMonthlyCost := overheadWeeklyHours * WeeksPerMonth * HourlyRate

	return model.TimeLeak{
		TotalHoursWasted: round1(totalWeekly),
		WeeklyValue:      WeeklyValue(totalWeekly),
		MonthlyValue:     emailCost.Cost + roundTo100(overheadMonthlyCost),
		TopLeak:          topLeak,
		Description:      description,
	}
}

// dominantDrainType returns the most frequent lowercased time-drain
// label among trusted business signals, or "" when none exist. Ties
// break alphabetically so results stay deterministic.
func dominantDrainType(signals []model.EmailSignal) string {
	counts := map[string]int{}
	for _, s := range signals {
		if s.Category == model.CategoryPersonalIgnore || s.Confidence < MinConfidence || s.TimeDrainType == "" {
			continue
		}
		counts[strings.ToLower(s.TimeDrainType)]++
	}
	return topKey(counts)
}

// buildAutomationMetrics combines the automation economics with the
// recurring request patterns seen in the signals
func buildAutomationMetrics(email EmailMetrics, signals []model.EmailSignal) *model.AutomationMetrics {
	calc := AutomationCost(email.AutomatableCount, email.Count)

	patterns := signalPatterns(signals)
	if len(patterns) == 0 {
		// Volume-shaped defaults when no categorized detail exists
		patterns = []model.AutomationPattern{
			{Type: "Purchase order requests", Count: roundInt(float64(email.AutomatableCount) * 0.41), Percentage: 41},
			{Type: "Invoice processing", Count: roundInt(float64(email.AutomatableCount) * 0.26), Percentage: 26},
			{Type: "Inventory status checks", Count: roundInt(float64(email.AutomatableCount) * 0.18), Percentage: 18},
			{Type: "Order status updates", Count: roundInt(float64(email.AutomatableCount) * 0.15), Percentage: 15},
		}
	}

	return &model.AutomationMetrics{
		WeeklyHours:           calc.WeeklyHours,
		MonthlyHours:          calc.MonthlyHours,
		MonthlyCost:           calc.MonthlyCost,
		Patterns:              patterns,
		BuildCost:             calc.Automation.BuildCost,
		MonthlyMaintenance:    calc.Automation.MonthlyMaintenance,
		BreakEvenMonths:       calc.Automation.BreakEvenMonths,
		FirstYearSavings:      calc.Automation.FirstYearSavings,
		DelegationAlternative: calc.Delegation.MonthlyCost,
	}
}

// signalPatterns extracts the top four signal categories by volume
func signalPatterns(signals []model.EmailSignal) []model.AutomationPattern {
	counts := map[string]int{}
	for _, s := range signals {
		if s.Category == model.CategoryPersonalIgnore || s.Confidence < MinConfidence {
			continue
		}
		counts[string(s.Category)]++
	}
	if len(counts) == 0 {
		return nil
	}

	type kv struct {
		key   string
		count int
	}
	sorted := make([]kv, 0, len(counts))
	for k, c := range counts {
		sorted = append(sorted, kv{k, c})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].count != sorted[j].count {
			return sorted[i].count > sorted[j].count
		}
		return sorted[i].key < sorted[j].key
	})
	if len(sorted) > 4 {
		sorted = sorted[:4]
	}

	total := 0
	for _, e := range sorted {
		total += e.count
	}

	patterns := make([]model.AutomationPattern, len(sorted))
	for i, e := range sorted {
		pct := 0
		if total > 0 {
			pct = roundInt(float64(e.count) / float64(total) * 100)
		}
		patterns[i] = model.AutomationPattern{Type: e.key, Count: e.count, Percentage: pct}
	}
	return patterns
}

// buildOpportunities produces the ranked recommendation list, capped
// at three. Externally synthesized solutions take precedence; the
// rule-based generator covers the rest, gated by volume thresholds.
func buildOpportunities(
	email EmailMetrics,
	meeting MeetingMetrics,
	automation *model.AutomationMetrics,
	emailSignals []model.EmailSignal,
	meetingSignals []model.MeetingSignal,
	solutions []model.AISolution,
) []model.Opportunity {
	if len(solutions) > 0 {
		return wrapSolutions(solutions)
	}

	opportunities := []model.Opportunity{}

	if email.AutomatableCount > 20 {
		opportunities = append(opportunities, automationOpportunity(email, automation, emailSignals))
	}
	if email.DelegatableCount > 30 {
		opportunities = append(opportunities, triageOpportunity(email, emailSignals))
	}
	if meeting.Count > 10 || meeting.WeeklyHours > 8 || meeting.WastefulCount > 0 {
		opportunities = append(opportunities, meetingOpportunity(meeting, meetingSignals))
	}

	sort.SliceStable(opportunities, func(i, j int) bool {
		hi, hj := opportunities[i].Priority == "high", opportunities[j].Priority == "high"
		if hi != hj {
			return hi
		}
		return opportunities[i].WeeklySavings > opportunities[j].WeeklySavings
	})
	if len(opportunities) > 3 {
		opportunities = opportunities[:3]
	}
	return opportunities
}

// wrapSolutions attaches stepped savings estimates to externally
// synthesized solutions: earlier entries are assumed to save more.
func wrapSolutions(solutions []model.AISolution) []model.Opportunity {
	emojis := []string{"🤖", "🎯", "📊"}
	implementation := []string{"2-3 weeks", "1-2 weeks", "2-4 weeks"}

	if len(solutions) > 3 {
		solutions = solutions[:3]
	}

	out := make([]model.Opportunity, len(solutions))
	for i, sol := range solutions {
		hours := float64(4 + i*2)
		buildCost := 2000 + i*400
		maintenance := 100 + i*50

		priority := "high"
		if i >= 2 {
			priority = "medium"
		}

		out[i] = model.Opportunity{
			ID:                 i + 1,
			Emoji:              emojis[i],
			Title:              sol.Name,
			Description:        sol.Description,
			Tools:              strings.Join(sol.Tools, ", "),
			TimeSaved:          fmt.Sprintf("%d hours/week", roundInt(hours)),
			WeeklySavings:      WeeklyValue(hours),
			MonthlySavings:     roundInt(hours * HourlyRate * WeeksPerMonth),
			BuildCost:          buildCost,
			MonthlyMaintenance: maintenance,
			BreakEvenWeeks:     roundInt(float64(buildCost) / (hours * HourlyRate * 4)),
			ROI:                firstYearROI(hours, float64(buildCost), float64(maintenance)),
			ImplementationTime: implementation[i],
			Priority:           priority,
			Type:               "ai-powered",
		}
	}
	return out
}

func automationOpportunity(email EmailMetrics, automation *model.AutomationMetrics, signals []model.EmailSignal) model.Opportunity {
	hours := float64(email.AutomatableCount) * 0.15
	buildCost := 2400
	maintenance := 100
	if automation != nil {
		if automation.WeeklyHours > 0 {
			hours = automation.WeeklyHours
		}
		buildCost = automation.BuildCost
		maintenance = automation.MonthlyMaintenance
	}

	title := "Automate Repetitive Email Work"
	description := "Stop answering the same requests over and over. A simple automated system handles repetitive tasks like purchase orders, invoices, and inventory questions—no emails, no manual work, no delegation needed. It just runs in the background."
	if cat := topSignalCategory(signals, emailAutomatable); cat != "" {
		switch cat {
		case string(model.CategoryDelegatableOperational):
			title = "Stop Manual Order & Invoice Processing"
		case string(model.CategoryTeamCoordination):
			title = "Automate Team Coordination"
		}
	}
	if action := topSuggestedAction(signals, emailAutomatable); action != "" {
		description = action
	}

	return model.Opportunity{
		ID:                 1,
		Emoji:              "🤖",
		Title:              title,
		Description:        description,
		TimeSaved:          fmt.Sprintf("%d hours/week", roundInt(hours)),
		WeeklySavings:      WeeklyValue(hours),
		MonthlySavings:     roundInt(hours * HourlyRate * WeeksPerMonth),
		BuildCost:          buildCost,
		MonthlyMaintenance: maintenance,
		BreakEvenWeeks:     roundInt(float64(buildCost) / (hours * HourlyRate * 4)),
		ROI:                firstYearROI(hours, float64(buildCost), float64(maintenance)),
		ImplementationTime: "2-3 weeks",
		Priority:           "high",
		Type:               "automation",
	}
}

func triageOpportunity(email EmailMetrics, signals []model.EmailSignal) model.Opportunity {
	hours := float64(email.DelegatableCount) * 0.08 // ~5 min per email

	title := "Smart Email Assistant for Your Team"
	if cat := topSignalCategory(signals, emailDelegatable); cat == string(model.CategoryTeamCoordination) {
		title = "Delegate Team Coordination"
	}

	description := "An AI assistant reads your emails, sorts what needs your attention, drafts responses for common requests, and sends the rest to your team. You only see what actually needs you—everything else gets handled automatically."
	if action := topSuggestedAction(signals, emailDelegatable); action != "" {
		description = action
	}

	return model.Opportunity{
		ID:                 2,
		Emoji:              "🎯",
		Title:              title,
		Description:        description,
		TimeSaved:          fmt.Sprintf("%d hours/week", roundInt(hours)),
		WeeklySavings:      WeeklyValue(hours),
		MonthlySavings:     roundInt(hours * HourlyRate * WeeksPerMonth),
		BuildCost:          0,
		MonthlyMaintenance: 200,
		BreakEvenWeeks:     1,
		ROI:                fmt.Sprintf("%dx first year", roundInt(hours*HourlyRate*52/2400)),
		ImplementationTime: "3-5 days",
		Priority:           "high",
		Type:               "ai-assisted",
	}
}

func meetingOpportunity(meeting MeetingMetrics, signals []model.MeetingSignal) model.Opportunity {
	var hours float64
	if meeting.WastefulCount > 0 {
		hours = float64(meeting.WastefulCount) * 0.5 // 30 min back per wasteful meeting
	} else {
		hours = float64(meeting.Count) * 0.25 // ~15 min prep per meeting
	}

	title := "Meeting Prep & Follow-up Assistant"
	description := "Never walk into a meeting unprepared again. Get a one-page brief with everything you need to know before each meeting, plus automatic summaries and action items afterward. No more scrambling for context or losing track of decisions."
	if meeting.WastefulCount > 0 {
		title = "Eliminate Wasteful Meetings & Automate Prep"
		category := topWastefulCategory(signals)
		switch {
		case strings.Contains(category, "Status") || strings.Contains(category, "Standup"):
			title = "Replace Status Meetings with Async Updates"
		case strings.Contains(category, "Planning"):
			title = "Streamline Planning Meetings"
		}
		if category == "" {
			category = "meetings"
		}
		description = fmt.Sprintf("You have %d %s per week that could be replaced with async updates or eliminated. Automate meeting prep and follow-up to save time on the rest.", meeting.WastefulCount, category)
	}

	priority := "medium"
	if hours > 6 || meeting.WastefulCount > 5 {
		priority = "high"
	}

	buildCost := 1200.0
	return model.Opportunity{
		ID:                 3,
		Emoji:              "📊",
		Title:              title,
		Description:        description,
		TimeSaved:          fmt.Sprintf("%d hours/week", roundInt(hours)),
		WeeklySavings:      WeeklyValue(hours),
		MonthlySavings:     roundInt(hours * HourlyRate * WeeksPerMonth),
		BuildCost:          int(buildCost),
		MonthlyMaintenance: 150,
		BreakEvenWeeks:     roundInt(buildCost / (hours * HourlyRate * 4)),
		ROI:                firstYearROI(hours, buildCost, 150),
		ImplementationTime: "1-2 weeks",
		Priority:           priority,
		Type:               "ai-assisted",
	}
}

func firstYearROI(weeklyHours, buildCost, monthlyMaintenance float64) string {
	if buildCost <= 0 {
		buildCost = 2400
	}
	ratio := (weeklyHours*HourlyRate*52 - buildCost - monthlyMaintenance*12) / buildCost
	return fmt.Sprintf("%dx first year", roundInt(ratio))
}

// topSignalCategory returns the most common category among trusted
// signals matching the filter, ties broken alphabetically
func topSignalCategory(signals []model.EmailSignal, match func(model.EmailSignal) bool) string {
	counts := map[string]int{}
	for _, s := range signals {
		if s.Category == model.CategoryPersonalIgnore || s.Confidence < MinConfidence || !match(s) {
			continue
		}
		counts[string(s.Category)]++
	}
	return topKey(counts)
}

// topSuggestedAction returns the highest-confidence suggested action
// among trusted signals matching the filter, ties broken by thread id
func topSuggestedAction(signals []model.EmailSignal, match func(model.EmailSignal) bool) string {
	best := model.EmailSignal{Confidence: -1}
	for _, s := range signals {
		if s.Category == model.CategoryPersonalIgnore || s.Confidence < MinConfidence || s.SuggestedAction == "" || !match(s) {
			continue
		}
		if s.Confidence > best.Confidence || (s.Confidence == best.Confidence && s.ThreadID < best.ThreadID) {
			best = s
		}
	}
	return best.SuggestedAction
}

func topWastefulCategory(signals []model.MeetingSignal) string {
	counts := map[string]int{}
	for _, s := range signals {
		if s.Confidence < MinConfidence || !s.IsWasteful {
			continue
		}
		counts[s.Category]++
	}
	return topKey(counts)
}

// topKey returns the key with the highest count, ties broken
// alphabetically; "" for an empty map
func topKey(counts map[string]int) string {
	best := ""
	bestCount := 0
	for k, c := range counts {
		if c > bestCount || (c == bestCount && (best == "" || k < best)) {
			best = k
			bestCount = c
		}
	}
	return best
}

func roundInt(v float64) int {
	return int(math.Round(v))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
