package scoring

import (
	"log"
	"math"

	"github.com/KatzVentures/FounderLeverageDashboard/internal/model"
)

// leaderStages partitions [0,100] into five contiguous tiers, ordered
// best-first. StagePartitionValid in the test suite guards the
// no-gap/no-overlap invariant.
var leaderStages = []model.Stage{
	{
		Name:        "Elite Operator",
		Emoji:       "🚀",
		Description: "You've built a machine. Your time is focused, your team owns outcomes, and you're leading at the right altitude.",
		MinScore:    90,
		MaxScore:    100,
	},
	{
		Name:        "Stretched Leader",
		Emoji:       "🎯",
		Description: "You're leading well but still caught in the weeds. Your team needs more ownership, and your calendar needs real boundaries.",
		MinScore:    70,
		MaxScore:    89,
	},
	{
		Name:        "Overloaded Founder",
		Emoji:       "⚠️",
		Description: "You're the bottleneck. Too many decisions, too many emails, not enough leverage. Time to build systems and delegate.",
		MinScore:    50,
		MaxScore:    69,
	},
	{
		Name:        "Firefighter Mode",
		Emoji:       "🔥",
		Description: "You're drowning in execution. Your business is running you. You need structure, fast.",
		MinScore:    30,
		MaxScore:    49,
	},
	{
		Name:        "Crisis State",
		Emoji:       "🆘",
		Description: "You're in survival mode. Every hour is reactive. This pace is unsustainable—urgent intervention needed.",
		MinScore:    0,
		MaxScore:    29,
	},
}

// Stages returns the five stages ordered best-first
func Stages() []model.Stage {
	out := make([]model.Stage, len(leaderStages))
	copy(out, leaderStages)
	return out
}

// StageForScore maps a score to its stage. Non-finite scores fail safe
// to the lowest stage (logged as a data-quality signal, not an error);
// out-of-range scores clamp to their nearest bound.
func StageForScore(score float64) model.Stage {
	if math.IsNaN(score) || math.IsInf(score, 0) {
		log.Printf("[STAGES] invalid score %v, returning lowest stage", score)
		return leaderStages[len(leaderStages)-1]
	}

	clamped := math.Max(0, math.Min(100, score))

	for _, s := range leaderStages {
		if clamped >= float64(s.MinScore) && clamped <= float64(s.MaxScore) {
			return s
		}
	}

	// Unreachable under a correct partition; bias gaps toward the
	// worse outcome except at the extreme top.
	log.Printf("[STAGES] no stage matched score %.2f", clamped)
	if clamped >= float64(leaderStages[0].MinScore) {
		return leaderStages[0]
	}
	return leaderStages[len(leaderStages)-1]
}
