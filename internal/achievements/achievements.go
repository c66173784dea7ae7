// Package achievements derives a proficiency tier and badges from a summary.
package achievements

import "github.com/innovatides/atomquiz/internal/stats"

// Tier is the single overall proficiency label.
type Tier string

const (
	TierExpert       Tier = "Expert"
	TierAdvanced     Tier = "Advanced"
	TierIntermediate Tier = "Intermediate"
	TierBeginner     Tier = "Beginner"
	TierNovice       Tier = "Novice"
)

// Badge identifies an independently earned achievement.
type Badge string

const (
	BadgeFirstAttempt Badge = "first attempt completed"
	BadgeEnthusiast   Badge = "enthusiast"
	BadgeExcellence   Badge = "excellence"
	BadgeConsistent   Badge = "consistent performer"
)

// AllBadges returns all badges in display order.
func AllBadges() []Badge {
	return []Badge{BadgeFirstAttempt, BadgeEnthusiast, BadgeExcellence, BadgeConsistent}
}

// DisplayName returns a human-readable title for the badge.
func (b Badge) DisplayName() string {
	switch b {
	case BadgeFirstAttempt:
		return "First Quiz"
	case BadgeEnthusiast:
		return "Quiz Enthusiast"
	case BadgeExcellence:
		return "Excellence"
	case BadgeConsistent:
		return "Consistent Performer"
	default:
		return string(b)
	}
}

// Description returns what the badge is awarded for.
func (b Badge) Description() string {
	switch b {
	case BadgeFirstAttempt:
		return "Completed your first quiz"
	case BadgeEnthusiast:
		return "Completed 5 or more quizzes"
	case BadgeExcellence:
		return "Scored 90% or higher"
	case BadgeConsistent:
		return "Maintained 80%+ average"
	default:
		return ""
	}
}

// Icon returns the display icon for the badge.
func (b Badge) Icon() string {
	switch b {
	case BadgeFirstAttempt:
		return "🎯"
	case BadgeEnthusiast:
		return "📚"
	case BadgeExcellence:
		return "⭐"
	case BadgeConsistent:
		return "🏆"
	default:
		return "✦"
	}
}

// TierCut maps a minimum average percentage to a tier.
type TierCut struct {
	Min  int
	Tier Tier
}

// Policy holds the thresholds. All comparisons are inclusive.
type Policy struct {
	// Tiers are checked in order; the first cut whose Min is reached wins.
	Tiers []TierCut
	// Floor is the tier below every cut.
	Floor Tier

	FirstAttemptMin int // total attempts
	EnthusiastMin   int // total attempts
	ExcellenceMin   int // best percentage
	ConsistentMin   int // average percentage
}

// DefaultPolicy returns the standard thresholds.
func DefaultPolicy() Policy {
	return Policy{
		Tiers: []TierCut{
			{90, TierExpert},
			{80, TierAdvanced},
			{70, TierIntermediate},
			{60, TierBeginner},
		},
		Floor:           TierNovice,
		FirstAttemptMin: 1,
		EnthusiastMin:   5,
		ExcellenceMin:   90,
		ConsistentMin:   80,
	}
}

// Evaluation is the tier and earned badges for one summary.
type Evaluation struct {
	Tier   Tier    `json:"tier"`
	Badges []Badge `json:"badges"`
}

// Has reports whether b was earned.
func (e Evaluation) Has(b Badge) bool {
	for _, got := range e.Badges {
		if got == b {
			return true
		}
	}
	return false
}

// TierFor returns the tier for an average percentage.
func (p Policy) TierFor(average int) Tier {
	for _, c := range p.Tiers {
		if average >= c.Min {
			return c.Tier
		}
	}
	return p.Floor
}

// Earned reports whether badge b is earned for s.
func (p Policy) Earned(b Badge, s stats.Summary) bool {
	switch b {
	case BadgeFirstAttempt:
		return s.TotalAttempts >= p.FirstAttemptMin
	case BadgeEnthusiast:
		return s.TotalAttempts >= p.EnthusiastMin
	case BadgeExcellence:
		return s.BestPercentage >= p.ExcellenceMin
	case BadgeConsistent:
		return s.AveragePercentage >= p.ConsistentMin
	default:
		return false
	}
}

// Evaluate derives the tier and badges for s. Badges are in AllBadges order.
func (p Policy) Evaluate(s stats.Summary) Evaluation {
	e := Evaluation{
		Tier:   p.TierFor(s.AveragePercentage),
		Badges: []Badge{},
	}
	for _, b := range AllBadges() {
		if p.Earned(b, s) {
			e.Badges = append(e.Badges, b)
		}
	}
	return e
}

// Evaluate applies DefaultPolicy to s.
func Evaluate(s stats.Summary) Evaluation {
	return DefaultPolicy().Evaluate(s)
}
