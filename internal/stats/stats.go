// Package stats derives summary metrics from a learner's history. Every
// surface that shows an average or best score gets it from Summarize.
package stats

import (
	"github.com/innovatides/atomquiz/internal/history"
	"github.com/innovatides/atomquiz/internal/scoring"
)

// DefaultRecentN is the number of recent results shown by default.
const DefaultRecentN = 5

// Summary is a point-in-time view of a history. Never persisted except as
// part of an export snapshot.
type Summary struct {
	TotalAttempts     int              `json:"totalAttempts"`
	AveragePercentage int              `json:"averagePercentage"`
	BestPercentage    int              `json:"bestPercentage"`
	PerCategoryCounts map[string]int   `json:"perCategoryCounts"`
	RecentResults     []scoring.Result `json:"recentResults"`
}

// Summarize computes the summary of h. categories seeds PerCategoryCounts
// so every known category appears, even at zero. recentN < 0 is treated as 0.
func Summarize(h history.History, categories []string, recentN int) Summary {
	s := Summary{
		TotalAttempts:     len(h),
		PerCategoryCounts: make(map[string]int, len(categories)),
	}
	for _, c := range categories {
		s.PerCategoryCounts[c] = 0
	}

	sum := 0
	for _, r := range h {
		pct := r.Percentage()
		sum += pct
		if pct > s.BestPercentage {
			s.BestPercentage = pct
		}
		s.PerCategoryCounts[r.Category]++
	}
	s.AveragePercentage = scoring.RoundDiv(sum, len(h))
	s.RecentResults = Recent(h, recentN)
	return s
}

// Recent returns the last n results of h, most recent first.
func Recent(h history.History, n int) []scoring.Result {
	n = max(0, min(n, len(h)))
	out := make([]scoring.Result, n)
	for i := range n {
		out[i] = h[len(h)-1-i]
	}
	return out
}

// GoalProgress returns how far total is toward goal as a percentage
// capped at 100.
func GoalProgress(total, goal int) int {
	if goal <= 0 {
		return 100
	}
	return min(scoring.Percent(total, goal), 100)
}
