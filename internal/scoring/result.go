// Package scoring turns a completed set of answers into a Result and owns the
// percentage rounding rule used by every surface that shows a score.
package scoring

// DateLayout is the calendar-date format stored in Result.Date.
const DateLayout = "2006-01-02"

// Result is the immutable record of one completed attempt.
type Result struct {
	ID             string `json:"id"`
	Category       string `json:"category"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"totalQuestions"`
	Date           string `json:"date"`
}

// Percentage returns the result's score as a rounded percentage.
func (r Result) Percentage() int {
	return Percent(r.Score, r.TotalQuestions)
}

// Percent returns round-half-up(100 * score / total). A non-positive total
// yields 0; the bank never produces one, but stored data might.
func Percent(score, total int) int {
	if total <= 0 || score <= 0 {
		return 0
	}
	return (200*score + total) / (2 * total)
}

// RoundDiv returns round-half-up(num / den) for non-negative num and positive den.
func RoundDiv(num, den int) int {
	if den <= 0 || num <= 0 {
		return 0
	}
	return (2*num + den) / (2 * den)
}

// Verdict returns the headline shown with a result at the given percentage.
func Verdict(percent int) string {
	switch {
	case percent >= 90:
		return "Excellent!"
	case percent >= 70:
		return "Good Job!"
	case percent >= 50:
		return "Keep Learning!"
	default:
		return "Need More Practice"
	}
}
