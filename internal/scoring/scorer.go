package scoring

import (
	"time"

	"github.com/google/uuid"

	"github.com/innovatides/atomquiz/internal/bank"
)

// Score counts positions whose recorded answer matches the question's
// correct option. Unanswered positions count as wrong.
func Score(questions []bank.Question, answers map[int]int) int {
	n := 0
	for i, q := range questions {
		if a, ok := answers[i]; ok && q.IsCorrect(a) {
			n++
		}
	}
	return n
}

// Scorer stamps results with an id and a completion date.
type Scorer struct {
	NewID func() string
	Now   func() time.Time
}

// NewScorer returns a Scorer using random UUIDs and the wall clock.
func NewScorer() *Scorer {
	return &Scorer{
		NewID: func() string { return uuid.New().String() },
		Now:   time.Now,
	}
}

// Result scores answers against questions for the category named category.
func (s *Scorer) Result(category string, questions []bank.Question, answers map[int]int) Result {
	return Result{
		ID:             s.NewID(),
		Category:       category,
		Score:          Score(questions, answers),
		TotalQuestions: len(questions),
		Date:           s.Now().Format(DateLayout),
	}
}

// ReviewItem is one row of a post-submission review.
type ReviewItem struct {
	Question bank.Question
	Chosen   int // -1 if unanswered
	Correct  bool
}

// Review pairs each question with the learner's answer.
func Review(questions []bank.Question, answers map[int]int) []ReviewItem {
	items := make([]ReviewItem, len(questions))
	for i, q := range questions {
		chosen, ok := answers[i]
		if !ok {
			chosen = -1
		}
		items[i] = ReviewItem{
			Question: q,
			Chosen:   chosen,
			Correct:  ok && q.IsCorrect(chosen),
		}
	}
	return items
}
