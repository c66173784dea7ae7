// Package attempt implements the state machine for one pass through a
// category's questions: answer selection, navigation and submission.
package attempt

import (
	"errors"
	"fmt"
	"maps"

	"github.com/innovatides/atomquiz/internal/bank"
	"github.com/innovatides/atomquiz/internal/scoring"
)

var (
	// ErrInvalidSelection is returned when an option index is out of range.
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrIllegalTransition is returned for navigation or submission the
	// current state does not allow.
	ErrIllegalTransition = errors.New("illegal transition")

	// ErrIncompleteAttempt is returned by Submit when a position is unanswered.
	ErrIncompleteAttempt = fmt.Errorf("%w: unanswered questions remain", ErrIllegalTransition)
)

// Phase is the lifecycle phase of an attempt.
type Phase int

const (
	PhaseInProgress Phase = iota // Answering and navigating
	PhaseSubmitted               // Scored; no further changes
)

func (p Phase) String() string {
	switch p {
	case PhaseInProgress:
		return "in progress"
	case PhaseSubmitted:
		return "submitted"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Policy holds the navigation rules the engine enforces.
type Policy struct {
	// RequireAnswerToAdvance gates Advance on the current question having
	// an answer.
	RequireAnswerToAdvance bool
}

// DefaultPolicy returns the standard navigation rules.
func DefaultPolicy() Policy {
	return Policy{RequireAnswerToAdvance: true}
}

// Attempt is one in-progress or submitted pass through a category.
// Every mutating method either fully applies or returns an error and
// leaves the attempt unchanged.
type Attempt struct {
	category bank.Category
	policy   Policy
	scorer   *scoring.Scorer
	answers  map[int]int
	position int
	phase    Phase
	result   scoring.Result
}

// New starts an attempt at the first question of category. A nil scorer
// uses scoring.NewScorer.
func New(category bank.Category, policy Policy, scorer *scoring.Scorer) (*Attempt, error) {
	if category.Len() == 0 {
		return nil, fmt.Errorf("start attempt on %q: %w", category.Key, bank.ErrEmptyCategory)
	}
	if scorer == nil {
		scorer = scoring.NewScorer()
	}
	return &Attempt{
		category: category,
		policy:   policy,
		scorer:   scorer,
		answers:  make(map[int]int, category.Len()),
		phase:    PhaseInProgress,
	}, nil
}

// Category returns the category being attempted.
func (a *Attempt) Category() bank.Category { return a.category }

// Policy returns the navigation rules in force.
func (a *Attempt) Policy() Policy { return a.policy }

// Phase returns the current phase.
func (a *Attempt) Phase() Phase { return a.phase }

// Submitted reports whether the attempt has been scored.
func (a *Attempt) Submitted() bool { return a.phase == PhaseSubmitted }

// Len returns the number of questions.
func (a *Attempt) Len() int { return a.category.Len() }

// Position returns the 0-based index of the current question.
func (a *Attempt) Position() int { return a.position }

// Current returns the question at the current position.
func (a *Attempt) Current() bank.Question { return a.category.Questions[a.position] }

// IsLast reports whether the current question is the final one.
func (a *Attempt) IsLast() bool { return a.position == a.Len()-1 }

// Answer returns the option recorded for position pos.
func (a *Attempt) Answer(pos int) (int, bool) {
	opt, ok := a.answers[pos]
	return opt, ok
}

// Answers returns a copy of all recorded answers keyed by position.
func (a *Attempt) Answers() map[int]int { return maps.Clone(a.answers) }

// Answered returns how many positions have an answer.
func (a *Attempt) Answered() int { return len(a.answers) }

// Progress returns the current position as a rounded percentage of the
// question count, counting the current question as reached.
func (a *Attempt) Progress() int {
	return scoring.Percent(a.position+1, a.Len())
}

// Result returns the scored result once submitted.
func (a *Attempt) Result() (scoring.Result, bool) {
	return a.result, a.phase == PhaseSubmitted
}

// CanAdvance reports whether Advance would succeed.
func (a *Attempt) CanAdvance() bool {
	if a.phase != PhaseInProgress || a.IsLast() {
		return false
	}
	if a.policy.RequireAnswerToAdvance {
		_, ok := a.answers[a.position]
		return ok
	}
	return true
}

// CanRetreat reports whether Retreat would succeed.
func (a *Attempt) CanRetreat() bool {
	return a.phase == PhaseInProgress && a.position > 0
}

// CanSubmit reports whether Submit would succeed.
func (a *Attempt) CanSubmit() bool {
	return a.phase == PhaseInProgress && len(a.answers) == a.Len()
}

// SelectAnswer records option as the answer to the current question,
// replacing any earlier choice. Position is unchanged.
func (a *Attempt) SelectAnswer(option int) error {
	if a.phase != PhaseInProgress {
		return fmt.Errorf("%w: select answer after submission", ErrIllegalTransition)
	}
	n := len(a.Current().Options)
	if option < 0 || option >= n {
		return fmt.Errorf("%w: option %d not in [0, %d)", ErrInvalidSelection, option, n)
	}
	a.answers[a.position] = option
	return nil
}

// Advance moves to the next question.
func (a *Attempt) Advance() error {
	if !a.CanAdvance() {
		return fmt.Errorf("%w: cannot advance from question %d of %d (%s)",
			ErrIllegalTransition, a.position+1, a.Len(), a.phase)
	}
	a.position++
	return nil
}

// Retreat moves to the previous question. Recorded answers are kept.
func (a *Attempt) Retreat() error {
	if !a.CanRetreat() {
		return fmt.Errorf("%w: cannot retreat from question %d (%s)",
			ErrIllegalTransition, a.position+1, a.phase)
	}
	a.position--
	return nil
}

// Submit scores the attempt and moves it to PhaseSubmitted.
func (a *Attempt) Submit() (scoring.Result, error) {
	if a.phase != PhaseInProgress {
		return scoring.Result{}, fmt.Errorf("%w: already submitted", ErrIllegalTransition)
	}
	if missing := a.Len() - len(a.answers); missing > 0 {
		return scoring.Result{}, fmt.Errorf("%w (%d of %d)", ErrIncompleteAttempt, missing, a.Len())
	}
	a.result = a.scorer.Result(a.category.DisplayName, a.category.Questions, a.answers)
	a.phase = PhaseSubmitted
	return a.result, nil
}

// Review returns per-question outcomes. Valid only after submission.
func (a *Attempt) Review() ([]scoring.ReviewItem, error) {
	if a.phase != PhaseSubmitted {
		return nil, fmt.Errorf("%w: review before submission", ErrIllegalTransition)
	}
	return scoring.Review(a.category.Questions, a.answers), nil
}
