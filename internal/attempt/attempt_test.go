package attempt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/innovatides/atomquiz/internal/bank"
	"github.com/innovatides/atomquiz/internal/scoring"
)

func testCategory(n int) bank.Category {
	c := bank.Category{Key: "agriculture", DisplayName: "Agriculture"}
	for i := range n {
		c.Questions = append(c.Questions, bank.Question{
			ID:                 i + 1,
			Prompt:             "q",
			Options:            []string{"a", "b", "c", "d"},
			CorrectOptionIndex: i % 4,
		})
	}
	return c
}

func testScorer() *scoring.Scorer {
	return &scoring.Scorer{
		NewID: func() string { return "fixed" },
		Now:   func() time.Time { return time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC) },
	}
}

func newAttempt(t *testing.T, n int, p Policy) *Attempt {
	t.Helper()
	a, err := New(testCategory(n), p, testScorer())
	require.NoError(t, err)
	return a
}

func TestNew_Initial(t *testing.T) {
	a := newAttempt(t, 3, DefaultPolicy())
	assert.Equal(t, 0, a.Position())
	assert.Equal(t, PhaseInProgress, a.Phase())
	assert.Equal(t, 0, a.Answered())
	assert.False(t, a.CanRetreat())
	assert.False(t, a.CanAdvance())
	assert.False(t, a.CanSubmit())
	assert.Equal(t, 33, a.Progress())
}

func TestNew_EmptyCategory(t *testing.T) {
	_, err := New(bank.Category{Key: "x"}, DefaultPolicy(), nil)
	assert.ErrorIs(t, err, bank.ErrEmptyCategory)
}

func TestSelectAnswer_OutOfRange(t *testing.T) {
	a := newAttempt(t, 2, DefaultPolicy())
	require.NoError(t, a.SelectAnswer(2))

	for _, opt := range []int{5, 4, -1} {
		err := a.SelectAnswer(opt)
		assert.ErrorIs(t, err, ErrInvalidSelection, "option %d", opt)
	}

	got, ok := a.Answer(0)
	assert.True(t, ok)
	assert.Equal(t, 2, got, "rejected selections must not change answers")
	assert.Equal(t, 1, a.Answered())
}

func TestSelectAnswer_Overwrites(t *testing.T) {
	a := newAttempt(t, 2, DefaultPolicy())
	require.NoError(t, a.SelectAnswer(1))
	require.NoError(t, a.SelectAnswer(3))
	got, _ := a.Answer(0)
	assert.Equal(t, 3, got)
	assert.Equal(t, 0, a.Position())
}

func TestAdvance_GatedOnAnswer(t *testing.T) {
	a := newAttempt(t, 3, DefaultPolicy())
	assert.ErrorIs(t, a.Advance(), ErrIllegalTransition)
	assert.Equal(t, 0, a.Position())

	require.NoError(t, a.SelectAnswer(0))
	require.True(t, a.CanAdvance())
	require.NoError(t, a.Advance())
	assert.Equal(t, 1, a.Position())
}

func TestAdvance_UngatedPolicy(t *testing.T) {
	a := newAttempt(t, 3, Policy{RequireAnswerToAdvance: false})
	require.NoError(t, a.Advance())
	require.NoError(t, a.Advance())
	assert.Equal(t, 2, a.Position())
	assert.False(t, a.CanSubmit())
}

func TestAdvance_OnLastQuestion(t *testing.T) {
	a := newAttempt(t, 2, DefaultPolicy())
	require.NoError(t, a.SelectAnswer(0))
	require.NoError(t, a.Advance())
	require.NoError(t, a.SelectAnswer(1))
	require.True(t, a.IsLast())

	assert.False(t, a.CanAdvance())
	assert.ErrorIs(t, a.Advance(), ErrIllegalTransition)
	assert.Equal(t, 1, a.Position())
}

func TestRetreat_KeepsAnswers(t *testing.T) {
	a := newAttempt(t, 3, DefaultPolicy())
	assert.ErrorIs(t, a.Retreat(), ErrIllegalTransition)

	require.NoError(t, a.SelectAnswer(2))
	require.NoError(t, a.Advance())
	require.NoError(t, a.SelectAnswer(3))
	require.NoError(t, a.Retreat())

	assert.Equal(t, 0, a.Position())
	first, _ := a.Answer(0)
	second, _ := a.Answer(1)
	assert.Equal(t, 2, first)
	assert.Equal(t, 3, second)
}

func TestSubmit_Incomplete(t *testing.T) {
	a := newAttempt(t, 3, Policy{})
	require.NoError(t, a.SelectAnswer(0))
	require.NoError(t, a.Advance())
	require.NoError(t, a.Advance())
	require.NoError(t, a.SelectAnswer(2))

	before := a.Answers()
	_, err := a.Submit()
	assert.ErrorIs(t, err, ErrIncompleteAttempt)
	assert.ErrorIs(t, err, ErrIllegalTransition)
	assert.Equal(t, PhaseInProgress, a.Phase())
	assert.Equal(t, before, a.Answers())
	assert.Equal(t, 2, a.Position())
}

func answerAll(t *testing.T, a *Attempt, correct int) {
	t.Helper()
	for i := range a.Len() {
		q := a.Current()
		opt := q.CorrectOptionIndex
		if i >= correct {
			opt = (opt + 1) % len(q.Options)
		}
		require.NoError(t, a.SelectAnswer(opt))
		if !a.IsLast() {
			require.NoError(t, a.Advance())
		}
	}
}

func TestSubmit_Scores(t *testing.T) {
	a := newAttempt(t, 10, DefaultPolicy())
	answerAll(t, a, 8)
	require.True(t, a.CanSubmit())

	r, err := a.Submit()
	require.NoError(t, err)
	assert.Equal(t, scoring.Result{
		ID:             "fixed",
		Category:       "Agriculture",
		Score:          8,
		TotalQuestions: 10,
		Date:           "2026-01-02",
	}, r)
	assert.True(t, a.Submitted())

	got, ok := a.Result()
	assert.True(t, ok)
	assert.Equal(t, r, got)

	review, err := a.Review()
	require.NoError(t, err)
	assert.Len(t, review, 10)
	assert.False(t, review[9].Correct)
}

func TestSubmitted_IsTerminal(t *testing.T) {
	a := newAttempt(t, 2, DefaultPolicy())
	answerAll(t, a, 2)
	_, err := a.Submit()
	require.NoError(t, err)

	_, err = a.Submit()
	assert.ErrorIs(t, err, ErrIllegalTransition)
	assert.ErrorIs(t, a.SelectAnswer(0), ErrIllegalTransition)
	assert.ErrorIs(t, a.Retreat(), ErrIllegalTransition)
	assert.ErrorIs(t, a.Advance(), ErrIllegalTransition)
	assert.False(t, a.CanSubmit())
}

func TestReview_BeforeSubmit(t *testing.T) {
	a := newAttempt(t, 2, DefaultPolicy())
	_, err := a.Review()
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestAnswers_ReturnsCopy(t *testing.T) {
	a := newAttempt(t, 2, DefaultPolicy())
	require.NoError(t, a.SelectAnswer(1))
	m := a.Answers()
	m[0] = 3
	m[1] = 0
	got, _ := a.Answer(0)
	assert.Equal(t, 1, got)
	assert.Equal(t, 1, a.Answered())
}

func TestProgress(t *testing.T) {
	a := newAttempt(t, 8, Policy{})
	assert.Equal(t, 13, a.Progress())
	for range 7 {
		require.NoError(t, a.Advance())
	}
	assert.Equal(t, 100, a.Progress())
}
