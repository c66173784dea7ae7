package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/innovatides/atomquiz/internal/bank"
)

func TestPercent(t *testing.T) {
	tests := []struct {
		score, total, want int
	}{
		{8, 10, 80},
		{0, 10, 0},
		{10, 10, 100},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13},  // 12.5 rounds up
		{1, 200, 1}, // 0.5 rounds up
		{5, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Percent(tt.score, tt.total), "Percent(%d, %d)", tt.score, tt.total)
	}
}

func TestRoundDiv(t *testing.T) {
	assert.Equal(t, 80, RoundDiv(160, 2))
	assert.Equal(t, 3, RoundDiv(5, 2))
	assert.Equal(t, 2, RoundDiv(7, 4))
	assert.Equal(t, 0, RoundDiv(7, 0))
}

func TestVerdict(t *testing.T) {
	tests := []struct {
		pct  int
		want string
	}{
		{100, "Excellent!"},
		{90, "Excellent!"},
		{89, "Good Job!"},
		{70, "Good Job!"},
		{69, "Keep Learning!"},
		{50, "Keep Learning!"},
		{49, "Need More Practice"},
		{0, "Need More Practice"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Verdict(tt.pct), "Verdict(%d)", tt.pct)
	}
}

func fixedScorer() *Scorer {
	return &Scorer{
		NewID: func() string { return "r-1" },
		Now:   func() time.Time { return time.Date(2026, 3, 14, 22, 0, 0, 0, time.UTC) },
	}
}

func TestScorer_EightOfTen(t *testing.T) {
	b, err := bank.Default()
	require.NoError(t, err)
	cat, ok := b.Category("agriculture")
	require.True(t, ok)
	require.Equal(t, 10, cat.Len())

	answers := make(map[int]int, cat.Len())
	for i, q := range cat.Questions {
		answers[i] = q.CorrectOptionIndex
	}
	for _, i := range []int{3, 7} {
		answers[i] = (cat.Questions[i].CorrectOptionIndex + 1) % len(cat.Questions[i].Options)
	}

	r := fixedScorer().Result(cat.DisplayName, cat.Questions, answers)
	assert.Equal(t, Result{
		ID:             "r-1",
		Category:       "Agriculture",
		Score:          8,
		TotalQuestions: 10,
		Date:           "2026-03-14",
	}, r)
	assert.Equal(t, 80, r.Percentage())
}

func TestScore_BoundedByLength(t *testing.T) {
	qs := []bank.Question{
		{ID: 1, Options: []string{"a", "b"}, CorrectOptionIndex: 0},
		{ID: 2, Options: []string{"a", "b"}, CorrectOptionIndex: 1},
	}
	// Stray positions outside the question range are ignored.
	answers := map[int]int{0: 0, 1: 1, 2: 0, 5: 1}
	assert.Equal(t, 2, Score(qs, answers))
	assert.Equal(t, 0, Score(qs, nil))
}

func TestNewScorer_UniqueIDs(t *testing.T) {
	s := NewScorer()
	a := s.Result("X", nil, nil)
	b := s.Result("X", nil, nil)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Len(t, a.ID, 36)
	_, err := time.Parse(DateLayout, a.Date)
	assert.NoError(t, err)
}

func TestReview(t *testing.T) {
	qs := []bank.Question{
		{ID: 1, Options: []string{"a", "b"}, CorrectOptionIndex: 0},
		{ID: 2, Options: []string{"a", "b"}, CorrectOptionIndex: 1},
		{ID: 3, Options: []string{"a", "b"}, CorrectOptionIndex: 1},
	}
	items := Review(qs, map[int]int{0: 0, 1: 0})
	require.Len(t, items, 3)

	assert.True(t, items[0].Correct)
	assert.Equal(t, 0, items[0].Chosen)
	assert.False(t, items[1].Correct)
	assert.Equal(t, -1, items[2].Chosen)
	assert.False(t, items[2].Correct)
}
