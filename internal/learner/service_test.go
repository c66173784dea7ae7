package learner

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/innovatides/atomquiz/internal/account"
	"github.com/innovatides/atomquiz/internal/achievements"
	"github.com/innovatides/atomquiz/internal/attempt"
	"github.com/innovatides/atomquiz/internal/bank"
	"github.com/innovatides/atomquiz/internal/export"
	"github.com/innovatides/atomquiz/internal/store"
)

func newService(t *testing.T) *Service {
	t.Helper()
	b, err := bank.Default()
	require.NoError(t, err)
	return New(b, store.NewMemory(), Options{
		Now: func() time.Time { return time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC) },
	})
}

// play answers the first `correct` questions correctly and the rest wrongly.
func play(t *testing.T, s *Service, key string, correct int) {
	t.Helper()
	a, err := s.Start(key)
	require.NoError(t, err)
	for i := range a.Len() {
		q := a.Current()
		opt := q.CorrectOptionIndex
		if i >= correct {
			opt = (opt + 1) % len(q.Options)
		}
		require.NoError(t, a.SelectAnswer(opt))
		if a.CanAdvance() {
			require.NoError(t, a.Advance())
		}
	}
	_, err = s.Submit(context.Background(), a)
	require.NoError(t, err)
}

func TestStart_UnknownCategory(t *testing.T) {
	_, err := newService(t).Start("astronomy")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestSubmit_Incomplete(t *testing.T) {
	s := newService(t)
	a, err := s.Start("medicine")
	require.NoError(t, err)

	_, err = s.Submit(context.Background(), a)
	assert.ErrorIs(t, err, attempt.ErrIncompleteAttempt)

	h, err := s.History(context.Background())
	require.NoError(t, err)
	assert.Empty(t, h)
}

func TestDashboard(t *testing.T) {
	ctx := context.Background()
	s := newService(t)

	play(t, s, "agriculture", 6)
	play(t, s, "medicine", 10)

	d, err := s.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Summary.TotalAttempts)
	assert.Equal(t, 80, d.Summary.AveragePercentage)
	assert.Equal(t, 100, d.Summary.BestPercentage)
	assert.Equal(t, map[string]int{"Agriculture": 1, "Medicine": 1, "Industry": 0}, d.Summary.PerCategoryCounts)
	assert.Equal(t, "Medicine", d.Summary.RecentResults[0].Category)
	assert.Equal(t, achievements.TierAdvanced, d.Achievements.Tier)
	assert.Equal(t, 10, d.Goal)
	assert.Equal(t, 20, d.GoalProgress)
}

func TestExportImport(t *testing.T) {
	ctx := context.Background()
	src := newService(t)
	play(t, src, "industry", 7)
	play(t, src, "agriculture", 9)
	_, err := src.SaveProfile(ctx, account.Profile{Name: "Ada"})
	require.NoError(t, err)

	doc, err := src.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2026-07-01T00:00:00Z", doc.ExportDate)
	assert.Equal(t, "Ada", doc.User.Name)
	assert.Equal(t, 2, doc.Summary.TotalAttempts)

	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, doc))
	parsed, err := export.Read(&buf)
	require.NoError(t, err)

	dst := newService(t)
	require.NoError(t, dst.Import(ctx, parsed))

	want, err := src.History(ctx)
	require.NoError(t, err)
	got, err := dst.History(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDeleteAccount(t *testing.T) {
	ctx := context.Background()
	s := newService(t)
	play(t, s, "industry", 10)
	require.NoError(t, s.SaveSettings(ctx, account.Settings{Language: "fr"}))

	require.NoError(t, s.DeleteAccount(ctx))

	d, err := s.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, d.Summary.TotalAttempts)
	assert.Equal(t, achievements.TierNovice, d.Achievements.Tier)

	st, err := s.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, account.DefaultSettings(), st)
}

func TestOptions(t *testing.T) {
	b, err := bank.Default()
	require.NoError(t, err)
	open := attempt.Policy{RequireAnswerToAdvance: false}
	s := New(b, store.NewMemory(), Options{RecentN: 2, Goal: 4, Attempts: &open})

	assert.Equal(t, 2, s.RecentN())
	a, err := s.Start("agriculture")
	require.NoError(t, err)
	assert.True(t, a.CanAdvance())

	play(t, s, "agriculture", 1)
	d, err := s.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 25, d.GoalProgress)
}

func TestSummary_CountsEveryCategorySeparately(t *testing.T) {
	category := func(key, name string) bank.Category {
		return bank.Category{Key: key, DisplayName: name, Questions: []bank.Question{
			{ID: 1, Prompt: "q", Options: []string{"x", "y"}, CorrectOptionIndex: 0},
		}}
	}

	_, err := bank.New([]bank.Category{category("a", "Same"), category("b", "Same")})
	require.ErrorIs(t, err, bank.ErrMalformedCategory)

	b, err := bank.New([]bank.Category{category("a", "Alpha"), category("b", "Beta")})
	require.NoError(t, err)
	s := New(b, store.NewMemory(), Options{})
	play(t, s, "a", 1)

	sum, err := s.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Alpha": 1, "Beta": 0}, sum.PerCategoryCounts)
}
