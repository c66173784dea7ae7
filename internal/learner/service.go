// Package learner is the facade the presentation layer uses. Every screen
// and command reads history, statistics and achievements through Service,
// so they all agree on the numbers they show.
package learner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/innovatides/atomquiz/internal/account"
	"github.com/innovatides/atomquiz/internal/achievements"
	"github.com/innovatides/atomquiz/internal/attempt"
	"github.com/innovatides/atomquiz/internal/bank"
	"github.com/innovatides/atomquiz/internal/export"
	"github.com/innovatides/atomquiz/internal/history"
	"github.com/innovatides/atomquiz/internal/scoring"
	"github.com/innovatides/atomquiz/internal/stats"
	"github.com/innovatides/atomquiz/internal/store"
)

// ErrUnknownCategory is returned when a category key is not in the bank.
var ErrUnknownCategory = errors.New("unknown category")

// DefaultGoal is the default number of quizzes on the dashboard goal bar.
const DefaultGoal = 10

// Options tune a Service. Zero values select defaults.
type Options struct {
	RecentN      int
	Goal         int
	Attempts     *attempt.Policy
	Achievements *achievements.Policy
	Scorer       *scoring.Scorer
	Logger       *slog.Logger
	Now          func() time.Time
}

// Service ties the bank, the engine and the persisted documents together.
type Service struct {
	bank     *bank.Bank
	history  *history.Store
	account  *account.Store
	scorer   *scoring.Scorer
	attempts attempt.Policy
	policy   achievements.Policy
	recentN  int
	goal     int
	logger   *slog.Logger
	now      func() time.Time
}

// New creates a Service over b and kv.
func New(b *bank.Bank, kv store.KV, opts Options) *Service {
	s := &Service{
		bank:     b,
		scorer:   opts.Scorer,
		attempts: attempt.DefaultPolicy(),
		policy:   achievements.DefaultPolicy(),
		recentN:  opts.RecentN,
		goal:     opts.Goal,
		logger:   opts.Logger,
		now:      opts.Now,
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	if s.scorer == nil {
		s.scorer = scoring.NewScorer()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.recentN <= 0 {
		s.recentN = stats.DefaultRecentN
	}
	if s.goal <= 0 {
		s.goal = DefaultGoal
	}
	if opts.Attempts != nil {
		s.attempts = *opts.Attempts
	}
	if opts.Achievements != nil {
		s.policy = *opts.Achievements
	}
	s.history = history.New(kv, s.logger)
	s.account = account.New(kv, s.logger)
	return s
}

// Bank returns the question bank.
func (s *Service) Bank() *bank.Bank { return s.bank }

// RecentN returns how many recent results summaries include.
func (s *Service) RecentN() int { return s.recentN }

// Start begins an attempt on the category with the given key.
func (s *Service) Start(key string) (*attempt.Attempt, error) {
	c, ok := s.bank.Category(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, key)
	}
	return attempt.New(c, s.attempts, s.scorer)
}

// Submit scores a and records the result. If the result cannot be stored
// the attempt stays submitted and the result is returned with the error so
// the caller can still show it.
func (s *Service) Submit(ctx context.Context, a *attempt.Attempt) (scoring.Result, error) {
	r, err := a.Submit()
	if err != nil {
		return scoring.Result{}, err
	}
	return r, s.Record(ctx, r)
}

// Record appends a scored result to the history.
func (s *Service) Record(ctx context.Context, r scoring.Result) error {
	if _, err := s.history.Append(ctx, r); err != nil {
		return err
	}
	s.logger.Info("attempt recorded",
		"category", r.Category, "score", r.Score, "total", r.TotalQuestions, "id", r.ID)
	return nil
}

// History returns all results, oldest first.
func (s *Service) History(ctx context.Context) (history.History, error) {
	return s.history.Load(ctx)
}

// Summary returns statistics over the stored history.
func (s *Service) Summary(ctx context.Context) (stats.Summary, error) {
	h, err := s.history.Load(ctx)
	if err != nil {
		return stats.Summary{}, err
	}
	return s.summarize(h), nil
}

func (s *Service) summarize(h history.History) stats.Summary {
	return stats.Summarize(h, s.bank.DisplayNames(), s.recentN)
}

// Dashboard is everything the dashboard and profile screens display.
type Dashboard struct {
	Summary      stats.Summary
	Achievements achievements.Evaluation
	Goal         int
	GoalProgress int
}

// Dashboard returns the summary with its achievements and goal progress.
func (s *Service) Dashboard(ctx context.Context) (Dashboard, error) {
	sum, err := s.Summary(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	return Dashboard{
		Summary:      sum,
		Achievements: s.policy.Evaluate(sum),
		Goal:         s.goal,
		GoalProgress: stats.GoalProgress(sum.TotalAttempts, s.goal),
	}, nil
}

// Profile returns the learner's profile.
func (s *Service) Profile(ctx context.Context) (account.Profile, error) {
	return s.account.Profile(ctx)
}

// SaveProfile stores p and returns it as saved.
func (s *Service) SaveProfile(ctx context.Context, p account.Profile) (account.Profile, error) {
	return s.account.SaveProfile(ctx, p)
}

// Settings returns the learner's settings.
func (s *Service) Settings(ctx context.Context) (account.Settings, error) {
	return s.account.Settings(ctx)
}

// SaveSettings stores st.
func (s *Service) SaveSettings(ctx context.Context, st account.Settings) error {
	return s.account.SaveSettings(ctx, st)
}

// Export snapshots all learner data.
func (s *Service) Export(ctx context.Context) (export.Document, error) {
	p, err := s.account.Profile(ctx)
	if err != nil {
		return export.Document{}, err
	}
	st, err := s.account.Settings(ctx)
	if err != nil {
		return export.Document{}, err
	}
	h, err := s.history.Load(ctx)
	if err != nil {
		return export.Document{}, err
	}
	sum := s.summarize(h)
	return export.Build(s.now(), p, h, st, sum, s.policy.Evaluate(sum)), nil
}

// Import replaces the stored history with the document's results.
func (s *Service) Import(ctx context.Context, doc export.Document) error {
	if err := s.history.Replace(ctx, doc.QuizResults); err != nil {
		return err
	}
	s.logger.Info("history imported", "results", len(doc.QuizResults), "exported", doc.ExportDate)
	return nil
}

// DeleteAccount removes the profile, settings and history.
func (s *Service) DeleteAccount(ctx context.Context) error {
	return s.account.Delete(ctx)
}
