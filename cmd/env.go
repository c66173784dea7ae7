package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/innovatides/atomquiz/internal/attempt"
	"github.com/innovatides/atomquiz/internal/bank"
	"github.com/innovatides/atomquiz/internal/config"
	"github.com/innovatides/atomquiz/internal/learner"
	"github.com/innovatides/atomquiz/internal/logging"
	"github.com/innovatides/atomquiz/internal/store"
)

// env is everything a command needs to reach learner data.
type env struct {
	cfg     *config.Config
	logger  *slog.Logger
	store   *store.Store
	service *learner.Service
	closers []io.Closer
}

func (e *env) Close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		e.closers[i].Close()
	}
}

// loadBank resolves the bank from --bank, then ATOMQUIZ_BANK, then the
// built-in seed.
func loadBank(cmd *cobra.Command, cfg *config.Config) (*bank.Bank, error) {
	path, _ := cmd.Flags().GetString("bank")
	if path == "" {
		path = cfg.BankPath
	}
	b, err := bank.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load question bank: %w", err)
	}
	return b, nil
}

// openEnv loads configuration, opens the log file and the database, and
// builds the learner service. The caller must Close the env.
func openEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	e := &env{cfg: cfg, logger: logging.Discard()}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if logPath, err := cfg.ResolveLogPath(); err == nil {
		if logger, closer, err := logging.Open(logPath, level); err == nil {
			e.logger = logger
			e.closers = append(e.closers, closer)
		}
	}

	b, err := loadBank(cmd, cfg)
	if err != nil {
		e.Close()
		return nil, err
	}

	dbFlag, _ := cmd.Flags().GetString("db")
	dbPath, err := cfg.ResolveDBPath(dbFlag)
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}
	e.store = st
	e.closers = append(e.closers, st)

	e.service = learner.New(b, st, learner.Options{
		RecentN:  cfg.RecentN,
		Goal:     cfg.GoalAttempts,
		Attempts: &attempt.Policy{RequireAnswerToAdvance: cfg.RequireAnswerToAdvance},
		Logger:   e.logger,
	})
	e.logger.Debug("environment ready", "db", dbPath, "categories", b.Len())
	return e, nil
}
