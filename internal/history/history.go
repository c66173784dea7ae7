// Package history persists the learner's completed results in completion
// order through a store.KV.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/innovatides/atomquiz/internal/scoring"
	"github.com/innovatides/atomquiz/internal/store"
)

// History is the chronological sequence of results, oldest first.
type History []scoring.Result

// Schema describes the stored results document.
var Schema = &store.Schema{
	Name: "quiz-results",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type":     "object",
			"required": []any{"id", "category", "score", "totalQuestions", "date"},
			"properties": map[string]any{
				"id":             map[string]any{"type": "string"},
				"category":       map[string]any{"type": "string"},
				"score":          map[string]any{"type": "integer", "minimum": 0},
				"totalQuestions": map[string]any{"type": "integer", "minimum": 1},
				"date":           map[string]any{"type": "string"},
			},
		},
	},
}

// Decode parses a stored results document. Failures wrap store.ErrCorrupt.
func Decode(raw []byte) (History, error) {
	var h History
	if err := store.DecodeJSON(raw, Schema, &h); err != nil {
		return nil, err
	}
	for i, r := range h {
		if r.Score > r.TotalQuestions {
			return nil, fmt.Errorf("%w: result %d: score %d exceeds total %d",
				store.ErrCorrupt, i, r.Score, r.TotalQuestions)
		}
	}
	return h, nil
}

// Store is the history adapter over a KV.
type Store struct {
	kv     store.KV
	logger *slog.Logger
}

// New creates a history Store. A nil logger discards log output.
func New(kv store.KV, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{kv: kv, logger: logger}
}

// Load returns the stored history. Absent or corrupt data yields an empty
// history; only a failure of the KV itself is returned as an error.
func (s *Store) Load(ctx context.Context) (History, error) {
	raw, ok, err := s.kv.Get(ctx, store.KeyResults)
	if err != nil {
		return History{}, fmt.Errorf("load history: %w", err)
	}
	if !ok {
		return History{}, nil
	}
	h, err := Decode(raw)
	if err != nil {
		if errors.Is(err, store.ErrCorrupt) {
			s.logger.Warn("discarding corrupt history", "key", store.KeyResults, "err", err)
			return History{}, nil
		}
		return History{}, fmt.Errorf("load history: %w", err)
	}
	if h == nil {
		h = History{}
	}
	return h, nil
}

// Append adds r after every existing result and returns the new history.
// Nothing is written if the current history cannot be read.
func (s *Store) Append(ctx context.Context, r scoring.Result) (History, error) {
	h, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	next := append(slices.Clip(h), r)
	if err := s.save(ctx, next); err != nil {
		return nil, err
	}
	return next, nil
}

// Replace overwrites the stored history with h, preserving its order.
func (s *Store) Replace(ctx context.Context, h History) error {
	if h == nil {
		h = History{}
	}
	return s.save(ctx, h)
}

// Clear removes the stored history.
func (s *Store) Clear(ctx context.Context) (History, error) {
	if err := s.kv.Remove(ctx, store.KeyResults); err != nil {
		return nil, fmt.Errorf("clear history: %w", err)
	}
	return History{}, nil
}

func (s *Store) save(ctx context.Context, h History) error {
	raw, err := json.Marshal(h)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := s.kv.Set(ctx, store.KeyResults, raw); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	return nil
}
