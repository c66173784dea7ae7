// Package account stores the learner's profile and settings documents.
package account

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/innovatides/atomquiz/internal/store"
)

// Profile identifies the learner for display only.
type Profile struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	JoinedAt string `json:"joinedAt,omitempty"`
}

// Settings are the learner's application preferences.
type Settings struct {
	Notifications bool   `json:"notifications"`
	DarkMode      bool   `json:"darkMode"`
	Language      string `json:"language"`
	AutoSave      bool   `json:"autoSave"`
	EmailUpdates  bool   `json:"emailUpdates"`
}

// DefaultSettings returns the settings used when none are stored.
func DefaultSettings() Settings {
	return Settings{
		Notifications: true,
		DarkMode:      false,
		Language:      "en",
		AutoSave:      true,
		EmailUpdates:  false,
	}
}

// DefaultProfile is the profile used when none is stored.
func DefaultProfile() Profile {
	return Profile{Name: "Learner"}
}

var profileSchema = &store.Schema{
	Name: "user-profile",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"name"},
		"properties": map[string]any{
			"name":     map[string]any{"type": "string"},
			"email":    map[string]any{"type": "string"},
			"joinedAt": map[string]any{"type": "string"},
		},
	},
}

var settingsSchema = &store.Schema{
	Name: "user-settings",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"notifications": map[string]any{"type": "boolean"},
			"darkMode":      map[string]any{"type": "boolean"},
			"language":      map[string]any{"type": "string", "minLength": 1},
			"autoSave":      map[string]any{"type": "boolean"},
			"emailUpdates":  map[string]any{"type": "boolean"},
		},
	},
}

// Store reads and writes account documents through a KV.
type Store struct {
	kv     store.KV
	logger *slog.Logger
	now    func() time.Time
}

// New creates an account Store. A nil logger discards log output.
func New(kv store.KV, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{kv: kv, logger: logger, now: time.Now}
}

// Profile returns the stored profile, or DefaultProfile if it is absent
// or corrupt.
func (s *Store) Profile(ctx context.Context) (Profile, error) {
	p := DefaultProfile()
	ok, err := s.load(ctx, store.KeyProfile, profileSchema, &p)
	if err != nil || !ok {
		return DefaultProfile(), err
	}
	return p, nil
}

// SaveProfile stores p. A missing join date is set to now.
func (s *Store) SaveProfile(ctx context.Context, p Profile) (Profile, error) {
	if p.JoinedAt == "" {
		p.JoinedAt = s.now().UTC().Format(time.RFC3339)
	}
	return p, s.save(ctx, store.KeyProfile, p)
}

// Settings returns the stored settings, or DefaultSettings if they are
// absent or corrupt. Fields missing from the stored document keep their
// defaults.
func (s *Store) Settings(ctx context.Context) (Settings, error) {
	st := DefaultSettings()
	ok, err := s.load(ctx, store.KeySettings, settingsSchema, &st)
	if err != nil || !ok {
		return DefaultSettings(), err
	}
	return st, nil
}

// SaveSettings stores st.
func (s *Store) SaveSettings(ctx context.Context, st Settings) error {
	return s.save(ctx, store.KeySettings, st)
}

// Delete removes the profile, settings and result history.
func (s *Store) Delete(ctx context.Context) error {
	var errs []error
	for _, key := range []string{store.KeyProfile, store.KeyResults, store.KeySettings} {
		if err := s.kv.Remove(ctx, key); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	s.logger.Info("account deleted")
	return nil
}

// load decodes key into v and reports whether a usable document was found.
// Corrupt documents are logged and reported as absent.
func (s *Store) load(ctx context.Context, key string, schema *store.Schema, v any) (bool, error) {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := store.DecodeJSON(raw, schema, v); err != nil {
		if errors.Is(err, store.ErrCorrupt) {
			s.logger.Warn("discarding corrupt document", "key", key, "err", err)
			return false, nil
		}
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	return true, nil
}

func (s *Store) save(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
