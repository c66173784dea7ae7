// Package config loads runtime settings from the environment and an
// optional .env file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/innovatides/atomquiz/internal/store"
)

// Config holds the resolved runtime settings.
type Config struct {
	DBPath   string // empty means store.DefaultDBPath
	BankPath string // empty means the built-in bank
	LogPath  string
	LogLevel string

	RecentN                int
	GoalAttempts           int
	RequireAnswerToAdvance bool
}

// Load reads .env (if present) and the ATOMQUIZ_* variables.
func Load() (*Config, error) {
	// A missing .env is fine.
	_ = godotenv.Load()

	cfg := &Config{
		DBPath:   os.Getenv("ATOMQUIZ_DB"),
		BankPath: os.Getenv("ATOMQUIZ_BANK"),
		LogPath:  os.Getenv("ATOMQUIZ_LOG"),
		LogLevel: getenvDefault("ATOMQUIZ_LOG_LEVEL", "info"),
	}

	var err error
	if cfg.RecentN, err = getenvInt("ATOMQUIZ_RECENT", 5); err != nil {
		return nil, err
	}
	if cfg.GoalAttempts, err = getenvInt("ATOMQUIZ_GOAL", 10); err != nil {
		return nil, err
	}
	if cfg.RequireAnswerToAdvance, err = getenvBool("ATOMQUIZ_GATE_ADVANCE", true); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ResolveDBPath returns the database path, preferring flag over the
// environment and falling back to the XDG data directory. The parent
// directory is created.
func (c *Config) ResolveDBPath(flag string) (string, error) {
	for _, p := range []string{flag, c.DBPath} {
		if p != "" {
			return p, store.EnsureDir(p)
		}
	}
	return store.DefaultDBPath()
}

// ResolveLogPath returns the log file path, falling back to
// $XDG_STATE_HOME/atomquiz/atomquiz.log.
func (c *Config) ResolveLogPath() (string, error) {
	if c.LogPath != "" {
		return c.LogPath, nil
	}
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "atomquiz", "atomquiz.log"), nil
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

func getenvInt(k string, fallback int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("config: %s=%q is not a positive integer", k, v)
	}
	return n, nil
}

func getenvBool(k string, fallback bool) (bool, error) {
	v := os.Getenv(k)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("config: %s=%q is not a boolean", k, v)
	}
	return b, nil
}
