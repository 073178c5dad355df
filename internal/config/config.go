package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Config holds runtime configuration sourced from env vars.
type Config struct {
	Addr     string
	LogLevel string

	// Sessions idle for longer than SessionIdleTTL are swept, with their
	// draft and gold entries.
	SessionIdleTTL    time.Duration
	SessionSweepEvery time.Duration

	// SeedDemoEntries pre-fills every new dashboard with two sample entries.
	SeedDemoEntries bool

	BcryptCost int
}

// Load reads configuration from the environment and performs minimal validation.
func Load() (Config, error) {
	cfg := Config{
		Addr:     fallback(os.Getenv("ADDR"), ":8080"),
		LogLevel: strings.ToLower(fallback(os.Getenv("LOG_LEVEL"), "info")),
	}

	var err error
	if cfg.SessionIdleTTL, err = duration("SESSION_IDLE_TTL", 2*time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.SessionSweepEvery, err = duration("SESSION_SWEEP_EVERY", 5*time.Minute); err != nil {
		return Config{}, err
	}

	seed := fallback(os.Getenv("SEED_DEMO_ENTRIES"), "true")
	if cfg.SeedDemoEntries, err = strconv.ParseBool(seed); err != nil {
		return Config{}, fmt.Errorf("SEED_DEMO_ENTRIES: %w", err)
	}

	cost := fallback(os.Getenv("BCRYPT_COST"), strconv.Itoa(bcrypt.DefaultCost))
	if cfg.BcryptCost, err = strconv.Atoi(cost); err != nil {
		return Config{}, fmt.Errorf("BCRYPT_COST: %w", err)
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		return Config{}, fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}

	return cfg, nil
}

func duration(key string, def time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive", key)
	}
	return d, nil
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}
