package config

import (
	"fmt"
	"os"
	"time"
)

const defaultSweepInterval = time.Minute

type Config struct {
	DiscordToken  string
	DBPath        string
	SweepInterval time.Duration
	SentryDSN     string
}

func Load() (*Config, error) {
	token := os.Getenv("DISCORD_BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("DISCORD_BOT_TOKEN is required")
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		return nil, fmt.Errorf("DB_PATH is required")
	}

	interval := defaultSweepInterval
	if raw := os.Getenv("POLL_SWEEP_INTERVAL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("POLL_SWEEP_INTERVAL must be a duration like 30s or 2m: %w", err)
		}
		if parsed <= 0 {
			return nil, fmt.Errorf("POLL_SWEEP_INTERVAL must be positive")
		}
		interval = parsed
	}

	return &Config{
		DiscordToken:  token,
		DBPath:        dbPath,
		SweepInterval: interval,
		SentryDSN:     os.Getenv("SENTRY_DSN"),
	}, nil
}
