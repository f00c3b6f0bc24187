package main

import (
	"context"
	"log"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"

	"nuclight.org/pollwatch/internal/config"
	"nuclight.org/pollwatch/internal/discord"
	"nuclight.org/pollwatch/internal/logger"
	"nuclight.org/pollwatch/internal/storage"
	"nuclight.org/pollwatch/internal/watcher"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Set up structured logger, with Sentry reporting when a DSN is given
	var lg *slog.Logger
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.SentryDSN}); err != nil {
			log.Fatalf("Failed to init sentry: %v", err)
		}
		defer sentry.Flush(2 * time.Second)
		lg = logger.NewWithSentry(slog.LevelInfo)
	} else {
		lg = logger.New(slog.LevelInfo)
	}

	lg.Info("config loaded",
		"db_path", cfg.DBPath,
		"sweep_interval", cfg.SweepInterval,
	)

	// Initialize database
	db, err := storage.NewDB(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	lg.Info("database initialized")

	// Create repository and transport
	pollRepo := storage.NewPollRepository(db)

	client, err := discord.New(cfg.DiscordToken)
	if err != nil {
		log.Fatalf("Failed to create discord client: %v", err)
	}

	// Run the closing loop until interrupted
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w := watcher.New(pollRepo, client, lg, cfg.SweepInterval)
	w.Run(ctx)
}
