package logger

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

func New(level slog.Level) *slog.Logger {
	return slog.New(newTintHandler(level))
}

// NewWithSentry creates a logger that also reports error-level records to
// Sentry. sentry.Init must have been called first.
func NewWithSentry(level slog.Level) *slog.Logger {
	return slog.New(NewSentryHandler(newTintHandler(level)))
}

func newTintHandler(level slog.Level) slog.Handler {
	return tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
	})
}
