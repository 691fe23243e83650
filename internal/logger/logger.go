package logger

import (
	"log/slog"
	"os"

	"github.com/md-hameem/AI-Content-Generator-and-Editor/internal/config"
)

// Setup configures structured logging based on environment.
// Development gets human-readable text at debug level; everything else gets
// JSON for log aggregation.
func Setup(cfg *config.Config) *slog.Logger {
	logLevel := slog.LevelInfo
	if cfg.Env == "development" || cfg.LogLevel == "debug" {
		logLevel = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: logLevel}

	var handler slog.Handler
	if cfg.Env == "development" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)

	// Set as default logger
	slog.SetDefault(logger)

	return logger
}
