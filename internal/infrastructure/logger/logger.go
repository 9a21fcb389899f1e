// Package logger builds the service wide zerolog logger.
package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"ai-orchestrator/internal/config"
)

// New creates a zerolog.Logger configured for the orchestrator service.
// Development gets a console writer, everything else structured JSON.
func New(cfg *config.Config) zerolog.Logger {
	level := parseLevel(cfg.LogLevel)

	base := log.Logger
	if cfg.Environment == "development" {
		output := zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
		base = log.Output(output)
	}

	logger := base.
		With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Logger().
		Level(level)

	zerolog.SetGlobalLevel(level)
	return logger
}

func parseLevel(raw string) zerolog.Level {
	if raw == "" {
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(strings.ToLower(raw))
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
