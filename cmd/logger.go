package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// setupLogger configures the global zerolog logger with console output on
// stderr, keeping stdout for command results.
func setupLogger(level string) {
	zl, err := zerolog.ParseLevel(level)
	if err != nil {
		zl = zerolog.InfoLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zl).
		With().Timestamp().Logger()
}

// warnf logs a warning through the global logger.
func warnf(format string, args ...any) {
	log.Warn().Msgf(format, args...)
}

// debugf logs a debug trace through the global logger.
func debugf(format string, args ...any) {
	log.Debug().Msgf(format, args...)
}
