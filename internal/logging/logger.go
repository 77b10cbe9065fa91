// Package logging configures the global zerolog logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup sets the global level and output. An empty file logs to stderr.
// The returned closer must be called on exit when a file was opened.
func Setup(level, file string) (io.Closer, error) {
	zerolog.SetGlobalLevel(ParseLevel(level))

	if file == "" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
		return io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: f, TimeFormat: time.RFC3339, NoColor: true})
	return f, nil
}

// Discard silences the global logger. Used while a full-screen UI owns the terminal.
func Discard() {
	log.Logger = log.Output(io.Discard)
}

// ParseLevel maps a level name to a zerolog level, defaulting to warn.
// "off" is accepted as an alias for disabled.
func ParseLevel(level string) zerolog.Level {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "off" {
		return zerolog.Disabled
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.WarnLevel
	}
	return lvl
}
