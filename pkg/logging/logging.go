// Package logging provides structured logging for the starforge pipeline
// using zerolog. Output is human-readable console text when attached to a
// terminal and JSON otherwise; recoverable row-level anomalies log at
// debug so a normal run stays quiet.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var defaultLogger zerolog.Logger

// Nop discards all output. Library code that receives no logger uses it.
var Nop = zerolog.Nop()

func init() {
	defaultLogger = newDefault()
}

func newDefault() zerolog.Logger {
	var writer io.Writer = os.Stderr
	if isTerminal(os.Stderr) && os.Getenv("LOG_FORMAT") != "json" {
		writer = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.Kitchen,
			NoColor:    os.Getenv("NO_COLOR") != "",
		}
	}

	level := levelFromEnv()
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// isTerminal reports whether f is a character device.
func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// levelFromEnv reads STARFORGE_LOG_LEVEL; unset or unknown means info.
func levelFromEnv() zerolog.Level {
	switch strings.ToLower(os.Getenv("STARFORGE_LOG_LEVEL")) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Default returns the global logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// SetLevel adjusts the global logger's level (e.g. from a --verbose flag).
func SetLevel(level zerolog.Level) {
	defaultLogger = defaultLogger.Level(level)
}

// New creates a logger writing to w at the current default level.
func New(w io.Writer) zerolog.Logger {
	return zerolog.New(w).Level(defaultLogger.GetLevel()).With().Timestamp().Logger()
}
