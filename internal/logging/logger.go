// Package logging builds the zerolog logger used for badb diagnostics.
package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type Config struct {
	Level string
	// Debug forces the debug level regardless of Level.
	Debug bool
	// Color enables ANSI colours in the console output.
	Color bool
}

// New returns a human readable logger writing to out. Diagnostics never go to
// stdout so that bridge output stays byte-for-byte intact.
func New(out io.Writer, cfg Config) (zerolog.Logger, error) {
	level := zerolog.WarnLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	} else if strings.TrimSpace(cfg.Level) != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level)))
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("parse log level %q: %w", cfg.Level, err)
		}
		level = parsed
	}

	writer := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    !cfg.Color,
		TimeFormat: time.TimeOnly,
	}

	return zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger(), nil
}
