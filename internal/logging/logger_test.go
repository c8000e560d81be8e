package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultsToWarnLevel(t *testing.T) {
	out := &bytes.Buffer{}

	logger, err := New(out, Config{})
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")
	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "shown")
}

func TestNewDebugOverridesLevel(t *testing.T) {
	out := &bytes.Buffer{}

	logger, err := New(out, Config{Level: "error", Debug: true})
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())

	logger.Debug().Str("program", "adb").Msg("running bridge command")
	assert.Contains(t, out.String(), "running bridge command")
	assert.Contains(t, out.String(), "program=adb")
}

func TestNewParsesLevel(t *testing.T) {
	logger, err := New(&bytes.Buffer{}, Config{Level: " INFO "})
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, Config{Level: "chatty"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse log level")
}
