package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateConfig(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("BADB_CONFIG", "")
	for _, key := range []string{"BADB_BRIDGE_PATH", "BADB_BRIDGE_AMBIGUITY_MARKER", "BADB_BRIDGE_MAX_RETRIES", "BADB_PASSTHROUGH_CONFIRM", "BADB_OUTPUT_FORMAT", "BADB_LOG_LEVEL"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	return dir
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadWithoutConfigFileUsesDefaults(t *testing.T) {
	isolateConfig(t)

	settings, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, Defaults(), settings)
}

func TestLoadReadsConfigFromUserConfigDir(t *testing.T) {
	dir := isolateConfig(t)
	path := filepath.Join(dir, "badb", "config.toml")
	writeConfig(t, path, `version = 1

[bridge]
path = "/opt/platform-tools/adb"
max_retries = 2

[passthrough]
confirm = false

[output]
format = "json"
`)

	settings, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "/opt/platform-tools/adb", settings.BridgePath)
	assert.Equal(t, 2, settings.MaxRetries)
	assert.False(t, settings.ConfirmPassthrough)
	assert.Equal(t, "json", settings.OutputFormat)
	assert.Equal(t, "adb: more than one device/emulator", settings.AmbiguityMarker)
	assert.Equal(t, path, settings.ConfigFile)
}

func TestLoadEnvironmentOverridesConfigFile(t *testing.T) {
	dir := isolateConfig(t)
	writeConfig(t, filepath.Join(dir, "badb", "config.toml"), "[bridge]\npath = \"/from/file/adb\"\n")
	t.Setenv("BADB_BRIDGE_PATH", "/from/env/adb")
	t.Setenv("BADB_LOG_LEVEL", "debug")

	settings, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "/from/env/adb", settings.BridgePath)
	assert.Equal(t, "debug", settings.LogLevel)
}

func TestLoadUsesExplicitConfigFile(t *testing.T) {
	dir := isolateConfig(t)
	path := filepath.Join(dir, "custom.toml")
	writeConfig(t, path, "[bridge]\nambiguity_marker = \"error: more than one device\"\n")
	t.Setenv("BADB_CONFIG", path)

	settings, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "error: more than one device", settings.AmbiguityMarker)
}

func TestLoadFailsWhenExplicitConfigFileIsMissing(t *testing.T) {
	dir := isolateConfig(t)
	t.Setenv("BADB_CONFIG", filepath.Join(dir, "missing.toml"))

	_, err := Load(viper.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	dir := isolateConfig(t)
	writeConfig(t, filepath.Join(dir, "badb", "config.toml"), "[bridge]\nbinary = \"adb\"\n")

	_, err := Load(viper.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown config keys")
}

func TestLoadRejectsNewerSchemaVersion(t *testing.T) {
	dir := isolateConfig(t)
	writeConfig(t, filepath.Join(dir, "badb", "config.toml"), "version = 2\n")

	_, err := Load(viper.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported config schema version 2")
}

func TestLoadRejectsInvalidRetryCap(t *testing.T) {
	isolateConfig(t)
	t.Setenv("BADB_BRIDGE_MAX_RETRIES", "0")

	_, err := Load(viper.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max retries must be at least 1")
}
