package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	configName    = "config"
	configType    = "toml"
	configDirName = "badb"
	envPrefix     = "BADB"
	configFileEnv = "BADB_CONFIG"

	bridgePathKey         = "bridge.path"
	bridgeMarkerKey       = "bridge.ambiguity_marker"
	bridgeMaxRetriesKey   = "bridge.max_retries"
	passthroughConfirmKey = "passthrough.confirm"
	outputFormatKey       = "output.format"
	logLevelKey           = "log.level"
)

type Settings struct {
	BridgePath         string
	AmbiguityMarker    string
	MaxRetries         int
	ConfirmPassthrough bool
	OutputFormat       string
	LogLevel           string
	// ConfigFile is the file the settings were read from, empty when none.
	ConfigFile string
}

func Defaults() Settings {
	return Settings{
		BridgePath:         "adb",
		AmbiguityMarker:    "adb: more than one device/emulator",
		MaxRetries:         1,
		ConfirmPassthrough: true,
		OutputFormat:       "table",
		LogLevel:           "warn",
	}
}

// Load resolves settings from defaults, the optional config file and BADB_*
// environment variables, in increasing order of precedence.
func Load(cfg *viper.Viper) (Settings, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	defaults := Defaults()
	cfg.SetDefault(bridgePathKey, defaults.BridgePath)
	cfg.SetDefault(bridgeMarkerKey, defaults.AmbiguityMarker)
	cfg.SetDefault(bridgeMaxRetriesKey, defaults.MaxRetries)
	cfg.SetDefault(passthroughConfirmKey, defaults.ConfirmPassthrough)
	cfg.SetDefault(outputFormatKey, defaults.OutputFormat)
	cfg.SetDefault(logLevelKey, defaults.LogLevel)

	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	if explicit := os.Getenv(configFileEnv); explicit != "" {
		cfg.SetConfigFile(explicit)
	} else {
		cfg.SetConfigName(configName)
		cfg.SetConfigType(configType)
		if dir, err := os.UserConfigDir(); err == nil {
			cfg.AddConfigPath(filepath.Join(dir, configDirName))
		}
	}

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Settings{}, fmt.Errorf("read config file: %w", err)
		}
	}

	settings := Settings{
		BridgePath:         cfg.GetString(bridgePathKey),
		AmbiguityMarker:    cfg.GetString(bridgeMarkerKey),
		MaxRetries:         cfg.GetInt(bridgeMaxRetriesKey),
		ConfirmPassthrough: cfg.GetBool(passthroughConfirmKey),
		OutputFormat:       cfg.GetString(outputFormatKey),
		LogLevel:           cfg.GetString(logLevelKey),
		ConfigFile:         cfg.ConfigFileUsed(),
	}

	if settings.ConfigFile != "" {
		raw, err := os.ReadFile(settings.ConfigFile)
		if err != nil {
			return Settings{}, fmt.Errorf("read config file: %w", err)
		}
		if err := validateFile(raw); err != nil {
			return Settings{}, fmt.Errorf("config file %s: %w", settings.ConfigFile, err)
		}
	}

	if strings.TrimSpace(settings.BridgePath) == "" {
		return Settings{}, errors.New("bridge path is empty")
	}
	if settings.AmbiguityMarker == "" {
		return Settings{}, errors.New("bridge ambiguity marker is empty")
	}
	if settings.MaxRetries < 1 {
		return Settings{}, fmt.Errorf("bridge max retries must be at least 1, got %d", settings.MaxRetries)
	}

	return settings, nil
}
