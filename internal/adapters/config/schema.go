package config

import (
	"bytes"
	"errors"
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version     int               `toml:"version"`
	Bridge      bridgeSchema      `toml:"bridge"`
	Passthrough passthroughSchema `toml:"passthrough"`
	Output      outputSchema      `toml:"output"`
	Log         logSchema         `toml:"log"`
}

type bridgeSchema struct {
	Path            string `toml:"path"`
	AmbiguityMarker string `toml:"ambiguity_marker"`
	MaxRetries      int    `toml:"max_retries"`
}

type passthroughSchema struct {
	Confirm *bool `toml:"confirm"`
}

type outputSchema struct {
	Format string `toml:"format"`
}

type logSchema struct {
	Level string `toml:"level"`
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported config schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

// validateFile rejects config files with unknown keys or a newer schema.
func validateFile(raw []byte) error {
	var file fileSchema

	decoder := toml.NewDecoder(bytes.NewReader(raw))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&file); err != nil {
		var strictErr *toml.StrictMissingError
		if errors.As(err, &strictErr) {
			return fmt.Errorf("unknown config keys:\n%s", strictErr.String())
		}
		return fmt.Errorf("decode config file: %w", err)
	}

	return file.validateVersion()
}
