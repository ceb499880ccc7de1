package sysregs

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config selects the registers to generate accessors for.
type Config struct {
	Registers map[string]RegisterConfig `toml:"registers"`
}

// RegisterConfig carries the per register generation settings.
type RegisterConfig struct {
	// FieldDescriptions maps field names to the doc comment descriptions of
	// the generated accessors.
	FieldDescriptions map[string]string `toml:"field_descriptions"`
}

// LoadConfig reads the generator configuration from a TOML file.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("decoding configuration file %s: %w", path, err)
	}
	return cfg, nil
}
