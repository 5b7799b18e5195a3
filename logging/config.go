package logging

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the yaml-backed configuration for a Manager.
type Config struct {
	File struct {
		Path       string `yaml:"path"`
		MaxSizeMB  int    `yaml:"max_size_mb"`
		MaxBackups int    `yaml:"max_backups"`
		MaxAgeDays int    `yaml:"max_age_days"`
		Compress   bool   `yaml:"compress"`
		Exclusive  bool   `yaml:"exclusive"`
	} `yaml:"file"`
	Console   bool     `yaml:"console"`
	Layout    string   `yaml:"layout"`
	Verbosity string   `yaml:"verbosity"`
	Scopes    []string `yaml:"scopes"`
}

// DefaultConfig returns a console-only configuration accepting everything.
func DefaultConfig() Config {
	return Config{
		Console:   true,
		Verbosity: "all",
	}
}

// LoadConfig reads a yaml config from path. A missing file is not an
// error; it yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Filter derives the filter described by the config's verbosity and scopes.
func (c Config) Filter() Filter {
	return NewFilter(ParseVerbosity(c.Verbosity), internAll(c.Scopes)...)
}
