// Package config loads the settings of the mintec command.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bennofs/mintec/pkg/mintec"
	"github.com/bennofs/mintec/pkg/mintec/certificate"
)

// Config holds the command settings.
type Config struct {
	// Template is the path of the certificate template (PDF with form fields).
	Template string `yaml:"template"`
	// OutputDir receives the rendered certificates.
	OutputDir string `yaml:"output_dir"`
	// Institution is written verbatim into every certificate.
	Institution string `yaml:"institution"`
	// Locale selects the month names of dates (en_US, de_DE, ...).
	Locale string `yaml:"locale"`
	// Fields overrides template field names.
	Fields certificate.Fields `yaml:"fields"`
	// Workers is the number of forms processed in parallel.
	Workers int `yaml:"workers"`
	// SkipExisting skips forms whose certificate already exists.
	SkipExisting bool `yaml:"skip_existing"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		OutputDir:   ".",
		Institution: mintec.DefaultInstitution,
		Locale:      "en_US",
		Fields:      certificate.DefaultFields(),
		Workers:     4,
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file. Settings missing from the
// file keep their defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the settings for consistency.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return errors.New("workers must be at least 1")
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	return nil
}

// Options returns the rendering options for these settings.
func (c *Config) Options() mintec.Options {
	return mintec.Options{
		Institution: c.Institution,
		Locale:      c.Locale,
		Fields:      c.Fields,
	}
}
