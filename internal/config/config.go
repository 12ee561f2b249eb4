// Package config handles loading and saving user configuration for verso.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/f3rmion/verso/internal/verse"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the configuration file inside the config directory.
const FileName = "config.yaml"

// Config holds all user configuration for verso.
type Config struct {
	RhymeMode  verse.RhymeMode  `yaml:"rhyme_mode"`
	StressRule verse.StressRule `yaml:"stress_rule"`
	LemmaFile  string           `yaml:"lemma_file,omitempty"` // JSONL file of extra lemmas
	Exceptions map[string]int   `yaml:"exceptions,omitempty"` // Word -> syllable count overrides
	Database   string           `yaml:"database,omitempty"`   // Snapshot database; defaults to the config dir
	Log        LogConfig        `yaml:"log"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console or json
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		RhymeMode:  verse.RhymeConsonant,
		StressRule: verse.StressLiteral,
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate checks the configuration for unknown values.
func (c *Config) Validate() error {
	var errs []error
	if !c.RhymeMode.Valid() {
		errs = append(errs, fmt.Errorf("rhyme_mode %q: must be consonant or assonant", c.RhymeMode))
	}
	if !c.StressRule.Valid() {
		errs = append(errs, fmt.Errorf("stress_rule %q: must be literal or orthographic", c.StressRule))
	}
	for word, n := range c.Exceptions {
		if n < 0 {
			errs = append(errs, fmt.Errorf("exceptions[%s]: syllable count %d is negative", word, n))
		}
	}
	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format %q: must be console or json", c.Log.Format))
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level %q: must be debug, info, warn or error", c.Log.Level))
	}
	return errors.Join(errs...)
}

// Load reads a configuration file. Missing fields keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// LoadConfig loads the configuration from a directory, falling back to the
// defaults when the directory has no config file.
func LoadConfig(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes the configuration to a YAML file.
func Save(path string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// DatabasePath returns the snapshot database location for a config dir.
func (c *Config) DatabasePath(dir string) string {
	if c.Database != "" {
		return c.Database
	}
	return filepath.Join(dir, "snapshots.db")
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "verso"), nil
}

// EnsureConfigDir creates dir if it doesn't exist and writes a default
// config file into it when none is present.
func EnsureConfigDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Save(path, Default())
	}
	return nil
}
