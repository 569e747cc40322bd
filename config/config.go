package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/tradelog/journal"
)

// Config represents the complete journal configuration
type Config struct {
	Journal JournalConfig `json:"journal" yaml:"journal"`
	Form    FormConfig    `json:"form" yaml:"form"`
	Log     LogConfig     `json:"log" yaml:"log"`
}

// JournalConfig selects the store backend and its validation rules
type JournalConfig struct {
	Backend               string `json:"backend" yaml:"backend"` // "memory" or "sqlite"
	RequireExitAfterEntry bool   `json:"require_exit_after_entry" yaml:"require_exit_after_entry"`
}

// FormConfig controls how raw form fields are parsed
type FormConfig struct {
	Instruments []string `json:"instruments" yaml:"instruments"`
	TimeLayout  string   `json:"time_layout" yaml:"time_layout"`
}

// LogConfig contains logging parameters
type LogConfig struct {
	Level string `json:"level" yaml:"level"` // debug|info|warn|error
}

// LoadFromFile loads configuration from a file (YAML, falling back to JSON)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		cfg = Default()
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (YAML for .yaml/.yml, JSON otherwise)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Journal.Backend != "memory" && c.Journal.Backend != "sqlite" {
		return fmt.Errorf("journal.backend must be 'memory' or 'sqlite'")
	}
	if len(c.Form.Instruments) == 0 {
		return fmt.Errorf("form.instruments must list at least one instrument")
	}
	for _, inst := range c.Form.Instruments {
		if strings.TrimSpace(inst) == "" {
			return fmt.Errorf("form.instruments contains an empty name")
		}
	}
	if c.Form.TimeLayout == "" {
		return fmt.Errorf("form.time_layout is required")
	}
	if c.Log.Level == "" {
		return fmt.Errorf("log.level is required")
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// LogLevel returns the configured zerolog level.
func (c *Config) LogLevel() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// Rules maps the journal section onto store validation rules.
func (c *Config) Rules() journal.Rules {
	return journal.Rules{RequireExitAfterEntry: c.Journal.RequireExitAfterEntry}
}

// OpenStore builds the configured store backend.
func (c *Config) OpenStore(opts ...journal.Option) (journal.Store, error) {
	opts = append([]journal.Option{journal.WithRules(c.Rules())}, opts...)
	switch c.Journal.Backend {
	case "sqlite":
		return journal.NewSQLiteStore(opts...)
	case "memory", "":
		return journal.NewMemStore(opts...), nil
	}
	return nil, fmt.Errorf("unknown journal backend %q", c.Journal.Backend)
}

// DefaultTimeLayout matches an HTML datetime-local input.
const DefaultTimeLayout = "2006-01-02T15:04"

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Journal: JournalConfig{
			Backend: "memory",
		},
		Form: FormConfig{
			Instruments: []string{"DE40", "F40", "STOXX50"},
			TimeLayout:  DefaultTimeLayout,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
