package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the complete tradebook configuration.
type Config struct {
	Journal JournalConfig `json:"journal" yaml:"journal"`
	Report  ReportConfig  `json:"report" yaml:"report"`
	WhatIf  WhatIfConfig  `json:"whatif" yaml:"whatif"`
}

// JournalConfig locates the ledger store.
type JournalConfig struct {
	DBPath string `json:"db_path" yaml:"db_path"`
}

// ReportConfig controls review-report output.
type ReportConfig struct {
	OrgPath string `json:"org_path,omitempty" yaml:"org_path,omitempty"`
}

// WhatIfConfig holds the default exclusion toggles applied when the whatif
// command is run without flags.
type WhatIfConfig struct {
	ExcludeMistakes      bool `json:"exclude_mistakes" yaml:"exclude_mistakes"`
	ExcludeFridays       bool `json:"exclude_fridays" yaml:"exclude_fridays"`
	ExcludeShortDuration bool `json:"exclude_short_duration" yaml:"exclude_short_duration"`
	ExcludeAfter2PM      bool `json:"exclude_after_2pm" yaml:"exclude_after_2pm"`
}

// LoadFromFile loads configuration from a file (YAML or JSON based on
// content), then applies environment overrides.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Load returns the default configuration with environment overrides applied.
// A .env file in the working directory is honored when present.
func Load() *Config {
	_ = godotenv.Load()
	cfg := Default()
	cfg.applyEnv()
	return cfg
}

// applyEnv overlays TRADEBOOK_* environment variables. godotenv has already
// populated the environment from .env by the time this runs.
func (c *Config) applyEnv() {
	if v := os.Getenv("TRADEBOOK_DB"); v != "" {
		c.Journal.DBPath = v
	}
	if v := os.Getenv("TRADEBOOK_REPORT"); v != "" {
		c.Report.OrgPath = v
	}
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension).
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

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Journal.DBPath == "" {
		return fmt.Errorf("journal.db_path is required")
	}
	return nil
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Journal: JournalConfig{
			DBPath: "./tradebook.sqlite",
		},
		Report: ReportConfig{
			OrgPath: "./review.org",
		},
	}
}
