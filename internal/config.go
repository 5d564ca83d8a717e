package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds CLI defaults loaded from the tool's yaml config file. Every
// field is optional; command-line flags win over config values.
type Config struct {
	// Profile is the path to the user_settings.json file to analyze.
	Profile string `yaml:"profile,omitempty"`

	// Currency overrides the profile currency for display purposes.
	Currency string `yaml:"currency,omitempty"`

	// DefaultAnalysis is the analysis run when no type is given.
	DefaultAnalysis string `yaml:"default_analysis,omitempty"`

	// WindowMonths is the default analysis window length in months.
	WindowMonths int `yaml:"window_months,omitempty"`
}

// DefaultWindowMonths is used when neither flag nor config sets a window.
const DefaultWindowMonths = 12

// DefaultConfigPath returns the default config file path
// (~/.finanlist/config.yaml).
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".finanlist", "config.yaml")
}

// LoadConfig reads and validates a config file. A missing file yields an
// empty config rather than an error.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if cfg.DefaultAnalysis != "" && !IsKnownAnalysisType(cfg.DefaultAnalysis) {
		return nil, fmt.Errorf("invalid default_analysis %q (available: %v)", cfg.DefaultAnalysis, AnalysisTypes)
	}
	if cfg.WindowMonths < 0 {
		return nil, fmt.Errorf("invalid window_months %d", cfg.WindowMonths)
	}

	return &cfg, nil
}

// Save writes the config file, creating parent directories as needed.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
