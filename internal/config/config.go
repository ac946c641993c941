package config

import (
	"fmt"
	"os"

	"github.com/harrison/findup/internal/findup"
	"github.com/harrison/findup/internal/logger"
	"gopkg.in/yaml.v3"
)

// Config represents findup configuration options
type Config struct {
	// Mode is the matching mode: exact, prefix or glob
	Mode string `yaml:"mode"`

	// Order is the level order: ancestor (all patterns per directory) or
	// pattern (all directories per pattern)
	Order string `yaml:"order"`

	// LogLevel sets the diagnostic verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// First stops the search after the first match
	First bool `yaml:"first"`

	// ReportNotFound reports directories that do not exist instead of skipping them
	ReportNotFound bool `yaml:"report_not_found"`

	// Print0 terminates each printed match with NUL instead of newline
	Print0 bool `yaml:"print0"`

	// Patterns are searched when none are given on the command line
	Patterns []string `yaml:"patterns"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Mode:     findup.ModeExact.String(),
		Order:    findup.AncestorMajor.String(),
		LogLevel: "info",
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	// Apply non-zero values from file (merging with defaults)
	if fileCfg.Mode != "" {
		cfg.Mode = fileCfg.Mode
	}
	if fileCfg.Order != "" {
		cfg.Order = fileCfg.Order
	}
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	if fileCfg.First {
		cfg.First = true
	}
	if fileCfg.ReportNotFound {
		cfg.ReportNotFound = true
	}
	if fileCfg.Print0 {
		cfg.Print0 = true
	}
	if len(fileCfg.Patterns) > 0 {
		cfg.Patterns = fileCfg.Patterns
	}

	return cfg, nil
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(mode *string, order *string, logLevel *string, first *bool, reportNotFound *bool, print0 *bool) {
	if mode != nil {
		c.Mode = *mode
	}
	if order != nil {
		c.Order = *order
	}
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if first != nil {
		c.First = *first
	}
	if reportNotFound != nil {
		c.ReportNotFound = *reportNotFound
	}
	if print0 != nil {
		c.Print0 = *print0
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	if _, err := findup.ParseMode(c.Mode); err != nil {
		return err
	}
	if _, err := findup.ParseOrder(c.Order); err != nil {
		return err
	}
	if !logger.IsValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}
	for i, pattern := range c.Patterns {
		if pattern == "" {
			return fmt.Errorf("patterns[%d] cannot be empty", i)
		}
	}
	return nil
}

// SearchOptions converts the configuration into search options.
// Validate must have succeeded.
func (c *Config) SearchOptions() []findup.Option {
	mode, _ := findup.ParseMode(c.Mode)
	order, _ := findup.ParseOrder(c.Order)
	return []findup.Option{
		findup.WithMode(mode),
		findup.WithOrder(order),
		findup.WithReportNotFound(c.ReportNotFound),
	}
}
