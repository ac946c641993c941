package config

import (
	"os"

	"github.com/harrison/findup/internal/findup"
)

// FileName is the configuration file looked up from the working directory.
const FileName = ".findup.yaml"

// EnvVar names an explicit configuration file.
const EnvVar = "FINDUP_CONFIG"

// FindConfigPath returns the configuration file to load, or "" when there is none.
// Priority order:
//  1. FINDUP_CONFIG environment variable (if set)
//  2. The nearest .findup.yaml in start or one of its ancestors
func FindConfigPath(start string) string {
	if path := os.Getenv(EnvVar); path != "" {
		return path
	}

	// Unreadable ancestors only mean there is no config file to use.
	path, err := findup.NewSearcher().First(start, []string{FileName})
	if err != nil {
		return ""
	}
	return path
}

// Load finds and loads the configuration for a search starting at start.
// explicit, when non-empty, wins over every other location and must exist.
// The returned path is the file that was loaded, or "" for defaults.
func Load(start, explicit string) (*Config, string, error) {
	path := explicit
	if path == "" {
		path = FindConfigPath(start)
	} else if _, err := os.Stat(path); err != nil {
		return nil, "", err
	}

	if path == "" {
		return DefaultConfig(), "", nil
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}
