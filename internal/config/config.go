// Package config loads the tool configuration for driveagent.
//
// Configuration is read once at startup, either from a JSON file or from
// environment variables. The Google Drive service handle is built once from
// the configured access token and reused for the lifetime of the instance.
package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const (
	// EnvAccessToken is the environment variable consulted when the config
	// file does not provide an access token.
	EnvAccessToken = "GOOGLE_DRIVE_ACCESS_TOKEN"

	// EnvLoggingLevel overrides the configured logging level.
	EnvLoggingLevel = "DRIVEAGENT_LOGGING_LEVEL"

	// DefaultLoggingLevel is used when no level is configured.
	DefaultLoggingLevel = "INFO"
)

// GoogleDriveAuth holds the credentials used to build the Drive service.
type GoogleDriveAuth struct {
	// AccessToken is a raw OAuth 2.0 access token. Token acquisition and
	// refresh happen outside this tool.
	AccessToken string `json:"access_token"`
}

// Config is the tool configuration consumed at setup.
type Config struct {
	GoogleDriveAuth GoogleDriveAuth `json:"google_drive_auth"`

	// LoggingLevel is one of DEBUG, INFO, WARN, ERROR (case-insensitive).
	LoggingLevel string `json:"logging_level,omitempty"`
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "driveagent", "config.json")
}

// Load reads the configuration from path. An empty path falls back to
// DefaultPath. A missing file is not an error as long as the access token
// is available from the environment.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		case os.IsNotExist(err):
			// Fall through to environment variables.
		default:
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	if cfg.GoogleDriveAuth.AccessToken == "" {
		cfg.GoogleDriveAuth.AccessToken = os.Getenv(EnvAccessToken)
	}
	if level := os.Getenv(EnvLoggingLevel); level != "" {
		cfg.LoggingLevel = level
	}
	if cfg.LoggingLevel == "" {
		cfg.LoggingLevel = DefaultLoggingLevel
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.GoogleDriveAuth.AccessToken == "" {
		return fmt.Errorf("google_drive_auth.access_token is required (or set %s)", EnvAccessToken)
	}
	return nil
}

// SlogLevel converts the configured logging level to a slog.Level.
// Unknown values fall back to Info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToUpper(strings.TrimSpace(c.LoggingLevel)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
