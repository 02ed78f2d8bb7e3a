package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{
		"google_drive_auth": {"access_token": "ya29.test-token"},
		"logging_level": "DEBUG"
	}`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.GoogleDriveAuth.AccessToken != "ya29.test-token" {
		t.Errorf("Expected access token ya29.test-token, got %s", cfg.GoogleDriveAuth.AccessToken)
	}
	if cfg.LoggingLevel != "DEBUG" {
		t.Errorf("Expected logging level DEBUG, got %s", cfg.LoggingLevel)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}

func TestLoadMissingFileUsesEnv(t *testing.T) {
	t.Setenv(EnvAccessToken, "env-token")

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.GoogleDriveAuth.AccessToken != "env-token" {
		t.Errorf("Expected env-token, got %s", cfg.GoogleDriveAuth.AccessToken)
	}
	if cfg.LoggingLevel != DefaultLoggingLevel {
		t.Errorf("Expected default logging level, got %s", cfg.LoggingLevel)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Expected error for invalid JSON config")
	}
}

func TestValidateMissingToken(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Validate(); err == nil {
		t.Error("Expected validation error for missing access token")
	}
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		cfg := &Config{LoggingLevel: tt.level}
		if got := cfg.SlogLevel(); got != tt.expected {
			t.Errorf("SlogLevel(%q) = %v, expected %v", tt.level, got, tt.expected)
		}
	}
}
