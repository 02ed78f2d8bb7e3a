package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNewSlogAdapter_WithNil(t *testing.T) {
	adapter := NewSlogAdapter(nil)
	if adapter == nil {
		t.Fatal("NewSlogAdapter returned nil")
	}
	if adapter.logger == nil {
		t.Error("adapter.logger should not be nil when created with nil")
	}
}

func TestNewSlogAdapter_WithLogger(t *testing.T) {
	logger := slog.Default()
	adapter := NewSlogAdapter(logger)
	if adapter == nil {
		t.Fatal("NewSlogAdapter returned nil")
	}
	if adapter.logger != logger {
		t.Error("adapter.logger should be the provided logger")
	}
	if adapter.Logger() != logger {
		t.Error("Logger() should return the provided logger")
	}
}

func TestNewLevelLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLevelLogger(&buf, slog.LevelInfo)
	adapter := NewSlogAdapter(logger)

	adapter.Debug("hidden message")
	adapter.Info("visible message")

	out := buf.String()
	if strings.Contains(out, "hidden message") {
		t.Error("debug message should be filtered at info level")
	}
	if !strings.Contains(out, "visible message") {
		t.Error("info message should be logged at info level")
	}
}

func TestSlogAdapter_Levels(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewSlogAdapter(NewLevelLogger(&buf, slog.LevelDebug))

	adapter.Debug("debug message", "key", "value")
	adapter.Info("info message", "key", "value")
	adapter.Warn("warn message", "key", "value")
	adapter.Error("error message", "key", "value")

	out := buf.String()
	for _, want := range []string{"debug message", "info message", "warn message", "error message"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestDefaultLogger(t *testing.T) {
	adapter := DefaultLogger()
	if adapter == nil {
		t.Fatal("DefaultLogger returned nil")
	}
	// Should not panic
	adapter.Info("default logger message")
}
