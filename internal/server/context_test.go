package server

import (
	"context"
	"errors"
	"testing"

	"github.com/teemow/driveagent/internal/config"
	"github.com/teemow/driveagent/internal/drive"
)

func testConfig(token string) *config.Config {
	cfg := &config.Config{}
	cfg.GoogleDriveAuth.AccessToken = token
	return cfg
}

func TestNewServerContext(t *testing.T) {
	sc, err := NewServerContext(context.Background(), testConfig("tok"), nil)
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}

	if sc.Context() == nil {
		t.Error("Context() returned nil")
	}
	if sc.IsShutdown() {
		t.Error("new context should not be shutdown")
	}
	if !sc.HasToken() {
		t.Error("HasToken() = false, want true")
	}
}

func TestServerContext_HasToken_Empty(t *testing.T) {
	sc, err := NewServerContext(context.Background(), testConfig(""), nil)
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}

	if sc.HasToken() {
		t.Error("HasToken() = true for empty token")
	}
}

func TestServerContext_DriveClient_NoToken(t *testing.T) {
	sc, err := NewServerContext(context.Background(), testConfig(""), nil)
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}

	_, err = sc.DriveClient()
	var authErr *drive.AuthError
	if !errors.As(err, &authErr) {
		t.Errorf("DriveClient() without token: expected AuthError, got %v", err)
	}
}

func TestServerContext_DriveClient_Cached(t *testing.T) {
	sc, err := NewServerContext(context.Background(), testConfig("tok"), nil)
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}

	first, err := sc.DriveClient()
	if err != nil {
		t.Fatalf("DriveClient() error = %v", err)
	}

	second, err := sc.DriveClient()
	if err != nil {
		t.Fatalf("DriveClient() second call error = %v", err)
	}

	if first != second {
		t.Error("DriveClient() should return the cached client")
	}
}

func TestServerContext_Dispatcher_Cached(t *testing.T) {
	sc, err := NewServerContext(context.Background(), testConfig("tok"), nil)
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}

	first, err := sc.Dispatcher()
	if err != nil {
		t.Fatalf("Dispatcher() error = %v", err)
	}

	second, err := sc.Dispatcher()
	if err != nil {
		t.Fatalf("Dispatcher() second call error = %v", err)
	}

	if first != second {
		t.Error("Dispatcher() should return the cached dispatcher")
	}
}

func TestServerContext_Dispatcher_NoToken(t *testing.T) {
	sc, err := NewServerContext(context.Background(), testConfig(""), nil)
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}

	_, err = sc.Dispatcher()
	var authErr *drive.AuthError
	if !errors.As(err, &authErr) {
		t.Errorf("Dispatcher() without token: expected AuthError, got %v", err)
	}
}

func TestServerContext_Shutdown(t *testing.T) {
	sc, err := NewServerContext(context.Background(), testConfig("tok"), nil)
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}

	if err := sc.Shutdown(); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
	if !sc.IsShutdown() {
		t.Error("IsShutdown() = false after Shutdown()")
	}

	select {
	case <-sc.Context().Done():
	default:
		t.Error("context should be cancelled after Shutdown()")
	}

	// Second shutdown is a no-op
	if err := sc.Shutdown(); err != nil {
		t.Errorf("second Shutdown() error = %v", err)
	}
}
