package hash_tools

import (
	"context"
	"testing"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/driveagent/internal/config"
	"github.com/teemow/driveagent/internal/server"
)

func TestRegisterHashTools(t *testing.T) {
	s := mcpserver.NewMCPServer("test", "0.0.1")

	cfg := &config.Config{}
	sc, err := server.NewServerContext(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("failed to create server context: %v", err)
	}
	defer func() { _ = sc.Shutdown() }()

	if err := RegisterHashTools(s, sc); err != nil {
		t.Fatalf("RegisterHashTools() error = %v", err)
	}
}
