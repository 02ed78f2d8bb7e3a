package cmd

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestRunInvoke_HashTool(t *testing.T) {
	out, err := runInvoke(context.Background(), "", "hash_string", false, `{"payload":"hello"}`)
	if err != nil {
		t.Fatalf("runInvoke() error = %v", err)
	}

	var result struct {
		Output string `json:"output"`
	}
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if result.Output != "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d" {
		t.Errorf("Output = %q, want sha1 of %q", result.Output, "hello")
	}
}

func TestRunInvoke_InvalidJSON(t *testing.T) {
	_, err := runInvoke(context.Background(), "", "hash_string", false, `not json`)
	if err == nil {
		t.Fatal("expected error for invalid JSON arguments")
	}
	if !strings.Contains(err.Error(), "JSON object") {
		t.Errorf("error = %v, want mention of JSON object", err)
	}
}

func TestRunInvoke_UnknownTool(t *testing.T) {
	_, err := runInvoke(context.Background(), "", "calendar", false, `{}`)
	if err == nil {
		t.Fatal("expected error for unknown tool")
	}
	if !strings.Contains(err.Error(), "unknown tool: calendar") {
		t.Errorf("error = %v, want unknown tool message", err)
	}
}

func TestNewServeCmdFlags(t *testing.T) {
	cmd := newServeCmd()

	for _, name := range []string{"debug", "transport", "http-addr", "config", "metrics-enabled", "metrics-addr"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("serve command is missing flag %q", name)
		}
	}

	if got := cmd.Flags().Lookup("transport").DefValue; got != "stdio" {
		t.Errorf("transport default = %q, want %q", got, "stdio")
	}
}
