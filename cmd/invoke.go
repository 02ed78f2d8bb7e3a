package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/teemow/driveagent/internal/config"
	"github.com/teemow/driveagent/internal/logging"
	"github.com/teemow/driveagent/internal/server"
	"github.com/teemow/driveagent/internal/tool"
	"github.com/teemow/driveagent/internal/tools/drive_tools"
	"github.com/teemow/driveagent/internal/tools/hash_tools"
)

func newInvokeCmd() *cobra.Command {
	var (
		configPath string
		toolName   string
		debugMode  bool
	)

	cmd := &cobra.Command{
		Use:   "invoke [json-args]",
		Short: "Invoke a tool once and print the result",
		Long: `Invoke a tool with a JSON argument object and print the result to
stdout. Arguments are read from the first positional argument, or from
stdin when the argument is "-" or omitted.

Examples:
  driveagent invoke '{"action":"list_files","page_size":5}'
  driveagent invoke --tool hash_string '{"payload":"hello"}'
  echo '{"action":"get_file_details","file_id":"abc123"}' | driveagent invoke -`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := ""
			if len(args) == 1 && args[0] != "-" {
				raw = args[0]
			} else {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read arguments from stdin: %w", err)
				}
				raw = string(data)
			}

			out, err := runInvoke(cmd.Context(), configPath, toolName, debugMode, raw)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to config file (default: ~/.config/driveagent/config.json)")
	cmd.Flags().StringVar(&toolName, "tool", drive_tools.ToolName, "Tool to invoke: google_drive or hash_string")
	cmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	return cmd
}

func runInvoke(ctx context.Context, configPath, toolName string, debugMode bool, raw string) (string, error) {
	var arguments map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &arguments); err != nil {
		return "", fmt.Errorf("arguments must be a JSON object: %w", err)
	}

	switch toolName {
	case hash_tools.ToolName:
		result, err := tool.InvokeHash(arguments)
		if err != nil {
			return "", err
		}
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return "", err
		}
		return string(out), nil

	case drive_tools.ToolName:
		cfg, err := config.Load(configPath)
		if err != nil {
			return "", fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return "", err
		}

		level := cfg.SlogLevel()
		if debugMode {
			level = slog.LevelDebug
		}
		logger := logging.NewSlogAdapter(logging.NewLevelLogger(os.Stderr, level))

		sc, err := server.NewServerContext(ctx, cfg, logger)
		if err != nil {
			return "", fmt.Errorf("failed to create server context: %w", err)
		}
		defer func() { _ = sc.Shutdown() }()

		req, err := tool.ParseRequest(arguments)
		if err != nil {
			return "", err
		}

		dispatcher, err := sc.Dispatcher()
		if err != nil {
			return "", err
		}

		env, err := dispatcher.Invoke(ctx, req)
		if err != nil {
			return "", err
		}
		return env.JSON()

	default:
		return "", fmt.Errorf("unknown tool: %s (supported: %s, %s)", toolName, drive_tools.ToolName, hash_tools.ToolName)
	}
}
