package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the driveagent application
var rootCmd = &cobra.Command{
	Use:   "driveagent",
	Short: "Google Drive agent tool for AI assistants",
	Long: `driveagent exposes Google Drive operations (search, list, download,
upload, delete, file details) as an agent tool, plus a small string
hashing tool for connectivity checks.

It can run as:
  - An MCP (Model Context Protocol) server (default)
  - A one-shot CLI via the invoke command`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "driveagent version %s\n" .Version}}`)

	// If no subcommand is provided, run the serve command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newInvokeCmd())
	rootCmd.AddCommand(newVersionCmd())
}
