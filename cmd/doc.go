// Package cmd implements the command-line interface for driveagent.
//
// This package provides the following commands:
//   - serve: Start the MCP server exposing the Google Drive and hashing tools
//   - invoke: Invoke a tool once with JSON arguments and print the result
//   - version: Display version information
//
// The serve command is the default command when no subcommand is specified.
package cmd
