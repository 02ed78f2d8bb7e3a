// Package logging provides structured logging utilities for driveagent.
//
// This package centralizes logging patterns to ensure consistent, structured logging
// throughout the codebase using the standard library's slog package.
//
// # Key Features
//
//   - Structured logging with slog
//   - Consistent attribute naming across the codebase
//   - Logger adapter interface for flexibility
//   - Token sanitization for safe credential logging
//
// # Usage Patterns
//
// Create a logger with standard attributes:
//
//	logger := logging.WithAction(slog.Default(), "search_files")
//	logger.Info("search complete",
//	    logging.Status("success"))
//
// Sanitize sensitive data before logging:
//
//	logger.Debug("service configured",
//	    "access_token", logging.SanitizeToken(token))
package logging
