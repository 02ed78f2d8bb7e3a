// Package common provides shared utilities for MCP tool implementations.
// It contains the instrumentation wrapper used by all tool packages so
// metrics and audit logging stay consistent across tools.
package common
