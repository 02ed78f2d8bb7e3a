// Package server provides the MCP server context, health checks, and the
// dedicated metrics server for the driveagent application.
//
// # Key Components
//
// ServerContext manages the Google Drive client and the action dispatcher
// with lazy initialization and caching. The Drive client authenticates with
// a static access token from the configuration file; it is created on first
// use so the server can start and answer health probes before a token is
// configured.
//
// When an instrumentation provider is configured, the dispatcher's Drive
// service is wrapped with a decorator that records per-operation metrics
// and tracing spans.
//
// HealthChecker serves /healthz and /readyz endpoints for Kubernetes
// probes. MetricsServer exposes Prometheus metrics on a dedicated port,
// isolated from the main application traffic.
package server
