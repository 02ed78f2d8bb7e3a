package server

import (
	"context"
	"sync"

	"github.com/teemow/driveagent/internal/config"
	"github.com/teemow/driveagent/internal/drive"
	"github.com/teemow/driveagent/internal/instrumentation"
	"github.com/teemow/driveagent/internal/logging"
	"github.com/teemow/driveagent/internal/tool"
)

// ServerContext holds the context for the MCP server
type ServerContext struct {
	ctx    context.Context
	cancel context.CancelFunc
	cfg    *config.Config
	log    logging.Logger

	driveClient *drive.Client
	dispatcher  *tool.Dispatcher

	metrics     *instrumentation.Metrics
	auditLogger *instrumentation.AuditLogger

	mu       sync.RWMutex
	shutdown bool
}

// NewServerContext creates a new server context. The Drive client is not
// created here: it is lazily initialized on first use so the server can
// start and report health before a token is configured.
func NewServerContext(ctx context.Context, cfg *config.Config, log logging.Logger) (*ServerContext, error) {
	shutdownCtx, cancel := context.WithCancel(ctx)

	if log == nil {
		log = logging.DefaultLogger()
	}

	return &ServerContext{
		ctx:      shutdownCtx,
		cancel:   cancel,
		cfg:      cfg,
		log:      log,
		shutdown: false,
	}, nil
}

// Context returns the server context
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// Config returns the loaded configuration.
func (sc *ServerContext) Config() *config.Config {
	return sc.cfg
}

// DriveClient returns the Drive client, creating and caching it on first
// use. Returns an error if no access token is configured.
func (sc *ServerContext) DriveClient() (*drive.Client, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.driveClient != nil {
		return sc.driveClient, nil
	}

	client, err := drive.NewClient(sc.ctx, sc.cfg.GoogleDriveAuth.AccessToken)
	if err != nil {
		return nil, err
	}

	sc.driveClient = client
	return client, nil
}

// SetDriveClient sets the Drive client. Used by tests to inject a fake.
func (sc *ServerContext) SetDriveClient(client *drive.Client) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.driveClient = client
	sc.dispatcher = nil
}

// Dispatcher returns the action dispatcher, creating and caching it on
// first use. The underlying Drive service is wrapped with instrumentation
// when metrics are configured.
func (sc *ServerContext) Dispatcher() (*tool.Dispatcher, error) {
	sc.mu.RLock()
	if sc.dispatcher != nil {
		defer sc.mu.RUnlock()
		return sc.dispatcher, nil
	}
	sc.mu.RUnlock()

	client, err := sc.DriveClient()
	if err != nil {
		return nil, err
	}

	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.dispatcher == nil {
		var svc tool.Service = client
		if sc.metrics != nil {
			svc = newInstrumentedService(client, sc.metrics)
		}
		sc.dispatcher = tool.NewDispatcher(svc, sc.log)
	}
	return sc.dispatcher, nil
}

// SetDispatcher sets the dispatcher. Used by tests to inject a spy service.
func (sc *ServerContext) SetDispatcher(d *tool.Dispatcher) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.dispatcher = d
}

// SetMetrics sets the metrics recorder for instrumentation.
func (sc *ServerContext) SetMetrics(m *instrumentation.Metrics) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.metrics = m
	sc.dispatcher = nil
}

// Metrics returns the metrics recorder, or nil if not configured.
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.metrics
}

// SetAuditLogger sets the audit logger.
func (sc *ServerContext) SetAuditLogger(al *instrumentation.AuditLogger) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.auditLogger = al
}

// AuditLogger returns the audit logger, or nil if not configured.
func (sc *ServerContext) AuditLogger() *instrumentation.AuditLogger {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.auditLogger
}

// HasToken reports whether an access token is configured.
func (sc *ServerContext) HasToken() bool {
	return sc.cfg != nil && sc.cfg.GoogleDriveAuth.AccessToken != ""
}

// IsShutdown returns whether the server has been shutdown
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown shuts down the server context
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}
