package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	discoveryHTTP "agent-discovery/internal/discovery/delivery/http"
	"agent-discovery/internal/middleware"
	"agent-discovery/pkg/log"
	"agent-discovery/pkg/metrics"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Cross-cutting
	mw      middleware.Middleware
	metrics *metrics.Metrics

	// Discovery domain
	discoveryHandler  discoveryHTTP.Handler
	sessions          SessionCounter
	completionEnabled bool
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	Middleware middleware.Middleware
	Metrics    *metrics.Metrics

	// Discovery domain
	DiscoveryHandler  discoveryHTTP.Handler
	Sessions          SessionCounter
	CompletionEnabled bool
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = DefaultShutdownTimeout
	}

	srv := &HTTPServer{
		l:                 logger,
		gin:               gin.New(),
		port:              cfg.Port,
		mode:              cfg.Mode,
		environment:       cfg.Environment,
		shutdownTimeout:   cfg.ShutdownTimeout,
		mw:                cfg.Middleware,
		metrics:           cfg.Metrics,
		discoveryHandler:  cfg.DiscoveryHandler,
		sessions:          cfg.Sessions,
		completionEnabled: cfg.CompletionEnabled,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.discoveryHandler == nil {
		return errors.New("discovery handler is required")
	}
	return nil
}
