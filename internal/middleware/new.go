package middleware

import (
	"agent-discovery/config"
	"agent-discovery/pkg/log"
	"agent-discovery/pkg/metrics"
)

type Middleware struct {
	l       log.Logger
	m       *metrics.Metrics
	limiter *rateLimiter
}

// New creates the HTTP middleware set. m may be nil.
func New(l log.Logger, m *metrics.Metrics, cfg config.RateLimitConfig) Middleware {
	return Middleware{
		l:       l,
		m:       m,
		limiter: newRateLimiter(cfg.TurnsPerMin, cfg.MaxOwners),
	}
}
