package llmprovider

import (
	"context"
	"fmt"
	"time"

	"agent-discovery/pkg/log"
)

// Manager sends a request down an ordered chain of providers. Each provider
// gets up to RetryAttempts tries before the chain moves on.
type Manager struct {
	chain  []Provider
	cfg    *Config
	logger log.Logger
}

// Config tunes the provider chain.
type Config struct {
	// FallbackEnabled lets a failed provider hand over to the next one.
	FallbackEnabled bool
	RetryAttempts   int
	// RetryDelay grows linearly with the attempt number.
	RetryDelay time.Duration
	// MaxTotalTimeout bounds the whole chain, retries included.
	MaxTotalTimeout time.Duration
}

// NewManager builds a Manager over providers, highest priority first.
func NewManager(providers []Provider, cfg *Config, logger log.Logger) *Manager {
	if cfg == nil {
		cfg = &Config{RetryAttempts: 1}
	}
	return &Manager{
		chain:  providers,
		cfg:    cfg,
		logger: logger,
	}
}

// GenerateContent returns the first successful response in the chain.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	switch {
	case len(m.chain) == 0:
		return nil, ErrNoProvidersConfigured
	case req == nil || len(req.Messages) == 0:
		return nil, ErrInvalidRequest
	}

	if d := m.cfg.MaxTotalTimeout; d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	var lastErr error
	for i, p := range m.chain {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w after trying %d provider(s): %v", ErrAllProvidersFailed, i, err)
		}

		resp, err := m.attempt(ctx, p, req)
		if err == nil {
			m.logger.Info(ctx, "completion served",
				"provider", p.Name(),
				"model", p.Model(),
				"input_tokens", resp.Usage.InputTokens,
				"output_tokens", resp.Usage.OutputTokens,
			)
			return resp, nil
		}

		m.logger.Warn(ctx, "completion provider failed",
			"provider", p.Name(),
			"model", p.Model(),
			"error", err.Error(),
		)
		lastErr = err
		if !m.cfg.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %v", ErrAllProvidersFailed, lastErr)
}

// attempt retries p with a linear backoff.
func (m *Manager) attempt(ctx context.Context, p Provider, req *Request) (*Response, error) {
	tries := max(m.cfg.RetryAttempts, 1)

	var err error
	for n := 0; n < tries; n++ {
		if n > 0 {
			wait := time.NewTimer(time.Duration(n) * m.cfg.RetryDelay)
			select {
			case <-wait.C:
			case <-ctx.Done():
				wait.Stop()
				return nil, ctx.Err()
			}
		}

		var resp *Response
		if resp, err = p.GenerateContent(ctx, req); err == nil {
			if resp.Usage == nil {
				resp.Usage = &Usage{}
			}
			return resp, nil
		}
	}
	return nil, err
}
