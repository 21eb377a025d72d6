package synthesis

import (
	"time"

	"agent-discovery/pkg/llmprovider"
	"agent-discovery/pkg/log"
	"agent-discovery/pkg/metrics"
)

// Config bounds the optional elaboration call.
type Config struct {
	Elaborate bool
	Timeout   time.Duration
	MaxTokens int
	MaxChars  int
}

// Synthesizer builds GeneratedConfigurations from templates and requirements.
type Synthesizer struct {
	llm llmprovider.Completer
	l   log.Logger
	m   *metrics.Metrics
	cfg Config
}

// New creates a Synthesizer. llm and m may be nil; without llm no
// elaboration is attempted.
func New(llm llmprovider.Completer, l log.Logger, m *metrics.Metrics, cfg Config) *Synthesizer {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if cfg.MaxChars <= 0 {
		cfg.MaxChars = DefaultMaxChars
	}
	return &Synthesizer{
		llm: llm,
		l:   l,
		m:   m,
		cfg: cfg,
	}
}
