package usecase

import (
	"context"
	"time"

	"agent-discovery/internal/discovery"
	"agent-discovery/internal/discovery/repository"
	"agent-discovery/internal/model"
	"agent-discovery/internal/router"
	"agent-discovery/internal/session"
	pkgLog "agent-discovery/pkg/log"
	"agent-discovery/pkg/metrics"
)

// Synthesizer builds a configuration from a template and requirements.
type Synthesizer interface {
	Synthesize(ctx context.Context, tmpl model.ConfigurationTemplate, req model.Requirements) (model.GeneratedConfiguration, error)
}

// Config tunes the orchestrator.
type Config struct {
	CompletionTimeout time.Duration
}

type implUseCase struct {
	l          pkgLog.Logger
	store      session.Store
	classifier router.Classifier
	synth      Synthesizer
	repo       repository.AgentRepository
	m          *metrics.Metrics
	cfg        Config
}

var _ discovery.UseCase = (*implUseCase)(nil)

// New creates a new discovery UseCase instance. m may be nil.
func New(
	l pkgLog.Logger,
	store session.Store,
	classifier router.Classifier,
	synth Synthesizer,
	repo repository.AgentRepository,
	m *metrics.Metrics,
	cfg Config,
) *implUseCase {
	if cfg.CompletionTimeout <= 0 {
		cfg.CompletionTimeout = DefaultCompletionTimeout
	}
	return &implUseCase{
		l:          l,
		store:      store,
		classifier: classifier,
		synth:      synth,
		repo:       repo,
		m:          m,
		cfg:        cfg,
	}
}
