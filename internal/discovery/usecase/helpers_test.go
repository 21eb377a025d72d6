package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"agent-discovery/internal/discovery/repository"
	"agent-discovery/internal/discovery/repository/memory"
	"agent-discovery/internal/model"
	"agent-discovery/internal/router"
	"agent-discovery/internal/session"
	"agent-discovery/internal/synthesis"
	"agent-discovery/pkg/llmprovider"
	"agent-discovery/pkg/log"
	"agent-discovery/pkg/metrics"
)

var errRepoDown = errors.New("repository unavailable")

// funcClassifier delegates to fn and counts calls.
type funcClassifier struct {
	fn    func(ctx context.Context, in router.Input) (router.Classification, error)
	calls atomic.Int32
}

func (c *funcClassifier) Classify(ctx context.Context, in router.Input) (router.Classification, error) {
	c.calls.Add(1)
	return c.fn(ctx, in)
}

// failingCompleter always fails like an unreachable completion service.
type failingCompleter struct{}

func (failingCompleter) Complete(ctx context.Context, turns []llmprovider.Turn, opts llmprovider.Options) (string, error) {
	return "", llmprovider.ErrCompletionUnavailable
}

// flakyRepo fails CreateAgent while fail is set.
type flakyRepo struct {
	repository.AgentRepository
	fail atomic.Bool

	mu      sync.Mutex
	deleted []string
}

func (r *flakyRepo) CreateAgent(ctx context.Context, opt repository.CreateAgentOptions) (model.Agent, error) {
	if r.fail.Load() {
		return model.Agent{}, errRepoDown
	}
	return r.AgentRepository.CreateAgent(ctx, opt)
}

func (r *flakyRepo) DeleteAgent(ctx context.Context, id string) error {
	r.mu.Lock()
	r.deleted = append(r.deleted, id)
	r.mu.Unlock()
	return r.AgentRepository.DeleteAgent(ctx, id)
}

// brokenSynth rejects every template.
type brokenSynth struct{}

func (brokenSynth) Synthesize(ctx context.Context, tmpl model.ConfigurationTemplate, req model.Requirements) (model.GeneratedConfiguration, error) {
	return model.GeneratedConfiguration{}, &synthesis.SynthesisError{TemplateID: tmpl.ID, Err: errors.New("bad skeleton")}
}

type testDeps struct {
	classifier router.Classifier
	synth      Synthesizer
}

type testEnv struct {
	uc    *implUseCase
	store *session.MemoryStore
	repo  *flakyRepo
	m     *metrics.Metrics
}

func newTestEnv(deps testDeps) *testEnv {
	l := log.NewNop()
	m := metrics.New("test")
	if deps.classifier == nil {
		deps.classifier = router.NewKeyword(l)
	}
	if deps.synth == nil {
		deps.synth = synthesis.New(nil, l, m, synthesis.Config{})
	}
	store := session.NewMemoryStore(l, m)
	repo := &flakyRepo{AgentRepository: memory.NewAgentRepository()}
	return &testEnv{
		uc:    New(l, store, deps.classifier, deps.synth, repo, m, Config{}),
		store: store,
		repo:  repo,
		m:     m,
	}
}

// fillSlot returns a classifier result extracting partial.
func fillSlot(partial model.Requirements) router.Classification {
	return router.Classification{Intent: router.IntentFillSlot, Extracted: partial, Confidence: 90}
}
