package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"agent-discovery/internal/discovery/repository"
	"agent-discovery/internal/model"
)

const defaultListLimit = 20

type agentRepository struct {
	mu     sync.RWMutex
	agents map[string]model.Agent
	now    func() time.Time
}

var _ repository.AgentRepository = (*agentRepository)(nil)

// NewAgentRepository creates an in-memory AgentRepository.
func NewAgentRepository() repository.AgentRepository {
	return &agentRepository{
		agents: make(map[string]model.Agent),
		now:    time.Now,
	}
}

func (r *agentRepository) CreateAgent(ctx context.Context, opt repository.CreateAgentOptions) (model.Agent, error) {
	if opt.OwnerID == "" || opt.SessionID == "" {
		return model.Agent{}, fmt.Errorf("%w: owner and session are required", repository.ErrInvalidOptions)
	}
	if err := ctx.Err(); err != nil {
		return model.Agent{}, err
	}

	a := model.Agent{
		ID:            uuid.NewString(),
		OwnerID:       opt.OwnerID,
		SessionID:     opt.SessionID,
		Configuration: opt.Configuration.Clone(),
		CreatedAt:     r.now(),
	}

	r.mu.Lock()
	r.agents[a.ID] = a
	r.mu.Unlock()

	return copyAgent(a), nil
}

func (r *agentRepository) GetAgent(ctx context.Context, id string) (model.Agent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.agents[id]
	if !ok {
		return model.Agent{}, repository.ErrAgentNotFound
	}
	return copyAgent(a), nil
}

func (r *agentRepository) ListAgents(ctx context.Context, opt repository.ListAgentsOptions) ([]model.Agent, error) {
	if opt.OwnerID == "" {
		return nil, fmt.Errorf("%w: owner is required", repository.ErrInvalidOptions)
	}
	limit := opt.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	r.mu.RLock()
	var out []model.Agent
	for _, a := range r.agents {
		if a.OwnerID == opt.OwnerID {
			out = append(out, copyAgent(a))
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *agentRepository) DeleteAgent(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.agents[id]; !ok {
		return repository.ErrAgentNotFound
	}
	delete(r.agents, id)
	return nil
}

func copyAgent(a model.Agent) model.Agent {
	a.Configuration = a.Configuration.Clone()
	return a
}
