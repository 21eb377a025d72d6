package repository

import (
	"context"

	"agent-discovery/internal/model"
)

// AgentRepository persists agents built from generated configurations.
type AgentRepository interface {
	CreateAgent(ctx context.Context, opt CreateAgentOptions) (model.Agent, error)
	GetAgent(ctx context.Context, id string) (model.Agent, error)
	ListAgents(ctx context.Context, opt ListAgentsOptions) ([]model.Agent, error)
	DeleteAgent(ctx context.Context, id string) error
}
