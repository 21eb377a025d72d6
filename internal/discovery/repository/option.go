package repository

import "agent-discovery/internal/model"

// CreateAgentOptions holds the parameters for creating an agent.
type CreateAgentOptions struct {
	OwnerID       string
	SessionID     string
	Configuration model.GeneratedConfiguration
}

// ListAgentsOptions holds the parameters for listing agents.
type ListAgentsOptions struct {
	OwnerID string // Required
	Limit   int    // Max number of results (default 20)
}
