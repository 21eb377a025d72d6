package discovery

import (
	"context"

	"agent-discovery/internal/model"
)

// UseCase defines the business logic interface for the discovery domain.
type UseCase interface {
	// HandleTurn processes one user message: classifies it, updates the
	// session requirements, asks the next question and generates the agent
	// configuration once every step is satisfied.
	HandleTurn(ctx context.Context, sc model.Scope, input TurnInput) (TurnOutput, error)

	// GetSession returns a snapshot of a session with its current step.
	GetSession(ctx context.Context, sc model.Scope, sessionID string) (SessionOutput, error)

	// ResetSession clears a session and restarts discovery from the first question.
	ResetSession(ctx context.Context, sc model.Scope, sessionID string) (TurnOutput, error)
}
