package session

import (
	"context"
	"time"

	"agent-discovery/internal/model"
)

// Store holds discovery sessions. Every returned Session is a deep copy;
// mutations of one session are linearized.
type Store interface {
	// GetOrCreate returns the session for sessionID, creating it when it does
	// not exist and ownerID is set. An empty sessionID always creates a new
	// session with a generated id. The bool reports whether it was created.
	GetOrCreate(ctx context.Context, sessionID, ownerID string) (model.Session, bool, error)
	Get(ctx context.Context, sessionID string) (model.Session, error)
	AppendTurn(ctx context.Context, sessionID string, role model.Role, text string) error
	MergeRequirements(ctx context.Context, sessionID string, partial model.Requirements, isCorrection bool) (model.Requirements, error)
	// BindAgent binds agentID unless an agent is already bound, and returns
	// the bound id.
	BindAgent(ctx context.Context, sessionID, agentID string) (string, error)
	// Update applies fn to a copy of the session and commits the copy only
	// when fn returns nil and ctx is still live.
	Update(ctx context.Context, sessionID string, fn func(s *model.Session) error) (model.Session, error)
	// Reset clears the session back to a fresh discovery and then applies
	// fn, if any, in the same commit.
	Reset(ctx context.Context, sessionID string, fn func(s *model.Session)) (model.Session, error)
	EvictInactive(ctx context.Context, maxAge time.Duration) int
	Len() int
}
