package model

import "time"

// Role tags who produced a turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Phase is the coarse state of a discovery session.
type Phase string

const (
	PhaseDiscovery Phase = "discovery"
	PhaseComplete  Phase = "complete"
)

// Turn is one utterance in a session history.
type Turn struct {
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Session is the conversational context of one requirements discovery.
type Session struct {
	ID           string       `json:"session_id"`
	OwnerID      string       `json:"owner_id"`
	AgentID      string       `json:"agent_id,omitempty"`
	Turns        []Turn       `json:"turns"`
	Requirements Requirements `json:"requirements"`
	Phase        Phase        `json:"phase"`
	PendingStep  StepID       `json:"pending_step,omitempty"`
	Version      uint64       `json:"version"`
	CreatedAt    time.Time    `json:"created_at"`
	LastActivity time.Time    `json:"last_activity"`

	// Configuration is the last synthesized configuration, kept so that
	// post-completion turns can answer without re-synthesizing.
	Configuration *GeneratedConfiguration `json:"configuration,omitempty"`
}

// NewSession returns a fresh session in the discovery phase.
func NewSession(id, ownerID string, now time.Time) Session {
	return Session{
		ID:           id,
		OwnerID:      ownerID,
		Requirements: NewRequirements(),
		Phase:        PhaseDiscovery,
		CreatedAt:    now,
		LastActivity: now,
	}
}

// Clone returns a deep copy of s.
func (s Session) Clone() Session {
	out := s
	if s.Turns != nil {
		out.Turns = append([]Turn(nil), s.Turns...)
	}
	out.Requirements = s.Requirements.Clone()
	if s.Configuration != nil {
		cfg := s.Configuration.Clone()
		out.Configuration = &cfg
	}
	return out
}

// IsComplete reports whether the session reached the terminal phase.
func (s Session) IsComplete() bool {
	return s.Phase == PhaseComplete
}

// AppendTurn appends a turn stamped with now.
func (s *Session) AppendTurn(role Role, text string, now time.Time) {
	s.Turns = append(s.Turns, Turn{Role: role, Text: text, Timestamp: now})
}

// RecentUserTexts returns up to n of the latest user utterances, oldest first.
func (s Session) RecentUserTexts(n int) []string {
	var out []string
	for i := len(s.Turns) - 1; i >= 0 && len(out) < n; i-- {
		if s.Turns[i].Role == RoleUser {
			out = append(out, s.Turns[i].Text)
		}
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
