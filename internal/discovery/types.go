package discovery

import "agent-discovery/internal/model"

// TurnInput is one inbound user message. An empty SessionID starts a new
// session, which requires an owner.
type TurnInput struct {
	SessionID string
	OwnerID   string
	Message   string
}

// Progress counts satisfied discovery steps.
type Progress struct {
	Done  int `json:"done"`
	Total int `json:"total"`
}

// TurnOutput is the outbound reply to a turn.
type TurnOutput struct {
	Success                bool                          `json:"success"`
	SessionID              string                        `json:"session_id"`
	Message                string                        `json:"message"`
	SuggestedReplies       []string                      `json:"suggested_replies,omitempty"`
	BoundAgentID           string                        `json:"bound_agent_id,omitempty"`
	GeneratedConfiguration *model.GeneratedConfiguration `json:"generated_configuration,omitempty"`
	Step                   model.StepID                  `json:"step"`
	Progress               Progress                      `json:"progress"`
	Warning                string                        `json:"warning,omitempty"`
	Error                  string                        `json:"error,omitempty"`
}

// SessionOutput is a session snapshot with its position in the flow.
type SessionOutput struct {
	Session  model.Session `json:"session"`
	Step     model.StepID  `json:"step"`
	Progress Progress      `json:"progress"`
}
