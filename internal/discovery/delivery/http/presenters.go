package http

import (
	"agent-discovery/internal/discovery"
	"agent-discovery/internal/model"
	"agent-discovery/pkg/response"
)

// --- Request DTOs ---

type turnReq struct {
	SessionID string `json:"session_id" binding:"omitempty,max=64"`
	OwnerID   string `json:"owner_id"   binding:"omitempty,max=128"`
	Message   string `json:"message"    binding:"required"`
}

func (r turnReq) toInput() discovery.TurnInput {
	return discovery.TurnInput{
		SessionID: r.SessionID,
		OwnerID:   r.OwnerID,
		Message:   r.Message,
	}
}

// --- Response DTOs ---

type turnResp struct {
	discovery.TurnOutput
}

func (h *handler) newTurnResp(out discovery.TurnOutput) turnResp {
	return turnResp{TurnOutput: out}
}

type turnItemResp struct {
	Role      string            `json:"role"`
	Text      string            `json:"text"`
	Timestamp response.DateTime `json:"timestamp"`
}

type sessionResp struct {
	SessionID     string                        `json:"session_id"`
	Phase         model.Phase                   `json:"phase"`
	Step          model.StepID                  `json:"step"`
	Progress      discovery.Progress            `json:"progress"`
	BoundAgentID  string                        `json:"bound_agent_id,omitempty"`
	Requirements  model.Requirements            `json:"requirements"`
	Configuration *model.GeneratedConfiguration `json:"configuration,omitempty"`
	Turns         []turnItemResp                `json:"turns"`
	CreatedAt     response.DateTime             `json:"created_at"`
	LastActivity  response.DateTime             `json:"last_activity"`
}

func (h *handler) newSessionResp(out discovery.SessionOutput) sessionResp {
	s := out.Session
	turns := make([]turnItemResp, len(s.Turns))
	for i, t := range s.Turns {
		turns[i] = turnItemResp{
			Role:      string(t.Role),
			Text:      t.Text,
			Timestamp: response.DateTime(t.Timestamp),
		}
	}
	return sessionResp{
		SessionID:     s.ID,
		Phase:         s.Phase,
		Step:          out.Step,
		Progress:      out.Progress,
		BoundAgentID:  s.AgentID,
		Requirements:  s.Requirements,
		Configuration: s.Configuration,
		Turns:         turns,
		CreatedAt:     response.DateTime(s.CreatedAt),
		LastActivity:  response.DateTime(s.LastActivity),
	}
}
