package router

import "agent-discovery/internal/model"

// Intent represents user's intention
type Intent string

const (
	IntentCreateAgent Intent = "create_agent"
	IntentFillSlot    Intent = "fill_slot"
	IntentDeploy      Intent = "deploy"
	IntentIntegrate   Intent = "integrate"
	IntentGeneralInfo Intent = "general_info"
)

// Valid reports whether i is one of the known intents.
func (i Intent) Valid() bool {
	switch i {
	case IntentCreateAgent, IntentFillSlot, IntentDeploy, IntentIntegrate, IntentGeneralInfo:
		return true
	}
	return false
}

// Input is everything a classifier may look at. It is a snapshot; nothing
// in it is shared with the session store.
type Input struct {
	Utterance    string
	Context      model.Requirements
	BoundAgentID string
	PendingStep  model.StepID
	History      []string
}

// HasContext reports whether the context-aware path applies.
func (in Input) HasContext() bool {
	return in.Context.BusinessType != "" || in.BoundAgentID != ""
}

// Classification is the structured result of classifying one utterance.
type Classification struct {
	Intent     Intent
	Extracted  model.Requirements
	Correction bool
	Confidence int // 0-100
	Reasoning  string
	Degraded   bool
}

// llmOutput is the JSON contract requested from the completion service.
type llmOutput struct {
	Intent       string       `json:"intent"`
	Confidence   int          `json:"confidence"`
	Reasoning    string       `json:"reasoning"`
	IsCorrection bool         `json:"is_correction"`
	Extracted    llmExtracted `json:"extracted"`
}

type llmExtracted struct {
	BusinessType       string   `json:"business_type"`
	Objectives         string   `json:"objectives"`
	TargetAudience     string   `json:"target_audience"`
	KeyFeatures        []string `json:"key_features"`
	TechnicalFeatures  []string `json:"technical_features"`
	IntegrationsNeeded []string `json:"integrations_needed"`
	Complexity         string   `json:"complexity"`
}
