package model

import "time"

// QuestionCategory groups discovery questions.
type QuestionCategory string

const (
	CategoryBusiness    QuestionCategory = "business"
	CategoryTechnical   QuestionCategory = "technical"
	CategoryPreferences QuestionCategory = "preferences"
)

// DiscoveryQuestion is an immutable catalog entry asked by the discovery flow.
type DiscoveryQuestion struct {
	ID           StepID           `json:"id"`
	Text         string           `json:"text"`
	Category     QuestionCategory `json:"category"`
	Required     bool             `json:"required"`
	QuickReplies []string         `json:"quick_replies,omitempty"`
}

// Personality holds the declared behavioral parameters of an agent.
type Personality struct {
	Tone     string `json:"tone"`
	Style    string `json:"style"`
	Language string `json:"language"`
	UseEmoji bool   `json:"use_emoji"`
}

// ConfigurationTemplate is a behavioral archetype selected by business domain.
type ConfigurationTemplate struct {
	ID           string      `json:"id"`
	Version      string      `json:"version"`
	Name         string      `json:"name"`
	DomainKeys   []string    `json:"domain_keys"`
	Skeleton     string      `json:"skeleton"`
	Variables    []string    `json:"variables"`
	Capabilities []string    `json:"capabilities"`
	Personality  Personality `json:"personality"`
}

// GeneratedConfiguration is the synthesized agent configuration.
type GeneratedConfiguration struct {
	Name            string      `json:"name"`
	Description     string      `json:"description"`
	Instructions    string      `json:"instructions"`
	Capabilities    []string    `json:"capabilities"`
	Personality     Personality `json:"personality"`
	TemplateID      string      `json:"template_id"`
	TemplateVersion string      `json:"template_version"`
	Personalized    bool        `json:"personalized"`
}

// Clone returns a deep copy of c.
func (c GeneratedConfiguration) Clone() GeneratedConfiguration {
	out := c
	out.Capabilities = cloneStrings(c.Capabilities)
	return out
}

// Agent is a persisted agent built from a generated configuration.
type Agent struct {
	ID            string                 `json:"id"`
	OwnerID       string                 `json:"owner_id"`
	SessionID     string                 `json:"session_id"`
	Configuration GeneratedConfiguration `json:"configuration"`
	CreatedAt     time.Time              `json:"created_at"`
}
