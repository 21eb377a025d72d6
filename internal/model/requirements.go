package model

import (
	"slices"
	"strings"
)

// Complexity is the expected sophistication of the requested assistant.
type Complexity string

const (
	ComplexitySimple   Complexity = "simple"
	ComplexityModerate Complexity = "moderate"
	ComplexityComplex  Complexity = "complex"
)

func (c Complexity) orDefault() Complexity {
	if c == "" {
		return ComplexityModerate
	}
	return c
}

// Valid reports whether c is one of the known complexity levels.
func (c Complexity) Valid() bool {
	switch c {
	case ComplexitySimple, ComplexityModerate, ComplexityComplex:
		return true
	}
	return false
}

// StepID identifies one step of the discovery conversation.
type StepID string

const (
	StepBusinessType      StepID = "business_type"
	StepKeyFeatures       StepID = "key_features"
	StepTargetAudience    StepID = "target_audience"
	StepTechnicalFeatures StepID = "technical_features"
	StepIntegrations      StepID = "integrations"
	StepValidation        StepID = "validation"
	StepSandboxTest       StepID = "sandbox_test"
	StepComplete          StepID = "complete"
)

// Requirements is the slot structure filled across the discovery turns.
// Scalars are write-once unless corrected; lists only grow.
type Requirements struct {
	BusinessType       string     `json:"business_type,omitempty"`
	Objectives         string     `json:"objectives,omitempty"`
	TargetAudience     string     `json:"target_audience,omitempty"`
	KeyFeatures        []string   `json:"key_features,omitempty"`
	TechnicalFeatures  []string   `json:"technical_features,omitempty"`
	IntegrationsNeeded []string   `json:"integrations_needed,omitempty"`
	Complexity         Complexity `json:"complexity,omitempty"`
	Confirmed          bool       `json:"confirmed,omitempty"`
	SandboxRequested   bool       `json:"sandbox_requested,omitempty"`
	Answered           []StepID   `json:"answered,omitempty"`
}

// NewRequirements returns an empty slot set with the default complexity.
func NewRequirements() Requirements {
	return Requirements{Complexity: ComplexityModerate}
}

// HasAnswered reports whether the optional step was answered or skipped.
func (r Requirements) HasAnswered(step StepID) bool {
	for _, s := range r.Answered {
		if s == step {
			return true
		}
	}
	return false
}

// IsEmpty reports whether r carries no information at all.
func (r Requirements) IsEmpty() bool {
	return r.BusinessType == "" &&
		r.Objectives == "" &&
		r.TargetAudience == "" &&
		len(r.KeyFeatures) == 0 &&
		len(r.TechnicalFeatures) == 0 &&
		len(r.IntegrationsNeeded) == 0 &&
		(r.Complexity == "" || r.Complexity == ComplexityModerate) &&
		!r.Confirmed &&
		!r.SandboxRequested &&
		len(r.Answered) == 0
}

// Equal reports whether r and o carry the same information. An unset
// complexity equals the moderate default.
func (r Requirements) Equal(o Requirements) bool {
	return r.BusinessType == o.BusinessType &&
		r.Objectives == o.Objectives &&
		r.TargetAudience == o.TargetAudience &&
		r.Complexity.orDefault() == o.Complexity.orDefault() &&
		r.Confirmed == o.Confirmed &&
		r.SandboxRequested == o.SandboxRequested &&
		slices.Equal(r.KeyFeatures, o.KeyFeatures) &&
		slices.Equal(r.TechnicalFeatures, o.TechnicalFeatures) &&
		slices.Equal(r.IntegrationsNeeded, o.IntegrationsNeeded) &&
		slices.Equal(r.Answered, o.Answered)
}

// Clone returns a deep copy of r.
func (r Requirements) Clone() Requirements {
	out := r
	out.KeyFeatures = cloneStrings(r.KeyFeatures)
	out.TechnicalFeatures = cloneStrings(r.TechnicalFeatures)
	out.IntegrationsNeeded = cloneStrings(r.IntegrationsNeeded)
	if r.Answered != nil {
		out.Answered = append([]StepID(nil), r.Answered...)
	}
	return out
}

// Merge folds partial into old and returns the result. Neither input is
// modified.
//
// Scalars are taken from partial only when old has none, or when
// isCorrection is set. Lists are unioned in first-seen order without
// duplicates, so they never shrink. A correction overwrites only the scalars
// it carries; it never clears lists.
func Merge(old, partial Requirements, isCorrection bool) Requirements {
	out := old.Clone()

	out.BusinessType = mergeScalar(old.BusinessType, partial.BusinessType, isCorrection)
	out.Objectives = mergeScalar(old.Objectives, partial.Objectives, isCorrection)
	out.TargetAudience = mergeScalar(old.TargetAudience, partial.TargetAudience, isCorrection)

	if partial.Complexity.Valid() {
		unset := old.Complexity == "" || old.Complexity == ComplexityModerate
		if unset || isCorrection {
			out.Complexity = partial.Complexity
		}
	}
	if out.Complexity == "" {
		out.Complexity = ComplexityModerate
	}

	out.KeyFeatures = union(old.KeyFeatures, partial.KeyFeatures)
	out.TechnicalFeatures = union(old.TechnicalFeatures, partial.TechnicalFeatures)
	out.IntegrationsNeeded = union(old.IntegrationsNeeded, partial.IntegrationsNeeded)

	for _, step := range partial.Answered {
		if !out.HasAnswered(step) {
			out.Answered = append(out.Answered, step)
		}
	}

	if isCorrection {
		// A correction may retract a confirmation, e.g. "non, en fait ...".
		out.Confirmed = partial.Confirmed
		out.SandboxRequested = old.SandboxRequested || partial.SandboxRequested
	} else {
		out.Confirmed = old.Confirmed || partial.Confirmed
		out.SandboxRequested = old.SandboxRequested || partial.SandboxRequested
	}

	return out
}

func mergeScalar(old, next string, isCorrection bool) string {
	next = strings.TrimSpace(next)
	if next == "" {
		return old
	}
	if old == "" || isCorrection {
		return next
	}
	return old
}

// union appends the items of next missing from base, keeping base order.
// Items are compared case-insensitively after trimming.
func union(base, next []string) []string {
	if len(next) == 0 {
		return cloneStrings(base)
	}

	out := make([]string, 0, len(base)+len(next))
	seen := make(map[string]struct{}, len(base)+len(next))
	for _, group := range [][]string{base, next} {
		for _, item := range group {
			item = strings.TrimSpace(item)
			if item == "" {
				continue
			}
			key := strings.ToLower(item)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}
