package router

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"agent-discovery/internal/model"
	"agent-discovery/pkg/llmprovider"
	"agent-discovery/pkg/log"
)

// SemanticRouter classifies user intent using the completion service
type SemanticRouter struct {
	llm         llmprovider.Completer
	l           log.Logger
	temperature float64
}

// Ensure SemanticRouter implements Classifier interface
var _ Classifier = (*SemanticRouter)(nil)

// NewSemantic creates a new SemanticRouter. A zero temperature uses
// RouterTemperature.
func NewSemantic(llm llmprovider.Completer, l log.Logger, temperature float64) *SemanticRouter {
	if temperature <= 0 {
		temperature = RouterTemperature
	}
	return &SemanticRouter{
		llm:         llm,
		l:           l,
		temperature: temperature,
	}
}

// Classify determines user intent and extracts requirement fields
func (r *SemanticRouter) Classify(ctx context.Context, in Input) (Classification, error) {
	system := PromptRouterSystem
	if in.HasContext() {
		system = PromptContextSystem
	}

	text, err := r.llm.Complete(ctx, []llmprovider.Turn{
		{Role: llmprovider.RoleUser, Content: buildUserPrompt(in)},
	}, llmprovider.Options{
		SystemInstruction: system,
		Temperature:       r.temperature,
		MaxOutputTokens:   RouterMaxOutputTokens,
	})
	if err != nil {
		return Classification{}, fmt.Errorf("%s: %s: %w: %w", LogPrefixClassify, ErrMsgLLMCallFailed, ErrClassificationDegraded, err)
	}

	out, err := parseOutput(text)
	if err != nil {
		r.l.Warnf(ctx, "%s: %v", LogPrefixClassify, err)
		return Classification{}, err
	}

	r.l.Infof(ctx, "%s: Classified as %s (confidence: %d%%)", LogPrefixClassify, out.Intent, out.Confidence)
	return out, nil
}

func buildUserPrompt(in Input) string {
	var b strings.Builder

	if in.HasContext() {
		known, err := json.Marshal(in.Context)
		if err == nil {
			fmt.Fprintf(&b, PromptKnownRequirements, known)
		}
		if in.BoundAgentID != "" {
			fmt.Fprintf(&b, PromptBoundAgent, in.BoundAgentID)
		}
	}
	if in.PendingStep != "" {
		fmt.Fprintf(&b, PromptPendingStep, in.PendingStep)
	}

	history := in.History
	if len(history) > RouterHistoryLimit {
		history = history[len(history)-RouterHistoryLimit:]
	}
	if len(history) > 0 {
		b.WriteString(PromptHistoryPrefix)
		for i, msg := range history {
			fmt.Fprintf(&b, "%d. %s\n", i+1, msg)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, PromptMessage, in.Utterance)
	return b.String()
}

// parseOutput validates completion text against the JSON contract.
func parseOutput(text string) (Classification, error) {
	raw := stripFences(text)
	if i, j := strings.IndexByte(raw, '{'), strings.LastIndexByte(raw, '}'); i >= 0 && j > i {
		raw = raw[i : j+1]
	}

	var o llmOutput
	if err := json.Unmarshal([]byte(raw), &o); err != nil {
		return Classification{}, fmt.Errorf("%s: %w: %v", ErrMsgJSONParseFailed, ErrMalformedExtraction, err)
	}

	intent := Intent(strings.ToLower(strings.TrimSpace(o.Intent)))
	if !intent.Valid() {
		return Classification{}, fmt.Errorf("%s %q: %w", ErrMsgUnknownIntent, o.Intent, ErrMalformedExtraction)
	}

	ex := model.Requirements{
		BusinessType:       strings.ToLower(strings.TrimSpace(o.Extracted.BusinessType)),
		Objectives:         strings.TrimSpace(o.Extracted.Objectives),
		TargetAudience:     strings.TrimSpace(o.Extracted.TargetAudience),
		KeyFeatures:        cleanList(o.Extracted.KeyFeatures),
		TechnicalFeatures:  cleanList(o.Extracted.TechnicalFeatures),
		IntegrationsNeeded: cleanList(o.Extracted.IntegrationsNeeded),
	}
	if c := model.Complexity(strings.ToLower(strings.TrimSpace(o.Extracted.Complexity))); c.Valid() {
		ex.Complexity = c
	}

	return Classification{
		Intent:     intent,
		Extracted:  ex,
		Correction: o.IsCorrection,
		Confidence: clamp(o.Confidence, 0, 100),
		Reasoning:  o.Reasoning,
	}, nil
}

// stripFences removes markdown code blocks if present (```json ... ```)
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	} else {
		return s
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func cleanList(in []string) []string {
	var out []string
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
