package router

import (
	"context"
	"strings"

	"agent-discovery/internal/model"
	"agent-discovery/pkg/log"
	"agent-discovery/pkg/textnorm"
)

// KeywordRouter is the deterministic rule-based classifier. It never fails
// and never calls out of process.
type KeywordRouter struct {
	l log.Logger
}

var _ Classifier = (*KeywordRouter)(nil)

// NewKeyword creates a new KeywordRouter
func NewKeyword(l log.Logger) *KeywordRouter {
	return &KeywordRouter{l: l}
}

// Classify determines intent and fields from keyword heuristics
func (r *KeywordRouter) Classify(ctx context.Context, in Input) (Classification, error) {
	out := classifyKeywords(in)
	r.l.Debugf(ctx, "%s: Classified as %s (confidence: %d%%, reason: %s)", LogPrefixKeywordClassify, out.Intent, out.Confidence, out.Reasoning)
	return out, nil
}

func classifyKeywords(in Input) Classification {
	text := textnorm.Words(in.Utterance)
	ex := Extract(in.Utterance)

	out := Classification{
		Extracted:  ex,
		Confidence: KeywordConfidence,
		Reasoning:  ReasonKeywordMatch,
	}

	switch {
	case textnorm.MatchAny(text, deployKeys):
		out.Intent = IntentDeploy
	case textnorm.MatchAny(text, integrateKeys):
		out.Intent = IntentIntegrate
	case !ex.IsEmpty():
		out.Intent = IntentFillSlot
		if !in.HasContext() && (ex.BusinessType != "" || textnorm.MatchAny(text, createKeys)) {
			out.Intent = IntentCreateAgent
		}
	case in.BoundAgentID == "" && textnorm.MatchAny(text, createKeys):
		out.Intent = IntentCreateAgent
	case textnorm.MatchAny(text, generalInfoKeys):
		out.Intent = IntentGeneralInfo
	case in.PendingStep != "":
		out.Intent = IntentFillSlot
		out.Confidence = KeywordPendingConfidence
		out.Reasoning = ReasonPendingAnswer
	default:
		out.Intent = IntentGeneralInfo
		out.Confidence = KeywordPendingConfidence
		out.Reasoning = ReasonNoSignal
	}

	hasScalar := ex.BusinessType != "" || ex.TargetAudience != "" || ex.Complexity != ""
	out.Correction = hasScalar && textnorm.MatchAny(text, correctionKeys)

	return out
}

// Extract returns the requirement fields recognized in utterance. Negated
// mentions ("pas de livraison", "sans WhatsApp") are ignored.
func Extract(utterance string) model.Requirements {
	text := textnorm.Words(utterance)

	var ex model.Requirements
	if v := firstMatch(text, businessRules); v != "" {
		ex.BusinessType = v
	}
	ex.KeyFeatures = allMatches(text, featureRules)
	ex.TechnicalFeatures = allMatches(text, technicalRules)
	ex.IntegrationsNeeded = allMatches(text, integrationRules)
	if aud := allMatches(text, audienceRules); len(aud) > 0 {
		ex.TargetAudience = strings.Join(aud, ", ")
	}

	switch {
	case textnorm.MatchAny(text, complexKeys):
		ex.Complexity = model.ComplexityComplex
	case textnorm.MatchAny(text, simpleKeys):
		ex.Complexity = model.ComplexitySimple
	}

	return ex
}

var negations = []string{"pas de ", "pas d ", "sans ", "no ", "without ", "aucun ", "aucune ", "not "}

func matches(text string, ru rule) bool {
	hit := false
	for _, k := range ru.keys {
		if !textnorm.Match(text, k) {
			continue
		}
		hit = true
		for _, n := range negations {
			if textnorm.Match(text, n+k) {
				return false
			}
		}
	}
	return hit
}

func firstMatch(text string, rules []rule) string {
	for _, ru := range rules {
		if matches(text, ru) {
			return ru.value
		}
	}
	return ""
}

func allMatches(text string, rules []rule) []string {
	var out []string
	for _, ru := range rules {
		if matches(text, ru) {
			out = append(out, ru.value)
		}
	}
	return out
}
