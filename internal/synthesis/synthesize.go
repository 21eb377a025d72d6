package synthesis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"agent-discovery/internal/model"
	"agent-discovery/internal/template"
	"agent-discovery/pkg/llmprovider"
	"agent-discovery/pkg/metrics"
)

// Synthesize produces the configuration for req using tmpl. The skeleton is
// always produced first; elaboration through the completion service only
// replaces its instructions when it succeeds. The only error is
// *SynthesisError for a structurally invalid template.
func (s *Synthesizer) Synthesize(ctx context.Context, tmpl model.ConfigurationTemplate, req model.Requirements) (model.GeneratedConfiguration, error) {
	if err := template.Validate(tmpl); err != nil {
		return model.GeneratedConfiguration{}, &SynthesisError{TemplateID: tmpl.ID, Err: err}
	}

	instructions, err := template.Render(tmpl, variables(tmpl, req))
	if err != nil {
		return model.GeneratedConfiguration{}, &SynthesisError{TemplateID: tmpl.ID, Err: err}
	}

	cfg := model.GeneratedConfiguration{
		Name:            name(req.BusinessType),
		Description:     description(req),
		Instructions:    instructions,
		Capabilities:    capabilities(tmpl, req),
		Personality:     tmpl.Personality,
		TemplateID:      tmpl.ID,
		TemplateVersion: tmpl.Version,
	}

	if !s.cfg.Elaborate || s.llm == nil {
		return cfg, nil
	}

	elaborated, err := s.elaborate(ctx, req, instructions)
	if err != nil {
		s.m.DegradedStage(metrics.StageSynthesis)
		s.l.Warnf(ctx, "%s: %v: %v", LogPrefixSynthesize, ErrSynthesisDegraded, err)
		return cfg, nil
	}

	cfg.Instructions = elaborated
	cfg.Personalized = true
	s.l.Info(ctx, LogMsgElaborated, "template_id", tmpl.ID, "chars", utf8.RuneCountInString(elaborated))
	return cfg, nil
}

func (s *Synthesizer) elaborate(ctx context.Context, req model.Requirements, instructions string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	known, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("%s: marshal requirements: %w", LogPrefixElaborate, err)
	}

	text, err := s.llm.Complete(ctx, []llmprovider.Turn{
		{Role: llmprovider.RoleUser, Content: fmt.Sprintf(PromptElaborateUser, known, instructions)},
	}, llmprovider.Options{
		SystemInstruction: PromptElaborateSystem,
		Temperature:       ElaborateTemperature,
		MaxOutputTokens:   s.cfg.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", LogPrefixElaborate, err)
	}

	text = truncate(stripFences(text), s.cfg.MaxChars)
	if text == "" {
		return "", fmt.Errorf("%s: %w", LogPrefixElaborate, llmprovider.ErrEmptyResponse)
	}
	return text, nil
}

func variables(tmpl model.ConfigurationTemplate, req model.Requirements) map[string]any {
	audience := req.TargetAudience
	if audience == "" {
		audience = "tous les clients"
	}
	return map[string]any{
		template.VarBusinessType:      req.BusinessType,
		template.VarObjectives:        req.Objectives,
		template.VarTargetAudience:    audience,
		template.VarKeyFeatures:       req.KeyFeatures,
		template.VarTechnicalFeatures: req.TechnicalFeatures,
		template.VarIntegrations:      req.IntegrationsNeeded,
		template.VarTone:              tmpl.Personality.Tone,
		template.VarComplexity:        string(req.Complexity),
	}
}

func name(businessType string) string {
	bt := strings.TrimSpace(businessType)
	if bt == "" {
		return NameDefault
	}
	r, size := utf8.DecodeRuneInString(bt)
	return fmt.Sprintf(NameFormat, string(unicode.ToUpper(r))+bt[size:])
}

func description(req model.Requirements) string {
	bt := req.BusinessType
	if bt == "" {
		bt = descriptionUnknownBiz
	}
	var b strings.Builder
	fmt.Fprintf(&b, DescriptionFormat, bt)
	if len(req.KeyFeatures) > 0 {
		fmt.Fprintf(&b, DescriptionFeatures, strings.Join(req.KeyFeatures, descriptionListSep))
	}
	if req.TargetAudience != "" {
		fmt.Fprintf(&b, DescriptionAudience, req.TargetAudience)
	}
	b.WriteString(".")
	return b.String()
}

// capabilities unions template, feature and integration capabilities,
// case-insensitively, in first-seen order.
func capabilities(tmpl model.ConfigurationTemplate, req model.Requirements) []string {
	integrations := make([]string, 0, len(req.IntegrationsNeeded))
	for _, in := range req.IntegrationsNeeded {
		integrations = append(integrations, fmt.Sprintf(IntegrationCapability, in))
	}

	var out []string
	seen := map[string]struct{}{}
	for _, group := range [][]string{tmpl.Capabilities, req.KeyFeatures, req.TechnicalFeatures, integrations} {
		for _, c := range group {
			c = strings.TrimSpace(c)
			key := strings.ToLower(c)
			if c == "" {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, c)
		}
	}
	return out
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "```"))
}

func truncate(s string, maxChars int) string {
	if utf8.RuneCountInString(s) <= maxChars {
		return s
	}
	return strings.TrimSpace(string([]rune(s)[:maxChars]))
}
