package flow

import (
	"fmt"
	"strings"

	"agent-discovery/internal/model"
)

// NextStep returns the first unsatisfied step of the discovery sequence, or
// a Complete step when every step is satisfied. It is pure: the same
// requirements always yield the same step.
func NextStep(req model.Requirements) Step {
	for _, id := range order {
		if satisfied(id, req) {
			continue
		}
		return Step{ID: id, Question: render(id, req)}
	}
	return Step{ID: model.StepComplete, Complete: true}
}

// Progress reports how many of the discovery steps are satisfied.
func Progress(req model.Requirements) (done, total int) {
	for _, id := range order {
		if satisfied(id, req) {
			done++
		}
	}
	return done, len(order)
}

// Steps returns the discovery sequence.
func Steps() []model.StepID {
	return append([]model.StepID(nil), order...)
}

// Satisfied reports whether req already answers step id.
func Satisfied(id model.StepID, req model.Requirements) bool {
	return satisfied(id, req)
}

func satisfied(id model.StepID, req model.Requirements) bool {
	switch id {
	case model.StepBusinessType:
		return strings.TrimSpace(req.BusinessType) != ""
	case model.StepKeyFeatures:
		return len(req.KeyFeatures) > 0
	case model.StepTargetAudience:
		return strings.TrimSpace(req.TargetAudience) != ""
	case model.StepTechnicalFeatures:
		return len(req.TechnicalFeatures) > 0 || req.HasAnswered(id)
	case model.StepIntegrations:
		return len(req.IntegrationsNeeded) > 0 || req.HasAnswered(id)
	case model.StepValidation:
		return req.Confirmed
	case model.StepSandboxTest:
		return req.SandboxRequested || req.HasAnswered(id)
	}
	return true
}

// render personalizes the catalog question for the current requirements.
func render(id model.StepID, req model.Requirements) model.DiscoveryQuestion {
	q, _ := Question(id)
	switch id {
	case model.StepKeyFeatures:
		if req.BusinessType != "" {
			q.Text = fmt.Sprintf(QuestionKeyFeaturesFor, req.BusinessType)
		}
		if s := suggestFeatures(req.BusinessType); len(s) > 0 {
			q.QuickReplies = s
		}
	case model.StepValidation:
		q.Text = fmt.Sprintf(QuestionValidation, Summary(req))
	}
	return q
}

// Summary renders the collected requirements as a bullet list.
func Summary(req model.Requirements) string {
	lines := []string{
		fmt.Sprintf(SummaryLineFormat, SummaryBusiness, orUnknown(req.BusinessType)),
	}
	if req.Objectives != "" {
		lines = append(lines, fmt.Sprintf(SummaryLineFormat, SummaryObjectives, req.Objectives))
	}
	lines = append(lines,
		fmt.Sprintf(SummaryLineFormat, SummaryFeatures, orUnknown(strings.Join(req.KeyFeatures, summaryListSeparator))),
		fmt.Sprintf(SummaryLineFormat, SummaryAudience, orUnknown(req.TargetAudience)),
		fmt.Sprintf(SummaryLineFormat, SummaryTechnical, orNone(req.TechnicalFeatures)),
		fmt.Sprintf(SummaryLineFormat, SummaryIntegrations, orNone(req.IntegrationsNeeded)),
	)
	if req.Complexity != "" && req.Complexity != model.ComplexityModerate {
		lines = append(lines, fmt.Sprintf(SummaryLineFormat, SummaryComplexity, req.Complexity))
	}
	return strings.Join(lines, "\n")
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return SummaryUnknown
	}
	return s
}

func orNone(items []string) string {
	if len(items) == 0 {
		return SummaryNone
	}
	return strings.Join(items, summaryListSeparator)
}
