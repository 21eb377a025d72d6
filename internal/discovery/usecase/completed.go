package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"agent-discovery/internal/discovery/repository"
	"agent-discovery/internal/model"
	"agent-discovery/internal/router"
	"agent-discovery/internal/synthesis"
	"agent-discovery/internal/template"
)

// completion is a synthesized configuration ready to be committed.
type completion struct {
	cfg     model.GeneratedConfiguration
	agentID string
	warning string
}

// complete selects the template, synthesizes the configuration and persists
// the agent. Persistence failures are recoverable and leave agentID empty.
func (uc *implUseCase) complete(ctx context.Context, snap model.Session, req model.Requirements) (*completion, error) {
	tmpl := template.Select(req.BusinessType)
	cfg, err := uc.synth.Synthesize(ctx, tmpl, req)
	if err != nil {
		uc.l.Errorf(ctx, "%s: "+LogMsgSynthesisFailed, LogPrefixComplete, err)
		return nil, err
	}

	c := &completion{cfg: cfg}
	c.agentID, err = uc.persist(ctx, snap, cfg)
	if err != nil {
		c.warning = WarnAgentNotSaved
	}
	return c, nil
}

// apply moves s to the complete phase. It runs inside a store commit.
func (c *completion) apply(s *model.Session) turnResult {
	cfg := c.cfg.Clone()
	s.Phase = model.PhaseComplete
	s.PendingStep = model.StepComplete
	s.Configuration = &cfg
	if s.AgentID == "" {
		s.AgentID = c.agentID
	}

	msg := formatCompleted(cfg, s.Requirements.SandboxRequested)
	s.AppendTurn(model.RoleAssistant, msg, time.Now())

	out := cfg.Clone()
	return turnResult{
		message: msg,
		replies: append([]string(nil), RepliesCompleted...),
		config:  &out,
		warning: c.warning,
	}
}

func (uc *implUseCase) persist(ctx context.Context, snap model.Session, cfg model.GeneratedConfiguration) (string, error) {
	agent, err := uc.repo.CreateAgent(ctx, repository.CreateAgentOptions{
		OwnerID:       snap.OwnerID,
		SessionID:     snap.ID,
		Configuration: cfg,
	})
	if err != nil {
		uc.l.Warnf(ctx, "%s: "+LogMsgAgentPersistFailed, LogPrefixComplete, err)
		return "", err
	}
	return agent.ID, nil
}

// discardAgent deletes an agent created by a turn that did not commit it.
func (uc *implUseCase) discardAgent(ctx context.Context, agentID string) {
	if agentID == "" {
		return
	}
	if err := uc.repo.DeleteAgent(context.WithoutCancel(ctx), agentID); err != nil {
		uc.l.Warnf(ctx, "%s: discard agent %s: %v", LogPrefixComplete, agentID, err)
	}
}

// handleCompleted answers a turn on a completed session. It never returns
// the session to discovery.
func (uc *implUseCase) handleCompleted(ctx context.Context, snap model.Session, msg string) (turnResult, error) {
	cls, err := uc.classify(ctx, snap, msg)
	if err != nil {
		return turnResult{}, err
	}

	// A configuration that could not be saved earlier is saved now.
	var saved, warning string
	if snap.AgentID == "" && snap.Configuration != nil {
		saved, err = uc.persist(ctx, snap, *snap.Configuration)
		if err != nil {
			warning = WarnAgentNotSaved
		}
	}

	var reply turnResult
	s, err := uc.store.Update(ctx, snap.ID, func(s *model.Session) error {
		reply = turnResult{}
		if saved != "" && s.AgentID == "" {
			s.AgentID = saved
		}
		s.AppendTurn(model.RoleUser, msg, time.Now())
		reply.message, reply.replies, reply.config = respondCompleted(s, cls)
		s.AppendTurn(model.RoleAssistant, reply.message, time.Now())
		return nil
	})
	if err != nil {
		uc.discardAgent(ctx, saved)
		return turnResult{}, err
	}
	if saved != "" && s.AgentID != saved {
		uc.l.Infof(ctx, "%s: "+LogMsgAgentAlreadyBound, LogPrefixPostComplete, s.ID, s.AgentID, saved)
		uc.discardAgent(ctx, saved)
	}

	reply.session = s
	reply.intent = cls.Intent
	reply.warning = warning
	reply.outcome = outcomeOK
	if cls.Degraded {
		reply.outcome = outcomeDegraded
	}
	return reply, nil
}

// respondCompleted is the response generator of the complete phase. It runs
// inside a store commit and may personalize the stored configuration.
func respondCompleted(s *model.Session, cls router.Classification) (string, []string, *model.GeneratedConfiguration) {
	name := s.Requirements.BusinessType
	if s.Configuration != nil {
		name = s.Configuration.Name
	}

	switch cls.Intent {
	case router.IntentDeploy:
		if s.AgentID == "" {
			return MsgDeployUnsaved, []string{RepliesCompleted[0]}, nil
		}
		text := fmt.Sprintf(MsgDeployFormat, name, joinList(DeployChannels)) + "\n" +
			fmt.Sprintf(MsgDeployChannelsFormat, DeployChannels[0])
		return text, append([]string(nil), DeployChannels...), nil

	case router.IntentIntegrate:
		added := cls.Extracted.IntegrationsNeeded
		if len(added) == 0 {
			return fmt.Sprintf(MsgIntegrateCatalog, joinList(IntegrationCatalog)), append([]string(nil), IntegrationCatalog[:4]...), nil
		}
		cfg := personalize(s, model.Requirements{IntegrationsNeeded: added})
		return fmt.Sprintf(MsgIntegrateAdded, joinList(added)), append([]string(nil), RepliesCompleted...), cfg

	case router.IntentCreateAgent, router.IntentFillSlot:
		if cls.Extracted.IsEmpty() {
			break
		}
		x := cls.Extracted
		if len(x.KeyFeatures)+len(x.TechnicalFeatures)+len(x.IntegrationsNeeded) == 0 {
			return fmt.Sprintf(MsgResetToChange, name), append([]string(nil), RepliesCompleted...), nil
		}
		before := s.Requirements
		cfg := personalize(s, x)
		if s.Requirements.Equal(before) {
			break
		}
		return MsgPersonalized, append([]string(nil), RepliesCompleted...), cfg
	}

	return fmt.Sprintf(MsgCompletedInfo, name), append([]string(nil), RepliesCompleted...), nil
}

// personalize folds extra requirements into a completed session. List
// fields grow the configuration capabilities; scalars are left to a reset.
func personalize(s *model.Session, extra model.Requirements) *model.GeneratedConfiguration {
	lists := model.Requirements{
		KeyFeatures:        extra.KeyFeatures,
		TechnicalFeatures:  extra.TechnicalFeatures,
		IntegrationsNeeded: extra.IntegrationsNeeded,
	}
	s.Requirements = model.Merge(s.Requirements, lists, false)
	if s.Configuration == nil {
		return nil
	}

	caps := append([]string(nil), lists.KeyFeatures...)
	caps = append(caps, lists.TechnicalFeatures...)
	for _, it := range lists.IntegrationsNeeded {
		caps = append(caps, fmt.Sprintf(synthesis.IntegrationCapability, it))
	}
	s.Configuration.Capabilities = appendUnique(s.Configuration.Capabilities, caps...)

	out := s.Configuration.Clone()
	return &out
}

func appendUnique(base []string, items ...string) []string {
	seen := make(map[string]struct{}, len(base))
	for _, b := range base {
		seen[strings.ToLower(b)] = struct{}{}
	}
	for _, it := range items {
		it = strings.TrimSpace(it)
		key := strings.ToLower(it)
		if _, ok := seen[key]; ok || it == "" {
			continue
		}
		seen[key] = struct{}{}
		base = append(base, it)
	}
	return base
}
