package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"agent-discovery/internal/discovery"
	"agent-discovery/internal/flow"
	"agent-discovery/internal/model"
	"agent-discovery/internal/router"
	"agent-discovery/pkg/metrics"
)

var (
	errVersionConflict = errors.New("session changed during turn")
	errAlreadyComplete = errors.New("session completed during turn")
)

// HandleTurn processes one user message.
func (uc *implUseCase) HandleTurn(ctx context.Context, sc model.Scope, input discovery.TurnInput) (out discovery.TurnOutput, err error) {
	start := time.Now()
	intent, outcome := "", outcomeFailed
	defer func() {
		uc.m.TurnHandled(intent, outcome, time.Since(start))
	}()
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "%s: "+LogMsgTurnPanic, LogPrefixHandleTurn, r)
			outcome = outcomeFailed
			out = discovery.TurnOutput{
				SessionID: input.SessionID,
				Message:   MsgApology,
				Error:     ErrTurnFailed,
			}
			err = nil
		}
	}()

	msg := strings.TrimSpace(input.Message)
	if msg == "" {
		return discovery.TurnOutput{}, discovery.ErrEmptyMessage
	}
	if utf8.RuneCountInString(msg) > MaxMessageRunes {
		return discovery.TurnOutput{}, discovery.ErrMessageTooLong
	}

	owner := input.OwnerID
	if owner == "" {
		owner = sc.OwnerID
	}

	snap, created, err := uc.store.GetOrCreate(ctx, input.SessionID, owner)
	if err != nil {
		return discovery.TurnOutput{}, err
	}

	var res turnResult
	if snap.IsComplete() {
		res, err = uc.handleCompleted(ctx, snap, msg)
	} else {
		res, err = uc.handleDiscovery(ctx, snap, created, msg)
	}
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return discovery.TurnOutput{}, ctxErr
		}
		uc.l.Errorf(ctx, "%s: %v", LogPrefixHandleTurn, err)
		return discovery.TurnOutput{
			SessionID: snap.ID,
			Message:   res.failMessage(),
			Error:     ErrTurnFailed,
		}, nil
	}

	intent = string(res.intent)
	outcome = res.outcome
	uc.l.Info(ctx, LogMsgTurnHandled,
		"session_id", res.session.ID,
		"intent", intent,
		"outcome", outcome,
		"step", res.step(),
	)
	return res.output(), nil
}

// turnResult is the committed outcome of one turn.
type turnResult struct {
	session   model.Session
	intent    router.Intent
	outcome   string
	message   string
	replies   []string
	config    *model.GeneratedConfiguration
	warning   string
	synthFail bool
}

func (r turnResult) step() model.StepID {
	if r.session.IsComplete() {
		return model.StepComplete
	}
	return flow.NextStep(r.session.Requirements).ID
}

func (r turnResult) failMessage() string {
	if r.synthFail {
		return MsgSynthesisFailed
	}
	return MsgApology
}

func (r turnResult) output() discovery.TurnOutput {
	done, total := flow.Progress(r.session.Requirements)
	return discovery.TurnOutput{
		Success:                true,
		SessionID:              r.session.ID,
		Message:                r.message,
		SuggestedReplies:       r.replies,
		BoundAgentID:           r.session.AgentID,
		GeneratedConfiguration: r.config,
		Step:                   r.step(),
		Progress:               discovery.Progress{Done: done, Total: total},
		Warning:                r.warning,
	}
}

// handleDiscovery classifies msg against a snapshot, then commits the merge
// with a version check. On conflict it classifies once more against the
// fresh session and commits onto whatever state is current.
func (uc *implUseCase) handleDiscovery(ctx context.Context, snap model.Session, created bool, msg string) (turnResult, error) {
	for attempt := 0; attempt < 2; attempt++ {
		cls, err := uc.classify(ctx, snap, msg)
		if err != nil {
			return turnResult{}, err
		}

		partial, correction := turnPartial(snap, cls, msg)
		merged := model.Merge(snap.Requirements, partial, correction)

		var done *completion
		if flow.NextStep(merged).Complete {
			done, err = uc.complete(ctx, snap, merged)
			if err != nil {
				return turnResult{intent: cls.Intent, synthFail: true}, err
			}
		}

		expect := snap.Version
		checkVersion := attempt == 0
		var reply turnResult
		s, err := uc.store.Update(ctx, snap.ID, func(s *model.Session) error {
			if checkVersion && s.Version != expect {
				return errVersionConflict
			}
			if s.IsComplete() {
				return errAlreadyComplete
			}

			pending := s.PendingStep
			before := s.Requirements
			s.AppendTurn(model.RoleUser, msg, time.Now())
			s.Requirements = model.Merge(s.Requirements, partial, correction)
			changed := !s.Requirements.Equal(before)

			next := flow.NextStep(s.Requirements)
			if next.Complete && done != nil {
				reply = done.apply(s)
				return nil
			}

			// Without a configuration the session stays in discovery with
			// every step satisfied; the next turn synthesizes.
			s.PendingStep = next.ID
			reply.message, reply.replies = discoveryReply(created, cls, changed, correction, pending, msg, next)
			s.AppendTurn(model.RoleAssistant, reply.message, time.Now())
			return nil
		})

		switch {
		case err == nil:
			if done != nil && !s.IsComplete() {
				uc.discardAgent(ctx, done.agentID)
			}
			reply.session = s
			reply.intent = cls.Intent
			reply.outcome = outcomeOK
			if cls.Degraded {
				reply.outcome = outcomeDegraded
			}
			if s.IsComplete() {
				reply.outcome = outcomeCompleted
				uc.m.SessionEvent(metrics.EventCompleted)
				uc.l.Info(ctx, LogMsgSessionCompleted, "session_id", s.ID, "agent_id", s.AgentID, "template_id", done.cfg.TemplateID)
			}
			return reply, nil

		case errors.Is(err, errVersionConflict):
			uc.discardAgent(ctx, agentIDOf(done))
			uc.l.Infof(ctx, "%s: "+LogMsgVersionConflict, LogPrefixHandleTurn, snap.ID)
			fresh, gerr := uc.store.Get(ctx, snap.ID)
			if gerr != nil {
				return turnResult{}, gerr
			}
			if fresh.IsComplete() {
				return uc.handleCompleted(ctx, fresh, msg)
			}
			snap = fresh
			created = false

		case errors.Is(err, errAlreadyComplete):
			uc.discardAgent(ctx, agentIDOf(done))
			fresh, gerr := uc.store.Get(ctx, snap.ID)
			if gerr != nil {
				return turnResult{}, gerr
			}
			return uc.handleCompleted(ctx, fresh, msg)

		default:
			uc.discardAgent(ctx, agentIDOf(done))
			return turnResult{}, err
		}
	}

	// Unreachable: the second attempt commits without a version check.
	return turnResult{}, errVersionConflict
}

// classify runs the classifier against a snapshot with a bounded timeout.
func (uc *implUseCase) classify(ctx context.Context, snap model.Session, msg string) (router.Classification, error) {
	cctx, cancel := context.WithTimeout(ctx, uc.cfg.CompletionTimeout)
	defer cancel()

	cls, err := uc.classifier.Classify(cctx, router.Input{
		Utterance:    msg,
		Context:      snap.Requirements,
		BoundAgentID: snap.AgentID,
		PendingStep:  snap.PendingStep,
		History:      snap.RecentUserTexts(HistoryTurns),
	})
	if err != nil {
		uc.l.Warnf(ctx, "%s: "+LogMsgClassifyFailed, LogPrefixHandleTurn, err)
		return router.Classification{}, err
	}
	return cls, nil
}

// turnPartial builds the requirements delta of one discovery turn. When the
// extraction leaves the pending question unanswered, the message is also read
// literally as the answer to it.
func turnPartial(snap model.Session, cls router.Classification, msg string) (model.Requirements, bool) {
	var partial model.Requirements
	switch cls.Intent {
	case router.IntentCreateAgent, router.IntentFillSlot, router.IntentIntegrate:
		partial = cls.Extracted.Clone()
	}

	pending := snap.PendingStep
	if pending == "" || pending == model.StepComplete {
		return partial, cls.Correction
	}
	if cls.Intent == router.IntentDeploy || cls.Intent == router.IntentIntegrate {
		return partial, cls.Correction
	}
	if pending == model.StepValidation || pending == model.StepSandboxTest {
		if flow.YesNo(msg) == flow.AnswerUnknown {
			return partial, cls.Correction
		}
	} else if flow.IsSmallTalk(msg) {
		return partial, cls.Correction
	}

	merged := model.Merge(snap.Requirements, partial, cls.Correction)
	if flow.Satisfied(pending, merged) || !merged.Equal(snap.Requirements) {
		return partial, cls.Correction
	}
	return withAnswer(partial, flow.Interpret(pending, msg)), cls.Correction
}

// withAnswer folds a literal answer into partial without overriding what the
// extraction found.
func withAnswer(partial, answer model.Requirements) model.Requirements {
	out := partial.Clone()
	if out.BusinessType == "" {
		out.BusinessType = answer.BusinessType
	}
	if out.TargetAudience == "" {
		out.TargetAudience = answer.TargetAudience
	}
	out.KeyFeatures = append(out.KeyFeatures, answer.KeyFeatures...)
	out.TechnicalFeatures = append(out.TechnicalFeatures, answer.TechnicalFeatures...)
	out.IntegrationsNeeded = append(out.IntegrationsNeeded, answer.IntegrationsNeeded...)
	out.Answered = append(out.Answered, answer.Answered...)
	out.Confirmed = out.Confirmed || answer.Confirmed
	out.SandboxRequested = out.SandboxRequested || answer.SandboxRequested
	return out
}

// discoveryReply composes the assistant message of a discovery turn: an
// acknowledgement when the turn changed the requirements, then the next
// question.
func discoveryReply(created bool, cls router.Classification, changed, correction bool, pending model.StepID, msg string, next flow.Step) (string, []string) {
	var lead string
	switch {
	case created && !changed:
		lead = MsgWelcome
	case correction && changed:
		lead = MsgCorrected
	case pending == model.StepValidation && !changed && flow.YesNo(msg) == flow.AnswerNo:
		return MsgValidationRefused, nil
	case changed:
		lead = MsgAcknowledged
	case cls.Intent == router.IntentGeneralInfo && (pending == "" || flow.YesNo(msg) == flow.AnswerUnknown):
		lead = MsgProductInfo
	case cls.Intent == router.IntentDeploy:
		lead = MsgDeployNotReady
	case cls.Intent == router.IntentIntegrate:
		lead = MsgIntegrateNotReady
	case pending != "":
		lead = MsgNotUnderstood
	}

	if next.Complete {
		if lead == "" {
			lead = MsgAcknowledged
		}
		return lead, nil
	}

	text := next.Question.Text
	if lead != "" {
		text = lead + "\n\n" + text
	}
	return text, next.Question.QuickReplies
}

func agentIDOf(c *completion) string {
	if c == nil {
		return ""
	}
	return c.agentID
}

func joinList(items []string) string {
	return strings.Join(items, listSeparator)
}

func formatCompleted(cfg model.GeneratedConfiguration, sandbox bool) string {
	lines := []string{fmt.Sprintf(MsgCompletedFormat, cfg.Name)}
	if len(cfg.Capabilities) > 0 {
		lines = append(lines, fmt.Sprintf(MsgCapabilitiesLine, joinList(cfg.Capabilities)))
	}
	if sandbox {
		lines = append(lines, MsgSandboxReady)
	}
	lines = append(lines, MsgNextActions)
	return strings.Join(lines, "\n")
}
