package usecase

import (
	"context"
	"time"

	"agent-discovery/internal/discovery"
	"agent-discovery/internal/flow"
	"agent-discovery/internal/model"
)

// GetSession returns a snapshot of a session owned by the caller.
func (uc *implUseCase) GetSession(ctx context.Context, sc model.Scope, sessionID string) (discovery.SessionOutput, error) {
	s, err := uc.owned(ctx, sc, sessionID)
	if err != nil {
		return discovery.SessionOutput{}, err
	}

	step := model.StepComplete
	if !s.IsComplete() {
		step = flow.NextStep(s.Requirements).ID
	}
	done, total := flow.Progress(s.Requirements)
	return discovery.SessionOutput{
		Session:  s,
		Step:     step,
		Progress: discovery.Progress{Done: done, Total: total},
	}, nil
}

// ResetSession clears a session and asks the first question again. A bound
// agent stays persisted; the session simply stops referencing it.
func (uc *implUseCase) ResetSession(ctx context.Context, sc model.Scope, sessionID string) (discovery.TurnOutput, error) {
	if _, err := uc.owned(ctx, sc, sessionID); err != nil {
		return discovery.TurnOutput{}, err
	}

	var res turnResult
	s, err := uc.store.Reset(ctx, sessionID, func(s *model.Session) {
		next := flow.NextStep(s.Requirements)
		s.PendingStep = next.ID
		res.message = MsgWelcome + "\n\n" + next.Question.Text
		res.replies = next.Question.QuickReplies
		s.AppendTurn(model.RoleAssistant, res.message, time.Now())
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: %v", LogPrefixResetSession, err)
		return discovery.TurnOutput{}, err
	}

	res.session = s
	return res.output(), nil
}

// owned loads a session and checks it belongs to the caller when the scope
// names one.
func (uc *implUseCase) owned(ctx context.Context, sc model.Scope, sessionID string) (model.Session, error) {
	if sessionID == "" {
		return model.Session{}, discovery.ErrSessionNotFound
	}
	s, err := uc.store.Get(ctx, sessionID)
	if err != nil {
		return model.Session{}, err
	}
	if sc.OwnerID != "" && s.OwnerID != sc.OwnerID {
		return model.Session{}, discovery.ErrOwnerMismatch
	}
	return s, nil
}
