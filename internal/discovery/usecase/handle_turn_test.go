package usecase

import (
	"context"
	"fmt"
	"testing"

	"golang.org/x/sync/errgroup"

	"agent-discovery/internal/discovery"
	"agent-discovery/internal/model"
	"agent-discovery/internal/router"
	"agent-discovery/internal/synthesis"
	"agent-discovery/internal/template"
	"agent-discovery/pkg/log"
	"agent-discovery/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOwner = "owner-1"

func turn(t *testing.T, env *testEnv, sessionID, msg string) discovery.TurnOutput {
	t.Helper()
	out, err := env.uc.HandleTurn(context.Background(), model.Scope{}, discovery.TurnInput{
		SessionID: sessionID,
		OwnerID:   testOwner,
		Message:   msg,
	})
	require.NoError(t, err)
	require.True(t, out.Success, "turn %q failed: %s", msg, out.Error)
	return out
}

// completeRestaurant drives a keyword-classified conversation to completion.
func completeRestaurant(t *testing.T, env *testEnv) discovery.TurnOutput {
	t.Helper()
	out := turn(t, env, "", "I run a Korean restaurant and want help with reservations")
	id := out.SessionID
	for _, msg := range []string{
		"les habitués du midi",
		"Aucune",
		"WhatsApp",
		"Oui, c'est correct",
		"Oui, tester d'abord",
	} {
		out = turn(t, env, id, msg)
	}
	return out
}

func TestHandleTurn_KoreanRestaurant(t *testing.T) {
	env := newTestEnv(testDeps{})

	out := turn(t, env, "", "I run a Korean restaurant and want help with reservations")

	assert.NotEmpty(t, out.SessionID)
	assert.Equal(t, model.StepTargetAudience, out.Step)
	assert.Equal(t, discovery.Progress{Done: 2, Total: 7}, out.Progress)
	assert.Contains(t, out.Message, MsgAcknowledged)
	assert.Nil(t, out.GeneratedConfiguration)

	s, err := env.store.Get(context.Background(), out.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "restaurant", s.Requirements.BusinessType)
	assert.Equal(t, []string{"réservations"}, s.Requirements.KeyFeatures)
	assert.Equal(t, model.StepTargetAudience, s.PendingStep)
	require.Len(t, s.Turns, 2)
	assert.Equal(t, model.RoleUser, s.Turns[0].Role)
	assert.Equal(t, model.RoleAssistant, s.Turns[1].Role)
}

func TestHandleTurn_FullConversation(t *testing.T) {
	env := newTestEnv(testDeps{})

	out := completeRestaurant(t, env)

	assert.Equal(t, model.StepComplete, out.Step)
	assert.NotEmpty(t, out.BoundAgentID)
	assert.Empty(t, out.Warning)
	require.NotNil(t, out.GeneratedConfiguration)
	cfg := out.GeneratedConfiguration
	assert.Equal(t, template.IDHospitality, cfg.TemplateID)
	assert.Contains(t, cfg.Capabilities, "réservations")
	assert.Contains(t, cfg.Capabilities, "intégration WhatsApp")
	assert.Contains(t, out.Message, MsgSandboxReady)
	assert.Equal(t, RepliesCompleted, out.SuggestedReplies)

	s, err := env.store.Get(context.Background(), out.SessionID)
	require.NoError(t, err)
	assert.True(t, s.IsComplete())
	assert.Equal(t, "habitués du midi", s.Requirements.TargetAudience)
	assert.True(t, s.Requirements.SandboxRequested)

	agent, err := env.repo.GetAgent(context.Background(), out.BoundAgentID)
	require.NoError(t, err)
	assert.Equal(t, testOwner, agent.OwnerID)
	assert.Equal(t, out.SessionID, agent.SessionID)

	assert.Equal(t, 1.0, testutil.ToFloat64(env.m.SessionEvents.WithLabelValues(metrics.EventCompleted)))
}

func TestHandleTurn_LiteralBusinessAnswer(t *testing.T) {
	tests := []struct {
		answer string
		want   string
	}{
		{"Je gère une agence de voyage", "agence de voyage"},
		{"j'ai un cabinet d'architecte", "cabinet d'architecte"},
	}
	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			env := newTestEnv(testDeps{})
			out := turn(t, env, "", "bonjour")
			require.Equal(t, model.StepBusinessType, out.Step)

			out = turn(t, env, out.SessionID, tt.answer)
			assert.Equal(t, model.StepKeyFeatures, out.Step)
			assert.Contains(t, out.Message, MsgAcknowledged)

			s, err := env.store.Get(context.Background(), out.SessionID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Requirements.BusinessType)
		})
	}
}

func TestHandleTurn_SmallTalkIsNotAnAnswer(t *testing.T) {
	env := newTestEnv(testDeps{})
	id := turn(t, env, "", "bonjour").SessionID

	for _, msg := range []string{"Bonjour", "merci", "Combien ça coûte ?"} {
		out := turn(t, env, id, msg)
		assert.Equal(t, model.StepBusinessType, out.Step, msg)
		assert.NotContains(t, out.Message, MsgAcknowledged, msg)
	}

	s, err := env.store.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Empty(t, s.Requirements.BusinessType)
}

func TestHandleTurn_RepeatedValuesStillAnswerPendingStep(t *testing.T) {
	env := newTestEnv(testDeps{})
	id := turn(t, env, "", "I run a Korean restaurant and want help with reservations").SessionID

	out := turn(t, env, id, "les clients du restaurant")
	assert.Equal(t, model.StepTechnicalFeatures, out.Step)
	assert.Contains(t, out.Message, MsgAcknowledged)

	s, err := env.store.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "clients du restaurant", s.Requirements.TargetAudience)
	assert.Equal(t, "restaurant", s.Requirements.BusinessType)
}

func TestHandleTurn_UnchangedTurnIsNotAcknowledged(t *testing.T) {
	cls := &funcClassifier{fn: func(ctx context.Context, in router.Input) (router.Classification, error) {
		return fillSlot(model.Requirements{BusinessType: "restaurant"}), nil
	}}
	env := newTestEnv(testDeps{classifier: cls})
	id := turn(t, env, "", "un restaurant").SessionID

	out := turn(t, env, id, "Bonjour")
	assert.Equal(t, model.StepKeyFeatures, out.Step)
	assert.NotContains(t, out.Message, MsgAcknowledged)
	assert.Contains(t, out.Message, MsgNotUnderstood)
}

func TestHandleTurn_ValidationRefused(t *testing.T) {
	env := newTestEnv(testDeps{})
	out := turn(t, env, "", "I run a Korean restaurant and want help with reservations")
	id := out.SessionID
	turn(t, env, id, "des touristes")
	turn(t, env, id, "Aucune")
	out = turn(t, env, id, "Aucune")
	require.Equal(t, model.StepValidation, out.Step)
	assert.Contains(t, out.Message, "Activité : restaurant")

	out = turn(t, env, id, "Non, je veux modifier")
	assert.Equal(t, MsgValidationRefused, out.Message)
	assert.Equal(t, model.StepValidation, out.Step)
}

func TestHandleTurn_CompleteNeverReturnsToDiscovery(t *testing.T) {
	env := newTestEnv(testDeps{})
	done := completeRestaurant(t, env)
	id := done.SessionID

	for _, msg := range []string{
		"En fait c'est une clinique",
		"Il faut aussi la livraison",
		"Bonjour",
		"hmm",
	} {
		out := turn(t, env, id, msg)
		assert.Equal(t, model.StepComplete, out.Step, msg)
		assert.Equal(t, done.BoundAgentID, out.BoundAgentID, msg)
	}

	s, err := env.store.Get(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, s.IsComplete())
	assert.Equal(t, "restaurant", s.Requirements.BusinessType, "scalars change only after a reset")
	assert.Contains(t, s.Requirements.KeyFeatures, "livraison")
	assert.Contains(t, s.Configuration.Capabilities, "livraison")
}

func TestHandleTurn_CompletedScalarChangePointsToReset(t *testing.T) {
	env := newTestEnv(testDeps{})
	done := completeRestaurant(t, env)

	out := turn(t, env, done.SessionID, "En fait c'est une clinique")
	assert.Equal(t, fmt.Sprintf(MsgResetToChange, done.GeneratedConfiguration.Name), out.Message)
	assert.NotContains(t, out.Message, MsgPersonalized)
	assert.Nil(t, out.GeneratedConfiguration)

	out = turn(t, env, done.SessionID, "Il faut aussi la livraison")
	assert.Equal(t, MsgPersonalized, out.Message)

	out = turn(t, env, done.SessionID, "Il faut aussi la livraison")
	assert.NotEqual(t, MsgPersonalized, out.Message, "nothing new to add")
}

func TestHandleTurn_PostCompletionGenerators(t *testing.T) {
	env := newTestEnv(testDeps{})
	id := completeRestaurant(t, env).SessionID

	out := turn(t, env, id, "Je veux mettre en ligne mon assistant")
	assert.Contains(t, out.Message, DeployChannels[0])
	assert.Equal(t, DeployChannels, out.SuggestedReplies)

	out = turn(t, env, id, "Peux-tu le connecter ?")
	assert.Contains(t, out.Message, "Shopify")

	out = turn(t, env, id, "Peux-tu le connecter à Stripe ?")
	assert.Contains(t, out.Message, "Stripe")
	require.NotNil(t, out.GeneratedConfiguration)
	assert.Contains(t, out.GeneratedConfiguration.Capabilities, "intégration Stripe")
}

func TestHandleTurn_InputErrors(t *testing.T) {
	env := newTestEnv(testDeps{})
	ctx := context.Background()

	_, err := env.uc.HandleTurn(ctx, model.Scope{}, discovery.TurnInput{OwnerID: testOwner, Message: "   "})
	assert.ErrorIs(t, err, discovery.ErrEmptyMessage)

	long := make([]rune, MaxMessageRunes+1)
	for i := range long {
		long[i] = 'a'
	}
	_, err = env.uc.HandleTurn(ctx, model.Scope{}, discovery.TurnInput{OwnerID: testOwner, Message: string(long)})
	assert.ErrorIs(t, err, discovery.ErrMessageTooLong)

	_, err = env.uc.HandleTurn(ctx, model.Scope{}, discovery.TurnInput{SessionID: "unknown", Message: "bonjour"})
	assert.ErrorIs(t, err, discovery.ErrSessionNotFound)

	_, err = env.uc.HandleTurn(ctx, model.Scope{}, discovery.TurnInput{Message: "bonjour"})
	assert.ErrorIs(t, err, discovery.ErrOwnerRequired)

	out := turn(t, env, "", "Bonjour")
	_, err = env.uc.HandleTurn(ctx, model.Scope{}, discovery.TurnInput{SessionID: out.SessionID, OwnerID: "intruder", Message: "hello"})
	assert.ErrorIs(t, err, discovery.ErrOwnerMismatch)
}

func TestHandleTurn_OwnerFromScope(t *testing.T) {
	env := newTestEnv(testDeps{})

	out, err := env.uc.HandleTurn(context.Background(), model.Scope{OwnerID: "scoped"}, discovery.TurnInput{Message: "Bonjour"})
	require.NoError(t, err)

	s, err := env.store.Get(context.Background(), out.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "scoped", s.OwnerID)
	assert.Contains(t, out.Message, MsgWelcome)
	assert.Equal(t, model.StepBusinessType, out.Step)
}

func TestHandleTurn_ConcurrentTurnsUnion(t *testing.T) {
	cls := &funcClassifier{fn: func(ctx context.Context, in router.Input) (router.Classification, error) {
		return fillSlot(model.Requirements{KeyFeatures: []string{in.Utterance}}), nil
	}}
	env := newTestEnv(testDeps{classifier: cls})
	id := turn(t, env, "", "start").SessionID

	const n = 16
	var g errgroup.Group
	for i := 0; i < n; i++ {
		msg := fmt.Sprintf("feature-%02d", i)
		g.Go(func() error {
			out, err := env.uc.HandleTurn(context.Background(), model.Scope{}, discovery.TurnInput{
				SessionID: id, OwnerID: testOwner, Message: msg,
			})
			if err != nil {
				return err
			}
			if !out.Success {
				return fmt.Errorf("turn %s failed: %s", msg, out.Error)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	s, err := env.store.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Len(t, s.Requirements.KeyFeatures, n+1)
	for i := 0; i < n; i++ {
		assert.Contains(t, s.Requirements.KeyFeatures, fmt.Sprintf("feature-%02d", i))
	}
	assert.Len(t, s.Turns, 2*(n+1))
}

func TestHandleTurn_VersionConflictReclassifies(t *testing.T) {
	var env *testEnv
	var sessionID string
	cls := &funcClassifier{}
	cls.fn = func(ctx context.Context, in router.Input) (router.Classification, error) {
		if in.Utterance == "des familles" && cls.calls.Load() == 2 {
			// Another turn lands while this one is being classified.
			_, err := env.store.MergeRequirements(ctx, sessionID, model.Requirements{KeyFeatures: []string{"menu"}}, false)
			if err != nil {
				return router.Classification{}, err
			}
		}
		if in.Utterance == "des familles" {
			return fillSlot(model.Requirements{TargetAudience: "familles"}), nil
		}
		return router.Classification{Intent: router.IntentCreateAgent, Extracted: model.Requirements{BusinessType: "restaurant"}}, nil
	}
	env = newTestEnv(testDeps{classifier: cls})
	sessionID = turn(t, env, "", "un restaurant").SessionID

	out := turn(t, env, sessionID, "des familles")

	assert.EqualValues(t, 3, cls.calls.Load(), "conflict triggers one re-classification")
	s, err := env.store.Get(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, "familles", s.Requirements.TargetAudience)
	assert.Equal(t, []string{"menu"}, s.Requirements.KeyFeatures)
	assert.Equal(t, model.StepTechnicalFeatures, out.Step)
}

func TestHandleTurn_CancellationCommitsNothing(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cls := &funcClassifier{fn: func(_ context.Context, in router.Input) (router.Classification, error) {
		if in.Utterance == "cancel me" {
			cancel()
			return fillSlot(model.Requirements{BusinessType: "restaurant"}), nil
		}
		return router.Classification{Intent: router.IntentGeneralInfo}, nil
	}}
	env := newTestEnv(testDeps{classifier: cls})
	id := turn(t, env, "", "Bonjour").SessionID
	before, err := env.store.Get(context.Background(), id)
	require.NoError(t, err)

	_, err = env.uc.HandleTurn(ctx, model.Scope{}, discovery.TurnInput{SessionID: id, OwnerID: testOwner, Message: "cancel me"})
	assert.ErrorIs(t, err, context.Canceled)

	after, err := env.store.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, before.Version, after.Version)
	assert.Equal(t, before.Turns, after.Turns)
	assert.Empty(t, after.Requirements.BusinessType)
}

func TestHandleTurn_PanicLeavesSessionUntouched(t *testing.T) {
	cls := &funcClassifier{fn: func(_ context.Context, in router.Input) (router.Classification, error) {
		if in.Utterance == "boom" {
			panic("classifier exploded")
		}
		return router.Classification{Intent: router.IntentGeneralInfo}, nil
	}}
	env := newTestEnv(testDeps{classifier: cls})
	id := turn(t, env, "", "Bonjour").SessionID
	before, err := env.store.Get(context.Background(), id)
	require.NoError(t, err)

	out, err := env.uc.HandleTurn(context.Background(), model.Scope{}, discovery.TurnInput{SessionID: id, OwnerID: testOwner, Message: "boom"})
	require.NoError(t, err)
	assert.False(t, out.Success)
	assert.Equal(t, MsgApology, out.Message)
	assert.Equal(t, ErrTurnFailed, out.Error)

	after, err := env.store.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, before.Version, after.Version)
}

func TestHandleTurn_DegradedClassification(t *testing.T) {
	l := log.NewNop()
	m := metrics.New("degraded")
	fallback := router.NewFallback(
		router.NewSemantic(failingCompleter{}, l, 0.1),
		router.NewKeyword(l),
		l, m,
	)
	env := newTestEnv(testDeps{classifier: fallback})

	out := turn(t, env, "", "I run a Korean restaurant and want help with reservations")

	assert.Equal(t, model.StepTargetAudience, out.Step)
	assert.Empty(t, out.Error, "degradation is not surfaced")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Degraded.WithLabelValues(metrics.StageClassification)))
	assert.Equal(t, 1.0, testutil.ToFloat64(env.m.Turns.WithLabelValues(string(router.IntentCreateAgent), outcomeDegraded)))
}

func TestHandleTurn_DegradedSynthesisReturnsSkeleton(t *testing.T) {
	l := log.NewNop()
	synth := synthesis.New(failingCompleter{}, l, nil, synthesis.Config{Elaborate: true})
	env := newTestEnv(testDeps{synth: synth})

	out := completeRestaurant(t, env)

	require.NotNil(t, out.GeneratedConfiguration)
	assert.False(t, out.GeneratedConfiguration.Personalized)
	assert.NotEmpty(t, out.GeneratedConfiguration.Instructions)
	assert.NotEmpty(t, out.BoundAgentID)
}

func TestHandleTurn_SynthesisErrorCommitsNothing(t *testing.T) {
	env := newTestEnv(testDeps{synth: brokenSynth{}})
	out := turn(t, env, "", "I run a Korean restaurant and want help with reservations")
	id := out.SessionID
	for _, msg := range []string{"des touristes", "Aucune", "Aucune", "Oui, c'est correct"} {
		turn(t, env, id, msg)
	}
	before, err := env.store.Get(context.Background(), id)
	require.NoError(t, err)

	out, err = env.uc.HandleTurn(context.Background(), model.Scope{}, discovery.TurnInput{SessionID: id, OwnerID: testOwner, Message: "Oui, tester d'abord"})
	require.NoError(t, err)
	assert.False(t, out.Success)
	assert.Equal(t, MsgSynthesisFailed, out.Message)

	after, err := env.store.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, before.Version, after.Version)
	assert.False(t, after.IsComplete())
}

func TestHandleTurn_PersistenceFailureIsRecoverable(t *testing.T) {
	env := newTestEnv(testDeps{})
	env.repo.fail.Store(true)

	out := completeRestaurant(t, env)

	assert.Equal(t, WarnAgentNotSaved, out.Warning)
	assert.Empty(t, out.BoundAgentID)
	require.NotNil(t, out.GeneratedConfiguration)
	assert.Equal(t, model.StepComplete, out.Step)

	out = turn(t, env, out.SessionID, "Je veux mettre en ligne mon assistant")
	assert.Equal(t, MsgDeployUnsaved, out.Message)
	assert.Equal(t, WarnAgentNotSaved, out.Warning)

	env.repo.fail.Store(false)
	out = turn(t, env, out.SessionID, "Je veux mettre en ligne mon assistant")
	assert.Empty(t, out.Warning)
	assert.NotEmpty(t, out.BoundAgentID)
	assert.Contains(t, out.Message, DeployChannels[0])
}
