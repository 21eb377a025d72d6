package router

import (
	"context"
	"testing"

	"agent-discovery/internal/model"
	"agent-discovery/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordRouter_KoreanRestaurant(t *testing.T) {
	out, err := NewKeyword(log.NewNop()).Classify(context.Background(), Input{
		Utterance: "I run a Korean restaurant and want help with reservations",
	})
	require.NoError(t, err)

	assert.Equal(t, IntentCreateAgent, out.Intent)
	assert.Equal(t, "restaurant", out.Extracted.BusinessType)
	assert.Equal(t, []string{"réservations"}, out.Extracted.KeyFeatures)
	assert.Empty(t, out.Extracted.TargetAudience)
	assert.False(t, out.Correction)
}

func TestKeywordRouter_Intents(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want Intent
	}{
		{"deploy french", Input{Utterance: "Je veux mettre en ligne mon assistant", BoundAgentID: "a1"}, IntentDeploy},
		{"deploy english", Input{Utterance: "deploy it please"}, IntentDeploy},
		{"integrate", Input{Utterance: "Peux-tu le connecter à Shopify ?", BoundAgentID: "a1"}, IntentIntegrate},
		{"greeting", Input{Utterance: "Bonjour !"}, IntentGeneralInfo},
		{"pricing", Input{Utterance: "C'est combien ?"}, IntentGeneralInfo},
		{"create without details", Input{Utterance: "Je voudrais créer un chatbot"}, IntentCreateAgent},
		{"fill with context", Input{Utterance: "Il faut aussi la livraison", Context: model.Requirements{BusinessType: "restaurant"}}, IntentFillSlot},
		{"pending answer", Input{Utterance: "les habitués du midi", PendingStep: model.StepTargetAudience}, IntentFillSlot},
		{"no signal", Input{Utterance: "hmm"}, IntentGeneralInfo},
	}

	r := NewKeyword(log.NewNop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := r.Classify(context.Background(), tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.Intent)
			assert.True(t, out.Intent.Valid())
		})
	}
}

func TestExtract(t *testing.T) {
	ex := Extract("Ma boutique en ligne a besoin d'un suivi de commande, de paiements Stripe et d'être multilingue, intégrée à WhatsApp")

	assert.Equal(t, "ecommerce", ex.BusinessType)
	assert.Contains(t, ex.KeyFeatures, "suivi de commande")
	assert.Contains(t, ex.KeyFeatures, "paiements")
	assert.Equal(t, []string{"multilingue"}, ex.TechnicalFeatures)
	assert.Equal(t, []string{"WhatsApp", "Stripe"}, ex.IntegrationsNeeded)
}

func TestExtract_IgnoresNegations(t *testing.T) {
	ex := Extract("Un restaurant sans livraison, pas de WhatsApp, mais des réservations")

	assert.Equal(t, []string{"réservations"}, ex.KeyFeatures)
	assert.Empty(t, ex.IntegrationsNeeded)
}

func TestExtract_AudienceAndComplexity(t *testing.T) {
	ex := Extract("Un assistant simple pour les touristes et les familles")

	assert.Equal(t, "touristes, familles", ex.TargetAudience)
	assert.Equal(t, model.ComplexitySimple, ex.Complexity)
}

func TestKeywordRouter_Correction(t *testing.T) {
	r := NewKeyword(log.NewNop())

	out, err := r.Classify(context.Background(), Input{
		Utterance: "En fait c'est plutôt une pizzeria",
		Context:   model.Requirements{BusinessType: "salon de beauté"},
	})
	require.NoError(t, err)
	assert.True(t, out.Correction)
	assert.Equal(t, "restaurant", out.Extracted.BusinessType)

	out, err = r.Classify(context.Background(), Input{Utterance: "En fait, ajoute la FAQ"})
	require.NoError(t, err)
	assert.False(t, out.Correction, "list-only additions are never corrections")
}
