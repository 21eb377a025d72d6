package flow

import (
	"testing"

	"agent-discovery/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestYesNo(t *testing.T) {
	tests := []struct {
		in   string
		want Answer
	}{
		{"Oui, c'est correct", AnswerYes},
		{"ok", AnswerYes},
		{"Parfait !", AnswerYes},
		{"Oui, pas de problème", AnswerYes},
		{"Non, je veux modifier", AnswerNo},
		{"Non, générer directement", AnswerNo},
		{"peut-être", AnswerUnknown},
		{"oui mais non", AnswerUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, YesNo(tt.in))
		})
	}
}

func TestInterpret(t *testing.T) {
	tests := []struct {
		name string
		step model.StepID
		in   string
		want model.Requirements
	}{
		{"business", model.StepBusinessType, "Une librairie.", model.Requirements{BusinessType: "librairie"}},
		{"business after je gère", model.StepBusinessType, "Je gère une agence de voyage", model.Requirements{BusinessType: "agence de voyage"}},
		{"business after j'ai", model.StepBusinessType, "j'ai un cabinet d'architecte", model.Requirements{BusinessType: "cabinet d'architecte"}},
		{"business names the assistant", model.StepBusinessType, "Je veux créer un assistant", model.Requirements{}},
		{"audience drops article", model.StepTargetAudience, "les clients du restaurant", model.Requirements{TargetAudience: "clients du restaurant"}},
		{"features", model.StepKeyFeatures, "Les horaires, le stock et les commandes spéciales", model.Requirements{KeyFeatures: []string{"horaires", "stock", "commandes spéciales"}}},
		{"audience", model.StepTargetAudience, "Surtout des étudiants du quartier", model.Requirements{TargetAudience: "Surtout des étudiants du quartier"}},
		{"technical skip", model.StepTechnicalFeatures, "Aucune", model.Requirements{Answered: []model.StepID{model.StepTechnicalFeatures}}},
		{"integrations list", model.StepIntegrations, "Instagram et Messenger", model.Requirements{IntegrationsNeeded: []string{"instagram", "messenger"}, Answered: []model.StepID{model.StepIntegrations}}},
		{"integrations skip", model.StepIntegrations, "non, pas besoin", model.Requirements{Answered: []model.StepID{model.StepIntegrations}}},
		{"validation yes", model.StepValidation, "Oui, c'est correct", model.Requirements{Confirmed: true}},
		{"validation no", model.StepValidation, "Non, je veux modifier", model.Requirements{}},
		{"sandbox yes", model.StepSandboxTest, "Oui, tester d'abord", model.Requirements{SandboxRequested: true, Answered: []model.StepID{model.StepSandboxTest}}},
		{"sandbox no", model.StepSandboxTest, "Non, générer directement", model.Requirements{Answered: []model.StepID{model.StepSandboxTest}}},
		{"empty", model.StepTargetAudience, "   ", model.Requirements{}},
		{"unknown step", model.StepComplete, "bonjour", model.Requirements{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Interpret(tt.step, tt.in))
		})
	}
}

func TestInterpret_BoundsLength(t *testing.T) {
	long := ""
	for i := 0; i < 40; i++ {
		long += "très "
	}
	got := Interpret(model.StepTargetAudience, long)
	assert.LessOrEqual(t, len([]rune(got.TargetAudience)), maxInterpretedRunes)
}

func TestIsSmallTalk(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"Bonjour", true},
		{"merci beaucoup !", true},
		{"euhhh", true},
		{"C'est combien ?", true},
		{"Comment ça marche", true},
		{"   ", true},
		{"Je gère une agence de voyage", false},
		{"bonjour, j'ai un cabinet d'architecte", false},
		{"les clients du restaurant", false},
		{"non", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSmallTalk(tt.in))
		})
	}
}
