package flow

import (
	"agent-discovery/internal/model"
	"agent-discovery/pkg/textnorm"
)

// order is the fixed discovery sequence.
var order = []model.StepID{
	model.StepBusinessType,
	model.StepKeyFeatures,
	model.StepTargetAudience,
	model.StepTechnicalFeatures,
	model.StepIntegrations,
	model.StepValidation,
	model.StepSandboxTest,
}

var catalog = map[model.StepID]model.DiscoveryQuestion{
	model.StepBusinessType: {
		ID:           model.StepBusinessType,
		Text:         QuestionBusinessType,
		Category:     model.CategoryBusiness,
		Required:     true,
		QuickReplies: []string{"Restaurant", "Boutique en ligne", "Salon de beauté", "Cabinet médical"},
	},
	model.StepKeyFeatures: {
		ID:           model.StepKeyFeatures,
		Text:         QuestionKeyFeatures,
		Category:     model.CategoryBusiness,
		Required:     true,
		QuickReplies: []string{"FAQ", "Prise de rendez-vous", "Support client"},
	},
	model.StepTargetAudience: {
		ID:           model.StepTargetAudience,
		Text:         QuestionTargetAudience,
		Category:     model.CategoryBusiness,
		Required:     true,
		QuickReplies: []string{"Clientèle locale", "Touristes", "Professionnels", "Familles"},
	},
	model.StepTechnicalFeatures: {
		ID:           model.StepTechnicalFeatures,
		Text:         QuestionTechnicalFeatures,
		Category:     model.CategoryTechnical,
		QuickReplies: []string{"Multilingue", "Notifications", "Transfert vers un humain", ReplyNone},
	},
	model.StepIntegrations: {
		ID:           model.StepIntegrations,
		Text:         QuestionIntegrations,
		Category:     model.CategoryTechnical,
		QuickReplies: []string{"WhatsApp", "Google Calendar", "Stripe", ReplyNone},
	},
	model.StepValidation: {
		ID:           model.StepValidation,
		Text:         QuestionValidation,
		Category:     model.CategoryPreferences,
		Required:     true,
		QuickReplies: []string{ReplyYes, ReplyNo},
	},
	model.StepSandboxTest: {
		ID:           model.StepSandboxTest,
		Text:         QuestionSandboxTest,
		Category:     model.CategoryPreferences,
		QuickReplies: []string{ReplySandboxYes, ReplySandboxNo},
	},
}

// featureSuggestions tailors key feature quick replies to the business.
var featureSuggestions = []struct {
	keys    []string
	replies []string
}{
	{[]string{"restaurant*", "cafe*", "bistro*", "brasserie*", "pizzeria*", "bar", "traiteur*", "hotel*"}, []string{"Réservations", "Menu", "Commandes", "Livraison"}},
	{[]string{"ecommerce", "e commerce", "boutique*", "magasin*", "shop", "commerce"}, []string{"Suivi de commande", "Recommandations de produits", "Paiements", "Support client"}},
	{[]string{"salon*", "coiff*", "spa", "beaute*", "esthetique*"}, []string{"Prise de rendez-vous", "Tarifs", "Rappels", "FAQ"}},
	{[]string{"clinique*", "cabinet medical", "medecin*", "dentist*", "sante"}, []string{"Prise de rendez-vous", "Horaires et informations pratiques", "FAQ"}},
	{[]string{"immobili*"}, []string{"Visites de biens", "Qualification des acheteurs", "FAQ"}},
	{[]string{"comptab*", "cabinet comptable", "avocat*"}, []string{"Facturation", "Devis", "Prise de rendez-vous"}},
	{[]string{"ecole*", "formation*", "universit*"}, []string{"Inscriptions", "Horaires et informations pratiques", "FAQ"}},
}

// Catalog returns a copy of the discovery questions in asking order.
func Catalog() []model.DiscoveryQuestion {
	out := make([]model.DiscoveryQuestion, 0, len(order))
	for _, id := range order {
		out = append(out, copyQuestion(catalog[id]))
	}
	return out
}

// Question returns a copy of the catalog entry for id.
func Question(id model.StepID) (model.DiscoveryQuestion, bool) {
	q, ok := catalog[id]
	if !ok {
		return model.DiscoveryQuestion{}, false
	}
	return copyQuestion(q), true
}

func copyQuestion(q model.DiscoveryQuestion) model.DiscoveryQuestion {
	q.QuickReplies = append([]string(nil), q.QuickReplies...)
	return q
}

func suggestFeatures(businessType string) []string {
	text := textnorm.Words(businessType)
	for _, s := range featureSuggestions {
		if textnorm.MatchAny(text, s.keys) {
			return append([]string(nil), s.replies...)
		}
	}
	return nil
}
