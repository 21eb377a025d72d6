package flow

// Question texts
const (
	QuestionBusinessType      = "Pour commencer, quel type d'activité votre assistant va-t-il servir ?"
	QuestionKeyFeatures       = "Quelles tâches l'assistant doit-il prendre en charge en priorité ?"
	QuestionKeyFeaturesFor    = "Quelles tâches l'assistant doit-il prendre en charge en priorité pour votre %s ?"
	QuestionTargetAudience    = "Qui seront les principaux interlocuteurs de l'assistant ?"
	QuestionTechnicalFeatures = "Avez-vous besoin de fonctions techniques particulières (plusieurs langues, notifications, transfert vers un humain) ?"
	QuestionIntegrations      = "Faut-il connecter l'assistant à d'autres outils ou canaux ?"
	QuestionValidation        = "Voici ce que j'ai retenu :\n%s\nEst-ce correct ?"
	QuestionSandboxTest       = "Souhaitez-vous tester l'assistant dans un bac à sable avant de le déployer ?"
)

// Summary labels
const (
	SummaryLineFormat    = "- %s : %s"
	SummaryBusiness      = "Activité"
	SummaryObjectives    = "Objectifs"
	SummaryFeatures      = "Fonctionnalités"
	SummaryAudience      = "Public"
	SummaryTechnical     = "Fonctions techniques"
	SummaryIntegrations  = "Intégrations"
	SummaryComplexity    = "Complexité"
	SummaryNone          = "aucune"
	SummaryUnknown       = "à préciser"
	summaryListSeparator = ", "
	maxInterpretedRunes  = 120
	maxInterpretedItems  = 8
)

// Quick replies
const (
	ReplyYes        = "Oui, c'est correct"
	ReplyNo         = "Non, je veux modifier"
	ReplySandboxYes = "Oui, tester d'abord"
	ReplySandboxNo  = "Non, générer directement"
	ReplyNone       = "Aucune"
)
