package synthesis

import "time"

// Log prefixes
const (
	LogPrefixSynthesize = "internal.synthesis.Synthesize"
	LogPrefixElaborate  = "internal.synthesis.elaborate"
)

// Prompts
const (
	PromptElaborateSystem = `Tu es expert en conception d'assistants conversationnels pour les petites entreprises.
On te donne les instructions de base d'un assistant et les besoins recueillis auprès de son propriétaire.
Réécris les instructions pour les rendre plus concrètes et personnalisées :
- conserve toutes les missions, règles et intégrations existantes ;
- ajoute deux ou trois exemples d'échanges courts (Client / Assistant) propres à cette activité ;
- n'invente ni prix, ni horaires, ni adresse.
Réponds uniquement avec les nouvelles instructions, sans introduction ni balises markdown.`

	PromptElaborateUser = "Besoins (JSON) :\n%s\n\nInstructions de base :\n%s"
)

// Output texts
const (
	NameFormat            = "Assistant %s"
	NameDefault           = "Assistant virtuel"
	DescriptionFormat     = "Assistant virtuel pour une activité « %s »"
	DescriptionFeatures   = ", chargé de : %s"
	DescriptionAudience   = ". Public visé : %s"
	IntegrationCapability = "intégration %s"
	descriptionListSep    = ", "
	descriptionUnknownBiz = "non précisée"
)

// Configuration
const (
	DefaultTimeout       = 5 * time.Second
	DefaultMaxTokens     = 800
	DefaultMaxChars      = 4000
	ElaborateTemperature = 0.4
)

// Log messages
const (
	LogMsgElaborated = "Configuration personalized"
)
