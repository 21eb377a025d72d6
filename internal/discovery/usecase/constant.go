package usecase

import "time"

// Log prefixes
const (
	LogPrefixHandleTurn   = "internal.discovery.usecase.HandleTurn"
	LogPrefixComplete     = "internal.discovery.usecase.complete"
	LogPrefixPostComplete = "internal.discovery.usecase.handleCompleted"
	LogPrefixResetSession = "internal.discovery.usecase.ResetSession"
)

// Log messages
const (
	LogMsgTurnPanic          = "Recovered from panic while handling turn: %v"
	LogMsgClassifyFailed     = "Classification failed: %v"
	LogMsgVersionConflict    = "Concurrent update on session %s, re-classifying"
	LogMsgSynthesisFailed    = "Synthesis failed: %v"
	LogMsgAgentPersistFailed = "Agent persistence failed: %v"
	LogMsgAgentAlreadyBound  = "Session %s already bound to agent %s, discarding %s"
	LogMsgSessionCompleted   = "Discovery completed"
	LogMsgTurnHandled        = "Turn handled"
)

// Assistant messages
const (
	MsgWelcome           = "Bonjour ! Je vais vous aider à concevoir votre assistant virtuel en quelques questions."
	MsgAcknowledged      = "Très bien, c'est noté."
	MsgCorrected         = "C'est noté, je corrige."
	MsgNotUnderstood     = "Je n'ai pas bien saisi votre réponse."
	MsgValidationRefused = "D'accord, dites-moi ce que vous souhaitez modifier."
	MsgProductInfo       = "Je conçois avec vous un assistant conversationnel adapté à votre activité : je recueille vos besoins en quelques questions, puis je génère sa configuration, prête à être testée et déployée."
	MsgDeployNotReady    = "Nous pourrons déployer votre assistant dès que sa configuration sera terminée."
	MsgIntegrateNotReady = "Bonne idée, nous pourrons connecter votre assistant à vos outils. Terminons d'abord sa configuration."
	MsgApology           = "Désolé, un problème est survenu de notre côté. Pouvez-vous reformuler votre message ?"
	MsgSynthesisFailed   = "Désolé, je n'ai pas pu générer la configuration de votre assistant. Pouvez-vous réessayer dans un instant ?"

	MsgCompletedFormat  = "Parfait ! Votre « %s » est prêt."
	MsgCapabilitiesLine = "Ses capacités : %s."
	MsgSandboxReady     = "Un bac à sable est disponible pour le tester avant sa mise en ligne."
	MsgNextActions      = "Vous pouvez maintenant le déployer ou le connecter à vos outils."

	MsgDeployFormat         = "Votre assistant %s peut être déployé sur : %s."
	MsgDeployChannelsFormat = "Je prépare sa publication sur %s. Vous recevrez le lien d'activation une fois le canal configuré."
	MsgDeployUnsaved        = "Votre configuration est prête, mais l'assistant n'a pas encore pu être enregistré. Réessayez le déploiement dans un instant."
	MsgIntegrateCatalog     = "Intégrations disponibles : %s. Laquelle souhaitez-vous activer ?"
	MsgIntegrateAdded       = "C'est noté : %s sera connecté à votre assistant."
	MsgPersonalized         = "C'est noté, j'ai ajouté ces éléments à la configuration de votre assistant. Pour repartir de zéro, réinitialisez la session."
	MsgResetToChange        = "Votre assistant « %s » est déjà configuré avec ces informations. Pour changer d'activité ou de public, réinitialisez la session."
	MsgCompletedInfo        = "Votre assistant « %s » est déjà configuré. Vous pouvez le déployer, le connecter à vos outils ou réinitialiser la session pour en créer un autre."

	WarnAgentNotSaved = "agent could not be saved; configuration returned unsaved"
	ErrTurnFailed     = "turn failed"
	listSeparator     = ", "
)

// Suggested replies after completion
var (
	RepliesCompleted = []string{"Déployer l'assistant", "Connecter une intégration", "Recommencer"}
	RepliesGreeting  = []string{"Je veux créer un assistant", "Que peux-tu faire ?"}
)

// Deployment channels and integration catalog
var (
	DeployChannels     = []string{"site web (widget)", "WhatsApp", "Messenger", "Instagram", "Telegram"}
	IntegrationCatalog = []string{"WhatsApp", "Messenger", "Instagram", "Shopify", "WooCommerce", "Stripe", "PayPal", "Google Calendar", "HubSpot", "Slack", "Zapier", "Email", "SMS"}
)

// Configuration
const (
	DefaultCompletionTimeout = 5 * time.Second
	HistoryTurns             = 5
	MaxMessageRunes          = 2000
)

// Turn outcomes for metrics
const (
	outcomeOK        = "ok"
	outcomeDegraded  = "degraded"
	outcomeCompleted = "completed"
	outcomeFailed    = "failed"
)
