package router

// Log prefixes
const (
	LogPrefixClassify         = "internal.router.Classify"
	LogPrefixKeywordClassify  = "internal.router.KeywordRouter.Classify"
	LogPrefixFallbackClassify = "internal.router.FallbackRouter.Classify"
)

// Router prompts
const (
	PromptRouterSystem = `Tu es le routeur sémantique d'un assistant qui aide des entreprises à concevoir leur propre agent conversationnel.
Analyse le message de l'utilisateur, détermine son intention et extrais les besoins exprimés.

Intentions possibles :
1. create_agent : l'utilisateur décrit l'assistant qu'il veut créer ou son activité
2. fill_slot : l'utilisateur répond à une question ou complète des informations
3. deploy : l'utilisateur veut publier ou mettre en ligne son assistant
4. integrate : l'utilisateur veut connecter l'assistant à un service (WhatsApp, Shopify, Stripe...)
5. general_info : salutation, question sur le produit, les prix ou le fonctionnement

Règles d'extraction :
- business_type : un nom court en minuscules ("restaurant", "ecommerce", "salon de beauté", "clinique", "immobilier", "cabinet comptable", "école"). Ignore les adjectifs d'origine ou de style.
- key_features : fonctionnalités métier en français, en minuscules, au pluriel quand c'est naturel ("réservations", "menu", "commandes", "livraison", "faq", "prise de rendez-vous").
- technical_features : capacités techniques ("multilingue", "notifications", "analytique", "transfert vers un humain").
- integrations_needed : noms propres des services ("WhatsApp", "Shopify", "Stripe", "Google Calendar").
- complexity : "simple", "moderate" ou "complex", vide si rien n'est dit.
- N'invente rien : laisse vide ce qui n'est pas exprimé dans le message.

Réponds uniquement avec un objet JSON :
{
  "intent": "create_agent|fill_slot|deploy|integrate|general_info",
  "confidence": 0-100,
  "reasoning": "explication courte",
  "is_correction": false,
  "extracted": {
    "business_type": "",
    "objectives": "",
    "target_audience": "",
    "key_features": [],
    "technical_features": [],
    "integrations_needed": [],
    "complexity": ""
  }
}`

	PromptContextSystem = PromptRouterSystem + `

Des besoins ont déjà été recueillis. Ne répète pas ce qui est déjà connu : extrais seulement ce que le message ajoute ou modifie.
Si le message contredit une valeur connue ("en fait", "plutôt", "finalement"), mets is_correction à true et donne la nouvelle valeur.`

	PromptKnownRequirements = "Besoins déjà connus (JSON) :\n%s\n"
	PromptBoundAgent        = "Un assistant a déjà été généré pour cet utilisateur (id %s).\n"
	PromptPendingStep       = "Dernière question posée : %s\n"
	PromptHistoryPrefix     = "Historique récent de l'utilisateur :\n"
	PromptMessage           = "Message actuel : %q"
)

// Router configuration
const (
	RouterTemperature        = 0.1
	RouterMaxOutputTokens    = 512
	RouterHistoryLimit       = 5
	KeywordConfidence        = 60
	KeywordPendingConfidence = 40
)

// Error messages
const (
	ErrMsgLLMCallFailed   = "LLM call failed"
	ErrMsgJSONParseFailed = "Failed to parse JSON"
	ErrMsgUnknownIntent   = "Unknown intent"
	ErrMsgPrimaryFailed   = "Primary classifier failed, using keyword fallback"
)

// Fallback reasons
const (
	ReasonKeywordMatch    = "keyword match"
	ReasonPendingAnswer   = "answer to pending question"
	ReasonNoSignal        = "no keyword signal"
	ReasonKeywordEnriched = "completion extraction enriched with keyword fields"
)
