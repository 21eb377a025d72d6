package router

// rule maps folded keywords to a canonical value. Keys ending in '*' match
// word prefixes; other keys match whole words or phrases.
type rule struct {
	value string
	keys  []string
}

var businessRules = []rule{
	{"restaurant", []string{"restaurant*", "resto", "restos", "cafe", "cafes", "bistro*", "brasserie*", "pizzeria*", "bar", "bars", "traiteur*", "snack", "fast food", "creperie*", "boulangerie*"}},
	{"hôtel", []string{"hotel*", "gite*", "chambre d hote*", "auberge*", "camping*"}},
	{"ecommerce", []string{"ecommerce", "e commerce", "boutique*", "magasin*", "shop", "online store", "store", "vente en ligne", "commerce"}},
	{"salon de beauté", []string{"salon*", "coiffe*", "coiffure*", "barbier*", "barber*", "spa", "esthetique*", "institut de beaute", "onglerie*"}},
	{"clinique", []string{"clinique*", "clinic*", "cabinet medical", "medecin*", "dentist*", "kine*", "pharmacie*", "veterinaire*"}},
	{"immobilier", []string{"immobili*", "real estate", "realtor*", "agence immo*"}},
	{"cabinet comptable", []string{"comptab*", "accountant*", "accounting", "expert comptable", "fiscalit*"}},
	{"cabinet d'avocats", []string{"avocat*", "lawyer*", "law firm", "juridique*"}},
	{"école", []string{"ecole*", "school*", "formation*", "universit*", "tutorat", "soutien scolaire", "auto ecole"}},
	{"salle de sport", []string{"salle de sport", "gym", "fitness", "coach sportif", "crossfit"}},
}

var featureRules = []rule{
	{"réservations", []string{"reserv*", "booking*", "book a table", "reserver*"}},
	{"menu", []string{"menu*", "carte des plats", "la carte"}},
	{"commandes", []string{"commande*", "order", "orders", "ordering", "click and collect"}},
	{"livraison", []string{"livraison*", "livrer", "livreur*", "a domicile", "deliver*"}},
	{"suivi de commande", []string{"suivi de commande*", "suivi des commandes", "order tracking", "track my order", "suivi de colis"}},
	{"faq", []string{"faq", "questions frequentes", "frequently asked"}},
	{"horaires et informations pratiques", []string{"horaire*", "opening hours", "heures d ouverture", "adresse"}},
	{"prise de rendez-vous", []string{"rendez vous", "rdv", "appointment*", "prendre rendez vous"}},
	{"paiements", []string{"paiement*", "payment*", "payer"}},
	{"support client", []string{"support client", "service client", "customer support", "customer service", "sav"}},
	{"recommandations de produits", []string{"recommand*", "recommendation*", "conseil produit*"}},
	{"catalogue produits", []string{"catalogue*", "catalog*", "fiche produit*"}},
	{"devis", []string{"devis", "quote", "quotes", "estimation*"}},
	{"facturation", []string{"factur*", "invoice*", "invoicing", "billing"}},
	{"inscriptions", []string{"inscri*", "enrol*", "enroll*"}},
	{"programme de fidélité", []string{"fidelit*", "loyalty"}},
	{"avis clients", []string{"avis clients", "review*", "laisser un avis"}},
	{"visites de biens", []string{"visite*", "viewing*"}},
}

var technicalRules = []rule{
	{"multilingue", []string{"multiling*", "plusieurs langues", "traduction*", "translat*", "bilingue*"}},
	{"notifications", []string{"notif*", "rappel*", "reminder*", "relance*"}},
	{"analytique", []string{"analyt*", "statisti*", "tableau de bord", "dashboard*", "reporting"}},
	{"transfert vers un humain", []string{"transfert*", "handoff", "hand off", "vrai humain", "un humain", "human agent"}},
	{"synchronisation agenda", []string{"agenda*", "planning*"}},
	{"mémoire des préférences", []string{"preferences client*", "historique client*", "remember customer*"}},
}

var integrationRules = []rule{
	{"WhatsApp", []string{"whatsapp*"}},
	{"Messenger", []string{"messenger"}},
	{"Instagram", []string{"instagram*", "insta"}},
	{"Facebook", []string{"facebook*"}},
	{"Telegram", []string{"telegram*"}},
	{"Shopify", []string{"shopify*"}},
	{"WooCommerce", []string{"woocommerce*"}},
	{"WordPress", []string{"wordpress*"}},
	{"Stripe", []string{"stripe*"}},
	{"PayPal", []string{"paypal*"}},
	{"Google Calendar", []string{"google calendar", "google agenda", "gcal"}},
	{"Slack", []string{"slack*"}},
	{"HubSpot", []string{"hubspot*"}},
	{"Zapier", []string{"zapier*"}},
	{"Email", []string{"email*", "e mail*", "mail", "mails", "courriel*"}},
	{"SMS", []string{"sms", "texto*"}},
}

var audienceRules = []rule{
	{"touristes", []string{"touriste*", "tourist*", "visiteurs etrangers"}},
	{"étudiants", []string{"etudiant*", "student*", "eleves"}},
	{"familles", []string{"famille*", "families", "family"}},
	{"professionnels", []string{"professionnels", "b2b", "entreprises", "businesses"}},
	{"patients", []string{"patient*"}},
	{"particuliers", []string{"particuliers", "b2c"}},
	{"clientèle locale", []string{"clients locaux", "clientele locale", "habitants", "du quartier", "locals"}},
	{"jeunes adultes", []string{"jeunes", "young adults", "millennials"}},
	{"seniors", []string{"senior*", "personnes agees"}},
}

var (
	deployKeys = []string{"deploy*", "deploi*", "publier", "publie", "publication", "mettre en ligne", "mise en ligne", "go live", "lancer l assistant", "activer l assistant", "en production"}

	integrateKeys = []string{"integr*", "connect*", "brancher", "relier", "synchroniser", "link it", "plug"}

	createKeys = []string{"creer", "cree", "create*", "build*", "construire", "concevoir", "assistant*", "chatbot*", "bot", "agent", "agents", "je veux un", "j aimerais un", "i need a", "i want a", "i run", "je gere", "j ai un", "j ai une"}

	generalInfoKeys = []string{"bonjour", "salut", "hello", "hi", "hey", "prix", "tarif*", "combien", "price*", "pricing", "cost", "que peux tu", "que sais tu", "what can you", "comment ca marche", "how does it work", "aide", "help", "qui es tu", "who are you", "merci", "thanks"}

	correctionKeys = []string{"en fait", "actually", "plutot", "finalement", "instead", "correction", "je me suis trompe", "i meant", "pas un", "pas une", "not a", "je voulais dire"}

	simpleKeys  = []string{"simple", "basique", "basic", "minimal*", "sans fioriture*"}
	complexKeys = []string{"complexe*", "complex", "avance", "avancee*", "advanced", "sophistiqu*", "sur mesure"}
)
