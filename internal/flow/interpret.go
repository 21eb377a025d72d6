package flow

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"agent-discovery/internal/model"
	"agent-discovery/pkg/textnorm"
)

var (
	yesKeys = []string{"oui", "yes", "ok", "okay", "d accord", "correct", "exact*", "parfait*", "c est bon", "valide*", "tout a fait", "bien sur", "ouais", "yep", "sure", "go", "tester", "volontiers", "pas de souci", "pas de probleme", "absolument"}
	noKeys  = []string{"non", "no", "nope", "pas", "aucun*", "rien", "none", "nothing", "modifier", "changer", "directement", "incorrect", "faux"}

	skipKeys = []string{"aucun*", "rien", "non", "no", "none", "nothing", "pas besoin", "pas necessaire", "ca ira", "skip", "passer"}

	listSeparators = regexp.MustCompile(`(?i)\s*(?:,|;|/|\+|\bet\b|\band\b|\bainsi que\b)\s*`)
	leadingFiller  = regexp.MustCompile(`(?i)^(?:(?:je|nous|on)\s+(?:veux|voudrais|voudrait|souhaite|souhaitons|aimerais|aimerait|g[èe]re|g[ée]rons|dirige|dirigeons|tiens|tenons|poss[èe]de|poss[ée]dons|suis|sommes|est|a|travaille\s+dans|travaillons\s+dans)\s+|(?:il\s+faut|j['’]ai|nous\s+avons|c['’]est|ce\s+sont|i\s+(?:run|own|have)|we\s+(?:run|own|have))\s+|(?:un|une|des|du|de\s+la|de\s+l'|le|la|les|l'|mon|ma|mes|notre|nos|a|an|the|my|our)\s+)+`)

	// smallTalkKeys are words that never answer a question on their own.
	smallTalkKeys = []string{"bonjour", "bonsoir", "salut", "coucou", "hello", "hi", "hey", "merci", "thanks", "thank", "you", "beaucoup", "hm*", "euh*", "bah", "ben"}
	// questionKeys open a question even without a question mark.
	questionKeys = []string{"quel*", "comment", "combien", "pourquoi", "est", "what", "how", "why", "which", "can", "could"}
	// assistantKeys name the assistant itself rather than the business.
	assistantKeys = []string{"assistant*", "chatbot*", "bot", "agent", "agents", "creer", "create*"}
)

// Answer is the polarity of a yes/no reply.
type Answer int

const (
	AnswerUnknown Answer = iota
	AnswerYes
	AnswerNo
)

// YesNo classifies a short reply as yes, no or unknown.
func YesNo(utterance string) Answer {
	text := textnorm.Words(utterance)
	yes := textnorm.MatchAny(text, yesKeys)
	no := textnorm.MatchAny(text, noKeys)
	switch {
	case yes && no:
		// "pas de souci" and friends carry "pas" but mean yes.
		if textnorm.MatchAny(text, []string{"pas de souci", "pas de probleme"}) && !textnorm.MatchAny(text, []string{"non"}) {
			return AnswerYes
		}
		return AnswerUnknown
	case yes:
		return AnswerYes
	case no:
		return AnswerNo
	}
	return AnswerUnknown
}

// Interpret turns a free-text answer to the question of step into a partial
// requirements value. It returns an empty value when nothing applies.
func Interpret(step model.StepID, utterance string) model.Requirements {
	utterance = strings.TrimSpace(utterance)
	if utterance == "" {
		return model.Requirements{}
	}

	switch step {
	case model.StepBusinessType:
		if textnorm.MatchAny(textnorm.Words(utterance), assistantKeys) {
			return model.Requirements{}
		}
		return model.Requirements{BusinessType: strings.ToLower(phrase(utterance))}

	case model.StepKeyFeatures:
		return model.Requirements{KeyFeatures: items(utterance)}

	case model.StepTargetAudience:
		return model.Requirements{TargetAudience: phrase(utterance)}

	case model.StepTechnicalFeatures:
		if isSkip(utterance) {
			return model.Requirements{Answered: []model.StepID{step}}
		}
		return model.Requirements{TechnicalFeatures: items(utterance), Answered: []model.StepID{step}}

	case model.StepIntegrations:
		if isSkip(utterance) {
			return model.Requirements{Answered: []model.StepID{step}}
		}
		return model.Requirements{IntegrationsNeeded: items(utterance), Answered: []model.StepID{step}}

	case model.StepValidation:
		if YesNo(utterance) == AnswerYes {
			return model.Requirements{Confirmed: true}
		}

	case model.StepSandboxTest:
		switch YesNo(utterance) {
		case AnswerYes:
			return model.Requirements{SandboxRequested: true, Answered: []model.StepID{step}}
		case AnswerNo:
			return model.Requirements{Answered: []model.StepID{step}}
		}
	}

	return model.Requirements{}
}

// IsSmallTalk reports whether utterance is a question or only greetings and
// fillers, neither of which answers the pending question.
func IsSmallTalk(utterance string) bool {
	trimmed := strings.TrimSpace(utterance)
	if strings.HasSuffix(trimmed, "?") {
		return true
	}
	words := strings.Fields(textnorm.Words(trimmed))
	if len(words) == 0 || textnorm.MatchAny(" "+words[0]+" ", questionKeys) {
		return true
	}
	for _, w := range words {
		if !textnorm.MatchAny(" "+w+" ", smallTalkKeys) {
			return false
		}
	}
	return true
}

func isSkip(utterance string) bool {
	text := textnorm.Words(utterance)
	return textnorm.MatchAny(text, skipKeys) && len(strings.Fields(text)) <= 6
}

// phrase strips fillers and trailing punctuation and bounds the length.
func phrase(s string) string {
	s = strings.TrimSpace(leadingFiller.ReplaceAllString(strings.TrimSpace(s), ""))
	s = strings.TrimRight(s, " .!?…")
	if utf8.RuneCountInString(s) > maxInterpretedRunes {
		s = string([]rune(s)[:maxInterpretedRunes])
	}
	return strings.TrimSpace(s)
}

// items splits an enumeration into lower-cased entries.
func items(s string) []string {
	var out []string
	for _, part := range listSeparators.Split(s, -1) {
		p := strings.ToLower(phrase(part))
		if p == "" {
			continue
		}
		out = append(out, p)
		if len(out) == maxInterpretedItems {
			break
		}
	}
	return out
}
