package dialogue

import "github.com/tbxark/quoteagent/types"

const (
	preambleOpeningFR        = `Tu peux saluer le client une seule fois, brièvement, puis poser exactement une question d'ouverture : le type d'événement organisé.`
	preambleOpeningGreetedFR = `Le client a déjà été accueilli : ne le salue pas à nouveau. Pose exactement une question d'ouverture : le type d'événement organisé.`
	preambleEngagedFR        = `La conversation est déjà engagée. N'utilise aucune salutation ni formule de bienvenue et ne repose jamais une question déjà posée. Si le client te salue, réponds en une seule phrase d'accusé de réception sans le saluer à nouveau, puis enchaîne immédiatement avec la prochaine question manquante.`

	preambleOpeningEN        = `You may greet the customer once, briefly, then ask exactly one opening question: the type of event they are organizing.`
	preambleOpeningGreetedEN = `The customer has already been welcomed: do not greet them again. Ask exactly one opening question: the type of event they are organizing.`
	preambleEngagedEN        = `The conversation is already under way. Do not use any greeting or welcome phrasing and never repeat a question that was already asked. If the customer greets you, acknowledge it in a single sentence without greeting back, then immediately ask the next missing question.`
)

// Preamble is the tone instruction handed to the text generator. It only
// governs greetings; what to ask comes from NextQuestion.
func Preamble(engaged, hasGreetingBeenDone bool, locale types.Locale) string {
	en := locale.Resolve() == types.LocaleEN
	switch {
	case engaged && en:
		return preambleEngagedEN
	case engaged:
		return preambleEngagedFR
	case hasGreetingBeenDone && en:
		return preambleOpeningGreetedEN
	case hasGreetingBeenDone:
		return preambleOpeningGreetedFR
	case en:
		return preambleOpeningEN
	default:
		return preambleOpeningFR
	}
}
