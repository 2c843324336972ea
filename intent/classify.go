package intent

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/tbxark/quoteagent/extract"
)

var (
	greetingPhrases = []string{
		"bonjour", "bonsoir", "salut", "coucou", "bjr", "slt", "re",
		"hello", "hi", "hey", "good morning", "good afternoon", "good evening",
	}
	greetingAddressees = []string{
		"a tous", "a vous", "tout le monde", "madame", "monsieur",
		"there", "everyone", "all", "team",
	}
	greetingPattern = regexp.MustCompile(`^(` + strings.Join(greetingPhrases, "|") + `)( (` + strings.Join(greetingAddressees, "|") + `))?$`)

	numberOnly = regexp.MustCompile(`^\d{1,4}$`)

	acknowledgments = map[string]struct{}{
		"oui": {}, "ouais": {}, "ok": {}, "okay": {}, "d'accord": {}, "daccord": {}, "dac": {},
		"parfait": {}, "super": {}, "ca marche": {}, "tres bien": {}, "entendu": {}, "exactement": {},
		"yes": {}, "yep": {}, "yeah": {}, "sure": {}, "alright": {}, "great": {}, "perfect": {},
		"fine": {}, "exactly": {}, "sounds good": {},
	}
)

// stripPunctuation keeps letters, spaces and apostrophes so that "Bonjour !"
// and "ok." compare like their bare forms.
func stripPunctuation(normalized string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '\'':
			return r
		case unicode.IsSpace(r), r == '-', r == ',':
			return ' '
		default:
			return -1
		}
	}, normalized)
	return strings.Join(strings.Fields(cleaned), " ")
}

func hasDigit(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

// IsGreeting matches messages made only of a greeting, optionally followed
// by a short addressee. A message with any digit is never a greeting.
func IsGreeting(text string) bool {
	if hasDigit(text) {
		return false
	}
	return greetingPattern.MatchString(stripPunctuation(extract.Normalize(text)))
}

func IsNumberOnly(text string) bool {
	return numberOnly.MatchString(strings.TrimSpace(text))
}

func IsAcknowledgmentOnly(text string) bool {
	_, ok := acknowledgments[stripPunctuation(extract.Normalize(text))]
	return ok
}
