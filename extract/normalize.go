// Package extract turns raw user text into typed slot values. Every
// extractor is a pure keyword/pattern matcher: it returns nil when the slot
// is not present and never fails.
package extract

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var quoteReplacer = strings.NewReplacer("’", "'", "‘", "'", "`", "'")

// Normalize lowercases text, strips diacritics and collapses whitespace.
// All keyword tables in this package are written against its output.
func Normalize(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if out, _, err := transform.String(t, s); err == nil {
		s = out
	}
	s = quoteReplacer.Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

type rule[T any] struct {
	pattern *regexp.Regexp
	value   T
}

func firstMatch[T any](normalized string, rules []rule[T]) *T {
	for _, r := range rules {
		if r.pattern.MatchString(normalized) {
			v := r.value
			return &v
		}
	}
	return nil
}
