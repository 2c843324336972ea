package extract

import (
	"regexp"
	"strings"
)

const (
	weekdays = `lundi|mardi|mercredi|jeudi|vendredi|samedi|dimanche|monday|tuesday|wednesday|thursday|friday|saturday|sunday`
	months   = `janvier|fevrier|mars|avril|mai|juin|juillet|aout|septembre|octobre|novembre|decembre|january|february|march|april|may|june|july|august|september|october|november|december`
	relative = `aujourd'hui|apres-demain|apres demain|demain|ce soir|ce week-end|ce weekend|la semaine prochaine|today|tomorrow|tonight|this weekend|next week`
)

var (
	dateTimePattern = regexp.MustCompile(strings.Join([]string{
		`\b(` + weekdays + `)\b`,
		`\b(` + relative + `)\b`,
		`\b\d{1,2}(er)?\s+(` + months + `)\b`,
		`\b(` + months + `)\s+\d{1,2}\b`,
		`\b\d{1,2}[/.-]\d{1,2}([/.-]\d{2,4})?\b`,
		`\b\d{1,2}\s*h(\s*\d{2})?\b`,
		`\b\d{1,2}:\d{2}\b`,
		`\b\d{1,2}\s*(am|pm)\b`,
		`\b(midi|minuit|noon|midnight)\b`,
	}, "|"))
	rangeCue   = regexp.MustCompile(`\b(au|jusqu'a|jusqu'au|jusqu a|until|till|to)\b`)
	leadingCue = regexp.MustCompile(`^(et )?(jusqu'a|jusqu'au|jusqu a|until|till|fin|ends?|finishing|se termine)\b`)
)

// DateTimes lists the date and time expressions found in text, in order.
// Nothing is resolved to an instant here.
func DateTimes(text string) []string {
	return dateTimePattern.FindAllString(Normalize(text), -1)
}

func HasDateTime(text string) bool {
	return dateTimePattern.MatchString(Normalize(text))
}

// DateRange splits a message such as "du samedi 14h au dimanche 2h" into
// its start and end expressions. Without a range cue every expression
// belongs to start and end is empty.
func DateRange(text string) (start, end string) {
	normalized := Normalize(text)
	spans := dateTimePattern.FindAllStringIndex(normalized, -1)
	if len(spans) == 0 {
		return "", ""
	}
	cut := -1
	for _, cue := range rangeCue.FindAllStringIndex(normalized, -1) {
		if cue[0] > spans[0][1] {
			cut = cue[0]
			break
		}
	}
	var before, after []string
	for _, span := range spans {
		expr := normalized[span[0]:span[1]]
		if cut >= 0 && span[0] > cut {
			after = append(after, expr)
		} else {
			before = append(before, expr)
		}
	}
	return strings.Join(before, " "), strings.Join(after, " ")
}

// ClosesRange reports whether text opens with an end cue such as
// "jusqu'à dimanche" or "until Sunday".
func ClosesRange(text string) bool {
	return leadingCue.MatchString(Normalize(text))
}
