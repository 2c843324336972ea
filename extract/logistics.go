package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/tbxark/quoteagent/types"
)

var deliveryRules = []rule[types.DeliveryChoice]{
	{regexp.MustCompile(`\b(retrait|retirer|recuperer|recuperation|pick ?up|pick-up|collect|je passe|on passe|nous passerons|je viendrai)\b`), types.DeliveryPickup},
	{regexp.MustCompile(`\b(livraison|livrer|livrez|livre|livree?s?|delivery|deliver|delivered)\b`), types.DeliveryDelivery},
}

func DeliveryChoice(text string) *types.DeliveryChoice {
	return firstMatch(Normalize(text), deliveryRules)
}

var (
	noInstallation = regexp.MustCompile(`\b(sans|pas d'|pas de|no|without)\s*(installation|montage|install|setup)\b`)
	installation   = regexp.MustCompile(`\b(installation|installer|installez|montage|setup|set up|install)\b`)
)

func WithInstallation(text string) *bool {
	normalized := Normalize(text)
	switch {
	case noInstallation.MatchString(normalized):
		return types.Ptr(false)
	case installation.MatchString(normalized):
		return types.Ptr(true)
	default:
		return nil
	}
}

var (
	departmentNames = []rule[string]{
		{regexp.MustCompile(`\bseine et marne\b`), "77"},
		{regexp.MustCompile(`\bseine saint denis\b`), "93"},
		{regexp.MustCompile(`\bhauts de seine\b`), "92"},
		{regexp.MustCompile(`\bval de marne\b`), "94"},
		{regexp.MustCompile(`\bval d'?oise\b`), "95"},
		{regexp.MustCompile(`\byvelines\b`), "78"},
		{regexp.MustCompile(`\bessonne\b`), "91"},
		{regexp.MustCompile(`\bparis\b`), "75"},
	}
	postalCode       = regexp.MustCompile(`\b(\d{5})\b`)
	departmentAnswer = regexp.MustCompile(`^(?:dans )?(?:le )?(?:departement |dept |dpt )?(\d{1,2})$`)
)

const (
	minDepartment = 1
	maxDepartment = 95
)

// Department recognizes area names, then a postal code, then a reply made
// only of a 1–2 digit code in the metropolitan range ("77", "dans le 77").
func Department(text string) *string {
	if code := LocatedDepartment(text); code != nil {
		return code
	}
	if m := departmentAnswer.FindStringSubmatch(strings.Trim(Normalize(text), " .!,")); m != nil {
		return departmentCode(m[1])
	}
	return nil
}

// LocatedDepartment only trusts area names and postal codes, never a bare
// number.
func LocatedDepartment(text string) *string {
	normalized := strings.ReplaceAll(Normalize(text), "-", " ")
	if code := firstMatch(normalized, departmentNames); code != nil {
		return code
	}
	if code := findPostalCode(normalized); code != "" {
		return departmentCode(code[:2])
	}
	return nil
}

// findPostalCode skips 5-digit numbers that count people, such as
// "10000 personnes".
func findPostalCode(normalized string) string {
	m := postalCode.FindStringSubmatch(peopleNumber.ReplaceAllString(normalized, " "))
	if m == nil {
		return ""
	}
	return m[1]
}

func departmentCode(digits string) *string {
	n, err := strconv.Atoi(digits)
	if err != nil || n < minDepartment || n > maxDepartment {
		return nil
	}
	return types.Ptr(fmt.Sprintf("%02d", n))
}

var streetNoun = regexp.MustCompile(`\b(rue|avenue|av|boulevard|bd|chemin|impasse|allee|route|quai|street|road|lane|drive)\b|\bplace (de|du|des)\b`)

// Address returns the raw text when it looks like a street address or
// carries a postal code.
func Address(text string) *string {
	normalized := Normalize(text)
	if streetNoun.MatchString(normalized) || findPostalCode(normalized) != "" {
		return types.Ptr(strings.TrimSpace(text))
	}
	return nil
}
