package similarity

import (
	"regexp"
	"strings"
)

var (
	unitQualifier = regexp.MustCompile(`(?i)(apt|suite|unit)\s*\.?\s*\d+`)
	digitRun      = regexp.MustCompile(`\d+`)
)

// SimilarAddress decides whether two street addresses plausibly refer to the
// same location. Apartment/suite/unit qualifiers are stripped first, then the
// leading street numbers are compared: when both addresses carry a number and
// the numbers differ, they are never similar no matter how close the text is.
// "123 Main St" and "456 Main St" must not be conflated. Only then does the
// edit ratio against threshold decide.
func SimilarAddress(addr1, addr2 string, threshold float64) bool {
	if addr1 == "" || addr2 == "" {
		return false
	}
	clean1 := strings.TrimSpace(unitQualifier.ReplaceAllString(addr1, ""))
	clean2 := strings.TrimSpace(unitQualifier.ReplaceAllString(addr2, ""))

	num1 := digitRun.FindString(clean1)
	num2 := digitRun.FindString(clean2)
	if num1 != "" && num2 != "" && num1 != num2 {
		return false
	}
	return Ratio(strings.ToLower(clean1), strings.ToLower(clean2)) > threshold
}
