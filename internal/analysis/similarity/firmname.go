package similarity

import (
	"regexp"
	"strings"
)

var firmWhitespace = regexp.MustCompile(`\s+`)

// corporate suffixes stripped from the end of a normalized name, so
// "Acme Corp Inc" reduces to "acme".
var firmSuffixes = []string{" inc", " llc", " corporation", " corp", " co"}

// NormalizeFirmName canonicalizes a firm name into the identity key used to
// decide "is this the same entity": whitespace collapsed, lowercased, periods
// and commas removed, trailing corporate suffixes stripped. Suffixes are
// stripped until none remain, so stacked registrations like "Acme Inc LLC"
// and "Acme Inc" land on the same key. Idempotent.
func NormalizeFirmName(name string) string {
	n := strings.TrimSpace(firmWhitespace.ReplaceAllString(name, " "))
	n = strings.ToLower(n)
	n = strings.ReplaceAll(n, ".", "")
	n = strings.ReplaceAll(n, ",", "")
	for stripped := true; stripped; {
		stripped = false
		for _, suffix := range firmSuffixes {
			if strings.HasSuffix(n, suffix) {
				n = strings.TrimSpace(strings.TrimSuffix(n, suffix))
				stripped = true
			}
		}
	}
	return n
}
