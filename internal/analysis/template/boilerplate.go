package template

import (
	"regexp"
	"strings"
	"unicode"
)

// field labels and filler values common across standardized application forms
var boilerplateLabels = map[string]struct{}{
	"yes": {}, "no": {}, "n/a": {}, "true": {}, "false": {},
	"description": {}, "duns": {}, "cage": {}, "ueid": {},
	"firm name": {}, "proposal number": {}, "topic number": {},
	"participate": {}, "disclaimer": {},
}

var numberedListPrefix = regexp.MustCompile(`^\d+\. `)

// IsProbableBoilerplate flags a remaining line as likely form furniture rather
// than case-specific content: very short fragments, known field labels,
// symbol-heavy lines, checkbox artifacts and numbered-list items.
func IsProbableBoilerplate(line string) bool {
	if len(line) <= 3 {
		return true
	}
	if _, ok := boilerplateLabels[strings.ToLower(line)]; ok {
		return true
	}
	punct := 0
	for _, r := range line {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			punct++
		}
	}
	if punct > 5 {
		return true
	}
	if strings.Count(line, "[") >= 2 || strings.Count(line, "]") >= 2 {
		return true
	}
	return numberedListPrefix.MatchString(line)
}

// FilterBoilerplateLines drops the lines IsProbableBoilerplate flags. Applied
// after whole template pages are removed, as the secondary cleanup pass.
func FilterBoilerplateLines(lines []string) []string {
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if !IsProbableBoilerplate(line) {
			kept = append(kept, line)
		}
	}
	return kept
}
