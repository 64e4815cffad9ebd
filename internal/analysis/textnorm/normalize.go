// Package textnorm holds the text normalization every comparison step shares.
package textnorm

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	sentenceEnd   = regexp.MustCompile(`([.!?])\s+`)
)

// Clean lowercases, collapses whitespace runs (including non-breaking spaces)
// to a single space and trims the ends. Punctuation is preserved.
func Clean(text string) string {
	text = strings.ToLower(text)
	text = strings.ReplaceAll(text, " ", " ")
	text = whitespaceRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// CleanStrict additionally drops every character that is not alphanumeric or
// whitespace. This is lossy on purpose: page-level template comparison wants
// punctuation noise gone. Callers that need sentence boundaries must split
// before normalizing with this.
func CleanStrict(text string) string {
	text = strings.ToLower(text)
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// SplitSentences splits on terminal punctuation followed by whitespace. This
// mirrors the lookbehind split the extraction layer uses and knowingly
// mis-splits on abbreviations ("Dr. Smith" becomes two sentences); treat that
// as a documented limitation of the heuristic, not something to patch here.
func SplitSentences(text string) []string {
	marked := sentenceEnd.ReplaceAllString(text, "$1\x00")
	parts := strings.Split(marked, "\x00")
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}

// Ngrams returns the set of n-word shingles of text. Fewer than n words
// yields an empty set.
func Ngrams(text string, n int) map[string]struct{} {
	words := strings.Fields(text)
	grams := make(map[string]struct{})
	if len(words) < n {
		return grams
	}
	for i := 0; i+n <= len(words); i++ {
		grams[strings.Join(words[i:i+n], " ")] = struct{}{}
	}
	return grams
}
