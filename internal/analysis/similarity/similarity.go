// Package similarity provides the string, address and firm-name comparison
// primitives shared by template detection, pairwise comparison and entity
// resolution.
package similarity

import (
	"github.com/akolanti/DupFinder/internal/analysis/textnorm"
	"github.com/pmezard/go-difflib/difflib"
)

// Ratio is the Ratcliff/Obershelp longest-matching-blocks similarity in
// [0, 1], computed character-wise. Symmetric, and 1.0 for identical inputs.
func Ratio(a, b string) float64 {
	if a == "" && b == "" {
		return 1.0
	}
	m := difflib.NewMatcher(splitChars(a), splitChars(b))
	return m.Ratio()
}

func splitChars(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// NgramOverlap reports how much of the template's n-gram set a sentence
// covers: |sentence ∩ template| / |template|. Returns 0 when the template has
// fewer than n words. The asymmetry is deliberate; a short boilerplate phrase
// fully contained in a long sentence should still flag the sentence.
func NgramOverlap(sentence, template string, n int) float64 {
	templGrams := textnorm.Ngrams(template, n)
	if len(templGrams) == 0 {
		return 0
	}
	sentGrams := textnorm.Ngrams(sentence, n)
	shared := 0
	for g := range sentGrams {
		if _, ok := templGrams[g]; ok {
			shared++
		}
	}
	return float64(shared) / float64(len(templGrams))
}
