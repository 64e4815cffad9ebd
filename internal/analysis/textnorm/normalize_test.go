package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	t.Run("collapses whitespace and lowercases", func(t *testing.T) {
		assert.Equal(t, "hello world", Clean("  Hello \t\n  WORLD  "))
	})

	t.Run("treats non-breaking space as whitespace", func(t *testing.T) {
		assert.Equal(t, "a b", Clean("a  b"))
	})

	t.Run("preserves punctuation", func(t *testing.T) {
		assert.Equal(t, "wait, what?", Clean("Wait,   what?"))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, "", Clean("   "))
	})
}

func TestCleanStrict(t *testing.T) {
	t.Run("strips everything but letters digits and spaces", func(t *testing.T) {
		assert.Equal(t, "phase ii proposal 42", CleanStrict("Phase-II Proposal: #42!"))
	})

	t.Run("idempotent", func(t *testing.T) {
		once := CleanStrict("Some. Text! Here?")
		assert.Equal(t, once, CleanStrict(once))
	})
}

func TestSplitSentences(t *testing.T) {
	t.Run("splits on terminal punctuation", func(t *testing.T) {
		got := SplitSentences("first sentence. second one! third thing? done")
		assert.Equal(t, []string{"first sentence.", "second one!", "third thing?", "done"}, got)
	})

	t.Run("no split without trailing whitespace", func(t *testing.T) {
		got := SplitSentences("version 2.5 of the system")
		assert.Equal(t, []string{"version 2.5 of the system"}, got)
	})

	t.Run("empty input yields nothing", func(t *testing.T) {
		assert.Empty(t, SplitSentences(""))
	})
}

func TestNgrams(t *testing.T) {
	t.Run("shingles of size n", func(t *testing.T) {
		grams := Ngrams("a b c d", 3)
		assert.Len(t, grams, 2)
		assert.Contains(t, grams, "a b c")
		assert.Contains(t, grams, "b c d")
	})

	t.Run("fewer words than n", func(t *testing.T) {
		assert.Empty(t, Ngrams("a b", 5))
	})
}
