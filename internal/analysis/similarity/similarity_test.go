package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatio(t *testing.T) {
	t.Run("identical strings score 1", func(t *testing.T) {
		assert.Equal(t, 1.0, Ratio("acme proposal", "acme proposal"))
	})

	t.Run("both empty score 1", func(t *testing.T) {
		assert.Equal(t, 1.0, Ratio("", ""))
	})

	t.Run("disjoint strings score 0", func(t *testing.T) {
		assert.Equal(t, 0.0, Ratio("aaaa", "zzzz"))
	})

	t.Run("symmetric", func(t *testing.T) {
		a, b := "the quick brown fox", "the quick brown cat"
		assert.Equal(t, Ratio(a, b), Ratio(b, a))
	})

	t.Run("bounded", func(t *testing.T) {
		r := Ratio("partial overlap here", "partial text there")
		assert.Greater(t, r, 0.0)
		assert.Less(t, r, 1.0)
	})
}

func TestNgramOverlap(t *testing.T) {
	t.Run("full template containment", func(t *testing.T) {
		// template contributes exactly one 5-gram, fully covered by the sentence
		got := NgramOverlap("a b c d e f", "a b c d e", 5)
		assert.Equal(t, 1.0, got)
	})

	t.Run("short template scores 0", func(t *testing.T) {
		assert.Equal(t, 0.0, NgramOverlap("anything at all goes here now", "too short", 5))
	})

	t.Run("no shared grams", func(t *testing.T) {
		assert.Equal(t, 0.0, NgramOverlap("one two three four five", "six seven eight nine ten", 5))
	})
}

func TestSimilarAddress(t *testing.T) {
	const threshold = 0.8

	t.Run("same address different unit", func(t *testing.T) {
		assert.True(t, SimilarAddress("123 Main St Suite 400", "123 Main St Suite 100", threshold))
	})

	t.Run("different street numbers never match", func(t *testing.T) {
		assert.False(t, SimilarAddress("123 Main St", "456 Main St", threshold))
	})

	t.Run("empty side never matches", func(t *testing.T) {
		assert.False(t, SimilarAddress("", "123 Main St", threshold))
		assert.False(t, SimilarAddress("123 Main St", "", threshold))
	})

	t.Run("case insensitive", func(t *testing.T) {
		assert.True(t, SimilarAddress("123 MAIN STREET", "123 main street", threshold))
	})

	t.Run("unrelated addresses", func(t *testing.T) {
		assert.False(t, SimilarAddress("77 Industrial Pkwy", "9 Harborview Terrace", threshold))
	})
}

func TestNormalizeFirmName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Acme Inc", "acme"},
		{"Acme, Inc.", "acme"},
		{"ACME LLC", "acme"},
		{"Acme Corporation", "acme"},
		{"Acme Corp Inc", "acme"}, //suffixes strip in sequence
		{"Acme Inc LLC", "acme"},  //stripping one suffix can uncover another
		{"Acme Corp Co", "acme"},
		{"  Acme   Systems  ", "acme systems"},
		{"Nonprofit Collective", "nonprofit collective"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, NormalizeFirmName(c.in), "input %q", c.in)
	}

	t.Run("idempotent", func(t *testing.T) {
		//stacked suffixes are the hard case: a single strip pass would leave
		//"acme inc" after one call and "acme" after two
		for _, in := range []string{"Acme Inc LLC", "Acme Corp Co", "Acme Corp Inc", "Acme Systems"} {
			once := NormalizeFirmName(in)
			assert.Equal(t, once, NormalizeFirmName(once), "input %q", in)
		}
	})
}
