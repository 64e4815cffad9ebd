package template

import (
	"fmt"
	"testing"

	"github.com/akolanti/DupFinder/internal/config"
	"github.com/akolanti/DupFinder/internal/domain/corpusModel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sharedFormPage = "This standardized cover sheet must accompany every submission. " +
	"Complete all required fields before uploading the package to the portal."

// distinct technical pages, one per document, dissimilar enough that page
// clustering never merges them
var uniquePages = []string{
	"Thermal modeling of the combustor assembly is performed with a spectral element discretization on adaptive meshes.",
	"Our antenna array prototype demonstrates beam steering across the full aperture using phase shifting networks.",
	"Machine vision inspection of weld seams relies on structured light projection and convolutional scoring models.",
	"The biosensor platform couples microfluidic sample handling with impedance spectroscopy readout electronics.",
	"Autonomous route planning for the rover testbed integrates terrain cost maps with receding horizon control.",
	"Cryogenic fluid management experiments quantify boiloff rates under representative launch vibration profiles.",
}

func buildCorpus(n int) []corpusModel.Document {
	docs := make([]corpusModel.Document, 0, n)
	for i := 0; i < n; i++ {
		docs = append(docs, corpusModel.Document{
			Id: fmt.Sprintf("doc%02d.json", i),
			TextByPage: map[int]string{
				1: sharedFormPage,
				2: uniquePages[i%len(uniquePages)],
			},
		})
	}
	return docs
}

func TestDetect_TooSmall(t *testing.T) {
	d := NewDetector(config.DefaultThresholds())
	_, err := d.Detect([]corpusModel.Document{{Id: "only.json"}})
	assert.ErrorIs(t, err, ErrCorpusTooSmall)
}

func TestDetect_FlagsSharedPage(t *testing.T) {
	d := NewDetector(config.DefaultThresholds())
	docs := buildCorpus(6)

	result, err := d.Detect(docs)
	require.NoError(t, err)

	// the cover sheet recurs in all 6 documents, well past ceil(0.6*6)=4
	assert.Len(t, result.Pages, 1)
	assert.True(t, result.IsTemplatePage(result.Pages[0]))

	// a page unique to one document is never a template page
	assert.False(t, result.IsTemplatePage("entirely novel technical content appears on this page only"))
}

func TestDetect_FlagsSharedPhrases(t *testing.T) {
	d := NewDetector(config.DefaultThresholds())
	docs := buildCorpus(6)

	result, err := d.Detect(docs)
	require.NoError(t, err)

	// every shared-page 5-gram has document frequency 6 >= max(2, floor(0.6*6))
	assert.Contains(t, result.Phrases, "this standardized cover sheet must")
	// per-document unique text stays out
	assert.NotContains(t, result.Phrases, "thermal modeling of the combustor")
}

func TestFilterDocuments_RemovesTemplatePages(t *testing.T) {
	d := NewDetector(config.DefaultThresholds())
	docs := buildCorpus(6)

	result, err := d.Detect(docs)
	require.NoError(t, err)

	filtered := result.FilterDocuments(docs)
	require.Len(t, filtered, len(docs))

	for _, doc := range filtered {
		assert.NotContains(t, doc.TextByPage, 1, "template page should be removed from %s", doc.Id)
	}

	// originals are untouched
	assert.Contains(t, docs[0].TextByPage, 1)
}

func TestNewResultFromPhrases(t *testing.T) {
	cfg := config.DefaultThresholds()
	result := NewResultFromPhrases(cfg, []string{
		"this standardized cover sheet must accompany every submission",
	})

	assert.Empty(t, result.Pages)
	assert.Contains(t, result.Phrases, "this standardized cover sheet must")
	assert.True(t, result.IsTemplateSentence("This standardized cover sheet must accompany every submission."))
	assert.False(t, result.IsTemplateSentence("a wholly original sentence describing novel technical work in detail"))
}

func TestIsProbableBoilerplate(t *testing.T) {
	cases := []struct {
		line string
		want bool
	}{
		{"ok", true},                      //too short
		{"Yes", true},                     //field label
		{"[ ] option one [ ] option two", true}, //checkbox artifacts
		{"1. first numbered item", true},
		{"a real sentence with case specific content", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, IsProbableBoilerplate(c.line), "line %q", c.line)
	}
}
