// Package compare scores document pairs: a coarse whole-document similarity
// plus sentence- and image-level match enumeration with page provenance.
package compare

import (
	"fmt"
	"unicode/utf8"

	"github.com/akolanti/DupFinder/internal/analysis/similarity"
	"github.com/akolanti/DupFinder/internal/analysis/textnorm"
	"github.com/akolanti/DupFinder/internal/config"
	"github.com/akolanti/DupFinder/internal/domain/corpusModel"
	"github.com/akolanti/DupFinder/pkg/logger_i"
)

type Comparator struct {
	cfg    config.Thresholds
	logger *logger_i.Logger
}

func NewComparator(cfg config.Thresholds) *Comparator {
	return &Comparator{
		cfg:    cfg,
		logger: logger_i.NewLogger("Comparator"),
	}
}

// PageWindow restricts matching to the head and tail pages of each document,
// the plausible contact-info region of standardized forms. The zero value
// (disabled) considers every page; the window is a corpus-specific
// assumption, not a general rule, so callers opt in per run.
type PageWindow struct {
	Enabled bool
	Head    int //pages 1..Head are considered
	Tail    int //the last Tail pages are considered
}

func (w PageWindow) Contains(page, maxPage int) bool {
	if !w.Enabled {
		return true
	}
	return page <= w.Head || page > maxPage-w.Tail
}

// Compare computes the aggregate pair score: the edit ratio over the full
// page-joined text weighted against the image-hash Jaccard similarity. A
// document without page text cannot be scored and returns an error so the
// caller can skip the pairing without aborting the batch.
func (c *Comparator) Compare(d1, d2 corpusModel.Document) (corpusModel.PairScore, error) {
	if len(d1.TextByPage) == 0 {
		return corpusModel.PairScore{}, fmt.Errorf("document %s has no page text", d1.Id)
	}
	if len(d2.TextByPage) == 0 {
		return corpusModel.PairScore{}, fmt.Errorf("document %s has no page text", d2.Id)
	}

	textSim := similarity.Ratio(d1.JoinedText(), d2.JoinedText()) * 100
	imageSim := ImageSimilarity(d1, d2)
	overall := c.cfg.TextWeight*textSim + c.cfg.ImageWeight*imageSim

	return corpusModel.PairScore{
		Doc1:            d1.Id,
		Doc2:            d2.Id,
		TextSimilarity:  textSim,
		ImageSimilarity: imageSim,
		OverallMatch:    overall,
	}, nil
}

// MatchingSentences splits every page of both documents into sentences and
// scores every cross-document sentence pair. Sentences at or below the
// minimum length are excluded up front; they are field labels and template
// fragments, not prose. This inner loop is the dominant cost of a corpus run.
func (c *Comparator) MatchingSentences(d1, d2 corpusModel.Document, window PageWindow) []corpusModel.Match {
	sentences1 := c.collectSentences(d1, window)
	sentences2 := c.collectSentences(d2, window)

	var matches []corpusModel.Match
	for _, s1 := range sentences1 {
		for _, s2 := range sentences2 {
			if similarity.Ratio(s1.text, s2.text) < c.cfg.SentenceSimilarity {
				continue
			}
			matches = append(matches, corpusModel.Match{
				Type:        corpusModel.MatchTypeText,
				File1:       d1.Id,
				File2:       d2.Id,
				Page1:       s1.page,
				Page2:       s2.page,
				MatchedText: truncate(s1.text, 200),
			})
		}
	}
	return matches
}

type pagedSentence struct {
	page int
	text string
}

func (c *Comparator) collectSentences(doc corpusModel.Document, window PageWindow) []pagedSentence {
	maxPage := doc.MaxPage()
	var out []pagedSentence
	for _, page := range doc.Pages() {
		if !window.Contains(page, maxPage) {
			continue
		}
		for _, s := range textnorm.SplitSentences(textnorm.Clean(doc.TextByPage[page])) {
			if len(s) > c.cfg.MinSentenceLength {
				out = append(out, pagedSentence{page: page, text: s})
			}
		}
	}
	return out
}

// truncate cuts s to at most n bytes on a rune boundary, so multi-byte text
// never ends up as broken UTF-8 in stored matches or reports.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
