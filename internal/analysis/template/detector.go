// Package template finds the fixed form language that recurs across a corpus
// so downstream comparison only scores case-specific content.
package template

import (
	"errors"
	"math"
	"sort"

	"github.com/akolanti/DupFinder/internal/analysis/similarity"
	"github.com/akolanti/DupFinder/internal/analysis/textnorm"
	"github.com/akolanti/DupFinder/internal/config"
	"github.com/akolanti/DupFinder/internal/domain/corpusModel"
	"github.com/akolanti/DupFinder/pkg/logger_i"
)

// ErrCorpusTooSmall is returned when template detection is requested for
// fewer than 2 documents. Cross-document frequency is undefined there and an
// empty phrase set would be misleading.
var ErrCorpusTooSmall = errors.New("template detection requires at least 2 documents")

type Detector struct {
	cfg    config.Thresholds
	logger *logger_i.Logger
}

// Result is the corpus-scope template set, rebuilt per run.
type Result struct {
	// representative normalized page strings flagged as template pages
	Pages []string
	// normalized n-gram phrases whose document frequency crossed the threshold
	Phrases map[string]struct{}

	pageSimilarity   float64
	ngramSize        int
	ngramSkipOverlap float64
}

// NewResultFromPhrases builds a template set from an externally supplied
// phrase list, for corpora whose form language was mined in an earlier run.
func NewResultFromPhrases(cfg config.Thresholds, phrases []string) *Result {
	result := &Result{
		Phrases:          make(map[string]struct{}, len(phrases)),
		pageSimilarity:   cfg.PageSimilarity,
		ngramSize:        cfg.NgramSize,
		ngramSkipOverlap: cfg.NgramSkipOverlap,
	}
	for _, p := range phrases {
		for gram := range textnorm.Ngrams(textnorm.CleanStrict(p), cfg.NgramSize) {
			result.Phrases[gram] = struct{}{}
		}
	}
	return result
}

func NewDetector(cfg config.Thresholds) *Detector {
	return &Detector{
		cfg:    cfg,
		logger: logger_i.NewLogger("TemplateDetector"),
	}
}

// Detect runs both strategies over the corpus: greedy representative matching
// at page level and n-gram document frequency at phrase level. Documents are
// walked in sorted-id order so the greedy representative choice, which is
// order dependent by nature, is at least deterministic per corpus.
func (d *Detector) Detect(docs []corpusModel.Document) (*Result, error) {
	if len(docs) < 2 {
		return nil, ErrCorpusTooSmall
	}

	ordered := make([]corpusModel.Document, len(docs))
	copy(ordered, docs)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Id < ordered[j].Id })

	result := &Result{
		Phrases:          make(map[string]struct{}),
		pageSimilarity:   d.cfg.PageSimilarity,
		ngramSize:        d.cfg.NgramSize,
		ngramSkipOverlap: d.cfg.NgramSkipOverlap,
	}

	d.detectTemplatePages(ordered, result)
	d.detectTemplatePhrases(ordered, result)

	d.logger.Info("Template detection complete",
		"documents", len(ordered), "templatePages", len(result.Pages), "templatePhrases", len(result.Phrases))
	return result, nil
}

// detectTemplatePages tracks one representative string per distinct page.
// The first occurrence wins as the canonical string; every later page is
// compared against existing representatives until a match or exhaustion.
func (d *Detector) detectTemplatePages(docs []corpusModel.Document, result *Result) {
	var representatives []string
	occurrences := make(map[string]map[string]struct{}) //representative -> doc ids containing it

	for _, doc := range docs {
		for _, page := range doc.Pages() {
			cleaned := textnorm.CleanStrict(doc.TextByPage[page])
			if cleaned == "" {
				continue
			}
			matched := ""
			for _, rep := range representatives {
				if similarity.Ratio(cleaned, rep) > d.cfg.PageSimilarity {
					matched = rep
					break
				}
			}
			if matched == "" {
				matched = cleaned
				representatives = append(representatives, cleaned)
				occurrences[cleaned] = make(map[string]struct{})
			}
			occurrences[matched][doc.Id] = struct{}{}
		}
	}

	needed := int(math.Ceil(d.cfg.PageDocFraction * float64(len(docs))))
	for _, rep := range representatives {
		if len(occurrences[rep]) >= needed {
			result.Pages = append(result.Pages, rep)
		}
	}
}

// detectTemplatePhrases slides an n-word window over every page and counts
// cross-document frequency per phrase, once per document regardless of how
// many pages repeat it.
func (d *Detector) detectTemplatePhrases(docs []corpusModel.Document, result *Result) {
	docFrequency := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, page := range doc.Pages() {
			for gram := range textnorm.Ngrams(textnorm.CleanStrict(doc.TextByPage[page]), d.cfg.NgramSize) {
				seen[gram] = struct{}{}
			}
		}
		for gram := range seen {
			docFrequency[gram]++
		}
	}

	needed := int(math.Floor(d.cfg.PhraseDocFraction * float64(len(docs))))
	if needed < 2 {
		needed = 2
	}
	for gram, freq := range docFrequency {
		if freq >= needed {
			result.Phrases[gram] = struct{}{}
		}
	}
}

// IsTemplatePage reports whether a strict-normalized page string matches any
// flagged template page representative.
func (r *Result) IsTemplatePage(cleaned string) bool {
	for _, rep := range r.Pages {
		if similarity.Ratio(cleaned, rep) > r.pageSimilarity {
			return true
		}
	}
	return false
}

// IsTemplateSentence reports whether a sentence is too template-like. A
// sentence is skipped when it covers more than the cutoff fraction of any
// template page's n-grams, or when that fraction of its own n-grams is made
// of flagged boilerplate phrases.
func (r *Result) IsTemplateSentence(sentence string) bool {
	cleaned := textnorm.CleanStrict(sentence)
	for _, rep := range r.Pages {
		if similarity.NgramOverlap(cleaned, rep, r.ngramSize) > r.ngramSkipOverlap {
			return true
		}
	}
	sentGrams := textnorm.Ngrams(cleaned, r.ngramSize)
	if len(sentGrams) == 0 {
		return false
	}
	flagged := 0
	for g := range sentGrams {
		if _, ok := r.Phrases[g]; ok {
			flagged++
		}
	}
	return float64(flagged)/float64(len(sentGrams)) > r.ngramSkipOverlap
}

// FilterDocuments returns copies of docs with template pages removed and
// template-like sentences suppressed from the remaining pages. Inputs are not
// mutated.
func (r *Result) FilterDocuments(docs []corpusModel.Document) []corpusModel.Document {
	filtered := make([]corpusModel.Document, 0, len(docs))
	for _, doc := range docs {
		out := corpusModel.Document{
			Id:       doc.Id,
			Images:   doc.Images,
			FirmInfo: doc.FirmInfo,
		}
		out.TextByPage = make(map[int]string, len(doc.TextByPage))
		for page, text := range doc.TextByPage {
			if r.IsTemplatePage(textnorm.CleanStrict(text)) {
				continue
			}
			kept := make([]string, 0)
			for _, sentence := range textnorm.SplitSentences(textnorm.Clean(text)) {
				if r.IsTemplateSentence(sentence) {
					continue
				}
				kept = append(kept, sentence)
			}
			kept = FilterBoilerplateLines(kept)
			if len(kept) > 0 {
				out.TextByPage[page] = joinLines(kept)
			}
		}
		filtered = append(filtered, out)
	}
	return filtered
}

func joinLines(lines []string) string {
	joined := ""
	for i, l := range lines {
		if i > 0 {
			joined += "\n"
		}
		joined += l
	}
	return joined
}
