package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Thresholds carries every tunable knob of the detection pipeline. The
// historical script variants disagreed on several of these values, so none of
// them are hardcoded at call sites; an optional TOML file can override any
// field per run.
type Thresholds struct {
	// page-level template detection
	PageSimilarity  float64 `toml:"page_similarity"`   //ratio above which two pages count as the same template page
	PageDocFraction float64 `toml:"page_doc_fraction"` //fraction of documents a page must appear in

	// phrase-level template detection
	NgramSize         int     `toml:"ngram_size"`
	PhraseDocFraction float64 `toml:"phrase_doc_fraction"` //0.5-0.6 aggressive, 0.8-0.9 conservative
	NgramSkipOverlap  float64 `toml:"ngram_skip_overlap"`  //sentence dropped when template n-gram overlap exceeds this

	// pairwise comparison
	SentenceSimilarity float64 `toml:"sentence_similarity"`
	MinSentenceLength  int     `toml:"min_sentence_length"`
	TextWeight         float64 `toml:"text_weight"`
	ImageWeight        float64 `toml:"image_weight"`
	PairBatchSize      int     `toml:"pair_batch_size"`
	CompareWorkers     int     `toml:"compare_workers"`

	// contact-info page window. The first-9/last-11 split matches one specific
	// standardized form layout and is off unless a request opts in.
	ContactWindowHead int `toml:"contact_window_head"`
	ContactWindowTail int `toml:"contact_window_tail"`

	// entity resolution
	AddressSimilarity float64 `toml:"address_similarity"`
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		PageSimilarity:     0.85,
		PageDocFraction:    0.6,
		NgramSize:          5,
		PhraseDocFraction:  0.6,
		NgramSkipOverlap:   0.7,
		SentenceSimilarity: 0.75,
		MinSentenceLength:  50,
		TextWeight:         0.7,
		ImageWeight:        0.3,
		PairBatchSize:      25,
		CompareWorkers:     4,
		ContactWindowHead:  9,
		ContactWindowTail:  11,
		AddressSimilarity:  0.8,
	}
}

// LoadThresholds returns the defaults merged with the TOML file at path, when
// path is non-empty. A missing or malformed file is an error; silently running
// with different thresholds than the operator asked for is worse than failing.
func LoadThresholds(path string) (Thresholds, error) {
	t := DefaultThresholds()
	if path == "" {
		return t, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("reading analysis config: %w", err)
	}
	if err := toml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("parsing analysis config: %w", err)
	}
	return t, nil
}
