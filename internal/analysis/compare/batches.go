package compare

import (
	"context"
	"sync"

	"github.com/akolanti/DupFinder/internal/domain/corpusModel"
	"github.com/akolanti/DupFinder/internal/metrics"
)

// Pair addresses one unordered document pair by index into the corpus slice.
type Pair struct {
	I int
	J int
}

// AllPairs enumerates every unordered pair over n documents in a fixed order,
// so a checkpointed pair count maps back to the same position on resume.
func AllPairs(n int) []Pair {
	var pairs []Pair
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, Pair{I: i, J: j})
		}
	}
	return pairs
}

type pairOutput struct {
	score   corpusModel.PairScore
	matches []corpusModel.Match
	skipped bool
}

// BatchResult aggregates one batch of pair comparisons. Order follows the
// input pair order regardless of which worker computed what.
type BatchResult struct {
	Scores  []corpusModel.PairScore
	Matches []corpusModel.Match
	Skipped int
}

// RunPairs scores the given pairs with a bounded goroutine fan-out. Workers
// partition the pair slice and write into per-pair slots, so no shared state
// is mutated concurrently and no locking is needed. A pair whose document
// lacks page text is logged and skipped; the batch continues.
func (c *Comparator) RunPairs(ctx context.Context, docs []corpusModel.Document, pairs []Pair, window PageWindow, workers int) BatchResult {
	if workers < 1 {
		workers = 1
	}
	outputs := make([]pairOutput, len(pairs))

	var wg sync.WaitGroup
	chunk := (len(pairs) + workers - 1) / workers
	for start := 0; start < len(pairs); start += chunk {
		end := start + chunk
		if end > len(pairs) {
			end = len(pairs)
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for idx := start; idx < end; idx++ {
				if ctx.Err() != nil {
					outputs[idx].skipped = true
					continue
				}
				c.comparePair(docs, pairs[idx], window, &outputs[idx])
			}
		}(start, end)
	}
	wg.Wait()

	result := BatchResult{}
	for _, out := range outputs {
		if out.skipped {
			result.Skipped++
			continue
		}
		result.Scores = append(result.Scores, out.score)
		result.Matches = append(result.Matches, out.matches...)
	}
	return result
}

func (c *Comparator) comparePair(docs []corpusModel.Document, pair Pair, window PageWindow, out *pairOutput) {
	d1 := docs[pair.I]
	d2 := docs[pair.J]

	score, err := c.Compare(d1, d2)
	if err != nil {
		c.logger.Warn("Skipping pair", "doc1", d1.Id, "doc2", d2.Id, "error", err)
		out.skipped = true
		return
	}
	out.score = score
	out.matches = append(out.matches, c.MatchingSentences(d1, d2, window)...)
	out.matches = append(out.matches, c.MatchImages(d1, d2, window)...)
	metrics.IncrementPairsCompared()
}
