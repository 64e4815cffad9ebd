package compare

import (
	"github.com/akolanti/DupFinder/internal/domain/corpusModel"
)

// ImageSimilarity is the Jaccard overlap of the two documents' distinct
// perceptual hash sets, as a percentage. Defined as 0 when either document
// has no images.
func ImageSimilarity(d1, d2 corpusModel.Document) float64 {
	if len(d1.Images) == 0 || len(d2.Images) == 0 {
		return 0
	}
	hashes1 := d1.HashSet()
	hashes2 := d2.HashSet()

	common := 0
	for h := range hashes1 {
		if _, ok := hashes2[h]; ok {
			common++
		}
	}
	union := len(hashes1) + len(hashes2) - common
	if union == 0 {
		return 0
	}
	return float64(common) / float64(union) * 100
}

// MatchImages enumerates image pairs whose hashes are string-equal, with page
// and grid-position provenance from both sides. Matching is exact and
// case-sensitive: hashes are opaque tokens here, and Hamming-distance
// matching would change the recall/precision characteristics, so it stays an
// extension point rather than a behavior.
func (c *Comparator) MatchImages(d1, d2 corpusModel.Document, window PageWindow) []corpusModel.Match {
	var matches []corpusModel.Match
	max1 := d1.MaxPage()
	max2 := d2.MaxPage()

	for _, img1 := range d1.Images {
		if !window.Contains(img1.Page, max1) {
			continue
		}
		for _, img2 := range d2.Images {
			if !window.Contains(img2.Page, max2) {
				continue
			}
			if img1.Hash != img2.Hash {
				continue
			}
			matches = append(matches, corpusModel.Match{
				Type:      corpusModel.MatchTypeImage,
				File1:     d1.Id,
				File2:     d2.Id,
				Page1:     img1.Page,
				Page2:     img2.Page,
				Position1: img1.Position,
				Position2: img2.Position,
			})
		}
	}
	return matches
}
