package corpusModel

type MatchType string

const (
	MatchTypeText  MatchType = "Text Match"
	MatchTypeImage MatchType = "Image Match"
)

// PairScore is the coarse whole-document comparison for one unordered pair.
// Similarities are percentages.
type PairScore struct {
	Doc1            string  `json:"doc1"`
	Doc2            string  `json:"doc2"`
	TextSimilarity  float64 `json:"text_similarity"`
	ImageSimilarity float64 `json:"image_similarity"`
	OverallMatch    float64 `json:"overall_match"`
}

// Match is one matched sentence pair or image pair with page provenance.
type Match struct {
	Type        MatchType `json:"match_type"`
	File1       string    `json:"file1"`
	File2       string    `json:"file2"`
	Page1       int       `json:"page1"`
	Page2       int       `json:"page2"`
	Position1   string    `json:"position1,omitempty"` //image grid cell, empty for text matches
	Position2   string    `json:"position2,omitempty"`
	MatchedText string    `json:"matched_text,omitempty"`
}

// PairSummary is one row of the per-pair summary table, enriched with each
// side's extracted firm contacts when available.
type PairSummary struct {
	File1      string    `json:"file1"`
	File2      string    `json:"file2"`
	TextMatch  bool      `json:"text_match"`
	ImageMatch bool      `json:"image_match"`
	BothMatch  bool      `json:"both_match"`
	Firm1      *FirmInfo `json:"firm1,omitempty"`
	Firm2      *FirmInfo `json:"firm2,omitempty"`
}

// EdgeReason records why two member records were linked. Reasons carry the
// literal shared value, e.g. "shared_phone:555-1212".
type EdgeReason struct {
	I       int      `json:"i"`
	J       int      `json:"j"`
	Reasons []string `json:"reasons"`
}

// DuplicateGroup is one connected component spanning at least two distinct
// normalized firm names.
type DuplicateGroup struct {
	Members       []int        `json:"members"` //indices into the analyzed record slice
	Firms         []string     `json:"firms"`   //distinct normalized firm names, sorted
	Edges         []EdgeReason `json:"edges"`
	RedFlagURLs   []string     `json:"red_flag_urls,omitempty"`   //URLs shared by >1 distinct firm in this group
	RedFlagPhones []string     `json:"red_flag_phones,omitempty"` //phones shared by >1 distinct firm in this group
	TotalAmount   float64      `json:"total_amount"`
}

type ResultStats struct {
	TotalDocuments       int     `json:"total_documents,omitempty"`
	TemplatePages        int     `json:"template_pages,omitempty"`
	TemplatePhrases      int     `json:"template_phrases,omitempty"`
	PairsCompared        int     `json:"pairs_compared,omitempty"`
	HighestMatch         float64 `json:"highest_match,omitempty"`
	LowestMatch          float64 `json:"lowest_match,omitempty"`
	TotalAwards          int     `json:"total_awards,omitempty"`
	DuplicateEntities    int     `json:"duplicate_entities,omitempty"`
	TotalDuplicateAmount float64 `json:"total_duplicate_amount,omitempty"`
}

// AnalysisResult is the full output of one job, stored under the job id.
type AnalysisResult struct {
	JobId     string           `json:"job_id"`
	Kind      string           `json:"kind"`
	Records   []AwardRecord    `json:"records,omitempty"` //the records groups index into
	Pairs     []PairScore      `json:"pairs,omitempty"`
	Matches   []Match          `json:"matches,omitempty"`
	Summaries []PairSummary    `json:"summaries,omitempty"`
	Groups    []DuplicateGroup `json:"groups,omitempty"`
	Stats     ResultStats      `json:"stats"`
}
