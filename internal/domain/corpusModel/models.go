package corpusModel

import (
	"sort"
	"strconv"
	"strings"
)

// Document is one source file's extracted state as produced by the external
// extraction layer. Immutable once loaded; page numbers start at 1.
type Document struct {
	Id         string         `json:"filename"`
	TextByPage map[int]string `json:"text_by_page"`
	Images     []Image        `json:"images,omitempty"`
	FirmInfo   *FirmInfo      `json:"firm_info,omitempty"`
}

// Image is one embedded image reference. Hash is a perceptual hash rendered
// as hex; equality means visual near-identity, not byte-identity.
type Image struct {
	Page     int    `json:"page"`
	File     string `json:"image_file"`
	Hash     string `json:"hash"`
	Position string `json:"position"` //one of 9 grid cells, e.g. "Top Left"
}

type FirmInfo struct {
	Company string `json:"company,omitempty"`
	Address string `json:"address,omitempty"`
	Website string `json:"website,omitempty"`
	Name    string `json:"name,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// Pages returns the page numbers in ascending order.
func (d Document) Pages() []int {
	pages := make([]int, 0, len(d.TextByPage))
	for p := range d.TextByPage {
		pages = append(pages, p)
	}
	sort.Ints(pages)
	return pages
}

func (d Document) MaxPage() int {
	max := 0
	for p := range d.TextByPage {
		if p > max {
			max = p
		}
	}
	return max
}

// JoinedText concatenates all page text in page order.
func (d Document) JoinedText() string {
	var b strings.Builder
	for i, p := range d.Pages() {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(d.TextByPage[p])
	}
	return b.String()
}

// HashSet returns the distinct image hashes of the document.
func (d Document) HashSet() map[string]struct{} {
	hashes := make(map[string]struct{}, len(d.Images))
	for _, img := range d.Images {
		hashes[img.Hash] = struct{}{}
	}
	return hashes
}

// AwardRecord is one firm-entity record. The loader strips the extraction
// layer's "N/A"/"None" sentinels, so an empty string always means absent and
// attribute comparisons never see sentinel text.
type AwardRecord struct {
	Firm        string `json:"firm"`
	CompanyURL  string `json:"company_url,omitempty"`
	Address1    string `json:"address1,omitempty"`
	Address2    string `json:"address2,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	Zip         string `json:"zip,omitempty"`
	POCPhone    string `json:"poc_phone,omitempty"`
	PIPhone     string `json:"pi_phone,omitempty"`
	RIPOCPhone  string `json:"ri_poc_phone,omitempty"`
	AwardLink   string `json:"award_link,omitempty"`
	Agency      string `json:"agency,omitempty"`
	Branch      string `json:"branch,omitempty"`
	AwardAmount string `json:"award_amount,omitempty"`
}

// AmountValue parses the award amount, treating anything non-numeric as 0 so
// one malformed record cannot abort a group total.
func (r AwardRecord) AmountValue() float64 {
	raw := strings.TrimSpace(strings.ReplaceAll(strings.TrimPrefix(r.AwardAmount, "$"), ",", ""))
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}
