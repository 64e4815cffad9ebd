package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/akolanti/DupFinder/internal/domain/corpusModel"
)

// wireAwardRecord tolerates the award API's loose typing: award_amount shows
// up as a number in some responses and a string in others.
type wireAwardRecord struct {
	Firm        string          `json:"firm"`
	CompanyURL  string          `json:"company_url"`
	Address1    string          `json:"address1"`
	Address2    string          `json:"address2"`
	City        string          `json:"city"`
	State       string          `json:"state"`
	Zip         string          `json:"zip"`
	POCPhone    string          `json:"poc_phone"`
	PIPhone     string          `json:"pi_phone"`
	RIPOCPhone  string          `json:"ri_poc_phone"`
	AwardLink   json.RawMessage `json:"award_link"`
	Agency      string          `json:"agency"`
	Branch      string          `json:"branch"`
	AwardAmount json.RawMessage `json:"award_amount"`
}

// LoadAwardRecords reads a JSON array of flat award records and sanitizes
// every attribute. Records without a firm name are dropped; there is no
// identity to resolve without one.
func (l *Loader) LoadAwardRecords(path string) ([]corpusModel.AwardRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading award records: %w", err)
	}
	var wires []wireAwardRecord
	if err := json.Unmarshal(data, &wires); err != nil {
		return nil, fmt.Errorf("parsing award records: %w", err)
	}

	records := make([]corpusModel.AwardRecord, 0, len(wires))
	dropped := 0
	for _, w := range wires {
		rec := corpusModel.AwardRecord{
			Firm:        Sanitize(w.Firm),
			CompanyURL:  Sanitize(w.CompanyURL),
			Address1:    Sanitize(w.Address1),
			Address2:    Sanitize(w.Address2),
			City:        Sanitize(w.City),
			State:       Sanitize(w.State),
			Zip:         Sanitize(w.Zip),
			POCPhone:    Sanitize(w.POCPhone),
			PIPhone:     Sanitize(w.PIPhone),
			RIPOCPhone:  Sanitize(w.RIPOCPhone),
			AwardLink:   Sanitize(rawToString(w.AwardLink)),
			Agency:      Sanitize(w.Agency),
			Branch:      Sanitize(w.Branch),
			AwardAmount: Sanitize(rawToString(w.AwardAmount)),
		}
		if rec.Firm == "" {
			dropped++
			continue
		}
		records = append(records, rec)
	}
	if dropped > 0 {
		l.logger.Warn("Dropped records without firm name", "count", dropped)
	}
	l.logger.Info("Award records loaded", "records", len(records))
	return records, nil
}

// FilterByBranch keeps records matching agency and branch, case-insensitive.
// Empty filters match everything.
func FilterByBranch(records []corpusModel.AwardRecord, agency, branch string) []corpusModel.AwardRecord {
	if agency == "" && branch == "" {
		return records
	}
	var out []corpusModel.AwardRecord
	for _, rec := range records {
		if agency != "" && !strings.EqualFold(rec.Agency, agency) {
			continue
		}
		if branch != "" && !strings.EqualFold(rec.Branch, branch) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func rawToString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%f", f), "0"), ".")
	}
	return ""
}
