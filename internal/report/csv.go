// Package report renders analysis results as timestamped CSV tables for the
// downstream reporting layer. Formatting beyond plain CSV is out of scope.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/akolanti/DupFinder/internal/domain/corpusModel"
	"github.com/akolanti/DupFinder/pkg/logger_i"
)

type Writer struct {
	dir    string
	logger *logger_i.Logger
}

func NewWriter(dir string) *Writer {
	return &Writer{
		dir:    dir,
		logger: logger_i.NewLogger("ReportWriter"),
	}
}

func (w *Writer) timestamped(prefix string) string {
	return filepath.Join(w.dir, fmt.Sprintf("%s_%s.csv", prefix, time.Now().Format("20060102_1504")))
}

func (w *Writer) writeAll(path string, header []string, rows [][]string) error {
	if err := os.MkdirAll(w.dir, 0750); err != nil {
		return fmt.Errorf("creating report directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	w.logger.Info("Report written", "path", path, "rows", len(rows))
	return nil
}

// WritePairScores writes the pairwise comparison table sorted by overall
// match, best first.
func (w *Writer) WritePairScores(pairs []corpusModel.PairScore) (string, error) {
	sorted := make([]corpusModel.PairScore, len(pairs))
	copy(sorted, pairs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].OverallMatch > sorted[j].OverallMatch })

	rows := make([][]string, 0, len(sorted))
	for _, p := range sorted {
		rows = append(rows, []string{
			p.Doc1, p.Doc2, percent(p.TextSimilarity), percent(p.ImageSimilarity), percent(p.OverallMatch),
		})
	}
	path := w.timestamped("pdf_comparison")
	return path, w.writeAll(path, []string{"PDF_1", "PDF_2", "Text_Similarity (%)", "Image_Similarity (%)", "Overall_Match (%)"}, rows)
}

// WriteMatches writes the sentence/image match detail table. Text matches
// carry matched text and empty positions; image matches the inverse.
func (w *Writer) WriteMatches(matches []corpusModel.Match) (string, error) {
	rows := make([][]string, 0, len(matches))
	for _, m := range matches {
		rows = append(rows, []string{
			string(m.Type), m.File1, m.File2,
			fmt.Sprintf("Page %d", m.Page1), fmt.Sprintf("Page %d", m.Page2),
			m.Position1, m.Position2, m.MatchedText,
		})
	}
	path := w.timestamped("matches_report")
	return path, w.writeAll(path, []string{"Match Type", "File1", "File2", "File1 Page", "File2 Page", "File1 Position", "File2 Position", "Matched Text"}, rows)
}

// WriteSummary writes the per-pair summary with firm contact enrichment.
func (w *Writer) WriteSummary(summaries []corpusModel.PairSummary) (string, error) {
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, append(append([]string{
			s.File1, s.File2,
			strconv.FormatBool(s.TextMatch), strconv.FormatBool(s.ImageMatch), strconv.FormatBool(s.BothMatch),
		}, firmColumns(s.Firm1)...), firmColumns(s.Firm2)...))
	}
	path := w.timestamped("summary_report")
	header := []string{"File", "Matching File", "Text Match", "Image Match", "Both Match",
		"company1", "address1", "website1", "name1", "phone1",
		"company2", "address2", "website2", "name2", "phone2"}
	return path, w.writeAll(path, header, rows)
}

// WriteDuplicateGroups writes one row per group member, prefixed with the
// group number and the group's shared evidence.
func (w *Writer) WriteDuplicateGroups(groups []corpusModel.DuplicateGroup, records []corpusModel.AwardRecord) (string, error) {
	var rows [][]string
	for groupNum, g := range groups {
		for _, idx := range g.Members {
			if idx < 0 || idx >= len(records) {
				continue
			}
			rec := records[idx]
			rows = append(rows, []string{
				strconv.Itoa(groupNum + 1),
				rec.Firm, rec.CompanyURL, rec.Address1, rec.POCPhone, rec.PIPhone,
				rec.AwardLink, rec.Agency, rec.Branch, rec.AwardAmount,
				strings.Join(g.RedFlagURLs, "; "),
				strings.Join(g.RedFlagPhones, "; "),
				fmt.Sprintf("%.2f", g.TotalAmount),
			})
		}
	}
	path := w.timestamped("duplicate_groups")
	header := []string{"Group", "Firm", "Company URL", "Address", "POC Phone", "PI Phone",
		"Award Link", "Agency", "Branch", "Award Amount", "Shared URLs", "Shared Phones", "Group Total"}
	return path, w.writeAll(path, header, rows)
}

func percent(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func firmColumns(info *corpusModel.FirmInfo) []string {
	if info == nil {
		return []string{"", "", "", "", ""}
	}
	return []string{info.Company, info.Address, info.Website, info.Name, info.Phone}
}
