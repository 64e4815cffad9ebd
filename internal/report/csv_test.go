package report

import (
	"encoding/csv"
	"os"
	"testing"

	"github.com/akolanti/DupFinder/internal/domain/corpusModel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWritePairScores_SortedByMatch(t *testing.T) {
	w := NewWriter(t.TempDir())

	path, err := w.WritePairScores([]corpusModel.PairScore{
		{Doc1: "a.pdf", Doc2: "b.pdf", TextSimilarity: 40, ImageSimilarity: 10, OverallMatch: 31},
		{Doc1: "c.pdf", Doc2: "d.pdf", TextSimilarity: 95, ImageSimilarity: 80, OverallMatch: 90.5},
	})
	require.NoError(t, err)

	rows := readCSV(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"PDF_1", "PDF_2", "Text_Similarity (%)", "Image_Similarity (%)", "Overall_Match (%)"}, rows[0])
	// best match first
	assert.Equal(t, "c.pdf", rows[1][0])
	assert.Equal(t, "90.50", rows[1][4])
	assert.Equal(t, "a.pdf", rows[2][0])
}

func TestWriteMatches(t *testing.T) {
	w := NewWriter(t.TempDir())

	path, err := w.WriteMatches([]corpusModel.Match{
		{Type: corpusModel.MatchTypeText, File1: "a.pdf", File2: "b.pdf", Page1: 3, Page2: 5, MatchedText: "shared sentence"},
		{Type: corpusModel.MatchTypeImage, File1: "a.pdf", File2: "b.pdf", Page1: 1, Page2: 1, Position1: "Top Left", Position2: "Center"},
	})
	require.NoError(t, err)

	rows := readCSV(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, "Text Match", rows[1][0])
	assert.Equal(t, "Page 3", rows[1][3])
	assert.Equal(t, "shared sentence", rows[1][7])
	assert.Equal(t, "Image Match", rows[2][0])
	assert.Equal(t, "Top Left", rows[2][5])
}

func TestWriteSummary_FirmColumns(t *testing.T) {
	w := NewWriter(t.TempDir())

	path, err := w.WriteSummary([]corpusModel.PairSummary{
		{
			File1: "a.pdf", File2: "b.pdf",
			TextMatch: true, ImageMatch: false, BothMatch: false,
			Firm1: &corpusModel.FirmInfo{Company: "Acme Inc", Phone: "555-1111"},
			// Firm2 missing entirely
		},
	})
	require.NoError(t, err)

	rows := readCSV(t, path)
	require.Len(t, rows, 2)
	row := rows[1]
	assert.Equal(t, "true", row[2])
	assert.Equal(t, "false", row[3])
	assert.Equal(t, "Acme Inc", row[5])
	assert.Equal(t, "555-1111", row[9])
	// absent firm info renders as empty cells, not a crash
	assert.Equal(t, "", row[10])
}

func TestWriteDuplicateGroups(t *testing.T) {
	w := NewWriter(t.TempDir())

	records := []corpusModel.AwardRecord{
		{Firm: "Acme Inc", POCPhone: "555-3333", AwardAmount: "$100"},
		{Firm: "Zenith Corp", PIPhone: "555-3333", AwardAmount: "$50"},
	}
	groups := []corpusModel.DuplicateGroup{
		{
			Members:       []int{0, 1},
			Firms:         []string{"acme", "zenith"},
			RedFlagPhones: []string{"555-3333"},
			TotalAmount:   150,
		},
	}

	path, err := w.WriteDuplicateGroups(groups, records)
	require.NoError(t, err)

	rows := readCSV(t, path)
	require.Len(t, rows, 3) //header + one row per member
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "Acme Inc", rows[1][1])
	assert.Equal(t, "Zenith Corp", rows[2][1])
	assert.Equal(t, "555-3333", rows[1][11])
	assert.Equal(t, "150.00", rows[1][12])
}

func TestWriter_CreatesDirectory(t *testing.T) {
	dir := t.TempDir() + "/nested/reports"
	w := NewWriter(dir)

	_, err := w.WritePairScores(nil)
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
