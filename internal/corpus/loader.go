// Package corpus loads the JSON artifacts the external extraction layer
// produces: per-document text/image files, the corpus-wide template file and
// flat award-record lists. Malformed files are diagnostics, not run aborts.
package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/akolanti/DupFinder/internal/domain/corpusModel"
	"github.com/akolanti/DupFinder/pkg/logger_i"
)

const templateFileName = "template_text.json"

type Loader struct {
	logger *logger_i.Logger
}

func NewLoader() *Loader {
	return &Loader{logger: logger_i.NewLogger("CorpusLoader")}
}

// documentFile is the wire shape of one extracted document. Page numbers
// arrive as string keys.
type documentFile struct {
	Filename   string              `json:"filename"`
	TextByPage map[string]string   `json:"text_by_page"`
	Images     []corpusModel.Image `json:"images"`
	FirmInfo   *wireFirmInfo       `json:"firm_info"`
}

type wireFirmInfo struct {
	Company string `json:"company"`
	Address string `json:"address"`
	Website string `json:"website"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
}

// LoadDocuments reads every *.json in dir except the template file, sorted by
// name. maxDocs > 0 caps the corpus to the first maxDocs files, the test-mode
// behavior for keeping O(N^2) runs tractable. A file that fails to parse is
// logged and skipped.
func (l *Loader) LoadDocuments(dir string, maxDocs int) ([]corpusModel.Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading corpus directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") || entry.Name() == templateFileName {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	if maxDocs > 0 && len(names) > maxDocs {
		l.logger.Info("Capping corpus", "available", len(names), "cap", maxDocs)
		names = names[:maxDocs]
	}

	docs := make([]corpusModel.Document, 0, len(names))
	for _, name := range names {
		doc, err := l.loadDocument(filepath.Join(dir, name))
		if err != nil {
			l.logger.Warn("Skipping unreadable document", "file", name, "error", err)
			continue
		}
		docs = append(docs, doc)
	}
	l.logger.Info("Corpus loaded", "documents", len(docs))
	return docs, nil
}

func (l *Loader) loadDocument(path string) (corpusModel.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return corpusModel.Document{}, err
	}
	var wire documentFile
	if err := json.Unmarshal(data, &wire); err != nil {
		return corpusModel.Document{}, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}

	doc := corpusModel.Document{
		Id:     wire.Filename,
		Images: wire.Images,
	}
	if doc.Id == "" {
		doc.Id = filepath.Base(path)
	}
	doc.TextByPage = make(map[int]string, len(wire.TextByPage))
	for key, text := range wire.TextByPage {
		page, err := strconv.Atoi(key)
		if err != nil || page < 1 {
			l.logger.Warn("Dropping page with bad number", "file", doc.Id, "page", key)
			continue
		}
		doc.TextByPage[page] = text
	}
	if wire.FirmInfo != nil {
		doc.FirmInfo = &corpusModel.FirmInfo{
			Company: Sanitize(wire.FirmInfo.Company),
			Address: Sanitize(wire.FirmInfo.Address),
			Website: Sanitize(wire.FirmInfo.Website),
			Name:    Sanitize(wire.FirmInfo.Name),
			Phone:   Sanitize(wire.FirmInfo.Phone),
		}
	}
	return doc, nil
}

// LoadTemplatePhrases reads the corpus-wide template file written by a
// previous detection run: {"template_text": [...]}.
func (l *Loader) LoadTemplatePhrases(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template file: %w", err)
	}
	var wire struct {
		TemplateText []string `json:"template_text"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("parsing template file: %w", err)
	}
	return wire.TemplateText, nil
}

// Sanitize maps the extraction layer's string sentinels ("N/A", "None",
// whitespace) to the empty string, which is the one missing-value
// representation the rest of the pipeline understands. Downstream equality
// checks must never see two records "matching" on a shared "N/A".
func Sanitize(value string) string {
	trimmed := strings.TrimSpace(value)
	switch strings.ToLower(trimmed) {
	case "", "n/a", "none", "null":
		return ""
	}
	return trimmed
}
