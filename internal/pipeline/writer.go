package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmpinto/gazeta/internal/model"
	"github.com/jmpinto/gazeta/internal/store"
)

// Writer persists a processed document: one text file per entry under
// <segmentsDir>/<document stem>/, plus a record set JSON next to the
// other record sets.
type Writer struct {
	segmentsDir string
	recordsDir  string
}

// NewWriter creates a writer for the given output directories
func NewWriter(segmentsDir, recordsDir string) *Writer {
	return &Writer{segmentsDir: segmentsDir, recordsDir: recordsDir}
}

// Write saves all segments and the record set for doc. Segment paths
// are filled in on the entries before the record set is built, so the
// JSON points at files that exist.
func (w *Writer) Write(doc *model.Document) error {
	stem := strings.TrimSuffix(doc.Filename, filepath.Ext(doc.Filename))
	dir := filepath.Join(w.segmentsDir, stem)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create segments dir: %w", err)
	}

	seen := make(map[string]bool)
	for i := range doc.Entries {
		name := store.SanitizeFilename(doc.Entries[i].Title) + ".txt"
		if seen[name] {
			continue
		}
		seen[name] = true

		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(doc.Entries[i].Chunk), 0644); err != nil {
			return fmt.Errorf("write segment: %w", err)
		}
		doc.Entries[i].SegmentPath = path
	}

	recordsPath := filepath.Join(w.recordsDir, stem+".json")
	if err := store.Save(recordsPath, doc.Titles(), doc.Records()); err != nil {
		return fmt.Errorf("save records: %w", err)
	}
	return nil
}
