// Package store reads and writes the companion record sets: one JSON
// file per document, mapping act-header titles to metadata objects.
// Key order in the file follows source order, so the first key is
// always the document's first declared act — the pipeline uses it as
// the front-truncation anchor on re-runs.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmpinto/gazeta/internal/model"
)

// Load reads a record set from path
func Load(path string) (model.RecordSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}
	var rs model.RecordSet
	if err := json.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("parse records: %w", err)
	}
	return rs, nil
}

// Save writes a record set to path with keys in the given title order.
// encoding/json would sort map keys alphabetically, which loses the
// source ordering, so the top-level object is assembled by hand.
func Save(path string, titles []string, rs model.RecordSet) error {
	var b strings.Builder
	b.WriteString("{\n")
	first := true
	for _, title := range titles {
		metas, ok := rs[title]
		if !ok {
			continue
		}
		if !first {
			b.WriteString(",\n")
		}
		first = false

		key, err := json.Marshal(title)
		if err != nil {
			return fmt.Errorf("marshal title: %w", err)
		}
		value, err := json.MarshalIndent(metas, "  ", "  ")
		if err != nil {
			return fmt.Errorf("marshal metadata: %w", err)
		}
		b.WriteString("  ")
		b.Write(key)
		b.WriteString(": ")
		b.Write(value)
	}
	b.WriteString("\n}\n")

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create records dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write records: %w", err)
	}
	return nil
}

// FirstTitle returns the first top-level key of a record set file
// without decoding the whole document. Returns "" when the file has no
// keys; an error only for unreadable or malformed files.
func FirstTitle(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open records: %w", err)
	}
	defer func() { _ = f.Close() }()

	dec := json.NewDecoder(f)
	tok, err := dec.Token()
	if err != nil {
		return "", fmt.Errorf("parse records: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return "", fmt.Errorf("parse records: not a JSON object")
	}
	if !dec.More() {
		return "", nil
	}
	tok, err = dec.Token()
	if err != nil {
		return "", fmt.Errorf("parse records: %w", err)
	}
	key, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("parse records: unexpected key token")
	}
	return key, nil
}

// filenameReplacer maps filesystem-hostile characters and spaces to
// underscores, matching the segment artifact naming scheme.
var filenameReplacer = strings.NewReplacer(
	"\\", "_",
	"/", "_",
	":", "_",
	"*", "_",
	"?", "_",
	"\"", "_",
	"<", "_",
	">", "_",
	"|", "_",
	" ", "_",
)

// SanitizeFilename makes a title safe to use as a file name
func SanitizeFilename(title string) string {
	return filenameReplacer.Replace(title)
}
