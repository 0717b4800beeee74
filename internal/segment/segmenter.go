// Package segment turns ordered header matches into per-act entries.
package segment

import (
	"strings"

	"github.com/jmpinto/gazeta/internal/model"
	"github.com/jmpinto/gazeta/internal/rules"
)

// Segmenter derives ordered, non-overlapping entry chunks from the
// cleaned document text and attributes each to its section banner.
type Segmenter struct {
	lib *rules.Library
}

// NewSegmenter creates a segmenter over the given rule library
func NewSegmenter(lib *rules.Library) *Segmenter {
	return &Segmenter{lib: lib}
}

// Segment walks section banners and act headers in source order,
// maintaining the current section. Policy decisions:
//   - act headers seen before any banner are dropped: an entry without
//     a department attribution is worse than no entry;
//   - chunks that are empty after stripping the banner text are
//     silently skipped (adjacent or degenerate matches);
//   - a title that already produced an entry is ignored on later
//     occurrences, treating reprints and continuations as non-entries.
func (s *Segmenter) Segment(text string) []model.Entry {
	var marks []model.HeaderMatch
	for _, m := range s.lib.Find(text) {
		if m.Category == model.CategorySectionBanner || m.Category == model.CategoryActHeader {
			marks = append(marks, m)
		}
	}

	var entries []model.Entry
	seen := make(map[string]bool)
	section := ""

	for i, m := range marks {
		switch m.Category {
		case model.CategorySectionBanner:
			section = m.Text
		case model.CategoryActHeader:
			if section == "" {
				continue
			}
			title := CleanTitle(m.Text)
			if seen[title] {
				continue
			}
			end := len(text)
			if i+1 < len(marks) {
				end = marks[i+1].Start
			}
			chunk := text[m.Start:end]
			// The banner may have been captured into the chunk when it
			// runs straight into the header.
			chunk = strings.TrimSpace(strings.ReplaceAll(chunk, section, ""))
			if chunk == "" {
				continue
			}
			seen[title] = true
			entries = append(entries, model.Entry{
				Title:   title,
				Chunk:   chunk,
				Section: section,
			})
		}
	}
	return entries
}

// CleanTitle removes embedded line breaks from an act header so it can
// serve as a stable record key.
func CleanTitle(header string) string {
	title := strings.ReplaceAll(header, "\r", "")
	title = strings.ReplaceAll(title, "\n", "")
	return strings.TrimSpace(title)
}
