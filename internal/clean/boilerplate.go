// Package clean removes the recurring noise a scanned gazette carries
// around its real content: page mastheads, trailing scanner artifacts,
// and the duplicated cover block some documents open with.
package clean

import (
	"strings"

	"github.com/jmpinto/gazeta/internal/model"
	"github.com/jmpinto/gazeta/internal/rules"
)

// Stripper applies positional boilerplate removal using masthead
// matches from the shared rule library.
type Stripper struct {
	lib *rules.Library
}

// NewStripper creates a stripper over the given rule library
func NewStripper(lib *rules.Library) *Stripper {
	return &Stripper{lib: lib}
}

// TruncateAfterLastMasthead keeps the text up to and including the end
// of the last masthead match. Anything past the final masthead is
// assumed to be scanner artifacts or page footers. Text without
// mastheads is returned unchanged.
func (s *Stripper) TruncateAfterLastMasthead(text string) string {
	heads := s.lib.FindCategory(text, model.CategoryMasthead)
	if len(heads) == 0 {
		return text
	}
	return text[:heads[len(heads)-1].End]
}

// StripMastheads removes every masthead span, keeping the remaining
// text contiguous. Run after TruncateAfterLastMasthead so page
// running-headers inside the kept range disappear too.
func (s *Stripper) StripMastheads(text string) string {
	heads := s.lib.FindCategory(text, model.CategoryMasthead)
	if len(heads) == 0 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	prev := 0
	for _, m := range heads {
		b.WriteString(text[prev:m.Start])
		prev = m.End
	}
	b.WriteString(text[prev:])
	return b.String()
}

// TruncateBeforeSecondTitle recovers from documents that repeat their
// own cover block: when title occurs at least twice, everything before
// the second occurrence is discarded (the second occurrence itself is
// kept). With zero or one occurrence the text is returned unchanged.
func TruncateBeforeSecondTitle(text, title string) string {
	if title == "" {
		return text
	}
	first := strings.Index(text, title)
	if first < 0 {
		return text
	}
	second := strings.Index(text[first+len(title):], title)
	if second < 0 {
		return text
	}
	return text[first+len(title)+second:]
}

// NarrowToSummary keeps only the summary region: the text between the
// first summary-start marker and the first summary-end block after it.
// When either marker is missing the full text is returned, so documents
// without a Sumário section still segment.
func (s *Stripper) NarrowToSummary(text string) string {
	var start, end = -1, -1
	for _, m := range s.lib.Find(text) {
		switch m.Category {
		case model.CategorySummaryStart:
			if start < 0 {
				start = m.End
			}
		case model.CategorySummaryEnd:
			if start >= 0 && end < 0 {
				end = m.Start
			}
		}
	}
	if start < 0 || end < 0 || end <= start {
		return text
	}
	return strings.TrimSpace(text[start:end])
}
