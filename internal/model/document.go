package model

// MatchCategory classifies a structural header match in gazette text
type MatchCategory string

const (
	CategorySectionBanner MatchCategory = "section_banner" // All-caps two-line department heading
	CategoryActHeader     MatchCategory = "act_header"     // Act-type keyword + ordinal number
	CategoryMasthead      MatchCategory = "masthead"       // Recurring date/issue running-header block
	CategorySummaryStart  MatchCategory = "summary_start"  // "Sumário" marker opening the summary region
	CategorySummaryEnd    MatchCategory = "summary_end"    // Composite block closing the summary region
)

// HeaderMatch is a tagged span over the normalized document text.
// Offsets are byte positions satisfying text[Start:End] == Text.
type HeaderMatch struct {
	Category MatchCategory `json:"category"`
	Text     string        `json:"text"`
	Start    int           `json:"start"`
	End      int           `json:"end"`
}

// TagSpan is a span returned by an entity tagger implementation
type TagSpan struct {
	Category string `json:"category"` // e.g. "PERSON"
	Text     string `json:"text"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
}

// CategoryPerson is the tag category all tagger providers must support
const CategoryPerson = "PERSON"

// Entry represents one legal-act record extracted from a document
type Entry struct {
	Title       string   // Act header text with embedded newlines removed; unique per document
	Chunk       string   // Segment text attributed to this act
	Section     string   // Last section banner seen before the act header
	People      []string // Cleaned person names extracted from the chunk
	Series      string   // Publication series derived from the source filename
	Date        string   // Publication date (YYYY-MM-DD) or empty
	SegmentPath string   // Path of the written segment artifact
	Source      string   // Source document identifier (filename)
}

// EntryMeta is the serialized form of an Entry in a record set
type EntryMeta struct {
	Path    string   `json:"path"`
	People  []string `json:"people"`
	Series  string   `json:"series"`
	Date    string   `json:"date"`
	Section string   `json:"section"`
	Source  string   `json:"source"`
}

// RecordSet maps act-header titles to their metadata objects.
// The list form is retained for forward compatibility; the segmentation
// policy only ever populates the first element.
type RecordSet map[string][]EntryMeta

// Meta converts an Entry to its serialized form
func (e *Entry) Meta() EntryMeta {
	people := e.People
	if people == nil {
		people = []string{}
	}
	return EntryMeta{
		Path:    e.SegmentPath,
		People:  people,
		Series:  e.Series,
		Date:    e.Date,
		Section: e.Section,
		Source:  e.Source,
	}
}

// Document is one input text file being processed
type Document struct {
	Filename    string  // Base name of the source file
	RawText     string  // Text as read from disk (CRLF-normalized)
	CleanedText string  // Text after boilerplate removal
	Entries     []Entry // Ordered per-act entries (source order)
}

// Records builds the record set for a document, first occurrence wins
func (d *Document) Records() RecordSet {
	rs := make(RecordSet, len(d.Entries))
	for i := range d.Entries {
		e := &d.Entries[i]
		if _, exists := rs[e.Title]; exists {
			continue
		}
		rs[e.Title] = []EntryMeta{e.Meta()}
	}
	return rs
}

// Titles returns entry titles in source order, without duplicates
func (d *Document) Titles() []string {
	seen := make(map[string]bool, len(d.Entries))
	var titles []string
	for i := range d.Entries {
		t := d.Entries[i].Title
		if !seen[t] {
			seen[t] = true
			titles = append(titles, t)
		}
	}
	return titles
}
