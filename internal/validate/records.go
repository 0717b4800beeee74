// Package validate checks record sets after a pipeline run: every
// entry should point at a segment file that exists and carry a
// well-formed date. Findings are reported, never repaired.
package validate

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jmpinto/gazeta/internal/model"
	"github.com/jmpinto/gazeta/internal/store"
)

// Severity of a finding
const (
	SeverityError = "error"
	SeverityWarn  = "warn"
	SeverityInfo  = "info"
)

// Finding is one problem detected in a record set
type Finding struct {
	File     string // Record set file
	Title    string // Offending entry title, if any
	Severity string
	Message  string
}

func (f Finding) String() string {
	if f.Title != "" {
		return fmt.Sprintf("[%s] %s: %q: %s", f.Severity, f.File, f.Title, f.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", f.Severity, f.File, f.Message)
}

// CheckRecordSet validates a single record set file
func CheckRecordSet(path string) []Finding {
	var findings []Finding
	rs, err := store.Load(path)
	if err != nil {
		return []Finding{{
			File:     path,
			Severity: SeverityError,
			Message:  err.Error(),
		}}
	}

	titles := make([]string, 0, len(rs))
	for title := range rs {
		titles = append(titles, title)
	}
	sort.Strings(titles)

	for _, title := range titles {
		for _, meta := range rs[title] {
			findings = append(findings, checkMeta(path, title, meta)...)
		}
		if len(rs[title]) > 1 {
			findings = append(findings, Finding{
				File:     path,
				Title:    title,
				Severity: SeverityInfo,
				Message:  fmt.Sprintf("%d entries share this title", len(rs[title])),
			})
		}
	}
	return findings
}

func checkMeta(path, title string, meta model.EntryMeta) []Finding {
	var findings []Finding

	if meta.Path == "" {
		findings = append(findings, Finding{
			File:     path,
			Title:    title,
			Severity: SeverityError,
			Message:  "entry has no segment path",
		})
	} else if _, err := os.Stat(meta.Path); err != nil {
		findings = append(findings, Finding{
			File:     path,
			Title:    title,
			Severity: SeverityError,
			Message:  fmt.Sprintf("segment file missing: %s", meta.Path),
		})
	}

	if meta.Date != "" {
		if _, err := time.Parse("2006-01-02", meta.Date); err != nil {
			findings = append(findings, Finding{
				File:     path,
				Title:    title,
				Severity: SeverityError,
				Message:  fmt.Sprintf("date %q is not YYYY-MM-DD", meta.Date),
			})
		}
	} else {
		findings = append(findings, Finding{
			File:     path,
			Title:    title,
			Severity: SeverityWarn,
			Message:  "entry has no date",
		})
	}

	if meta.Series == "" {
		findings = append(findings, Finding{
			File:     path,
			Title:    title,
			Severity: SeverityWarn,
			Message:  "entry has no series",
		})
	}
	return findings
}

// CheckDir validates every .json record set under dir
func CheckDir(dir string) ([]Finding, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read records dir: %w", err)
	}

	var findings []Finding
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".json") {
			continue
		}
		findings = append(findings, CheckRecordSet(filepath.Join(dir, e.Name()))...)
	}
	return findings, nil
}

// Count returns the number of findings at the given severity
func Count(findings []Finding, severity string) int {
	n := 0
	for _, f := range findings {
		if f.Severity == severity {
			n++
		}
	}
	return n
}
