// Package pipeline orchestrates the complete gazette run: cleaning,
// segmentation, person tagging, and artifact writing.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/jmpinto/gazeta/internal/cache"
	"github.com/jmpinto/gazeta/internal/clean"
	"github.com/jmpinto/gazeta/internal/model"
	"github.com/jmpinto/gazeta/internal/people"
	"github.com/jmpinto/gazeta/internal/rules"
	"github.com/jmpinto/gazeta/internal/segment"
	"github.com/jmpinto/gazeta/internal/store"
	"github.com/jmpinto/gazeta/internal/tagger"
	"github.com/jmpinto/gazeta/internal/worker"
)

// Gazette text files are named <series>-<YYYY-MM-DD>.txt
var filenameMetaRe = regexp.MustCompile(`^(.+?)-(\d{4}-\d{2}-\d{2})$`)

// Pipeline orchestrates the complete processing run
type Pipeline struct {
	lib        *rules.Library
	stripper   *clean.Stripper
	segmenter  *segment.Segmenter
	normalizer *people.Normalizer
	tagger     *tagger.Tagger
	writer     *Writer
	config     *model.Config
}

// NewPipeline creates a pipeline with the given configuration
func NewPipeline(cfg *model.Config) (*Pipeline, error) {
	provider, err := tagger.NewProvider(tagger.ConfigFromModel(cfg.Tagger))
	if err != nil {
		return nil, fmt.Errorf("create tagger provider: %w", err)
	}

	var c cache.Cache
	if cfg.Cache.Enabled {
		if cfg.Cache.Dir != "" {
			c = cache.NewDisk(cfg.Cache.Dir, cfg.Cache.TTL)
		} else {
			c = cache.NewMemory(cfg.Cache.TTL, 10*cfg.Cache.TTL)
		}
	}

	// The local provider needs no throttling; remote ones do.
	var limiter tagger.Limiter
	if provider.Name() != "prose" {
		limiter = worker.NewLimiter(cfg.RateLimiting.RequestsPerSecond, cfg.RateLimiting.BurstSize)
	}

	lib := rules.NewLibrary()
	return &Pipeline{
		lib:        lib,
		stripper:   clean.NewStripper(lib),
		segmenter:  segment.NewSegmenter(lib),
		normalizer: people.NewNormalizer(),
		tagger:     tagger.New(provider, c, limiter, cfg.Cache.TTL),
		writer:     NewWriter(cfg.Output.SegmentsDir, cfg.Input.RecordsDir),
		config:     cfg,
	}, nil
}

// ProcessDocument runs the full sequence for one text file and returns
// the document with its entries populated. Nothing is written to disk.
func (p *Pipeline) ProcessDocument(ctx context.Context, txtPath string) (*model.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(txtPath)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	filename := filepath.Base(txtPath)
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))
	text := strings.ReplaceAll(string(raw), "\r\n", "\n")

	doc := &model.Document{
		Filename: filename,
		RawText:  text,
	}

	// A previous run's record set gives us the first declared act,
	// which anchors front truncation on re-runs.
	recordsPath := filepath.Join(p.config.Input.RecordsDir, stem+".json")
	if _, err := os.Stat(recordsPath); err == nil {
		if anchor, err := store.FirstTitle(recordsPath); err == nil && anchor != "" {
			text = clean.TruncateBeforeSecondTitle(text, anchor)
		}
	}

	text = p.stripper.NarrowToSummary(text)
	text = p.stripper.TruncateAfterLastMasthead(text)
	text = p.stripper.StripMastheads(text)
	doc.CleanedText = text

	series, date := metaFromFilename(stem)
	if date == "" {
		date = segment.DetectMeta(doc.RawText).Date
	}

	entries := p.segmenter.Segment(text)
	for i := range entries {
		entries[i].Series = series
		entries[i].Date = date
		entries[i].Source = filename

		spans, err := p.tagger.Tag(ctx, entries[i].Chunk)
		if err != nil {
			if ctx.Err() != nil {
				return nil, err
			}
			fmt.Fprintf(os.Stderr, "Warning: tagging failed for %q: %v\n", entries[i].Title, err)
			spans = nil
		}
		entries[i].People = p.normalizer.Clean(tagger.People(spans), entries[i].Chunk)
	}
	doc.Entries = entries

	return doc, nil
}

// RunStats summarizes a full pipeline run
type RunStats struct {
	Documents int
	Entries   int
	Skipped   int // Documents with no structural matches
	Failed    int
}

// Run processes every .txt file under the input directory in name
// order, writing segments and record sets. Per-document failures are
// reported and skipped so one bad file cannot sink the batch.
func (p *Pipeline) Run(ctx context.Context) (*RunStats, error) {
	dirEntries, err := os.ReadDir(p.config.Input.TextDir)
	if err != nil {
		return nil, fmt.Errorf("read input dir: %w", err)
	}

	var names []string
	for _, e := range dirEntries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".txt") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	stats := &RunStats{}
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		doc, err := p.ProcessDocument(ctx, filepath.Join(p.config.Input.TextDir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", name, err)
			stats.Failed++
			continue
		}
		if len(doc.Entries) == 0 {
			// Nothing recognized in this file. Writing would replace any
			// record set from a previous run with an empty one.
			fmt.Fprintf(os.Stderr, "- %s: no act headers found, skipped\n", name)
			stats.Skipped++
			continue
		}
		if err := p.writer.Write(doc); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", name, err)
			stats.Failed++
			continue
		}

		stats.Documents++
		stats.Entries += len(doc.Entries)
		if p.config.Output.Verbose {
			fmt.Fprintf(os.Stderr, "✓ %s: %d entries\n", name, len(doc.Entries))
		}
	}
	return stats, nil
}

// metaFromFilename extracts series and date from a file stem like
// "2-2025-05-28". A stem of another shape becomes the series wholesale,
// with no date.
func metaFromFilename(stem string) (series, date string) {
	m := filenameMetaRe.FindStringSubmatch(stem)
	if m == nil {
		return stem, ""
	}
	return m[1], m[2]
}
