package worker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// TextExtractor converts one document's bytes to plain text
type TextExtractor interface {
	ExtractFile(path string) (string, error)
}

// ExtractJob converts a single PDF to a text file
type ExtractJob struct {
	Source    string
	Dest      string
	Extractor TextExtractor
}

// Execute runs the extraction job
func (j *ExtractJob) Execute(ctx context.Context) Result {
	if err := ctx.Err(); err != nil {
		return &ExtractResult{Source: j.Source, Err: err}
	}
	text, err := j.Extractor.ExtractFile(j.Source)
	if err != nil {
		return &ExtractResult{Source: j.Source, Err: fmt.Errorf("extract: %w", err)}
	}
	if err := os.WriteFile(j.Dest, []byte(text), 0644); err != nil {
		return &ExtractResult{Source: j.Source, Err: fmt.Errorf("write text: %w", err)}
	}
	return &ExtractResult{Source: j.Source, Dest: j.Dest}
}

// ExtractResult is the outcome of one extraction job
type ExtractResult struct {
	Source  string
	Dest    string
	Skipped bool // Output already existed
	Err     error
}

// GetError returns the job error, if any
func (r *ExtractResult) GetError() error { return r.Err }

// BatchExtractor converts a directory of PDFs concurrently
type BatchExtractor struct {
	extractor   TextExtractor
	concurrency int
}

// NewBatchExtractor creates a batch extractor
func NewBatchExtractor(extractor TextExtractor, concurrency int) *BatchExtractor {
	return &BatchExtractor{extractor: extractor, concurrency: concurrency}
}

// ProcessDir converts every .pdf under inDir to a .txt under outDir,
// skipping files whose output already exists. Results come back in
// completion order; skipped files are reported without being queued.
func (b *BatchExtractor) ProcessDir(ctx context.Context, inDir, outDir string) ([]*ExtractResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(inDir)
	if err != nil {
		return nil, fmt.Errorf("read input dir: %w", err)
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	var sources []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			continue
		}
		sources = append(sources, e.Name())
	}
	sort.Strings(sources)

	var results []*ExtractResult
	var jobs []Job
	for _, name := range sources {
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		dest := filepath.Join(outDir, stem+".txt")
		if _, err := os.Stat(dest); err == nil {
			results = append(results, &ExtractResult{
				Source:  filepath.Join(inDir, name),
				Dest:    dest,
				Skipped: true,
			})
			continue
		}
		jobs = append(jobs, &ExtractJob{
			Source:    filepath.Join(inDir, name),
			Dest:      dest,
			Extractor: b.extractor,
		})
	}

	pool := NewPool(b.concurrency)
	for _, result := range pool.Run(jobs) {
		results = append(results, result.(*ExtractResult))
	}

	return results, nil
}
