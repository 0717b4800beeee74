package cli

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/jmpinto/gazeta/internal/extract"
	"github.com/jmpinto/gazeta/internal/worker"
	"github.com/spf13/cobra"
)

var (
	pdfDir         string
	textDir        string
	concurrency    int
	extractTimeout time.Duration
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Convert gazette PDFs to plain text in parallel",
	Long: `Extract converts every PDF in the input directory to a .txt file:
- PDFs are processed concurrently with a configurable worker count
- Files whose text output already exists are skipped
- Pages that fail to decode are skipped, not fatal

Example:
  gazeta extract
  gazeta extract --input ./pdf --output ./raw_txt --concurrency 8`,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVar(&pdfDir, "input", "./pdf", "directory of gazette PDFs")
	extractCmd.Flags().StringVar(&textDir, "output", "./raw_txt", "output directory for text files")
	extractCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	extractCmd.Flags().DurationVar(&extractTimeout, "timeout", 10*time.Minute, "total timeout for extraction")
}

func runExtract(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), extractTimeout)
	defer cancel()

	fmt.Fprintf(os.Stderr, "⚙️  Extracting PDFs from %s with %d workers...\n", pdfDir, concurrency)

	batch := worker.NewBatchExtractor(extract.NewPDFExtractor(), concurrency)
	results, err := batch.ProcessDir(ctx, pdfDir, textDir)
	if err != nil {
		return fmt.Errorf("extract failed: %w", err)
	}

	converted := 0
	skipped := 0
	failed := 0
	for _, r := range results {
		switch {
		case r.Err != nil:
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", r.Source, r.Err)
		case r.Skipped:
			skipped++
			if verbose {
				fmt.Fprintf(os.Stderr, "- %s: output exists\n", r.Source)
			}
		default:
			converted++
			if verbose {
				fmt.Fprintf(os.Stderr, "✓ %s\n", r.Dest)
			}
		}
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Converted: %d\n", converted)
	fmt.Fprintf(os.Stderr, "  Skipped:   %d\n", skipped)
	fmt.Fprintf(os.Stderr, "  Failures:  %d\n", failed)

	if failed > 0 {
		return fmt.Errorf("%d PDF(s) failed", failed)
	}
	return nil
}
