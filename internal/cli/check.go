package cli

import (
	"fmt"
	"os"

	"github.com/jmpinto/gazeta/internal/validate"
	"github.com/spf13/cobra"
)

var checkRecordsDir string

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate record sets against the segment files on disk",
	Long: `Check reads every record set in the records directory and reports:
- Entries whose segment file is missing
- Entries with a malformed or missing date
- Entries with no series
- Titles that carry more than one entry

Example:
  gazeta check
  gazeta check --records ./records`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkRecordsDir, "records", "./records", "directory of record set JSON files")
}

func runCheck(cmd *cobra.Command, args []string) error {
	findings, err := validate.CheckDir(checkRecordsDir)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	for _, f := range findings {
		fmt.Fprintln(os.Stderr, f.String())
	}

	errors := validate.Count(findings, validate.SeverityError)
	warnings := validate.Count(findings, validate.SeverityWarn)

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Errors:   %d\n", errors)
	fmt.Fprintf(os.Stderr, "  Warnings: %d\n", warnings)

	if errors > 0 {
		return fmt.Errorf("%d error(s) found", errors)
	}
	return nil
}
