package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jmpinto/gazeta/internal/model"
	"github.com/jmpinto/gazeta/internal/pipeline"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	inputDir       string
	recordsDir     string
	segmentsDir    string
	taggerProvider string
	taggerModel    string
	processTimeout time.Duration
	noCache        bool
	cacheDir       string
)

// processCmd represents the process command
var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Segment gazette text files and build metadata records",
	Long: `Process reads every gazette text file in the input directory and:
- Strips front matter before the first declared act (when a previous
  record set exists for the issue)
- Removes repeated page mastheads
- Cuts the issue into one segment per act header
- Tags the people named in each act and normalizes their names
- Writes segment files and a JSON record set per issue

Example:
  gazeta process
  gazeta process --input ./raw_txt --records ./records --output ./segments
  gazeta process --tagger openai --tagger-model gpt-4o-mini`,
	RunE: runProcess,
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVar(&inputDir, "input", "./raw_txt", "directory of gazette .txt files")
	processCmd.Flags().StringVar(&recordsDir, "records", "./records", "directory of record set JSON files")
	processCmd.Flags().StringVar(&segmentsDir, "output", "./segments", "output directory for segment files")
	processCmd.Flags().StringVar(&taggerProvider, "tagger", "prose", "person tagger provider (prose, openai)")
	processCmd.Flags().StringVar(&taggerModel, "tagger-model", "", "model name for remote taggers")
	processCmd.Flags().DurationVar(&processTimeout, "timeout", 30*time.Minute, "overall processing timeout")
	processCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the tagging cache")
	processCmd.Flags().StringVar(&cacheDir, "cache-dir", "", "persist the tagging cache to this directory")
}

// stringSetting resolves a string option: an explicitly set flag wins,
// then a config-file or GAZETA_* environment value, then the flag default.
func stringSetting(flags *pflag.FlagSet, flag, key, flagValue string) string {
	if !flags.Changed(flag) && viper.IsSet(key) {
		return viper.GetString(key)
	}
	return flagValue
}

// boolSetting resolves a boolean option with the same precedence
func boolSetting(flags *pflag.FlagSet, flag, key string, flagValue bool) bool {
	if !flags.Changed(flag) && viper.IsSet(key) {
		return viper.GetBool(key)
	}
	return flagValue
}

func runProcess(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), processTimeout)
	defer cancel()

	flags := cmd.Flags()
	cfg := model.DefaultConfig()
	cfg.Input.TextDir = stringSetting(flags, "input", "input.text_dir", inputDir)
	cfg.Input.RecordsDir = stringSetting(flags, "records", "input.records_dir", recordsDir)
	cfg.Output.SegmentsDir = stringSetting(flags, "output", "output.segments_dir", segmentsDir)
	cfg.Output.Verbose = verbose
	cfg.Tagger.Provider = stringSetting(flags, "tagger", "tagger.provider", taggerProvider)
	if m := stringSetting(flags, "tagger-model", "tagger.model", taggerModel); m != "" {
		cfg.Tagger.Model = m
	}
	cfg.Cache.Enabled = boolSetting(flags, "no-cache", "cache.enabled", !noCache)
	cfg.Cache.Dir = stringSetting(flags, "cache-dir", "cache.dir", cacheDir)

	if cfg.Tagger.Provider == "openai" {
		cfg.Tagger.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.Tagger.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Input: %s\n", cfg.Input.TextDir)
		fmt.Fprintf(os.Stderr, "Records: %s\n", cfg.Input.RecordsDir)
		fmt.Fprintf(os.Stderr, "Segments: %s\n", cfg.Output.SegmentsDir)
		fmt.Fprintf(os.Stderr, "Tagger: %s\n", cfg.Tagger.Provider)
		fmt.Fprintln(os.Stderr)
	}

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}

	stats, err := p.Run(ctx)
	if err != nil {
		return fmt.Errorf("process failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Documents: %d\n", stats.Documents)
	fmt.Fprintf(os.Stderr, "  Entries:   %d\n", stats.Entries)
	fmt.Fprintf(os.Stderr, "  Skipped:   %d\n", stats.Skipped)
	fmt.Fprintf(os.Stderr, "  Failures:  %d\n", stats.Failed)

	if stats.Failed > 0 {
		return fmt.Errorf("%d document(s) failed", stats.Failed)
	}
	return nil
}
