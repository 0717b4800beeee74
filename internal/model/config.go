package model

import (
	"runtime"
	"time"
)

// Config holds the complete gazeta configuration
type Config struct {
	Input        InputConfig        `yaml:"input" json:"input"`
	Output       OutputConfig       `yaml:"output" json:"output"`
	Tagger       TaggerConfig       `yaml:"tagger" json:"tagger"`
	Cache        CacheConfig        `yaml:"cache" json:"cache"`
	Concurrency  ConcurrencyConfig  `yaml:"concurrency" json:"concurrency"`
	RateLimiting RateLimitingConfig `yaml:"rate_limiting" json:"rate_limiting"`
}

// InputConfig configures input locations
type InputConfig struct {
	TextDir    string `yaml:"text_dir" json:"text_dir"`       // Extracted gazette text files (.txt)
	RecordsDir string `yaml:"records_dir" json:"records_dir"` // Companion record sets (.json), read and rewritten
	PDFDir     string `yaml:"pdf_dir" json:"pdf_dir"`         // Source PDFs for the extract command
}

// OutputConfig configures output locations and diagnostics
type OutputConfig struct {
	SegmentsDir string `yaml:"segments_dir" json:"segments_dir"` // Root for per-document segment subdirectories
	Verbose     bool   `yaml:"verbose" json:"verbose"`
}

// TaggerConfig configures the entity tagger capability
type TaggerConfig struct {
	Provider  string `yaml:"provider" json:"provider"` // "prose", "openai"
	Model     string `yaml:"model" json:"model"`       // Provider-specific model name
	APIKey    string `yaml:"-" json:"-"`               // Never persisted; env only
	BaseURL   string `yaml:"base_url" json:"base_url"`
	Timeout   int    `yaml:"timeout" json:"timeout"` // Seconds, per tagging call
	Strict    bool   `yaml:"strict" json:"strict"`   // Reject names not present verbatim in the input
	MaxTokens int    `yaml:"max_tokens" json:"max_tokens"`
}

// CacheConfig configures tagger result caching
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" json:"enabled"`
	Dir     string        `yaml:"dir" json:"dir"` // When set, spans are cached on disk across runs
	TTL     time.Duration `yaml:"ttl" json:"ttl"`
}

// ConcurrencyConfig configures worker counts.
// Only PDF extraction runs concurrently; segmentation is sequential so
// documents are always processed in sorted-filename order.
type ConcurrencyConfig struct {
	ExtractWorkers int `yaml:"extract_workers" json:"extract_workers"`
}

// RateLimitingConfig throttles remote tagger providers
type RateLimitingConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" json:"requests_per_second"`
	BurstSize         int     `yaml:"burst_size" json:"burst_size"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			TextDir:    "./raw_txt",
			RecordsDir: "./records",
			PDFDir:     "./pdf",
		},
		Output: OutputConfig{
			SegmentsDir: "./segments",
		},
		Tagger: TaggerConfig{
			Provider:  "prose",
			Timeout:   30,
			Strict:    true,
			MaxTokens: 1000,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			ExtractWorkers: runtime.NumCPU(),
		},
		RateLimiting: RateLimitingConfig{
			RequestsPerSecond: 2,
			BurstSize:         5,
		},
	}
}
