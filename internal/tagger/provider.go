// Package tagger provides the entity-tagging capability the pipeline
// consumes: given a text span, return spans tagged with a semantic
// category. The pipeline never assumes provider internals, only this
// contract; implementations range from the local statistical model to
// a remote LLM.
package tagger

import (
	"context"
	"strings"

	"github.com/jmpinto/gazeta/internal/model"
)

// Provider defines the interface for entity tagger implementations
type Provider interface {
	// Name returns the provider name
	Name() string

	// Tag returns tagged spans found in text, ordered by position.
	// Empty input yields an empty result, never an error.
	Tag(ctx context.Context, text string) ([]model.TagSpan, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// Config holds tagger provider configuration
type Config struct {
	// Provider name: "prose", "openai"
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for remote providers
	APIKey string

	// BaseURL for custom endpoints
	BaseURL string

	// Timeout for remote calls, in seconds
	Timeout int

	// Strict drops any returned name that does not occur verbatim in
	// the input text (guards against LLM hallucination)
	Strict bool

	// MaxTokens for LLM response generation
	MaxTokens int
}

// DefaultConfig returns sensible defaults: the local model, strict mode on
func DefaultConfig() Config {
	return Config{
		Provider:  "prose",
		Timeout:   30,
		Strict:    true,
		MaxTokens: 1000,
	}
}

// ConfigFromModel converts model.TaggerConfig to tagger.Config
func ConfigFromModel(mc model.TaggerConfig) Config {
	return Config{
		Provider:  mc.Provider,
		Model:     mc.Model,
		APIKey:    mc.APIKey,
		BaseURL:   mc.BaseURL,
		Timeout:   mc.Timeout,
		Strict:    mc.Strict,
		MaxTokens: mc.MaxTokens,
	}
}

// People extracts the PERSON span texts, in order
func People(spans []model.TagSpan) []string {
	var names []string
	for _, s := range spans {
		if s.Category == model.CategoryPerson {
			names = append(names, s.Text)
		}
	}
	return names
}

// locate finds spans for names by scanning forward through text,
// keeping offsets consistent with the source string.
func locate(text string, category string, names []string) []model.TagSpan {
	var spans []model.TagSpan
	searchFrom := 0
	for _, name := range names {
		idx := indexFrom(text, name, searchFrom)
		if idx < 0 {
			// Out-of-order capture; fall back to a full scan
			idx = indexFrom(text, name, 0)
		}
		if idx < 0 {
			continue
		}
		spans = append(spans, model.TagSpan{
			Category: category,
			Text:     name,
			Start:    idx,
			End:      idx + len(name),
		})
		searchFrom = idx + len(name)
	}
	return spans
}

func indexFrom(text, sub string, from int) int {
	if from >= len(text) {
		return -1
	}
	idx := strings.Index(text[from:], sub)
	if idx < 0 {
		return -1
	}
	return from + idx
}
