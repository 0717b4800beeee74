package tagger

import (
	"context"
	"strings"

	prose "github.com/jdkato/prose/v2"

	"github.com/jmpinto/gazeta/internal/model"
)

// ProseProvider implements Provider with the prose statistical NER
// model. Runs fully in-process; the default provider.
type ProseProvider struct{}

// NewProseProvider creates a prose-backed provider
func NewProseProvider() *ProseProvider {
	return &ProseProvider{}
}

// Name returns the provider name
func (p *ProseProvider) Name() string { return "prose" }

// IsAvailable always reports true; the model ships with the binary
func (p *ProseProvider) IsAvailable(ctx context.Context) bool { return true }

// Tag runs NER over text and returns PERSON spans with offsets.
// Offsets are recovered by forward search since prose reports entity
// text without positions.
func (p *ProseProvider) Tag(ctx context.Context, text string) ([]model.TagSpan, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, ent := range doc.Entities() {
		if ent.Label == "PERSON" {
			names = append(names, strings.TrimSpace(ent.Text))
		}
	}
	return locate(text, model.CategoryPerson, names), nil
}
