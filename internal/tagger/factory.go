package tagger

import (
	"fmt"
	"strings"
)

// NewProvider creates a tagger provider based on configuration
func NewProvider(config Config) (Provider, error) {
	switch strings.ToLower(config.Provider) {
	case "prose", "":
		return NewProseProvider(), nil

	case "openai":
		return NewOpenAIProvider(config)

	default:
		return nil, fmt.Errorf("unknown tagger provider: %s (supported: prose, openai)", config.Provider)
	}
}
