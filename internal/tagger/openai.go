package tagger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/jmpinto/gazeta/internal/model"
)

// OpenAIProvider implements Provider using OpenAI's Chat Completions
// API as a remote named-entity tagger.
type OpenAIProvider struct {
	client *openai.Client
	config Config
}

const openaiSystemPrompt = `You are a named-entity tagger for Portuguese official gazette text.
Given a text, list every full person name that appears in it, one per line, exactly as written in the text.
Do not include titles, job descriptions, organizations, or places.
If no person names appear, respond with the single word NONE.`

// NewOpenAIProvider creates a new OpenAI provider
func NewOpenAIProvider(config Config) (*OpenAIProvider, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}, nil
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string { return "openai" }

// IsAvailable checks if the provider is properly configured
func (p *OpenAIProvider) IsAvailable(ctx context.Context) bool {
	_, err := p.client.ListModels(ctx)
	return err == nil
}

// Tag asks the model for person names and converts them to spans.
// In strict mode a name the model invented (not present verbatim in
// the input) is dropped; offsets only exist for verbatim matches
// anyway.
func (p *OpenAIProvider) Tag(ctx context.Context, text string) ([]model.TagSpan, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	chatModel := p.config.Model
	if chatModel == "" {
		chatModel = openai.GPT4oMini
	}
	maxTokens := p.config.MaxTokens
	if maxTokens == 0 {
		maxTokens = 1000
	}
	timeout := time.Duration(p.config.Timeout) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := p.client.CreateChatCompletion(ctxWithTimeout, openai.ChatCompletionRequest{
		Model: chatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: openaiSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		MaxTokens:   maxTokens,
		Temperature: 0,
	})
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI")
	}

	names := parseNameLines(resp.Choices[0].Message.Content)
	if p.config.Strict {
		var verbatim []string
		for _, name := range names {
			if strings.Contains(text, name) {
				verbatim = append(verbatim, name)
			}
		}
		names = verbatim
	}

	return locate(text, model.CategoryPerson, names), nil
}

// parseNameLines extracts one name per response line, tolerating the
// bullet and numbering prefixes chat models like to add.
func parseNameLines(content string) []string {
	var names []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*•0123456789.) ")
		if line == "" || strings.EqualFold(line, "NONE") {
			continue
		}
		names = append(names, line)
	}
	return names
}
