package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// Model names an Anthropic model.
type Model = anthropic.Model

const (
	ModelClaudeSonnet4_5 Model = anthropic.ModelClaudeSonnet4_5_20250929
	ModelClaudeHaiku4_5  Model = anthropic.ModelClaudeHaiku4_5_20251001
)

// DefaultModel is small and fast; readings are short.
var DefaultModel Model = ModelClaudeHaiku4_5

// AnthropicCompleter is a Completer backed by the Anthropic messages API.
type AnthropicCompleter struct {
	client anthropic.Client
	model  Model
}

// NewAnthropicCompleter returns a Completer using apiKey. An empty model
// selects DefaultModel.
func NewAnthropicCompleter(apiKey string, model Model) (*AnthropicCompleter, error) {
	if apiKey == "" {
		return nil, errors.New("ANTHROPIC_API_KEY not set")
	}
	if model == "" {
		model = DefaultModel
	}
	return &AnthropicCompleter{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}, nil
}

func (c *AnthropicCompleter) Complete(ctx context.Context, system, prompt string) (string, error) {
	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: 256,
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic API call failed: %w", err)
	}

	for _, block := range message.Content {
		if textBlock, ok := block.AsAny().(anthropic.TextBlock); ok && textBlock.Text != "" {
			return textBlock.Text, nil
		}
	}
	return "", errors.New("no text content in response")
}
