package provider

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/sells-group/prepsheet-cli/pkg/anthropic"
)

// AnthropicEnhancer runs stage 2 on a Claude model.
type AnthropicEnhancer struct {
	client    anthropic.Client
	model     string
	maxTokens int64
}

// NewAnthropicEnhancer creates an enhancer backed by the Anthropic API.
func NewAnthropicEnhancer(client anthropic.Client, model string, maxTokens int64) *AnthropicEnhancer {
	return &AnthropicEnhancer{client: client, model: model, maxTokens: maxTokens}
}

func (e *AnthropicEnhancer) Enhance(ctx context.Context, prompt string) (string, error) {
	resp, err := e.client.CreateMessage(ctx, anthropic.MessageRequest{
		Model:     e.model,
		MaxTokens: e.maxTokens,
		Messages:  []anthropic.Message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", err
	}

	resp.Usage.LogCost(resp.Model, "enhance")

	for _, block := range resp.Content {
		if block.Type == "text" && block.Text != "" {
			return block.Text, nil
		}
	}
	return "", eris.New("anthropic: response contained no text block")
}
