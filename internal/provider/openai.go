package provider

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rotisserie/eris"

	"github.com/sells-group/prepsheet-cli/pkg/openai"
)

// OpenAIResearcher runs stage 1 on the OpenAI Responses API with hosted web
// search enabled.
type OpenAIResearcher struct {
	client openai.Client
	model  string
}

// NewOpenAIResearcher creates a researcher backed by the Responses API.
func NewOpenAIResearcher(client openai.Client, model string) *OpenAIResearcher {
	return &OpenAIResearcher{client: client, model: model}
}

func (r *OpenAIResearcher) Research(ctx context.Context, instructions, task string) (string, error) {
	resp, err := r.client.CreateResponse(ctx, openai.ResponseRequest{
		Model:        r.model,
		Instructions: instructions,
		Input:        task,
		Tools:        []openai.Tool{openai.WebSearchTool},
	})
	if err != nil {
		return "", err
	}
	return ExtractResponseText(resp), nil
}

// ExtractResponseText pulls report text out of a Responses envelope,
// degrading through a fallback chain so partial envelopes still yield usable
// output: the first message item's output_text content, then the top-level
// output_text field, then the JSON-encoded envelope.
func ExtractResponseText(resp *openai.Response) string {
	for _, item := range resp.Output {
		if item.Type != "message" {
			continue
		}
		for _, c := range item.Content {
			if c.Type == "output_text" && c.Text != "" {
				return c.Text
			}
		}
	}

	if resp.OutputText != "" {
		return resp.OutputText
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return fmt.Sprintf("%+v", resp)
	}
	return string(raw)
}

// OpenAIEnhancer runs stage 2 on an OpenAI reasoning model via chat
// completions.
type OpenAIEnhancer struct {
	client openai.Client
	model  string
}

// NewOpenAIEnhancer creates an enhancer backed by chat completions.
func NewOpenAIEnhancer(client openai.Client, model string) *OpenAIEnhancer {
	return &OpenAIEnhancer{client: client, model: model}
}

func (e *OpenAIEnhancer) Enhance(ctx context.Context, prompt string) (string, error) {
	resp, err := e.client.ChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    e.model,
		Messages: []openai.Message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", eris.New("openai: completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
