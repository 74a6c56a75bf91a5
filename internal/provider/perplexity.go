package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/prepsheet-cli/pkg/perplexity"
)

// PerplexityResearcher runs stage 1 on Perplexity's search-grounded sonar
// models. Returned citations are appended to the report as a sources list so
// the enhancement stage can preserve them.
type PerplexityResearcher struct {
	client perplexity.Client
	model  string
}

// NewPerplexityResearcher creates a researcher backed by Perplexity.
func NewPerplexityResearcher(client perplexity.Client, model string) *PerplexityResearcher {
	return &PerplexityResearcher{client: client, model: model}
}

func (r *PerplexityResearcher) Research(ctx context.Context, instructions, task string) (string, error) {
	resp, err := r.client.ChatCompletion(ctx, perplexity.ChatCompletionRequest{
		Model: r.model,
		Messages: []perplexity.Message{
			{Role: "system", Content: instructions},
			{Role: "user", Content: task},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", eris.New("perplexity: completion returned no choices")
	}

	text := resp.Choices[0].Message.Content
	if len(resp.Citations) == 0 {
		return text, nil
	}

	var sb strings.Builder
	sb.WriteString(text)
	sb.WriteString("\n\n## Sources\n")
	for i, c := range resp.Citations {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, c)
	}
	return sb.String(), nil
}
