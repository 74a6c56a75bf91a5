package provider

import (
	"context"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/prepsheet-cli/pkg/perplexity"
)

type fakePerplexity struct {
	resp    *perplexity.ChatCompletionResponse
	err     error
	lastReq perplexity.ChatCompletionRequest
}

func (f *fakePerplexity) ChatCompletion(_ context.Context, req perplexity.ChatCompletionRequest) (*perplexity.ChatCompletionResponse, error) {
	f.lastReq = req
	return f.resp, f.err
}

func TestPerplexityResearcher(t *testing.T) {
	fake := &fakePerplexity{
		resp: &perplexity.ChatCompletionResponse{
			Choices: []perplexity.Choice{{Message: perplexity.Message{Role: "assistant", Content: "report"}}},
		},
	}
	r := NewPerplexityResearcher(fake, "sonar-pro")

	got, err := r.Research(context.Background(), "instructions", "task")
	require.NoError(t, err)
	assert.Equal(t, "report", got)

	require.Len(t, fake.lastReq.Messages, 2)
	assert.Equal(t, "system", fake.lastReq.Messages[0].Role)
	assert.Equal(t, "instructions", fake.lastReq.Messages[0].Content)
	assert.Equal(t, "user", fake.lastReq.Messages[1].Role)
}

func TestPerplexityResearcher_AppendsCitations(t *testing.T) {
	fake := &fakePerplexity{
		resp: &perplexity.ChatCompletionResponse{
			Choices:   []perplexity.Choice{{Message: perplexity.Message{Content: "report"}}},
			Citations: []string{"https://canva.com", "https://crunchbase.com/canva"},
		},
	}
	r := NewPerplexityResearcher(fake, "sonar-pro")

	got, err := r.Research(context.Background(), "i", "t")
	require.NoError(t, err)
	assert.Contains(t, got, "report")
	assert.Contains(t, got, "## Sources")
	assert.Contains(t, got, "1. https://canva.com")
	assert.Contains(t, got, "2. https://crunchbase.com/canva")
}

func TestPerplexityResearcher_Error(t *testing.T) {
	fake := &fakePerplexity{err: eris.New("network down")}
	r := NewPerplexityResearcher(fake, "sonar-pro")

	_, err := r.Research(context.Background(), "i", "t")
	require.Error(t, err)
}

func TestPerplexityResearcher_NoChoices(t *testing.T) {
	fake := &fakePerplexity{resp: &perplexity.ChatCompletionResponse{}}
	r := NewPerplexityResearcher(fake, "sonar-pro")

	_, err := r.Research(context.Background(), "i", "t")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}
