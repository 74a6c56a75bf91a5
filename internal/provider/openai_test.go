package provider

import (
	"context"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/prepsheet-cli/pkg/openai"
)

// fakeOpenAI returns canned responses without network access.
type fakeOpenAI struct {
	response       *openai.Response
	responseErr    error
	completion     *openai.ChatCompletionResponse
	completionErr  error
	lastResponse   openai.ResponseRequest
	lastCompletion openai.ChatCompletionRequest
}

func (f *fakeOpenAI) CreateResponse(_ context.Context, req openai.ResponseRequest) (*openai.Response, error) {
	f.lastResponse = req
	return f.response, f.responseErr
}

func (f *fakeOpenAI) ChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (*openai.ChatCompletionResponse, error) {
	f.lastCompletion = req
	return f.completion, f.completionErr
}

func TestExtractResponseText(t *testing.T) {
	tests := []struct {
		name string
		resp *openai.Response
		want string
	}{
		{
			name: "message_item_text",
			resp: &openai.Response{
				Output: []openai.OutputItem{
					{Type: "web_search_call"},
					{Type: "message", Content: []openai.ContentItem{
						{Type: "refusal"},
						{Type: "output_text", Text: "the report"},
					}},
				},
				OutputText: "top-level fallback",
			},
			want: "the report",
		},
		{
			name: "falls_back_to_output_text",
			resp: &openai.Response{
				Output:     []openai.OutputItem{{Type: "web_search_call"}},
				OutputText: "top-level fallback",
			},
			want: "top-level fallback",
		},
		{
			name: "falls_back_to_stringified_envelope",
			resp: &openai.Response{ID: "resp-9"},
			want: `{"id":"resp-9","output":null,"usage":{"input_tokens":0,"output_tokens":0}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractResponseText(tt.resp))
		})
	}
}

func TestOpenAIResearcher(t *testing.T) {
	fake := &fakeOpenAI{
		response: &openai.Response{
			Output: []openai.OutputItem{
				{Type: "message", Content: []openai.ContentItem{{Type: "output_text", Text: "report"}}},
			},
		},
	}
	r := NewOpenAIResearcher(fake, "gpt-4o")

	got, err := r.Research(context.Background(), "instructions", "task")
	require.NoError(t, err)
	assert.Equal(t, "report", got)
	assert.Equal(t, "gpt-4o", fake.lastResponse.Model)
	assert.Equal(t, "instructions", fake.lastResponse.Instructions)
	assert.Equal(t, "task", fake.lastResponse.Input)
	require.Len(t, fake.lastResponse.Tools, 1)
	assert.Equal(t, "web_search", fake.lastResponse.Tools[0].Type)
}

func TestOpenAIResearcher_Error(t *testing.T) {
	fake := &fakeOpenAI{responseErr: eris.New("quota exceeded")}
	r := NewOpenAIResearcher(fake, "gpt-4o")

	_, err := r.Research(context.Background(), "i", "t")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestOpenAIEnhancer(t *testing.T) {
	fake := &fakeOpenAI{
		completion: &openai.ChatCompletionResponse{
			Choices: []openai.Choice{{Message: openai.Message{Role: "assistant", Content: "enhanced"}}},
		},
	}
	e := NewOpenAIEnhancer(fake, "o1-preview")

	got, err := e.Enhance(context.Background(), "the prompt")
	require.NoError(t, err)
	assert.Equal(t, "enhanced", got)
	require.Len(t, fake.lastCompletion.Messages, 1)
	assert.Equal(t, "user", fake.lastCompletion.Messages[0].Role)
	assert.Equal(t, "the prompt", fake.lastCompletion.Messages[0].Content)
}

func TestOpenAIEnhancer_NoChoices(t *testing.T) {
	fake := &fakeOpenAI{completion: &openai.ChatCompletionResponse{}}
	e := NewOpenAIEnhancer(fake, "o1-preview")

	_, err := e.Enhance(context.Background(), "p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}
