package pipeline

import (
	"context"
	"fmt"

	"github.com/sells-group/prepsheet-cli/internal/model"
	"github.com/sells-group/prepsheet-cli/internal/provider"
)

// researchStage invokes the search-augmented model and normalizes the outcome
// into a StageResult. Transport and service errors never escape the stage.
type researchStage struct {
	researcher provider.Researcher
}

func (s researchStage) run(ctx context.Context, instructions, task string) model.StageResult {
	text, err := s.researcher.Research(ctx, instructions, task)
	if err != nil {
		detail := err.Error()
		return model.StageResult{
			Text:        "research generation failed: " + detail,
			Failed:      true,
			ErrorDetail: detail,
		}
	}
	return model.StageResult{Text: text}
}

// enhanceStage invokes the reasoning model. On failure the stage-1 report is
// preserved in the result text so already-paid-for research is never lost.
type enhanceStage struct {
	enhancer provider.Enhancer
}

func (s enhanceStage) run(ctx context.Context, prompt, researchReport string) model.StageResult {
	text, err := s.enhancer.Enhance(ctx, prompt)
	if err != nil {
		detail := err.Error()
		return model.StageResult{
			Text:        fmt.Sprintf("enhancement failed: %s\n\nOriginal research report:\n\n%s", detail, researchReport),
			Failed:      true,
			ErrorDetail: detail,
		}
	}
	return model.StageResult{Text: text}
}
