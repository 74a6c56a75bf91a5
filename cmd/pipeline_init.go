package main

import (
	"github.com/rotisserie/eris"

	"github.com/sells-group/prepsheet-cli/internal/directory"
	"github.com/sells-group/prepsheet-cli/internal/pipeline"
	"github.com/sells-group/prepsheet-cli/internal/provider"
	anthropicpkg "github.com/sells-group/prepsheet-cli/pkg/anthropic"
	"github.com/sells-group/prepsheet-cli/pkg/openai"
	"github.com/sells-group/prepsheet-cli/pkg/perplexity"
)

// env bundles the shared dependencies built from config.
type env struct {
	Directory    *directory.Directory
	Orchestrator *pipeline.Orchestrator
}

// initEnv loads the dataset and wires up the configured providers. The
// dataset is loaded once here and treated as read-only afterwards.
func initEnv() (*env, error) {
	dir, err := directory.Load(cfg.Data.Path, cfg.Data.Sheet)
	if err != nil {
		return nil, eris.Wrap(err, "load company dataset")
	}

	researcher, err := initResearcher()
	if err != nil {
		return nil, err
	}

	enhancer, err := initEnhancer()
	if err != nil {
		return nil, err
	}

	return &env{
		Directory:    dir,
		Orchestrator: pipeline.New(dir, researcher, enhancer, pipeline.LogObserver{}),
	}, nil
}

func initResearcher() (provider.Researcher, error) {
	switch cfg.Pipeline.ResearchProvider {
	case "openai":
		return provider.NewOpenAIResearcher(initOpenAI(), cfg.OpenAI.ResearchModel), nil
	case "perplexity":
		client := perplexity.NewClient(cfg.Perplexity.Key,
			perplexity.WithBaseURL(cfg.Perplexity.BaseURL),
			perplexity.WithModel(cfg.Perplexity.Model),
		)
		return provider.NewPerplexityResearcher(client, cfg.Perplexity.Model), nil
	default:
		return nil, eris.Errorf("unknown research provider %q", cfg.Pipeline.ResearchProvider)
	}
}

func initEnhancer() (provider.Enhancer, error) {
	switch cfg.Pipeline.EnhanceProvider {
	case "openai":
		return provider.NewOpenAIEnhancer(initOpenAI(), cfg.OpenAI.EnhanceModel), nil
	case "anthropic":
		client := anthropicpkg.NewClient(cfg.Anthropic.Key)
		return provider.NewAnthropicEnhancer(client, cfg.Anthropic.Model, cfg.Anthropic.MaxTokens), nil
	default:
		return nil, eris.Errorf("unknown enhance provider %q", cfg.Pipeline.EnhanceProvider)
	}
}

func initOpenAI() openai.Client {
	opts := []openai.Option{openai.WithBaseURL(cfg.OpenAI.BaseURL)}
	if cfg.OpenAI.RequestsPerSecond > 0 {
		opts = append(opts, openai.WithRateLimit(cfg.OpenAI.RequestsPerSecond))
	}
	return openai.NewClient(cfg.OpenAI.Key, opts...)
}
