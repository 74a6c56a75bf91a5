package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data.xlsx", cfg.Data.Path)
	assert.Equal(t, "gpt-4o", cfg.OpenAI.ResearchModel)
	assert.Equal(t, "o1-preview", cfg.OpenAI.EnhanceModel)
	assert.Equal(t, "sonar-pro", cfg.Perplexity.Model)
	assert.Equal(t, "openai", cfg.Pipeline.ResearchProvider)
	assert.Equal(t, "openai", cfg.Pipeline.EnhanceProvider)
	assert.Equal(t, int64(8192), cfg.Anthropic.MaxTokens)
	assert.Equal(t, 3, cfg.Batch.MaxConcurrent)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PREP_PIPELINE_RESEARCH_PROVIDER", "perplexity")
	t.Setenv("PREP_DATA_PATH", "companies.xlsx")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "perplexity", cfg.Pipeline.ResearchProvider)
	assert.Equal(t, "companies.xlsx", cfg.Data.Path)
}

func TestInitLogger_BadLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "nope", Format: "json"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse log level")
}
