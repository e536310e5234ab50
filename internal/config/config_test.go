package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 15, cfg.Memory.Level)
	assert.Equal(t, 200, cfg.Memory.ChunkSize)
	assert.Equal(t, 8, cfg.Retrieval.TopK)
	assert.Equal(t, 30, cfg.LLM.TimeoutSecs)
	assert.InDelta(t, 0.3, cfg.LLM.Temperature, 1e-9)
	assert.Equal(t, 500, cfg.LLM.MaxTokens)
}

func TestLoadAppliesDefaultsToPartialConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("llm:\n  base_url: http://localhost:11434/api/chat\n  model: llama3\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:11434/api/chat", cfg.LLM.BaseURL)
	assert.Equal(t, "llama3", cfg.LLM.Model)
	assert.Equal(t, "OPENAI_API_KEY", cfg.LLM.APIKeyEnv)
	assert.Equal(t, 15, cfg.Memory.Level)
	assert.Equal(t, 8, cfg.Retrieval.TopK)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	want := &AppConfig{
		Memory:    MemoryConfig{Level: 10, ChunkSize: 100},
		Retrieval: RetrievalConfig{TopK: 4},
		LLM:       LLMConfig{BaseURL: "http://x", APIKeyEnv: "KEY", Model: "m", TimeoutSecs: 5, Temperature: 0.7, MaxTokens: 64},
	}
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("memory: ["), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}
