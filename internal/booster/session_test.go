package booster

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionBeforeInit(t *testing.T) {
	s := NewSession()

	assert.Equal(t, map[string]any{"error": "Not initialized"}, s.Stats())

	load := s.Load("some text")
	assert.Equal(t, "Not initialized. Call init() first.", load["error"])

	ask := s.Ask(context.Background(), "question", 0)
	assert.Equal(t, "ERROR: Not initialized. Call init() first.", ask)
}

func TestSessionInit(t *testing.T) {
	s := NewSession()
	res := s.Init("http://127.0.0.1:1", "", "some-model")
	assert.Equal(t, true, res["success"])
	assert.Equal(t, "some-model", res["model"])
	assert.Equal(t, 1240, res["compression_states"])
}

func TestSessionLoadAndStats(t *testing.T) {
	s := NewSession()
	s.Init("http://127.0.0.1:1", "", "some-model")

	res := s.Load("alpha beta gamma delta epsilon words enough to index")
	assert.Equal(t, true, res["success"])
	assert.Equal(t, 1, res["chunks"])
	assert.Equal(t, "100%", res["integrity"])
	ratio, ok := res["compression_ratio"].(string)
	require.True(t, ok)
	assert.True(t, strings.HasSuffix(ratio, "×"), "ratio %q", ratio)

	st := s.Stats()
	assert.Equal(t, 1, st["chunks"])
	assert.Equal(t, 1, st["units"])
	assert.Equal(t, 15, st["compression_level"])
	assert.Equal(t, 1240, st["states_per_unit"])
	assert.Equal(t, "100%", st["integrity"])
}

func TestSessionStatsAfterInitBeforeLoad(t *testing.T) {
	s := NewSession()
	s.Init("http://127.0.0.1:1", "", "some-model")

	st := s.Stats()
	assert.Equal(t, 0, st["chunks"])
	assert.Equal(t, 0, st["units"])
	assert.Equal(t, 0, st["indexed_keywords"])
}

func TestSessionAskBoundaryFailure(t *testing.T) {
	s := NewSession()
	s.Init("http://127.0.0.1:1", "", "some-model")
	s.Load("document text for retrieval context")

	got := s.Ask(context.Background(), "document text?", 0)
	assert.True(t, strings.HasPrefix(got, "ERROR calling LLM: "), "got %q", got)
}
