package booster

import (
	"context"
	"fmt"

	"ragbooster/internal/orbital"
)

// Session is the JSON-facing front over a Booster handle. It exists for
// the process boundary, where every operation must come back as a
// serializable result even before initialization.
type Session struct {
	booster *Booster
}

func NewSession() *Session { return &Session{} }

// Init configures the completion endpoint and resets retrieval state.
func (s *Session) Init(url, apiKey, model string) map[string]any {
	b, err := New(Config{URL: url, APIKey: apiKey, Model: model})
	if err != nil {
		return map[string]any{"error": err.Error()}
	}
	s.booster = b
	return map[string]any{
		"success":            true,
		"model":              model,
		"compression_states": orbital.StateCount(orbital.DefaultLevel),
	}
}

// Load stores a document and reports the declared compression figures.
func (s *Session) Load(text string) map[string]any {
	if s.booster == nil {
		return map[string]any{"error": "Not initialized. Call init() first."}
	}
	sum := s.booster.Load(text)
	return map[string]any{
		"success":           true,
		"chunks":            sum.Chunks,
		"compression_ratio": fmt.Sprintf("%.2f×", sum.CompressionRatio),
		"indexed_keywords":  sum.IndexedKeywords,
		"integrity":         sum.Integrity,
	}
}

// Ask answers a question with retrieved context.
func (s *Session) Ask(ctx context.Context, question string, topK int) string {
	if s.booster == nil {
		return "ERROR: Not initialized. Call init() first."
	}
	return s.booster.Ask(ctx, question, topK)
}

// Stats reports the memory statistics.
func (s *Session) Stats() map[string]any {
	if s.booster == nil {
		return map[string]any{"error": "Not initialized"}
	}
	st := s.booster.Stats()
	return map[string]any{
		"chunks":            st.Chunks,
		"units":             st.Units,
		"indexed_keywords":  st.IndexedKeywords,
		"compression_level": st.Level,
		"states_per_unit":   st.StatesPerUnit,
		"integrity":         st.Integrity,
	}
}
