package booster

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"ragbooster/internal/chunker"
	"ragbooster/internal/domain"
	"ragbooster/internal/llm"
	"ragbooster/internal/memory"
	"ragbooster/internal/orbital"
)

// Config assembles a Booster. Zero values fall back to the defaults of
// the underlying components (level 15, 200-word chunks, top 8 fragments,
// 30s timeout, temperature 0.3, 500 max tokens).
type Config struct {
	URL         string
	APIKey      string
	Model       string
	Level       int
	ChunkSize   int
	TopK        int
	Timeout     time.Duration
	Temperature float64
	MaxTokens   int
	Rand        *rand.Rand
}

// Booster is an explicit handle over fragment memory and a completion
// endpoint. It is created by New and never shared implicitly; callers
// thread it through subsequent Load/Ask/Stats calls themselves.
type Booster struct {
	model     string
	topK      int
	memory    domain.Memory
	completer domain.Completer
}

// New validates the configuration and wires memory, chunker and
// completion client together.
func New(cfg Config) (*Booster, error) {
	level := cfg.Level
	if level == 0 {
		level = orbital.DefaultLevel
	}
	topK := cfg.TopK
	if topK <= 0 {
		topK = memory.DefaultTopK
	}
	mem, err := memory.New(level, chunker.NewWordChunker(cfg.ChunkSize), cfg.Rand)
	if err != nil {
		return nil, err
	}
	client := llm.NewClient(llm.Config{
		URL:         cfg.URL,
		APIKey:      cfg.APIKey,
		Model:       cfg.Model,
		Timeout:     cfg.Timeout,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
	})
	return &Booster{model: cfg.Model, topK: topK, memory: mem, completer: client}, nil
}

// Load stores a document into fragment memory.
func (b *Booster) Load(text string) domain.LoadSummary {
	return b.memory.StoreDocument(text)
}

// LoadFiles reads .txt files (glob patterns allowed) into memory, one
// document per file, and returns the last summary plus the concatenated
// corpus text.
func (b *Booster) LoadFiles(paths []string) (domain.LoadSummary, string, error) {
	var summary domain.LoadSummary
	var corpus strings.Builder
	loaded := 0
	for _, p := range paths {
		matches, _ := filepath.Glob(p)
		if matches == nil {
			matches = []string{p}
		}
		for _, m := range matches {
			if !strings.HasSuffix(strings.ToLower(m), ".txt") {
				continue
			}
			data, err := os.ReadFile(m)
			if err != nil {
				return domain.LoadSummary{}, "", err
			}
			summary = b.Load(string(data))
			corpus.WriteString("\n")
			corpus.Write(data)
			loaded++
		}
	}
	if loaded == 0 {
		return domain.LoadSummary{}, "", fmt.Errorf("no .txt documents found")
	}
	return summary, corpus.String(), nil
}

// Ask retrieves context for the question, builds the augmented prompt
// and sends it to the completion endpoint. Boundary failures come back
// as an error string rather than an error: memory and index are already
// updated before the call, so there is nothing to roll back.
func (b *Booster) Ask(ctx context.Context, question string, topK int) string {
	if topK <= 0 {
		topK = b.topK
	}
	retrieved := b.memory.Retrieve(question, topK)
	prompt := fmt.Sprintf("Context:\n%s\n\nQuestion: %s\n\nAnswer based on the context above:", retrieved, question)
	answer, err := b.completer.Complete(ctx, prompt)
	if err != nil {
		return "ERROR calling LLM: " + err.Error()
	}
	return answer
}

// Stats returns the current memory statistics.
func (b *Booster) Stats() domain.MemoryStats {
	return b.memory.Stats()
}
