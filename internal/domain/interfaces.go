package domain

import "context"

// Document represents a single text file or raw text loaded into the system.
type Document struct {
	ID      string
	Path    string
	Content string
}

// Chunk is a fixed-size group of words cut from a document for storage.
type Chunk struct {
	ID    string
	Text  string
	Index int
}

// StoreResult summarizes the outcome of storing one fragment.
type StoreResult struct {
	ChunkID   string
	States    int
	Integrity bool
}

// LoadSummary aggregates the outcome of storing a whole document.
type LoadSummary struct {
	Chunks           int
	Units            int
	CompressionRatio float64
	IndexedKeywords  int
	Integrity        string
}

// MemoryStats is a snapshot of the fragment memory counters.
type MemoryStats struct {
	Chunks          int
	Units           int
	IndexedKeywords int
	Level           int
	StatesPerUnit   int
	Integrity       string
}

// Chunker splits documents into chunks suitable for fragment storage.
type Chunker interface {
	Chunk(document Document) ([]Chunk, error)
}

// Completer turns a prompt into an answer via a remote completion endpoint.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Memory defines the operations exposed by the fragment memory core.
type Memory interface {
	StoreFragment(id, text string) StoreResult
	StoreDocument(text string) LoadSummary
	Retrieve(query string, topK int) string
	Stats() MemoryStats
}
