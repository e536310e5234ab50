package chunker

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"

	"ragbooster/internal/domain"
)

// DefaultChunkSize is the default number of words per chunk.
const DefaultChunkSize = 200

// WordChunker splits text into consecutive fixed-size word groups.
// Each chunk id is a short stable digest of the chunk's own text, so
// identical text always lands under the same id.
type WordChunker struct {
	wordsPerChunk int
}

func NewWordChunker(wordsPerChunk int) *WordChunker {
	if wordsPerChunk <= 0 {
		wordsPerChunk = DefaultChunkSize
	}
	return &WordChunker{wordsPerChunk: wordsPerChunk}
}

func (c *WordChunker) Chunk(document domain.Document) ([]domain.Chunk, error) {
	words := strings.Fields(document.Content)
	if len(words) == 0 {
		return nil, nil
	}
	var chunks []domain.Chunk
	idx := 0
	for i := 0; i < len(words); i += c.wordsPerChunk {
		end := i + c.wordsPerChunk
		if end > len(words) {
			end = len(words)
		}
		text := strings.Join(words[i:end], " ")
		chunks = append(chunks, domain.Chunk{
			ID:    HashID(text),
			Text:  text,
			Index: idx,
		})
		idx++
	}
	return chunks, nil
}

// HashID returns a short content-derived identifier for a piece of text.
func HashID(s string) string {
	h := sha1.Sum([]byte(s))
	return hex.EncodeToString(h[:8])
}
