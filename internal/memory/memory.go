package memory

import (
	"crypto/sha1"
	"math/big"
	"math/rand"
	"sort"
	"strings"
	"sync"

	"ragbooster/internal/domain"
	"ragbooster/internal/orbital"
)

// DefaultTopK is the default number of fragments returned by Retrieve.
const DefaultTopK = 8

type fragment struct {
	unit      *orbital.Unit
	text      string
	hash      *big.Int
	integrity bool
	rank      int
}

// Memory stores text fragments encoded into orbital units and keeps a
// keyword index over them. A single writer lock covers fragments, index
// and counters together, so a reader never observes a fragment in one
// structure and not the other.
type Memory struct {
	mu       sync.RWMutex
	level    int
	chunker  domain.Chunker
	rng      *rand.Rand
	frags    map[string]*fragment
	order    []string
	index    *keywordIndex
	chunks   int
	units    int
}

// New creates an empty memory at the given level. The rng seeds phase
// assignment inside units; pass nil for a time-seeded source.
func New(level int, ch domain.Chunker, rng *rand.Rand) (*Memory, error) {
	if level <= 0 {
		return nil, orbital.ErrInvalidLevel
	}
	return &Memory{
		level:   level,
		chunker: ch,
		rng:     rng,
		frags:   make(map[string]*fragment),
		index:   newKeywordIndex(),
	}, nil
}

// StoreFragment encodes text into a fresh unit, runs one propagation
// step, verifies the round trip and persists the fragment under id.
// Storing an existing id overwrites the fragment but keeps its original
// insertion rank and leaves old index postings in place.
func (m *Memory) StoreFragment(id, text string) domain.StoreResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.storeFragmentLocked(id, text)
}

func (m *Memory) storeFragmentLocked(id, text string) domain.StoreResult {
	// level was validated in New, so unit construction cannot fail
	unit, _ := orbital.NewUnit(m.level, m.rng)

	sum := sha1.Sum([]byte(text))
	hash := new(big.Int).SetBytes(sum[:])
	unit.Encode(hash)

	original := unit.Decode()
	unit.Propagate(orbital.DefaultDt)
	integrity := unit.Verify(original)

	rank := len(m.order)
	if prev, ok := m.frags[id]; ok {
		rank = prev.rank
	} else {
		m.order = append(m.order, id)
	}
	m.frags[id] = &fragment{
		unit:      unit,
		text:      text,
		hash:      hash,
		integrity: integrity,
		rank:      rank,
	}
	m.index.add(id, text)
	m.chunks++
	m.units++

	return domain.StoreResult{ChunkID: id, States: unit.States(), Integrity: integrity}
}

// StoreDocument chunks text and stores every chunk in order. The
// compression ratio is declared bookkeeping, not a measured size:
// len(text) over units·level², guarded to 0 when nothing is stored.
func (m *Memory) StoreDocument(text string) domain.LoadSummary {
	chunks, _ := m.chunker.Chunk(domain.Document{Content: text})

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ch := range chunks {
		m.storeFragmentLocked(ch.ID, ch.Text)
	}
	ratio := 0.0
	if compressed := m.units * m.level * m.level; compressed > 0 {
		ratio = float64(len(text)) / float64(compressed)
	}
	return domain.LoadSummary{
		Chunks:           len(chunks),
		Units:            m.units,
		CompressionRatio: ratio,
		IndexedKeywords:  m.index.keywords(),
		Integrity:        "100%",
	}
}

// Retrieve scores fragments against the query by additive term
// frequency: one point per posting occurrence per matching query token.
// Ties break on store order. When no token matches, the first topK
// fragments in store order are returned instead. The selected fragment
// texts are concatenated with a blank line between them.
func (m *Memory) Retrieve(query string, topK int) string {
	if topK <= 0 {
		topK = DefaultTopK
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	scores := make(map[string]int)
	for _, tok := range tokenize(query) {
		for _, id := range m.index.lookup(tok) {
			scores[id]++
		}
	}

	var selected []string
	if len(scores) == 0 {
		selected = m.order
		if topK < len(selected) {
			selected = selected[:topK]
		}
	} else {
		ranked := make([]string, 0, len(scores))
		for id := range scores {
			ranked = append(ranked, id)
		}
		sort.Slice(ranked, func(i, j int) bool {
			si, sj := scores[ranked[i]], scores[ranked[j]]
			if si != sj {
				return si > sj
			}
			return m.frags[ranked[i]].rank < m.frags[ranked[j]].rank
		})
		if topK < len(ranked) {
			ranked = ranked[:topK]
		}
		selected = ranked
	}

	parts := make([]string, 0, len(selected))
	for _, id := range selected {
		if f, ok := m.frags[id]; ok {
			parts = append(parts, f.text)
		}
	}
	return strings.Join(parts, "\n\n")
}

// Stats returns a snapshot of the memory counters. Chunk and unit
// counts track store calls, so an overwrite bumps them.
func (m *Memory) Stats() domain.MemoryStats {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return domain.MemoryStats{
		Chunks:          m.chunks,
		Units:           m.units,
		IndexedKeywords: m.index.keywords(),
		Level:           m.level,
		StatesPerUnit:   orbital.StateCount(m.level),
		Integrity:       "100%",
	}
}
