package memory

import "strings"

// punctuation stripped from the edges of each token before indexing.
const punctuation = ".,!?;:\"'()[]{}"

// keywordIndex is an inverted index from normalized word to the ordered
// list of fragment ids containing it. A fragment id appears once per
// occurrence of the word in the fragment, which weights retrieval by
// term frequency. Entries are never pruned.
type keywordIndex struct {
	postings map[string][]string
}

func newKeywordIndex() *keywordIndex {
	return &keywordIndex{postings: make(map[string][]string)}
}

func (ix *keywordIndex) add(fragmentID, text string) {
	for _, tok := range tokenize(text) {
		ix.postings[tok] = append(ix.postings[tok], fragmentID)
	}
}

func (ix *keywordIndex) lookup(token string) []string {
	return ix.postings[token]
}

func (ix *keywordIndex) keywords() int {
	return len(ix.postings)
}

// tokenize lowercases, splits on whitespace, strips surrounding
// punctuation and drops tokens of length 3 or less. Queries and stored
// text must go through the same rule or retrieval misses its own index.
func tokenize(s string) []string {
	var out []string
	for _, w := range strings.Fields(strings.ToLower(s)) {
		w = strings.Trim(w, punctuation)
		if len(w) > 3 {
			out = append(out, w)
		}
	}
	return out
}
