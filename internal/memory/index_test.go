package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"The Quick brown fox", []string{"quick", "brown"}},
		{"hello, world! (really)", []string{"hello", "world", "really"}},
		{"a is it the fox", nil},
		{"'quoted' [bracketed] {braced}", []string{"quoted", "bracketed", "braced"}},
		{"", nil},
		{"....", nil},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tokenize(tc.in), "input %q", tc.in)
	}
}

func TestIndexDuplicatePostings(t *testing.T) {
	ix := newKeywordIndex()
	ix.add("f1", "brown brown brown")
	ix.add("f2", "brown dogs")

	assert.Equal(t, []string{"f1", "f1", "f1", "f2"}, ix.lookup("brown"))
	assert.Equal(t, []string{"f2"}, ix.lookup("dogs"))
	assert.Nil(t, ix.lookup("missing"))
	assert.Equal(t, 2, ix.keywords())
}

func TestIndexOnlyGrows(t *testing.T) {
	ix := newKeywordIndex()
	ix.add("f1", "alpha words here")
	ix.add("f1", "different words here")

	// re-adding under the same id appends, never retracts
	assert.Equal(t, []string{"f1"}, ix.lookup("alpha"))
	assert.Equal(t, []string{"f1", "f1"}, ix.lookup("words"))
}
