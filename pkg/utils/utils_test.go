package utils

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"sherlock", "sherlok", 1},
		{"flaw", "lawn", 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Levenshtein(tt.a, tt.b), "%q vs %q", tt.a, tt.b)
	}
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("Sherlock", "sherlock"))
	assert.Equal(t, 1.0, Similarity("  elsa  ", "elsa"))
	assert.InDelta(t, 0.875, Similarity("sherlock", "sherlok"), 1e-9)
	assert.Less(t, Similarity("goku", "sherlock"), 0.5)
	assert.Equal(t, 1.0, Similarity("", ""))
}

func TestErrJSON(t *testing.T) {
	assert.Equal(t, map[string]any{"error": "boom"}, ErrJSON("boom"))
}

func TestSaveLoadExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	assert.False(t, Exists(path))

	require.NoError(t, Save(path, map[string]string{"k": "v"}))
	assert.True(t, Exists(path))

	got, err := Load[map[string]string](path)
	require.NoError(t, err)
	assert.Equal(t, "v", got["k"])
}
