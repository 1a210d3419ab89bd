package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/snippet-engine/backend/internal/search"
)

func TestSimilarityIdentical(t *testing.T) {
	for _, s := range []string{"", "a", "kitten", "标题", "long string with spaces"} {
		assert.Equal(t, 1.0, search.Similarity(s, s), "identical strings must score 1 (%q)", s)
	}
}

func TestSimilarityBothEmpty(t *testing.T) {
	// Pinned convention: two empty strings are identical, not undefined
	assert.Equal(t, 1.0, search.Similarity("", ""))
}

func TestSimilarityOneEmpty(t *testing.T) {
	assert.Equal(t, 0.0, search.Similarity("", "abc"))
	assert.Equal(t, 0.0, search.Similarity("abc", ""))
}

func TestSimilarityKittenSitting(t *testing.T) {
	// distance 3, max length 7
	expected := 1.0 - 3.0/7.0

	got := search.Similarity("kitten", "sitting")
	assert.InDelta(t, expected, got, 1e-9)
	assert.InDelta(t, 0.5714, got, 0.0001)
}

func TestSimilaritySymmetric(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"", "abc"},
		{"标题", "标"},
		{"gopher", "go"},
		{"abc", "xyz"},
	}

	for _, p := range pairs {
		assert.Equal(t, search.Similarity(p[0], p[1]), search.Similarity(p[1], p[0]),
			"similarity must be symmetric for %q / %q", p[0], p[1])
	}
}

func TestSimilarityRange(t *testing.T) {
	pairs := [][2]string{
		{"a", "b"},
		{"abcdef", "a"},
		{"标题", "样式"},
		{"same", "same"},
	}

	for _, p := range pairs {
		got := search.Similarity(p[0], p[1])
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 1.0)
	}
}

func TestSimilarityCountsRunesNotBytes(t *testing.T) {
	// One ideograph substituted out of two: distance 1 over max length 2
	assert.InDelta(t, 0.5, search.Similarity("标题", "标文"), 1e-9)
}

func TestMatchesThresholdStrict(t *testing.T) {
	// "abcde" vs "abcxy": distance 2 over length 5 gives exactly 0.6,
	// which must NOT pass the strict > 0.6 gate
	sim := search.Similarity("abcde", "abcxy")
	assert.InDelta(t, 0.6, sim, 1e-9)
	assert.False(t, search.Matches("abcde", "abcxy"))

	// One edit over five runes is 0.8 and passes
	assert.True(t, search.Matches("abcde", "abcdx"))
}
