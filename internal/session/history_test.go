package session_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snippet-engine/backend/internal/session"
)

func TestNewHistoryRejectsInvalidBound(t *testing.T) {
	_, err := session.NewHistory(0)
	assert.Error(t, err)

	_, err = session.NewHistory(-3)
	assert.Error(t, err)
}

func TestHistoryNewestFirst(t *testing.T) {
	h, err := session.NewHistory(10)
	require.NoError(t, err)

	h.Push("first")
	h.Push("second")
	h.Push("third")

	assert.Equal(t, []string{"third", "second", "first"}, h.Entries())
}

func TestHistoryEvictsPastBound(t *testing.T) {
	h, err := session.NewHistory(10)
	require.NoError(t, err)

	for i := 1; i <= 11; i++ {
		h.Push(fmt.Sprintf("query %d", i))
	}

	entries := h.Entries()
	require.Len(t, entries, 10)
	assert.Equal(t, "query 11", entries[0])
	assert.Equal(t, "query 2", entries[9])
}

func TestHistoryIgnoresEmptyQuery(t *testing.T) {
	h, err := session.NewHistory(10)
	require.NoError(t, err)

	h.Push("")
	h.Push("real")
	h.Push("")

	assert.Equal(t, []string{"real"}, h.Entries())
}

func TestHistoryIgnoresVerbatimRepeatOfNewest(t *testing.T) {
	h, err := session.NewHistory(10)
	require.NoError(t, err)

	h.Push("same")
	h.Push("same")

	assert.Equal(t, []string{"same"}, h.Entries())

	// Only the newest entry is duplicate-guarded
	h.Push("other")
	h.Push("same")
	assert.Equal(t, []string{"same", "other", "same"}, h.Entries())
}

func TestHistoryTokensFlattened(t *testing.T) {
	h, err := session.NewHistory(10)
	require.NoError(t, err)

	h.Push("hello world")
	h.Push("标题 style")

	assert.Equal(t, []string{"标", "题", "style", "hello", "world"}, h.Tokens())
}
