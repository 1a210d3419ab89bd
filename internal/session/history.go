package session

import (
	"fmt"

	"github.com/snippet-engine/backend/internal/search"
)

// History keeps the most recent non-empty query strings, newest first.
// Re-submitting the current newest query verbatim is a no-op; older
// duplicates are not collapsed.
type History struct {
	max     int
	entries []string
}

func NewHistory(max int) (*History, error) {
	if max <= 0 {
		return nil, fmt.Errorf("history size must be positive, got %d", max)
	}
	return &History{max: max}, nil
}

// Push records a query at the front, evicting from the tail past the bound.
// Empty queries and verbatim repeats of the newest entry are ignored.
func (h *History) Push(query string) {
	if query == "" {
		return
	}
	if len(h.entries) > 0 && h.entries[0] == query {
		return
	}

	h.entries = append([]string{query}, h.entries...)
	if len(h.entries) > h.max {
		h.entries = h.entries[:h.max]
	}
}

// Entries returns the queries newest first
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Tokens returns the flattened tokenization of every recorded query
func (h *History) Tokens() []string {
	var tokens []string
	for _, q := range h.entries {
		tokens = append(tokens, search.Tokenize(q)...)
	}
	return tokens
}

func (h *History) Len() int {
	return len(h.entries)
}
