package session

import (
	"github.com/snippet-engine/backend/internal/catalog"
	"github.com/snippet-engine/backend/internal/search"
)

// ResolveActive adjusts the active category key to the given filtered result.
// A key still present in the result is kept unchanged. A missing key switches
// to the recommended category when present, else to the first category. An
// empty result yields an empty key. Re-applying the rule to an already-valid
// key is a no-op.
func ResolveActive(active string, categories []catalog.Category) string {
	if len(categories) == 0 {
		return ""
	}

	for _, c := range categories {
		if c.Key == active {
			return active
		}
	}
	for _, c := range categories {
		if c.Key == search.RecommendedKey {
			return search.RecommendedKey
		}
	}
	return categories[0].Key
}
