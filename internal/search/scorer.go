package search

import (
	"crypto/md5"
	"fmt"

	"github.com/snippet-engine/backend/internal/catalog"
)

// Scoring weights: current-query tokens count double, history tokens single,
// and a recently-used item gets a flat bonus.
const (
	queryWeight   = 2.0
	historyWeight = 1.0
	recencyBonus  = 1.0
)

// Scorer computes the relevance of a catalog item against the current query
// and the accumulated search history. Item tokenization is cached per item,
// keyed by name plus a content hash so a by-name replacement re-tokenizes.
type Scorer struct {
	cache map[string]tokenCacheEntry
}

type tokenCacheEntry struct {
	hash   string
	tokens []string
}

func NewScorer() *Scorer {
	return &Scorer{
		cache: make(map[string]tokenCacheEntry),
	}
}

// ItemTokens returns the deduplicated union of name tokens followed by body
// tokens for the given item, from cache when its content is unchanged.
func (s *Scorer) ItemTokens(item catalog.Item) []string {
	hash := contentHash(item)
	if entry, ok := s.cache[item.Name]; ok && entry.hash == hash {
		return entry.tokens
	}

	tokens := dedupe(append(Tokenize(item.Name), Tokenize(item.Body)...))
	s.cache[item.Name] = tokenCacheEntry{hash: hash, tokens: tokens}
	return tokens
}

// Invalidate drops the cached tokenization for an item, e.g. after an
// external edit replaced it.
func (s *Scorer) Invalidate(name string) {
	delete(s.cache, name)
}

// Score aggregates per-item relevance: every (query token, item token) pair
// above the match threshold contributes similarity * 2, every (history token,
// item token) pair above it contributes similarity * 1, and an item present
// in the recents list gets a flat +1. The result is only meaningful relative
// to other items scored in the same pass.
func (s *Scorer) Score(item catalog.Item, queryTokens, historyTokens []string, recents []catalog.Item) float64 {
	itemTokens := s.ItemTokens(item)

	score := 0.0
	for _, qt := range queryTokens {
		for _, it := range itemTokens {
			if sim := Similarity(qt, it); sim > MatchThreshold {
				score += sim * queryWeight
			}
		}
	}
	for _, ht := range historyTokens {
		for _, it := range itemTokens {
			if sim := Similarity(ht, it); sim > MatchThreshold {
				score += sim * historyWeight
			}
		}
	}
	for _, recent := range recents {
		if recent.Name == item.Name {
			score += recencyBonus
			break
		}
	}

	return score
}

func contentHash(item catalog.Item) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(item.Name+"\x00"+item.Body)))
}
