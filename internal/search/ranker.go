package search

import (
	"sort"

	"github.com/snippet-engine/backend/internal/catalog"
)

// Key and title of the synthesized pseudo-category holding recommendations
const (
	RecommendedKey   = "recommended"
	RecommendedTitle = "Recommended"
)

// ScoredItem pairs an item with its relevance score for one ranking pass
type ScoredItem struct {
	Item  catalog.Item
	Score float64
}

// Ranker produces the two views over a catalog: a top-K recommendation list
// and a conjunctively filtered, category-partitioned subset. The two views
// intentionally use different combination rules (additive scoring versus an
// all-tokens-must-match inclusion test) and must stay separate algorithms.
type Ranker struct {
	scorer *Scorer
	limit  int
}

func NewRanker(scorer *Scorer, limit int) *Ranker {
	return &Ranker{
		scorer: scorer,
		limit:  limit,
	}
}

// Recommend scores every catalog item and returns at most limit items sorted
// by descending score. Items scoring zero are dropped; ties keep catalog
// iteration order. With an empty query and no recents there is nothing to
// recommend and the result is empty.
func (r *Ranker) Recommend(cat *catalog.Catalog, query string, historyTokens []string, recents []catalog.Item) []ScoredItem {
	if query == "" && len(recents) == 0 {
		return nil
	}

	queryTokens := Tokenize(query)

	var scored []ScoredItem
	for _, item := range cat.Flatten() {
		score := r.scorer.Score(item, queryTokens, historyTokens, recents)
		if score <= 0 {
			continue
		}
		scored = append(scored, ScoredItem{Item: item, Score: score})
	}

	// Stable sort keeps catalog order for equal scores
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > r.limit {
		scored = scored[:r.limit]
	}
	return scored
}

// Filter returns the categories whose items match every query token
// (each query token must be similar to at least one item token). An empty
// query returns the catalog unchanged. Categories left empty are dropped.
// When the recommendation view for the same inputs is non-empty, a
// synthesized "recommended" category is appended.
func (r *Ranker) Filter(cat *catalog.Catalog, query string, historyTokens []string, recents []catalog.Item) []catalog.Category {
	var result []catalog.Category

	if query == "" {
		result = append(result, cat.Categories...)
	} else {
		queryTokens := Tokenize(query)
		for _, c := range cat.Categories {
			var kept []catalog.Item
			for _, item := range c.Items {
				if r.matchesAll(item, queryTokens) {
					kept = append(kept, item)
				}
			}
			if len(kept) > 0 {
				result = append(result, catalog.Category{
					Key:   c.Key,
					Title: c.Title,
					Items: kept,
				})
			}
		}
	}

	if recommended := r.Recommend(cat, query, historyTokens, recents); len(recommended) > 0 {
		items := make([]catalog.Item, len(recommended))
		for i, s := range recommended {
			items[i] = s.Item
		}
		result = append(result, catalog.Category{
			Key:   RecommendedKey,
			Title: RecommendedTitle,
			Items: items,
		})
	}

	return result
}

// matchesAll reports whether every query token is similar to at least one of
// the item's tokens.
func (r *Ranker) matchesAll(item catalog.Item, queryTokens []string) bool {
	itemTokens := r.scorer.ItemTokens(item)
	for _, qt := range queryTokens {
		matched := false
		for _, it := range itemTokens {
			if Matches(qt, it) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}
