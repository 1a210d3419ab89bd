package engine

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/snippet-engine/backend/internal/catalog"
	"github.com/snippet-engine/backend/internal/config"
	"github.com/snippet-engine/backend/internal/search"
	"github.com/snippet-engine/backend/internal/session"
)

// Engine orchestrates the search components over one logical session. A
// mutex serializes history/recents mutation against ranking passes so every
// pass observes a consistent snapshot.
type Engine struct {
	Config *config.Config
	Logger *logrus.Entry

	catalog *catalog.Catalog
	scorer  *search.Scorer
	ranker  *search.Ranker
	history *session.History
	recents *session.Recents

	// State
	activeCategory string
	onSelect       func(catalog.Item)
	mu             sync.RWMutex

	// Stats
	stats EngineStats
}

type EngineStats struct {
	QueriesServed  int64
	ItemsSelected  int64
	CatalogVersion int64
	StartTime      time.Time
}

// SearchResult is the outcome of one ranking pass
type SearchResult struct {
	Query          string
	Categories     []catalog.Category
	Recommended    []search.ScoredItem
	ActiveCategory string
}

func NewEngine(cfg *config.Config, logger *logrus.Entry, cat *catalog.Catalog) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	history, err := session.NewHistory(cfg.Engine.HistorySize)
	if err != nil {
		return nil, err
	}
	recents, err := session.NewRecents(cfg.Engine.RecentsSize)
	if err != nil {
		return nil, err
	}

	scorer := search.NewScorer()

	e := &Engine{
		Config:  cfg,
		Logger:  logger,
		catalog: cat,
		scorer:  scorer,
		ranker:  search.NewRanker(scorer, cfg.Engine.RecommendLimit),
		history: history,
		recents: recents,
		stats: EngineStats{
			CatalogVersion: cat.Version,
			StartTime:      time.Now(),
		},
	}

	// Default to the first category of the unfiltered catalog
	if len(cat.Categories) > 0 {
		e.activeCategory = cat.Categories[0].Key
	}

	return e, nil
}

// OnSelect registers the callback fired when an item is selected
func (e *Engine) OnSelect(fn func(catalog.Item)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onSelect = fn
}

// Search runs a full ranking pass for the query: the conjunctive filter, the
// recommendation view, and the active-category resolution. The query is
// recorded in the history after the pass so a pass never scores a query
// against its own tokens.
func (e *Engine) Search(query string) *SearchResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	historyTokens := e.history.Tokens()
	recents := e.recents.Items()

	categories := e.ranker.Filter(e.catalog, query, historyTokens, recents)
	recommended := e.ranker.Recommend(e.catalog, query, historyTokens, recents)
	e.activeCategory = session.ResolveActive(e.activeCategory, categories)

	e.history.Push(query)
	e.stats.QueriesServed++

	e.Logger.WithFields(logrus.Fields{
		"query":      query,
		"categories": len(categories),
		"recommends": len(recommended),
	}).Debug("Search pass completed")

	return &SearchResult{
		Query:          query,
		Categories:     categories,
		Recommended:    recommended,
		ActiveCategory: e.activeCategory,
	}
}

// Recommend runs only the recommendation view against the current state
func (e *Engine) Recommend(query string) []search.ScoredItem {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ranker.Recommend(e.catalog, query, e.history.Tokens(), e.recents.Items())
}

// Select marks an item as used, moving it to the front of the recents list
// and firing the selection callback
func (e *Engine) Select(name string) (catalog.Item, bool) {
	e.mu.Lock()
	item, ok := e.catalog.FindItem(name)
	if ok {
		e.recents.Touch(item)
		e.stats.ItemsSelected++
	}
	callback := e.onSelect
	e.mu.Unlock()

	if ok && callback != nil {
		callback(item)
	}
	return item, ok
}

// SetActiveCategory switches the active category, falling back per the
// resolution rule when the key is absent from the current filtered view
func (e *Engine) SetActiveCategory(key string, categories []catalog.Category) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.activeCategory = session.ResolveActive(key, categories)
	return e.activeCategory
}

// ReplaceItem applies an external catalog edit. The replaced item's cached
// tokenization is invalidated so the next pass re-tokenizes it.
func (e *Engine) ReplaceItem(item catalog.Item) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.catalog.ReplaceItem(item); err != nil {
		return err
	}
	e.scorer.Invalidate(item.Name)
	e.stats.CatalogVersion = e.catalog.Version

	e.Logger.WithField("item", item.Name).Info("Catalog item replaced")
	return nil
}

// Catalog returns the current catalog snapshot
func (e *Engine) Catalog() *catalog.Catalog {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.catalog
}

// History returns the recorded queries, newest first
func (e *Engine) History() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.history.Entries()
}

// Recents returns the recently selected items, newest first
func (e *Engine) Recents() []catalog.Item {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.recents.Items()
}

func (e *Engine) Stats() EngineStats {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.stats
}
