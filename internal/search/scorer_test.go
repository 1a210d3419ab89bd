package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/snippet-engine/backend/internal/catalog"
	"github.com/snippet-engine/backend/internal/search"
)

func TestItemTokensNameBeforeBody(t *testing.T) {
	scorer := search.NewScorer()
	item := catalog.Item{Name: "greeting note", Body: "hello greeting world"}

	tokens := scorer.ItemTokens(item)

	assert.Equal(t, []string{"greeting", "note", "hello", "world"}, tokens)
}

func TestItemTokensCached(t *testing.T) {
	scorer := search.NewScorer()
	item := catalog.Item{Name: "note", Body: "hello world"}

	first := scorer.ItemTokens(item)
	second := scorer.ItemTokens(item)

	assert.Equal(t, first, second)
}

func TestItemTokensRefreshedOnContentChange(t *testing.T) {
	scorer := search.NewScorer()
	item := catalog.Item{Name: "note", Body: "hello world"}
	scorer.ItemTokens(item)

	// Same name, new body: the cache must not serve stale tokens
	item.Body = "goodbye moon"
	tokens := scorer.ItemTokens(item)

	assert.Equal(t, []string{"note", "goodbye", "moon"}, tokens)
}

func TestItemTokensInvalidate(t *testing.T) {
	scorer := search.NewScorer()
	item := catalog.Item{Name: "note", Body: "hello"}
	scorer.ItemTokens(item)

	scorer.Invalidate("note")
	item.Body = "changed"

	assert.Equal(t, []string{"note", "changed"}, scorer.ItemTokens(item))
}

func TestScoreExactQueryMatch(t *testing.T) {
	scorer := search.NewScorer()
	item := catalog.Item{Name: "greeting", Body: "hello there"}

	// One exact query token match: similarity 1 at double weight
	score := scorer.Score(item, []string{"hello"}, nil, nil)

	assert.InDelta(t, 2.0, score, 1e-9)
}

func TestScoreHistorySingleWeight(t *testing.T) {
	scorer := search.NewScorer()
	item := catalog.Item{Name: "greeting", Body: "hello there"}

	score := scorer.Score(item, nil, []string{"hello"}, nil)

	assert.InDelta(t, 1.0, score, 1e-9)
}

func TestScoreRecencyBonus(t *testing.T) {
	scorer := search.NewScorer()
	item := catalog.Item{Name: "greeting", Body: "hello there"}

	score := scorer.Score(item, nil, nil, []catalog.Item{{Name: "greeting"}})
	assert.InDelta(t, 1.0, score, 1e-9)

	// Bonus is flat, by exact name equality only
	score = scorer.Score(item, nil, nil, []catalog.Item{{Name: "greetings"}})
	assert.Zero(t, score)
}

func TestScoreAggregates(t *testing.T) {
	scorer := search.NewScorer()
	item := catalog.Item{Name: "greeting", Body: "hello there"}

	score := scorer.Score(item,
		[]string{"hello"},
		[]string{"there"},
		[]catalog.Item{{Name: "greeting"}},
	)

	// 1*2 (query) + 1*1 (history) + 1 (recency)
	assert.InDelta(t, 4.0, score, 1e-9)
}

func TestScoreBelowThresholdIgnored(t *testing.T) {
	scorer := search.NewScorer()
	item := catalog.Item{Name: "alpha", Body: "bravo charlie"}

	score := scorer.Score(item, []string{"zulu"}, []string{"xray"}, nil)

	assert.Zero(t, score)
}

func TestScoreCJKScenario(t *testing.T) {
	scorer := search.NewScorer()
	item := catalog.Item{Name: "标题样式", Body: "# 大标题\n正文内容"}

	tokens := scorer.ItemTokens(item)
	assert.Contains(t, tokens, "标")
	assert.Contains(t, tokens, "题")
	assert.Contains(t, tokens, "样")
	assert.Contains(t, tokens, "正")

	// "标题" tokenizes to {"标","题"}; both match exactly at double weight
	score := scorer.Score(item, search.Tokenize("标题"), nil, nil)
	assert.InDelta(t, 4.0, score, 1e-9)
}
