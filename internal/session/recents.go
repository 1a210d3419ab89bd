package session

import (
	"fmt"

	"github.com/snippet-engine/backend/internal/catalog"
)

// Recents keeps the most recently selected items, newest first, deduplicated
// by item name. Re-selecting an item moves it to the front.
type Recents struct {
	max   int
	items []catalog.Item
}

func NewRecents(max int) (*Recents, error) {
	if max <= 0 {
		return nil, fmt.Errorf("recents size must be positive, got %d", max)
	}
	return &Recents{max: max}, nil
}

// Touch records a selection at the front, evicting from the tail past the
// bound. An already-present item is moved, not duplicated.
func (r *Recents) Touch(item catalog.Item) {
	for i, existing := range r.items {
		if existing.Name == item.Name {
			r.items = append(r.items[:i], r.items[i+1:]...)
			break
		}
	}

	r.items = append([]catalog.Item{item}, r.items...)
	if len(r.items) > r.max {
		r.items = r.items[:r.max]
	}
}

// Items returns the selections newest first
func (r *Recents) Items() []catalog.Item {
	out := make([]catalog.Item, len(r.items))
	copy(out, r.items)
	return out
}

func (r *Recents) Len() int {
	return len(r.items)
}
