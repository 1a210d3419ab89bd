package catalog

import "fmt"

// Item represents a single snippet template in the catalog
type Item struct {
	Name        string `json:"name"`
	Body        string `json:"body"`
	CategoryKey string `json:"category_key"`
}

// Category groups items under a key with a display title.
// Item order inside a category is preserved and meaningful.
type Category struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Items []Item `json:"items"`
}

// Catalog is an ordered, category-partitioned set of items supplied at
// startup. It is read-only during a ranking pass; edits go through
// ReplaceItem and bump the version counter.
type Catalog struct {
	Categories []Category `json:"categories"`
	Version    int64      `json:"version"`
}

func New(categories []Category) *Catalog {
	return &Catalog{
		Categories: categories,
		Version:    1,
	}
}

// Flatten returns all items in category order, then in-category order.
// This is the canonical iteration order used for ranking tie-breaks.
func (c *Catalog) Flatten() []Item {
	var items []Item
	for _, cat := range c.Categories {
		items = append(items, cat.Items...)
	}
	return items
}

// FindItem looks up an item by its unique name
func (c *Catalog) FindItem(name string) (Item, bool) {
	for _, cat := range c.Categories {
		for _, it := range cat.Items {
			if it.Name == name {
				return it, true
			}
		}
	}
	return Item{}, false
}

// Category looks up a category by key
func (c *Catalog) Category(key string) (Category, bool) {
	for _, cat := range c.Categories {
		if cat.Key == key {
			return cat, true
		}
	}
	return Category{}, false
}

// ReplaceItem swaps the item with the same name for the given one and bumps
// the catalog version. Position within the category is kept.
func (c *Catalog) ReplaceItem(item Item) error {
	for ci := range c.Categories {
		for ii := range c.Categories[ci].Items {
			if c.Categories[ci].Items[ii].Name == item.Name {
				item.CategoryKey = c.Categories[ci].Key
				c.Categories[ci].Items[ii] = item
				c.Version++
				return nil
			}
		}
	}
	return fmt.Errorf("no item named %q in catalog", item.Name)
}

// Len returns the total number of items across all categories
func (c *Catalog) Len() int {
	n := 0
	for _, cat := range c.Categories {
		n += len(cat.Items)
	}
	return n
}
