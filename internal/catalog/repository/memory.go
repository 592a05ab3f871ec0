package repository

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/studex/marketplace/internal/catalog/domain"
	"github.com/studex/marketplace/internal/errs"
	userdomain "github.com/studex/marketplace/internal/user/domain"
)

// MemoryCatalog implements the Catalog contract in process memory.
// Insertion order is preserved for every read path.
type MemoryCatalog struct {
	items          []domain.Item
	byID           map[string]domain.Item
	categoryCounts map[string]int
	updatedAt      time.Time
}

// NewMemoryCatalog creates an empty catalog.
func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{
		byID:           make(map[string]domain.Item),
		categoryCounts: make(map[string]int),
	}
}

// AddItem inserts a new item, rebuilds the category index and bumps
// the catalog's updated time.
func (c *MemoryCatalog) AddItem(item domain.Item) error {
	if item == nil {
		return errs.Validationf("item is required")
	}
	if strings.TrimSpace(item.Title()) == "" {
		return errs.Validationf("item title is required")
	}
	if item.Uploader() == nil {
		return errs.Validationf("item uploader is required")
	}
	if _, ok := c.byID[item.ID()]; ok {
		return errs.Conflictf("item id %s already exists", item.ID())
	}
	c.items = append(c.items, item)
	c.byID[item.ID()] = item
	c.rebuildCategoryIndex()
	c.updatedAt = time.Now()
	return nil
}

// rebuildCategoryIndex recomputes the category→count index from
// scratch. The catalog is small enough that a full rebuild on every
// mutation is the simplest way to keep the index consistent.
func (c *MemoryCatalog) rebuildCategoryIndex() {
	counts := make(map[string]int, len(c.categoryCounts))
	for _, item := range c.items {
		counts[item.Category()]++
	}
	c.categoryCounts = counts
}

// FindByID retrieves an item by ID.
func (c *MemoryCatalog) FindByID(id string) (domain.Item, error) {
	if item, ok := c.byID[id]; ok {
		return item, nil
	}
	return nil, errs.NotFoundf("item %s not found", id)
}

// ItemsBySeller scans the catalog for items uploaded by the given
// user and returns them as a fresh slice.
func (c *MemoryCatalog) ItemsBySeller(seller *userdomain.User) []domain.Item {
	out := []domain.Item{}
	if seller == nil {
		return out
	}
	for _, item := range c.items {
		if item.Uploader() == seller {
			out = append(out, item)
		}
	}
	return out
}

// Search collects the items whose MatchesSearch reports a hit, in
// insertion order. A blank keyword returns an empty result, never the
// whole catalog. A panic inside one item's matcher is logged and that
// item skipped, so a single malformed record cannot break discovery.
func (c *MemoryCatalog) Search(keyword string) []domain.Item {
	out := []domain.Item{}
	if strings.TrimSpace(keyword) == "" {
		return out
	}
	for _, item := range c.items {
		if c.safeMatch(item, keyword) {
			out = append(out, item)
		}
	}
	return out
}

func (c *MemoryCatalog) safeMatch(item domain.Item, keyword string) (matched bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Warn().
				Str("item_id", item.ID()).
				Any("panic", r).
				Msg("Item match failed, skipping")
			matched = false
		}
	}()
	return item.MatchesSearch(keyword)
}

// FilterItems returns the items passing every set predicate. Price and
// condition predicates only match for-sale items, so setting either
// drops all free resources from the result.
func (c *MemoryCatalog) FilterItems(f domain.Filter) ([]domain.Item, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	out := []domain.Item{}
	for _, item := range c.items {
		if matchesFilter(item, f) {
			out = append(out, item)
		}
	}
	return out, nil
}

func matchesFilter(item domain.Item, f domain.Filter) bool {
	if f.Category != nil && !strings.EqualFold(item.Category(), *f.Category) {
		return false
	}
	if f.Grade != nil && !strings.EqualFold(item.Grade(), *f.Grade) {
		return false
	}
	if f.Subject != nil && !strings.EqualFold(item.Subject(), *f.Subject) {
		return false
	}
	if f.MinPrice != nil || f.MaxPrice != nil || f.Condition != nil {
		sale, ok := item.(domain.Purchasable)
		if !ok {
			return false
		}
		if f.MinPrice != nil && sale.Price() < *f.MinPrice {
			return false
		}
		if f.MaxPrice != nil && sale.Price() > *f.MaxPrice {
			return false
		}
		if f.Condition != nil && !strings.EqualFold(sale.Condition(), *f.Condition) {
			return false
		}
	}
	return true
}

// Items returns a snapshot of the catalog in insertion order.
func (c *MemoryCatalog) Items() []domain.Item {
	out := make([]domain.Item, len(c.items))
	copy(out, c.items)
	return out
}

// CategoryCounts returns a copy of the derived category index.
func (c *MemoryCatalog) CategoryCounts() map[string]int {
	out := make(map[string]int, len(c.categoryCounts))
	for category, n := range c.categoryCounts {
		out[category] = n
	}
	return out
}

// Count returns the number of items in the catalog.
func (c *MemoryCatalog) Count() int64 {
	return int64(len(c.items))
}

// UpdatedAt returns the time of the last catalog mutation.
func (c *MemoryCatalog) UpdatedAt() time.Time {
	return c.updatedAt
}
