package domain

import (
	"time"

	"github.com/studex/marketplace/internal/errs"
	userdomain "github.com/studex/marketplace/internal/user/domain"
)

// Filter is an AND-composition of optional item predicates. Nil fields
// are not applied. Price and condition only ever match for-sale items,
// so setting either excludes every free resource.
type Filter struct {
	Category  *string
	Grade     *string
	Subject   *string
	Condition *string
	MinPrice  *float64
	MaxPrice  *float64
}

// Validate rejects inverted or negative price bounds.
func (f Filter) Validate() error {
	if f.MinPrice != nil && *f.MinPrice < 0 {
		return errs.Validationf("minimum price must not be negative")
	}
	if f.MaxPrice != nil && *f.MaxPrice < 0 {
		return errs.Validationf("maximum price must not be negative")
	}
	if f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
		return errs.Validationf("minimum price exceeds maximum price")
	}
	return nil
}

// Catalog defines the contract for the item store. Items are owned by
// the catalog and never deleted in this design.
type Catalog interface {
	// AddItem inserts a new item. Duplicate IDs are rejected.
	AddItem(item Item) error
	// FindByID retrieves an item by ID.
	FindByID(id string) (Item, error)
	// ItemsBySeller returns the items uploaded by the given user.
	ItemsBySeller(seller *userdomain.User) []Item
	// Search returns the items matching the keyword in insertion
	// order. A blank keyword returns an empty result, never the whole
	// catalog.
	Search(keyword string) []Item
	// FilterItems returns the items passing every set predicate.
	FilterItems(f Filter) ([]Item, error)
	// Items returns a snapshot of the whole catalog in insertion
	// order.
	Items() []Item
	// CategoryCounts returns the derived category index.
	CategoryCounts() map[string]int
	// Count returns the number of items.
	Count() int64
	// UpdatedAt returns the time of the last mutation.
	UpdatedAt() time.Time
}
