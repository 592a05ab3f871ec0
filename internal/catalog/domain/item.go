package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/studex/marketplace/internal/errs"
	userdomain "github.com/studex/marketplace/internal/user/domain"
)

// Item is a listing in the catalog, for sale or free. Every variant
// carries the common listing fields and contributes its own search
// terms.
type Item interface {
	ID() string
	Title() string
	Description() string
	Uploader() *userdomain.User
	Category() string
	Grade() string
	Subject() string
	UploadedAt() time.Time

	// Details returns a human-readable summary. It never fails; on an
	// internally inconsistent item it returns error text instead.
	Details() string
	// IsAvailable reports whether the item can currently be acquired.
	IsAvailable() bool
	// MatchesSearch reports whether the keyword matches this item.
	// Matching is case-insensitive substring over the common fields
	// first, then the variant's own fields.
	MatchesSearch(keyword string) bool
}

// Purchasable is the capability set of items that can be bought. A
// Purchasable leaves the market permanently once sold.
type Purchasable interface {
	Item
	Price() float64
	MarketPrice() float64
	Condition() string
	DiscountPercentage() float64
	IsSold() bool
	Buyer() *userdomain.User
	SoldAt() time.Time
	// MarkSold transfers the item into its terminal sold state. It
	// fails if the item is already sold; it never reverts.
	MarkSold(buyer *userdomain.User, at time.Time) error
}

// listing holds the fields shared by every item variant. All fields
// are set once at construction.
type listing struct {
	id          string
	title       string
	description string
	uploader    *userdomain.User
	category    string
	grade       string
	subject     string
	uploadedAt  time.Time
}

// ListingParams are the common constructor inputs for all variants.
type ListingParams struct {
	ID          string
	Title       string
	Description string
	Uploader    *userdomain.User
	Category    string
	Grade       string
	Subject     string
}

func newListing(p ListingParams, now time.Time) (listing, error) {
	if p.ID == "" {
		return listing{}, errs.Validationf("item id is required")
	}
	if strings.TrimSpace(p.Title) == "" {
		return listing{}, errs.Validationf("title is required")
	}
	if p.Uploader == nil {
		return listing{}, errs.Validationf("uploader is required")
	}
	if strings.TrimSpace(p.Category) == "" {
		return listing{}, errs.Validationf("category is required")
	}
	if strings.TrimSpace(p.Subject) == "" {
		return listing{}, errs.Validationf("subject is required")
	}
	return listing{
		id:          p.ID,
		title:       strings.TrimSpace(p.Title),
		description: strings.TrimSpace(p.Description),
		uploader:    p.Uploader,
		category:    strings.TrimSpace(p.Category),
		grade:       strings.TrimSpace(p.Grade),
		subject:     strings.TrimSpace(p.Subject),
		uploadedAt:  now,
	}, nil
}

func (l *listing) ID() string                 { return l.id }
func (l *listing) Title() string              { return l.title }
func (l *listing) Description() string        { return l.description }
func (l *listing) Uploader() *userdomain.User { return l.uploader }
func (l *listing) Category() string           { return l.category }
func (l *listing) Grade() string              { return l.grade }
func (l *listing) Subject() string            { return l.subject }
func (l *listing) UploadedAt() time.Time      { return l.uploadedAt }

// matchesSearch is the common check: case-insensitive substring over
// title, description and subject. Variants call this first and
// short-circuit on a hit.
func (l *listing) matchesSearch(keyword string) bool {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	if kw == "" {
		return false
	}
	return strings.Contains(strings.ToLower(l.title), kw) ||
		strings.Contains(strings.ToLower(l.description), kw) ||
		strings.Contains(strings.ToLower(l.subject), kw)
}

// valid reports whether the listing invariants still hold; Details
// implementations use it to degrade gracefully instead of failing.
func (l *listing) valid() bool {
	return l.id != "" && l.title != "" && l.uploader != nil
}

func (l *listing) invalidDetails() string {
	return fmt.Sprintf("invalid item state (id=%q)", l.id)
}
