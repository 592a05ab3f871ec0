package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/studex/marketplace/internal/errs"
)

const maxBookPages = 5000

// Book is a for-sale textbook listing.
type Book struct {
	listing
	saleInfo

	author    string
	edition   string
	publisher string
	pages     int
	hardcover bool
}

// BookParams are the constructor inputs for a book.
type BookParams struct {
	ListingParams
	SaleParams

	Author    string
	Edition   string
	Publisher string
	Pages     int
	Hardcover bool
}

// NewBook validates and creates a book. Construction is all-or-nothing:
// any invalid field rejects the whole item.
func NewBook(p BookParams, now time.Time) (*Book, error) {
	base, err := newListing(p.ListingParams, now)
	if err != nil {
		return nil, fmt.Errorf("book: %w", err)
	}
	sale, err := newSaleInfo(p.SaleParams)
	if err != nil {
		return nil, fmt.Errorf("book: %w", err)
	}
	if strings.TrimSpace(p.Author) == "" {
		return nil, errs.Validationf("book: author is required")
	}
	if p.Pages < 1 || p.Pages > maxBookPages {
		return nil, errs.Validationf("book: pages must be between 1 and %d", maxBookPages)
	}
	return &Book{
		listing:   base,
		saleInfo:  sale,
		author:    strings.TrimSpace(p.Author),
		edition:   strings.TrimSpace(p.Edition),
		publisher: strings.TrimSpace(p.Publisher),
		pages:     p.Pages,
		hardcover: p.Hardcover,
	}, nil
}

func (b *Book) Author() string    { return b.author }
func (b *Book) Edition() string   { return b.edition }
func (b *Book) Publisher() string { return b.publisher }
func (b *Book) Pages() int        { return b.pages }
func (b *Book) IsHardcover() bool { return b.hardcover }

// Details returns a human-readable summary of the book.
func (b *Book) Details() string {
	if !b.valid() {
		return b.invalidDetails()
	}
	cover := "paperback"
	if b.hardcover {
		cover = "hardcover"
	}
	return fmt.Sprintf("%s by %s (%s, %s, %d pages, %s) - Rs.%.2f [%s]",
		b.title, b.author, b.edition, b.publisher, b.pages, cover, b.price, b.availability())
}

// MatchesSearch checks the common fields first, then author, publisher
// and edition.
func (b *Book) MatchesSearch(keyword string) bool {
	if b.matchesSearch(keyword) {
		return true
	}
	kw := strings.ToLower(strings.TrimSpace(keyword))
	if kw == "" {
		return false
	}
	return strings.Contains(strings.ToLower(b.author), kw) ||
		strings.Contains(strings.ToLower(b.publisher), kw) ||
		strings.Contains(strings.ToLower(b.edition), kw)
}
