package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/studex/marketplace/internal/errs"
)

const maxNotesPages = 1000

// Notes quality levels.
const (
	QualityHigh   = "high"
	QualityMedium = "medium"
	QualityLow    = "low"
)

// Notes is a for-sale listing of class notes.
type Notes struct {
	listing
	saleInfo

	pages       int
	formatType  string
	chapters    []string
	handwritten bool
	scanned     bool
	quality     string
}

// NotesParams are the constructor inputs for notes.
type NotesParams struct {
	ListingParams
	SaleParams

	Pages       int
	FormatType  string
	Chapters    []string
	Handwritten bool
	Scanned     bool
	Quality     string
}

// NewNotes validates and creates a notes listing.
func NewNotes(p NotesParams, now time.Time) (*Notes, error) {
	base, err := newListing(p.ListingParams, now)
	if err != nil {
		return nil, fmt.Errorf("notes: %w", err)
	}
	sale, err := newSaleInfo(p.SaleParams)
	if err != nil {
		return nil, fmt.Errorf("notes: %w", err)
	}
	if p.Pages < 1 || p.Pages > maxNotesPages {
		return nil, errs.Validationf("notes: pages must be between 1 and %d", maxNotesPages)
	}
	quality := strings.ToLower(strings.TrimSpace(p.Quality))
	switch quality {
	case QualityHigh, QualityMedium, QualityLow:
	default:
		return nil, errs.Validationf("notes: quality must be high, medium or low")
	}
	chapters := make([]string, 0, len(p.Chapters))
	for _, ch := range p.Chapters {
		if strings.TrimSpace(ch) == "" {
			return nil, errs.Validationf("notes: chapter names must not be blank")
		}
		chapters = append(chapters, strings.TrimSpace(ch))
	}
	return &Notes{
		listing:     base,
		saleInfo:    sale,
		pages:       p.Pages,
		formatType:  strings.TrimSpace(p.FormatType),
		chapters:    chapters,
		handwritten: p.Handwritten,
		scanned:     p.Scanned,
		quality:     quality,
	}, nil
}

func (n *Notes) Pages() int          { return n.pages }
func (n *Notes) FormatType() string  { return n.formatType }
func (n *Notes) IsHandwritten() bool { return n.handwritten }
func (n *Notes) IsScanned() bool     { return n.scanned }
func (n *Notes) Quality() string     { return n.quality }

// Chapters returns the ordered chapter list as a copy.
func (n *Notes) Chapters() []string {
	out := make([]string, len(n.chapters))
	copy(out, n.chapters)
	return out
}

// Details returns a human-readable summary of the notes.
func (n *Notes) Details() string {
	if !n.valid() {
		return n.invalidDetails()
	}
	kind := "typed"
	if n.handwritten {
		kind = "handwritten"
	}
	return fmt.Sprintf("%s (%s notes, %d pages, %d chapters, %s quality) - Rs.%.2f [%s]",
		n.title, kind, n.pages, len(n.chapters), n.quality, n.price, n.availability())
}

// MatchesSearch checks the common fields first, then format, quality
// and chapter names.
func (n *Notes) MatchesSearch(keyword string) bool {
	if n.matchesSearch(keyword) {
		return true
	}
	kw := strings.ToLower(strings.TrimSpace(keyword))
	if kw == "" {
		return false
	}
	if strings.Contains(strings.ToLower(n.formatType), kw) ||
		strings.Contains(n.quality, kw) {
		return true
	}
	for _, ch := range n.chapters {
		if strings.Contains(strings.ToLower(ch), kw) {
			return true
		}
	}
	return false
}
