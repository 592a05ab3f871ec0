package command

import (
	"fmt"
	"time"

	catalogdomain "github.com/studex/marketplace/internal/catalog/domain"
	"github.com/studex/marketplace/internal/identity"
)

// UploadBookCommand represents the command to list a book for sale.
type UploadBookCommand struct {
	Listing catalogdomain.ListingParams
	Sale    catalogdomain.SaleParams

	Author    string
	Edition   string
	Publisher string
	Pages     int
	Hardcover bool
}

// UploadBookHandler handles book uploads.
type UploadBookHandler struct {
	catalog catalogdomain.Catalog
	ids     *identity.Generator
}

// NewUploadBookHandler creates a new upload book handler.
func NewUploadBookHandler(catalog catalogdomain.Catalog, ids *identity.Generator) *UploadBookHandler {
	return &UploadBookHandler{catalog: catalog, ids: ids}
}

// Handle validates and lists a book. The uploader earns listing
// credits on success.
func (h *UploadBookHandler) Handle(cmd UploadBookCommand) (*catalogdomain.Book, error) {
	params := catalogdomain.BookParams{
		ListingParams: cmd.Listing,
		SaleParams:    cmd.Sale,
		Author:        cmd.Author,
		Edition:       cmd.Edition,
		Publisher:     cmd.Publisher,
		Pages:         cmd.Pages,
		Hardcover:     cmd.Hardcover,
	}
	params.ID = h.ids.Next(identity.KindItem)

	book, err := catalogdomain.NewBook(params, time.Now())
	if err != nil {
		return nil, err
	}
	if err := h.catalog.AddItem(book); err != nil {
		return nil, fmt.Errorf("failed to add book to catalog: %w", err)
	}
	awardUploadCredits(book.Uploader())
	return book, nil
}
