package command

import (
	"fmt"
	"time"

	catalogdomain "github.com/studex/marketplace/internal/catalog/domain"
	"github.com/studex/marketplace/internal/identity"
)

// UploadNotesCommand represents the command to list notes for sale.
type UploadNotesCommand struct {
	Listing catalogdomain.ListingParams
	Sale    catalogdomain.SaleParams

	Pages       int
	FormatType  string
	Chapters    []string
	Handwritten bool
	Scanned     bool
	Quality     string
}

// UploadNotesHandler handles notes uploads.
type UploadNotesHandler struct {
	catalog catalogdomain.Catalog
	ids     *identity.Generator
}

// NewUploadNotesHandler creates a new upload notes handler.
func NewUploadNotesHandler(catalog catalogdomain.Catalog, ids *identity.Generator) *UploadNotesHandler {
	return &UploadNotesHandler{catalog: catalog, ids: ids}
}

// Handle validates and lists notes. The uploader earns listing credits
// on success.
func (h *UploadNotesHandler) Handle(cmd UploadNotesCommand) (*catalogdomain.Notes, error) {
	params := catalogdomain.NotesParams{
		ListingParams: cmd.Listing,
		SaleParams:    cmd.Sale,
		Pages:         cmd.Pages,
		FormatType:    cmd.FormatType,
		Chapters:      cmd.Chapters,
		Handwritten:   cmd.Handwritten,
		Scanned:       cmd.Scanned,
		Quality:       cmd.Quality,
	}
	params.ID = h.ids.Next(identity.KindItem)

	notes, err := catalogdomain.NewNotes(params, time.Now())
	if err != nil {
		return nil, err
	}
	if err := h.catalog.AddItem(notes); err != nil {
		return nil, fmt.Errorf("failed to add notes to catalog: %w", err)
	}
	awardUploadCredits(notes.Uploader())
	return notes, nil
}
