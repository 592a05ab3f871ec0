package command

import (
	"fmt"
	"time"

	catalogdomain "github.com/studex/marketplace/internal/catalog/domain"
	"github.com/studex/marketplace/internal/identity"
)

// UploadPastPaperCommand represents the command to list a past paper
// for sale.
type UploadPastPaperCommand struct {
	Listing catalogdomain.ListingParams
	Sale    catalogdomain.SaleParams

	ExamBoard     string
	Year          int
	HasAnswers    bool
	HasModelPaper bool
	Solved        bool
	TotalPapers   int
	IsCompilation bool
	SubjectCode   string
}

// UploadPastPaperHandler handles past-paper uploads.
type UploadPastPaperHandler struct {
	catalog catalogdomain.Catalog
	ids     *identity.Generator
}

// NewUploadPastPaperHandler creates a new upload past paper handler.
func NewUploadPastPaperHandler(catalog catalogdomain.Catalog, ids *identity.Generator) *UploadPastPaperHandler {
	return &UploadPastPaperHandler{catalog: catalog, ids: ids}
}

// Handle validates and lists a past paper. The uploader earns listing
// credits on success.
func (h *UploadPastPaperHandler) Handle(cmd UploadPastPaperCommand) (*catalogdomain.PastPaper, error) {
	params := catalogdomain.PastPaperParams{
		ListingParams: cmd.Listing,
		SaleParams:    cmd.Sale,
		ExamBoard:     cmd.ExamBoard,
		Year:          cmd.Year,
		HasAnswers:    cmd.HasAnswers,
		HasModelPaper: cmd.HasModelPaper,
		Solved:        cmd.Solved,
		TotalPapers:   cmd.TotalPapers,
		IsCompilation: cmd.IsCompilation,
		SubjectCode:   cmd.SubjectCode,
	}
	params.ID = h.ids.Next(identity.KindItem)

	paper, err := catalogdomain.NewPastPaper(params, time.Now())
	if err != nil {
		return nil, err
	}
	if err := h.catalog.AddItem(paper); err != nil {
		return nil, fmt.Errorf("failed to add past paper to catalog: %w", err)
	}
	awardUploadCredits(paper.Uploader())
	return paper, nil
}
