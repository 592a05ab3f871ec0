package command

import (
	"fmt"
	"time"

	catalogdomain "github.com/studex/marketplace/internal/catalog/domain"
	"github.com/studex/marketplace/internal/identity"
)

// UploadFreeResourceCommand represents the command to list a free
// downloadable resource.
type UploadFreeResourceCommand struct {
	Listing catalogdomain.ListingParams

	FileURL           string
	IsUniversityPaper bool
	University        string
	CourseCode        string
	Year              int
	FileSizeMB        float64
	FileFormat        string
}

// UploadFreeResourceHandler handles free-resource uploads.
type UploadFreeResourceHandler struct {
	catalog catalogdomain.Catalog
	ids     *identity.Generator
}

// NewUploadFreeResourceHandler creates a new upload free resource
// handler.
func NewUploadFreeResourceHandler(catalog catalogdomain.Catalog, ids *identity.Generator) *UploadFreeResourceHandler {
	return &UploadFreeResourceHandler{catalog: catalog, ids: ids}
}

// Handle validates and lists a free resource. The uploader earns
// listing credits on success.
func (h *UploadFreeResourceHandler) Handle(cmd UploadFreeResourceCommand) (*catalogdomain.FreeResource, error) {
	params := catalogdomain.FreeResourceParams{
		ListingParams:     cmd.Listing,
		FileURL:           cmd.FileURL,
		IsUniversityPaper: cmd.IsUniversityPaper,
		University:        cmd.University,
		CourseCode:        cmd.CourseCode,
		Year:              cmd.Year,
		FileSizeMB:        cmd.FileSizeMB,
		FileFormat:        cmd.FileFormat,
	}
	params.ID = h.ids.Next(identity.KindItem)

	resource, err := catalogdomain.NewFreeResource(params, time.Now())
	if err != nil {
		return nil, err
	}
	if err := h.catalog.AddItem(resource); err != nil {
		return nil, fmt.Errorf("failed to add free resource to catalog: %w", err)
	}
	awardUploadCredits(resource.Uploader())
	return resource, nil
}
