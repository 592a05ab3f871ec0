package query

import (
	catalogdomain "github.com/studex/marketplace/internal/catalog/domain"
)

// SearchCatalogQuery represents a keyword search over the catalog.
type SearchCatalogQuery struct {
	Keyword string
}

// SearchCatalogHandler handles keyword searches.
type SearchCatalogHandler struct {
	catalog catalogdomain.Catalog
}

// NewSearchCatalogHandler creates a new search catalog handler.
func NewSearchCatalogHandler(catalog catalogdomain.Catalog) *SearchCatalogHandler {
	return &SearchCatalogHandler{catalog: catalog}
}

// Handle executes the search. A blank keyword yields an empty result.
func (h *SearchCatalogHandler) Handle(q SearchCatalogQuery) []catalogdomain.Item {
	return h.catalog.Search(q.Keyword)
}
