package query

import (
	catalogdomain "github.com/studex/marketplace/internal/catalog/domain"
)

// FilterCatalogQuery represents an attribute filter over the catalog.
type FilterCatalogQuery struct {
	Filter catalogdomain.Filter
}

// FilterCatalogHandler handles attribute filters.
type FilterCatalogHandler struct {
	catalog catalogdomain.Catalog
}

// NewFilterCatalogHandler creates a new filter catalog handler.
func NewFilterCatalogHandler(catalog catalogdomain.Catalog) *FilterCatalogHandler {
	return &FilterCatalogHandler{catalog: catalog}
}

// Handle executes the filter.
func (h *FilterCatalogHandler) Handle(q FilterCatalogQuery) ([]catalogdomain.Item, error) {
	return h.catalog.FilterItems(q.Filter)
}
