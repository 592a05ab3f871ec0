package query

import (
	catalogdomain "github.com/studex/marketplace/internal/catalog/domain"
	userdomain "github.com/studex/marketplace/internal/user/domain"
)

// SellerItemsQuery represents a lookup of a seller's listings.
type SellerItemsQuery struct {
	Seller *userdomain.User
}

// SellerItemsHandler handles per-seller lookups.
type SellerItemsHandler struct {
	catalog catalogdomain.Catalog
}

// NewSellerItemsHandler creates a new seller items handler.
func NewSellerItemsHandler(catalog catalogdomain.Catalog) *SellerItemsHandler {
	return &SellerItemsHandler{catalog: catalog}
}

// Handle returns the seller's listings in upload order.
func (h *SellerItemsHandler) Handle(q SellerItemsQuery) []catalogdomain.Item {
	return h.catalog.ItemsBySeller(q.Seller)
}
