package domain

import (
	"strings"
	"time"

	"github.com/studex/marketplace/internal/errs"
	userdomain "github.com/studex/marketplace/internal/user/domain"
)

// saleInfo holds the for-sale fields shared by Book, Notes and
// PastPaper. Composition instead of a second inheritance layer.
type saleInfo struct {
	price       float64
	marketPrice float64
	condition   string
	sold        bool
	soldAt      time.Time
	buyer       *userdomain.User
}

// SaleParams are the for-sale constructor inputs.
type SaleParams struct {
	Price       float64
	MarketPrice float64
	Condition   string
}

func newSaleInfo(p SaleParams) (saleInfo, error) {
	if p.Price < 0 {
		return saleInfo{}, errs.Validationf("price must not be negative")
	}
	if p.MarketPrice < 0 {
		return saleInfo{}, errs.Validationf("market price must not be negative")
	}
	if p.Price > 2*p.MarketPrice {
		return saleInfo{}, errs.Validationf("price %.2f exceeds twice the market price %.2f", p.Price, p.MarketPrice)
	}
	if strings.TrimSpace(p.Condition) == "" {
		return saleInfo{}, errs.Validationf("condition is required")
	}
	return saleInfo{
		price:       p.Price,
		marketPrice: p.MarketPrice,
		condition:   strings.ToLower(strings.TrimSpace(p.Condition)),
	}, nil
}

func (s *saleInfo) Price() float64       { return s.price }
func (s *saleInfo) MarketPrice() float64 { return s.marketPrice }
func (s *saleInfo) Condition() string    { return s.condition }
func (s *saleInfo) IsSold() bool         { return s.sold }

func (s *saleInfo) Buyer() *userdomain.User { return s.buyer }
func (s *saleInfo) SoldAt() time.Time       { return s.soldAt }

// DiscountPercentage is derived from price vs. market price; 0 when no
// market price is known.
func (s *saleInfo) DiscountPercentage() float64 {
	if s.marketPrice == 0 {
		return 0
	}
	return (s.marketPrice - s.price) / s.marketPrice * 100
}

// IsAvailable reports whether the item is still on the market.
func (s *saleInfo) IsAvailable() bool { return !s.sold }

// MarkSold transfers the item into its terminal sold state. The buyer
// and sale date are set exactly once; a sold item never reverts.
func (s *saleInfo) MarkSold(buyer *userdomain.User, at time.Time) error {
	if s.sold {
		return errs.Statef("item is already sold")
	}
	if buyer == nil {
		return errs.Validationf("buyer is required")
	}
	s.sold = true
	s.buyer = buyer
	s.soldAt = at
	return nil
}

func (s *saleInfo) availability() string {
	if s.sold {
		return "sold"
	}
	return "available"
}
