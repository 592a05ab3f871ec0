package query

import (
	"github.com/studex/marketplace/internal/errs"
	userdomain "github.com/studex/marketplace/internal/user/domain"
)

// UserStatsQuery represents the query for one user's marketplace
// statistics.
type UserStatsQuery struct {
	User *userdomain.User
}

// UserStats represents a user's derived marketplace numbers.
type UserStats struct {
	TotalSpent        float64 `json:"total_spent"`
	TotalEarned       float64 `json:"total_earned"`
	TotalTransactions int     `json:"total_transactions"`
	BuyerRating       float64 `json:"buyer_rating"`
	SellerRating      float64 `json:"seller_rating"`
	CreditPoints      int     `json:"credit_points"`
}

// UserStatsHandler handles user statistics queries.
type UserStatsHandler struct{}

// NewUserStatsHandler creates a new user stats handler.
func NewUserStatsHandler() *UserStatsHandler {
	return &UserStatsHandler{}
}

// Handle derives the statistics. A pure read over the user's
// histories.
func (h *UserStatsHandler) Handle(q UserStatsQuery) (*UserStats, error) {
	if q.User == nil {
		return nil, errs.Validationf("user is required")
	}
	return &UserStats{
		TotalSpent:        q.User.TotalSpent(),
		TotalEarned:       q.User.TotalEarned(),
		TotalTransactions: q.User.TotalTransactions(),
		BuyerRating:       q.User.BuyerRating(),
		SellerRating:      q.User.SellerRating(),
		CreditPoints:      q.User.CreditPoints(),
	}, nil
}
