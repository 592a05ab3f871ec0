package command

import (
	"time"

	"github.com/studex/marketplace/internal/errs"
	"github.com/studex/marketplace/internal/identity"
	txdomain "github.com/studex/marketplace/internal/transaction/domain"
	userdomain "github.com/studex/marketplace/internal/user/domain"
)

// SubmitReviewCommand represents the command to review the other
// party of a transaction.
type SubmitReviewCommand struct {
	TransactionID string
	Reviewer      *userdomain.User
	Rating        int
	Comment       string
}

// SubmitReviewHandler handles review submission.
type SubmitReviewHandler struct {
	transactions txdomain.TransactionRepository
	ids          *identity.Generator
}

// NewSubmitReviewHandler creates a new submit review handler.
func NewSubmitReviewHandler(transactions txdomain.TransactionRepository, ids *identity.Generator) *SubmitReviewHandler {
	return &SubmitReviewHandler{transactions: transactions, ids: ids}
}

// Handle validates the reviewer's membership in the transaction,
// creates the review, attaches it to the matching side and awards the
// reviewer credits.
func (h *SubmitReviewHandler) Handle(cmd SubmitReviewCommand) (*txdomain.Review, error) {
	if cmd.Reviewer == nil {
		return nil, errs.Validationf("reviewer is required")
	}
	t, err := h.transactions.FindByID(cmd.TransactionID)
	if err != nil {
		return nil, err
	}

	var reviewed *userdomain.User
	switch cmd.Reviewer {
	case t.Buyer():
		reviewed = t.Seller()
	case t.Seller():
		reviewed = t.Buyer()
	default:
		return nil, errs.Validationf("reviewer is not a party of transaction %s", cmd.TransactionID)
	}

	review, err := txdomain.NewReview(h.ids.Next(identity.KindReview), cmd.Rating, cmd.Comment, cmd.Reviewer, reviewed, time.Now())
	if err != nil {
		return nil, err
	}
	if cmd.Reviewer == t.Buyer() {
		err = t.AttachBuyerReview(review)
	} else {
		err = t.AttachSellerReview(review)
	}
	if err != nil {
		return nil, err
	}
	awardReviewCredits(cmd.Reviewer)
	return review, nil
}
