package domain

import (
	"fmt"
	"math"
	"strconv"
	"time"

	catalogdomain "github.com/studex/marketplace/internal/catalog/domain"
	"github.com/studex/marketplace/internal/errs"
	userdomain "github.com/studex/marketplace/internal/user/domain"
)

// Payment statuses. PENDING moves to COMPLETED or FAILED, both
// terminal. A failed payment cannot be retried; the buyer starts a new
// transaction.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

// Shipping statuses, strictly forward-only.
const (
	ShippingNotShipped = "not_shipped"
	ShippingShipped    = "shipped"
	ShippingDelivered  = "delivered"
)

// Payment methods.
const (
	MethodCashOnDelivery = "cash_on_delivery"
	MethodCreditCard     = "credit_card"
	MethodDebitCard      = "debit_card"
	MethodEasypaisa      = "easypaisa"
	MethodJazzcash       = "jazzcash"
)

// RupeesPerCredit is the discount one credit point buys.
const RupeesPerCredit = 10.0

var shippingRank = map[string]int{
	ShippingNotShipped: 0,
	ShippingShipped:    1,
	ShippingDelivered:  2,
}

// Transaction is the record of one sale between a buyer and a seller
// for one item. Constructing a transaction immediately reserves the
// item: it is marked sold before any payment happens.
type Transaction struct {
	id        string
	reference string
	buyer     *userdomain.User
	seller    *userdomain.User
	item      catalogdomain.Purchasable
	createdAt time.Time

	paymentMethod  string
	paymentStatus  string
	shippingStatus string
	shippedAt      time.Time
	deliveredAt    time.Time

	creditsUsed  int
	buyerReview  *Review
	sellerReview *Review
}

// New creates a transaction and marks the item sold as a side effect.
// The reference is an opaque receipt number, distinct from the
// ledger-issued ID.
func New(id, reference string, buyer, seller *userdomain.User, item catalogdomain.Purchasable, method string, now time.Time) (*Transaction, error) {
	if id == "" {
		return nil, errs.Validationf("transaction id is required")
	}
	if buyer == nil || seller == nil {
		return nil, errs.Validationf("buyer and seller are required")
	}
	if buyer == seller || buyer.ID == seller.ID {
		return nil, errs.Validationf("buyer and seller must differ")
	}
	if item == nil {
		return nil, errs.Validationf("item is required")
	}
	if !item.IsAvailable() {
		return nil, errs.Statef("item %s is no longer available", item.ID())
	}
	if method == "" {
		return nil, errs.Validationf("payment method is required")
	}

	t := &Transaction{
		id:             id,
		reference:      reference,
		buyer:          buyer,
		seller:         seller,
		item:           item,
		createdAt:      now,
		paymentMethod:  method,
		paymentStatus:  PaymentPending,
		shippingStatus: ShippingNotShipped,
	}
	if err := item.MarkSold(buyer, now); err != nil {
		return nil, fmt.Errorf("reserve item: %w", err)
	}
	return t, nil
}

func (t *Transaction) TransactionID() string           { return t.id }
func (t *Transaction) Reference() string               { return t.reference }
func (t *Transaction) Buyer() *userdomain.User         { return t.buyer }
func (t *Transaction) Seller() *userdomain.User        { return t.seller }
func (t *Transaction) Item() catalogdomain.Purchasable { return t.item }
func (t *Transaction) CreatedAt() time.Time            { return t.createdAt }
func (t *Transaction) PaymentMethod() string           { return t.paymentMethod }
func (t *Transaction) PaymentStatus() string           { return t.paymentStatus }
func (t *Transaction) ShippingStatus() string          { return t.shippingStatus }
func (t *Transaction) CreditsUsed() int                { return t.creditsUsed }

// ItemPrice returns the nominal price of the sold item.
func (t *Transaction) ItemPrice() float64 { return t.item.Price() }

// ApplyCredits sets the credits the buyer wants to redeem. Rejected
// once payment has completed or when the buyer's balance cannot cover
// the request; silently clamped when the discount would exceed the
// item price.
func (t *Transaction) ApplyCredits(credits int) error {
	if t.paymentStatus == PaymentCompleted {
		return errs.Statef("payment already completed")
	}
	if credits < 0 {
		return errs.Validationf("credits must not be negative")
	}
	if credits > t.buyer.CreditPoints() {
		return errs.Statef("buyer has %d credit points, requested %d", t.buyer.CreditPoints(), credits)
	}
	if max := int(t.item.Price() / RupeesPerCredit); credits > max {
		credits = max
	}
	t.creditsUsed = credits
	return nil
}

// CompletePayment moves the payment to COMPLETED and debits the
// applied credits from the buyer. A failed payment cannot be
// completed; the reservation made at construction must still stand.
func (t *Transaction) CompletePayment(method string) error {
	if t.paymentStatus == PaymentCompleted {
		return errs.Statef("payment already completed")
	}
	if t.paymentStatus == PaymentFailed {
		return errs.Statef("payment failed; a new transaction is required")
	}
	if t.item.Buyer() != t.buyer {
		return errs.Statef("item %s is no longer reserved for this buyer", t.item.ID())
	}
	if method != "" {
		t.paymentMethod = method
	}
	if t.creditsUsed > 0 {
		if err := t.buyer.UseCreditPoints(t.creditsUsed); err != nil {
			// The balance was checked when credits were applied, so a
			// failing debit means the ledger and transaction disagree.
			return fmt.Errorf("debit %d credit points: %w", t.creditsUsed, err)
		}
	}
	t.paymentStatus = PaymentCompleted
	return nil
}

// MarkPaymentFailed moves the payment to its terminal FAILED state.
func (t *Transaction) MarkPaymentFailed() error {
	if t.paymentStatus == PaymentCompleted {
		return errs.Statef("payment already completed")
	}
	t.paymentStatus = PaymentFailed
	return nil
}

// UpdateShippingStatus advances the shipping state. Transitions are
// strictly forward and one step at a time, and nothing ships before
// payment completes. Ship and delivery dates are set exactly once,
// from the caller's clock like every other timestamp here.
func (t *Transaction) UpdateShippingStatus(status string, at time.Time) error {
	next, ok := shippingRank[status]
	if !ok {
		return errs.Validationf("unknown shipping status %q", status)
	}
	current := shippingRank[t.shippingStatus]
	if next == current {
		return nil
	}
	if t.paymentStatus != PaymentCompleted {
		return errs.Statef("cannot ship before payment completes")
	}
	if next != current+1 {
		return errs.Statef("cannot move shipping from %s to %s", t.shippingStatus, status)
	}
	t.shippingStatus = status
	switch status {
	case ShippingShipped:
		t.shippedAt = at
	case ShippingDelivered:
		t.deliveredAt = at
	}
	return nil
}

// ShippedAt returns the ship date and whether the item has shipped.
func (t *Transaction) ShippedAt() (time.Time, bool) {
	return t.shippedAt, !t.shippedAt.IsZero()
}

// DeliveredAt returns the delivery date and whether the item arrived.
func (t *Transaction) DeliveredAt() (time.Time, bool) {
	return t.deliveredAt, !t.deliveredAt.IsZero()
}

// AttachBuyerReview records the buyer's review of the seller, once.
func (t *Transaction) AttachBuyerReview(r *Review) error {
	if r == nil {
		return errs.Validationf("review is required")
	}
	if r.Reviewer() != t.buyer || r.Reviewed() != t.seller {
		return errs.Validationf("buyer review must be written by the buyer about the seller")
	}
	if t.buyerReview != nil {
		return errs.Statef("buyer review already submitted")
	}
	t.buyerReview = r
	return nil
}

// AttachSellerReview records the seller's review of the buyer, once.
func (t *Transaction) AttachSellerReview(r *Review) error {
	if r == nil {
		return errs.Validationf("review is required")
	}
	if r.Reviewer() != t.seller || r.Reviewed() != t.buyer {
		return errs.Validationf("seller review must be written by the seller about the buyer")
	}
	if t.sellerReview != nil {
		return errs.Statef("seller review already submitted")
	}
	t.sellerReview = r
	return nil
}

// BuyerReview returns the buyer's review, if present.
func (t *Transaction) BuyerReview() *Review { return t.buyerReview }

// SellerReview returns the seller's review, if present.
func (t *Transaction) SellerReview() *Review { return t.sellerReview }

// BuyerReviewRating reports the rating the buyer gave the seller.
func (t *Transaction) BuyerReviewRating() (int, bool) {
	if t.buyerReview == nil {
		return 0, false
	}
	return t.buyerReview.Rating(), true
}

// SellerReviewRating reports the rating the seller gave the buyer.
func (t *Transaction) SellerReviewRating() (int, bool) {
	if t.sellerReview == nil {
		return 0, false
	}
	return t.sellerReview.Rating(), true
}

// ReviewsCompleted reports whether both sides have reviewed.
func (t *Transaction) ReviewsCompleted() bool {
	return t.buyerReview != nil && t.sellerReview != nil
}

// IsComplete reports whether the transaction has reached its terminal
// happy state: paid, delivered and reviewed by both sides.
func (t *Transaction) IsComplete() bool {
	return t.paymentStatus == PaymentCompleted &&
		t.shippingStatus == ShippingDelivered &&
		t.ReviewsCompleted()
}

// Total is the price after the credit discount, floored at zero.
func (t *Transaction) Total() float64 {
	return math.Max(0, t.item.Price()-float64(t.creditsUsed)*RupeesPerCredit)
}

// ElapsedDays is the whole number of days since the transaction was
// created.
func (t *Transaction) ElapsedDays() int {
	return int(time.Since(t.createdAt).Hours() / 24)
}

// Status produces a display snapshot of the transaction's derived
// fields. It is a pure read.
func (t *Transaction) Status() map[string]string {
	return map[string]string{
		"transaction_id":   t.id,
		"reference":        t.reference,
		"buyer":            t.buyer.Name,
		"seller":           t.seller.Name,
		"item":             t.item.Title(),
		"payment_method":   t.paymentMethod,
		"payment_status":   t.paymentStatus,
		"shipping_status":  t.shippingStatus,
		"credits_used":     strconv.Itoa(t.creditsUsed),
		"total":            fmt.Sprintf("%.2f", t.Total()),
		"reviews_complete": strconv.FormatBool(t.ReviewsCompleted()),
		"complete":         strconv.FormatBool(t.IsComplete()),
		"elapsed_days":     strconv.Itoa(t.ElapsedDays()),
	}
}

// TransactionRepository defines the contract for the global
// transaction ledger.
type TransactionRepository interface {
	Create(t *Transaction) error
	FindByID(id string) (*Transaction, error)
	FindAll() ([]*Transaction, error)
	Count() (int64, error)
}
