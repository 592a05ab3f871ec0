package domain

import (
	"errors"
	"strings"
	"testing"
	"time"

	catalogdomain "github.com/studex/marketplace/internal/catalog/domain"
	"github.com/studex/marketplace/internal/errs"
	userdomain "github.com/studex/marketplace/internal/user/domain"
)

func newUser(t *testing.T, id, email, cnic string) *userdomain.User {
	t.Helper()
	u, err := userdomain.NewUser(id, "User "+id, cnic, email, "pw", "", "", time.Now())
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}
	return u
}

func newBook(t *testing.T, id string, price float64, uploader *userdomain.User) *catalogdomain.Book {
	t.Helper()
	book, err := catalogdomain.NewBook(catalogdomain.BookParams{
		ListingParams: catalogdomain.ListingParams{
			ID:       id,
			Title:    "Calculus",
			Uploader: uploader,
			Category: "Mathematics",
			Grade:    "A-Level",
			Subject:  "Mathematics",
		},
		SaleParams: catalogdomain.SaleParams{
			Price:       price,
			MarketPrice: price,
			Condition:   "good",
		},
		Author: "Author",
		Pages:  100,
	}, time.Now())
	if err != nil {
		t.Fatalf("NewBook: %v", err)
	}
	return book
}

type fixture struct {
	buyer  *userdomain.User
	seller *userdomain.User
	book   *catalogdomain.Book
	txn    *Transaction
}

func newFixture(t *testing.T, price float64) fixture {
	t.Helper()
	seller := newUser(t, "USR-000001", "seller@uni.pk", "3520212345671")
	buyer := newUser(t, "USR-000002", "buyer@uni.pk", "3520298765432")
	book := newBook(t, "ITM-000001", price, seller)
	txn, err := New("TXN-000001", "TXN-abc123", buyer, seller, book, MethodCashOnDelivery, time.Now())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return fixture{buyer: buyer, seller: seller, book: book, txn: txn}
}

func TestNewReservesItem(t *testing.T) {
	f := newFixture(t, 500)

	if f.book.IsAvailable() {
		t.Error("item must be reserved at construction")
	}
	if f.book.Buyer() != f.buyer {
		t.Error("item must record the transaction's buyer")
	}
	if f.txn.PaymentStatus() != PaymentPending {
		t.Errorf("new transaction must be pending, got %s", f.txn.PaymentStatus())
	}
	if f.txn.ShippingStatus() != ShippingNotShipped {
		t.Errorf("new transaction must not be shipped, got %s", f.txn.ShippingStatus())
	}

	// A second sale of the same item must be impossible.
	other := newUser(t, "USR-000003", "other@uni.pk", "3520211111111")
	if _, err := New("TXN-000002", "TXN-def456", other, f.seller, f.book, MethodEasypaisa, time.Now()); !errors.Is(err, errs.ErrState) {
		t.Errorf("selling a sold item must fail with a state error, got %v", err)
	}
}

func TestNewRejectsSelfPurchase(t *testing.T) {
	seller := newUser(t, "USR-000001", "seller@uni.pk", "3520212345671")
	book := newBook(t, "ITM-000001", 500, seller)

	if _, err := New("TXN-000001", "ref", seller, seller, book, MethodCashOnDelivery, time.Now()); !errors.Is(err, errs.ErrValidation) {
		t.Errorf("buying your own item must fail, got %v", err)
	}
	if !book.IsAvailable() {
		t.Error("a rejected transaction must not reserve the item")
	}
}

func TestApplyCredits(t *testing.T) {
	f := newFixture(t, 55)
	f.buyer.AddCreditPoints(100)

	if err := f.txn.ApplyCredits(-1); !errors.Is(err, errs.ErrValidation) {
		t.Errorf("negative credits: got %v", err)
	}

	// The discount would exceed the price: clamp to floor(55/10) = 5.
	if err := f.txn.ApplyCredits(7); err != nil {
		t.Fatalf("ApplyCredits: %v", err)
	}
	if got := f.txn.CreditsUsed(); got != 5 {
		t.Errorf("expected clamp to 5 credits, got %d", got)
	}
	if got := f.txn.Total(); got != 5 {
		t.Errorf("expected total 55 - 50 = 5, got %f", got)
	}
}

func TestApplyCreditsRejectsOverBalance(t *testing.T) {
	f := newFixture(t, 500)
	f.buyer.AddCreditPoints(3)

	if err := f.txn.ApplyCredits(7); !errors.Is(err, errs.ErrState) {
		t.Errorf("requesting more credits than the balance must fail, got %v", err)
	}
	if f.txn.CreditsUsed() != 0 {
		t.Errorf("failed apply must leave credits at 0, got %d", f.txn.CreditsUsed())
	}
}

func TestCompletePaymentDebitsCredits(t *testing.T) {
	f := newFixture(t, 500)
	f.buyer.AddCreditPoints(20)

	if err := f.txn.ApplyCredits(10); err != nil {
		t.Fatalf("ApplyCredits: %v", err)
	}
	if err := f.txn.CompletePayment(MethodEasypaisa); err != nil {
		t.Fatalf("CompletePayment: %v", err)
	}

	if f.txn.PaymentStatus() != PaymentCompleted {
		t.Errorf("expected completed, got %s", f.txn.PaymentStatus())
	}
	if f.txn.PaymentMethod() != MethodEasypaisa {
		t.Errorf("method override not applied, got %s", f.txn.PaymentMethod())
	}
	if got := f.buyer.CreditPoints(); got != 10 {
		t.Errorf("expected 10 credits left after debit, got %d", got)
	}
	if got := f.txn.Total(); got != 400 {
		t.Errorf("expected total 400, got %f", got)
	}

	if err := f.txn.CompletePayment(""); !errors.Is(err, errs.ErrState) {
		t.Errorf("double completion must fail, got %v", err)
	}
	if err := f.txn.ApplyCredits(1); !errors.Is(err, errs.ErrState) {
		t.Errorf("applying credits after completion must fail, got %v", err)
	}
}

func TestFailedPaymentIsTerminal(t *testing.T) {
	f := newFixture(t, 500)

	if err := f.txn.MarkPaymentFailed(); err != nil {
		t.Fatalf("MarkPaymentFailed: %v", err)
	}
	if err := f.txn.CompletePayment(""); !errors.Is(err, errs.ErrState) {
		t.Errorf("completing a failed payment must fail, got %v", err)
	}
	if err := f.txn.MarkPaymentFailed(); err != nil {
		t.Errorf("re-failing a failed payment is a no-op, got %v", err)
	}

	// And a completed payment cannot be failed afterwards.
	g := newFixture(t, 500)
	if err := g.txn.CompletePayment(""); err != nil {
		t.Fatalf("CompletePayment: %v", err)
	}
	if err := g.txn.MarkPaymentFailed(); !errors.Is(err, errs.ErrState) {
		t.Errorf("failing a completed payment must be rejected, got %v", err)
	}
}

func TestShippingStateMachine(t *testing.T) {
	f := newFixture(t, 500)

	// Staying put is the only permitted move before payment.
	if err := f.txn.UpdateShippingStatus(ShippingNotShipped, time.Now()); err != nil {
		t.Errorf("same-state update must be a no-op, got %v", err)
	}
	if err := f.txn.UpdateShippingStatus(ShippingShipped, time.Now()); !errors.Is(err, errs.ErrState) {
		t.Errorf("shipping before payment must fail, got %v", err)
	}

	if err := f.txn.CompletePayment(""); err != nil {
		t.Fatalf("CompletePayment: %v", err)
	}

	if err := f.txn.UpdateShippingStatus("teleported", time.Now()); !errors.Is(err, errs.ErrValidation) {
		t.Errorf("unknown status must fail validation, got %v", err)
	}
	if err := f.txn.UpdateShippingStatus(ShippingDelivered, time.Now()); !errors.Is(err, errs.ErrState) {
		t.Errorf("skipping SHIPPED must fail, got %v", err)
	}

	shipTime := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	if err := f.txn.UpdateShippingStatus(ShippingShipped, shipTime); err != nil {
		t.Fatalf("ship: %v", err)
	}
	shippedAt, ok := f.txn.ShippedAt()
	if !ok || !shippedAt.Equal(shipTime) {
		t.Errorf("ship date must be the caller's timestamp, got %v", shippedAt)
	}

	if err := f.txn.UpdateShippingStatus(ShippingDelivered, time.Now()); err != nil {
		t.Fatalf("deliver: %v", err)
	}
	if _, ok := f.txn.DeliveredAt(); !ok {
		t.Error("delivery date must be set")
	}

	// No moving backwards.
	if err := f.txn.UpdateShippingStatus(ShippingShipped, time.Now()); !errors.Is(err, errs.ErrState) {
		t.Errorf("moving back to SHIPPED must fail, got %v", err)
	}
	if at, _ := f.txn.ShippedAt(); !at.Equal(shipTime) {
		t.Error("ship date must never change once set")
	}
}

func TestReviews(t *testing.T) {
	f := newFixture(t, 500)
	if err := f.txn.CompletePayment(""); err != nil {
		t.Fatalf("CompletePayment: %v", err)
	}

	buyerReview, err := NewReview("REV-000001", 5, "great seller", f.buyer, f.seller, time.Now())
	if err != nil {
		t.Fatalf("NewReview: %v", err)
	}
	sellerReview, err := NewReview("REV-000002", 4, "smooth deal", f.seller, f.buyer, time.Now())
	if err != nil {
		t.Fatalf("NewReview: %v", err)
	}

	// Wrong party on the wrong slot.
	if err := f.txn.AttachBuyerReview(sellerReview); !errors.Is(err, errs.ErrValidation) {
		t.Errorf("seller's review in the buyer slot must fail, got %v", err)
	}

	if err := f.txn.AttachBuyerReview(buyerReview); err != nil {
		t.Fatalf("AttachBuyerReview: %v", err)
	}
	if err := f.txn.AttachBuyerReview(buyerReview); !errors.Is(err, errs.ErrState) {
		t.Errorf("second buyer review must fail, got %v", err)
	}
	if f.txn.ReviewsCompleted() {
		t.Error("one review is not both reviews")
	}

	if err := f.txn.AttachSellerReview(sellerReview); err != nil {
		t.Fatalf("AttachSellerReview: %v", err)
	}
	if !f.txn.ReviewsCompleted() {
		t.Error("both reviews are attached")
	}

	if rating, ok := f.txn.BuyerReviewRating(); !ok || rating != 5 {
		t.Errorf("buyer review rating = %d, %v", rating, ok)
	}
	if rating, ok := f.txn.SellerReviewRating(); !ok || rating != 4 {
		t.Errorf("seller review rating = %d, %v", rating, ok)
	}

	if f.txn.IsComplete() {
		t.Error("not complete until delivered")
	}
	f.txn.UpdateShippingStatus(ShippingShipped, time.Now())
	f.txn.UpdateShippingStatus(ShippingDelivered, time.Now())
	if !f.txn.IsComplete() {
		t.Error("paid, delivered and reviewed means complete")
	}
}

func TestNewReviewValidation(t *testing.T) {
	reviewer := newUser(t, "USR-000001", "a@uni.pk", "3520212345671")
	reviewed := newUser(t, "USR-000002", "b@uni.pk", "3520298765432")
	now := time.Now()

	if _, err := NewReview("REV-000001", 0, "", reviewer, reviewed, now); !errors.Is(err, errs.ErrValidation) {
		t.Errorf("rating 0: got %v", err)
	}
	if _, err := NewReview("REV-000001", 6, "", reviewer, reviewed, now); !errors.Is(err, errs.ErrValidation) {
		t.Errorf("rating 6: got %v", err)
	}
	if _, err := NewReview("REV-000001", 3, "", reviewer, reviewer, now); !errors.Is(err, errs.ErrValidation) {
		t.Errorf("self review: got %v", err)
	}

	long := make([]byte, 1001)
	for i := range long {
		long[i] = 'x'
	}
	if _, err := NewReview("REV-000001", 3, string(long), reviewer, reviewed, now); !errors.Is(err, errs.ErrValidation) {
		t.Errorf("oversized comment: got %v", err)
	}

	// The cap counts characters, not bytes: 600 Urdu characters are
	// well inside it even at two bytes each.
	urdu := strings.Repeat("ش", 600)
	if _, err := NewReview("REV-000001", 3, urdu, reviewer, reviewed, now); err != nil {
		t.Errorf("600-character multibyte comment must pass, got %v", err)
	}
	if _, err := NewReview("REV-000001", 3, strings.Repeat("ش", 1001), reviewer, reviewed, now); !errors.Is(err, errs.ErrValidation) {
		t.Errorf("1001-character multibyte comment: got %v", err)
	}

	r, err := NewReview("REV-000001", 3, "  fine  ", reviewer, reviewed, now)
	if err != nil {
		t.Fatalf("NewReview: %v", err)
	}
	if r.Comment() != "fine" {
		t.Errorf("comment must be trimmed, got %q", r.Comment())
	}
}

func TestStatusSnapshot(t *testing.T) {
	f := newFixture(t, 500)

	status := f.txn.Status()
	if status["payment_status"] != PaymentPending {
		t.Errorf("payment_status = %q", status["payment_status"])
	}
	if status["shipping_status"] != ShippingNotShipped {
		t.Errorf("shipping_status = %q", status["shipping_status"])
	}
	if status["total"] != "500.00" {
		t.Errorf("total = %q", status["total"])
	}
	if status["complete"] != "false" {
		t.Errorf("complete = %q", status["complete"])
	}
}
