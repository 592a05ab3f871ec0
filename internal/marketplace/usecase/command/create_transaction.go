package command

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	catalogdomain "github.com/studex/marketplace/internal/catalog/domain"
	"github.com/studex/marketplace/internal/errs"
	"github.com/studex/marketplace/internal/identity"
	txdomain "github.com/studex/marketplace/internal/transaction/domain"
	userdomain "github.com/studex/marketplace/internal/user/domain"
)

// CreateTransactionCommand represents the command to buy an item.
type CreateTransactionCommand struct {
	Buyer         *userdomain.User
	Item          catalogdomain.Item
	PaymentMethod string
	Credits       int
}

// CreateTransactionHandler handles purchases. Order creation and
// payment are one atomic step: the original system exposes no
// awaiting-payment window, and that behavior is kept.
type CreateTransactionHandler struct {
	transactions txdomain.TransactionRepository
	ids          *identity.Generator
}

// NewCreateTransactionHandler creates a new create transaction
// handler.
func NewCreateTransactionHandler(transactions txdomain.TransactionRepository, ids *identity.Generator) *CreateTransactionHandler {
	return &CreateTransactionHandler{transactions: transactions, ids: ids}
}

// Handle executes the purchase: resolves the seller from the item,
// constructs the transaction (which marks the item sold), applies any
// requested credits, completes payment and records the transaction in
// the ledger and in both users' histories.
func (h *CreateTransactionHandler) Handle(cmd CreateTransactionCommand) (*txdomain.Transaction, error) {
	if cmd.Buyer == nil {
		return nil, errs.Validationf("buyer is required")
	}
	if cmd.Item == nil {
		return nil, errs.Validationf("item is required")
	}
	item, ok := cmd.Item.(catalogdomain.Purchasable)
	if !ok {
		return nil, errs.Validationf("item %s is not for sale", cmd.Item.ID())
	}
	seller := item.Uploader()

	// The credit request is validated before the transaction is
	// constructed: construction reserves the item, and a reservation
	// made for a purchase that is then rejected would destroy the
	// listing for the seller.
	if cmd.Credits < 0 {
		return nil, errs.Validationf("credits must not be negative")
	}
	if cmd.Credits > cmd.Buyer.CreditPoints() {
		return nil, errs.Statef("buyer has %d credit points, requested %d", cmd.Buyer.CreditPoints(), cmd.Credits)
	}

	reference := fmt.Sprintf("TXN-%s", uuid.New().String()[:12])
	t, err := txdomain.New(h.ids.Next(identity.KindTransaction), reference, cmd.Buyer, seller, item, cmd.PaymentMethod, time.Now())
	if err != nil {
		return nil, err
	}
	if cmd.Credits > 0 {
		if err := t.ApplyCredits(cmd.Credits); err != nil {
			return nil, err
		}
	}
	if err := t.CompletePayment(cmd.PaymentMethod); err != nil {
		return nil, fmt.Errorf("complete payment: %w", err)
	}
	if err := h.transactions.Create(t); err != nil {
		return nil, fmt.Errorf("record transaction: %w", err)
	}
	cmd.Buyer.RecordPurchase(t)
	seller.RecordSale(t)
	return t, nil
}
