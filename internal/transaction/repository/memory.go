package repository

import (
	"github.com/studex/marketplace/internal/errs"
	"github.com/studex/marketplace/internal/transaction/domain"
)

// MemoryTransactionRepository is the in-memory global transaction
// ledger. Transactions are never removed.
type MemoryTransactionRepository struct {
	transactions []*domain.Transaction
	byID         map[string]*domain.Transaction
}

// NewMemoryTransactionRepository creates an empty ledger.
func NewMemoryTransactionRepository() *MemoryTransactionRepository {
	return &MemoryTransactionRepository{
		byID: make(map[string]*domain.Transaction),
	}
}

// Create appends a transaction to the ledger, rejecting duplicates.
func (r *MemoryTransactionRepository) Create(t *domain.Transaction) error {
	if t == nil {
		return errs.Validationf("transaction is required")
	}
	if _, ok := r.byID[t.TransactionID()]; ok {
		return errs.Conflictf("transaction %s already recorded", t.TransactionID())
	}
	r.transactions = append(r.transactions, t)
	r.byID[t.TransactionID()] = t
	return nil
}

// FindByID retrieves a transaction by ID.
func (r *MemoryTransactionRepository) FindByID(id string) (*domain.Transaction, error) {
	if t, ok := r.byID[id]; ok {
		return t, nil
	}
	return nil, errs.NotFoundf("transaction %s not found", id)
}

// FindAll returns the ledger in creation order.
func (r *MemoryTransactionRepository) FindAll() ([]*domain.Transaction, error) {
	out := make([]*domain.Transaction, len(r.transactions))
	copy(out, r.transactions)
	return out, nil
}

// Count returns the number of recorded transactions.
func (r *MemoryTransactionRepository) Count() (int64, error) {
	return int64(len(r.transactions)), nil
}
