package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/studex/marketplace/internal/errs"
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	cnicPattern  = regexp.MustCompile(`^[0-9]{13}$`)
)

// TransactionRecord is the slice of a transaction a user's history
// needs: enough to sum spending and aggregate ratings without the user
// package importing the transaction package.
type TransactionRecord interface {
	TransactionID() string
	ItemPrice() float64
	// BuyerReviewRating returns the rating the buyer left (it rates
	// the seller) and whether that review exists yet.
	BuyerReviewRating() (int, bool)
	// SellerReviewRating returns the rating the seller left (it rates
	// the buyer) and whether that review exists yet.
	SellerReviewRating() (int, bool)
}

// User is a registered marketplace account with a credit-point balance
// and append-only buyer/seller transaction histories.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	CNIC         string    `json:"cnic"`
	Email        string    `json:"email"`
	Password     string    `json:"-"` // Stored in plaintext. Known security gap carried over from the original system.
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	RegisteredAt time.Time `json:"registered_at"`

	creditPoints int
	asBuyer      []TransactionRecord
	asSeller     []TransactionRecord
}

// NewUser validates and creates a user. Email and CNIC arrive already
// normalized (see NormalizeEmail/NormalizeCNIC); uniqueness is the
// repository's job.
func NewUser(id, name, cnic, email, password, phone, address string, now time.Time) (*User, error) {
	if id == "" {
		return nil, errs.Validationf("user id is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, errs.Validationf("name is required")
	}
	if !cnicPattern.MatchString(cnic) {
		return nil, errs.Validationf("cnic must be 13 digits")
	}
	if !emailPattern.MatchString(email) {
		return nil, errs.Validationf("invalid email address")
	}
	if password == "" {
		return nil, errs.Validationf("password is required")
	}
	return &User{
		ID:           id,
		Name:         strings.TrimSpace(name),
		CNIC:         cnic,
		Email:        email,
		Password:     password,
		Phone:        strings.TrimSpace(phone),
		Address:      strings.TrimSpace(address),
		RegisteredAt: now,
	}, nil
}

// NormalizeEmail lower-cases and trims an email for comparison and
// storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeCNIC strips dashes and spaces from a CNIC.
func NormalizeCNIC(cnic string) string {
	cnic = strings.TrimSpace(cnic)
	return strings.ReplaceAll(cnic, "-", "")
}

// UpdateProfile changes the mutable profile fields. Empty name is
// rejected; phone and address may be cleared.
func (u *User) UpdateProfile(name, phone, address string) error {
	if strings.TrimSpace(name) == "" {
		return errs.Validationf("name is required")
	}
	u.Name = strings.TrimSpace(name)
	u.Phone = strings.TrimSpace(phone)
	u.Address = strings.TrimSpace(address)
	return nil
}

// CreditPoints returns the current balance.
func (u *User) CreditPoints() int {
	return u.creditPoints
}

// AddCreditPoints credits the balance. Non-positive amounts are
// rejected.
func (u *User) AddCreditPoints(n int) error {
	if n <= 0 {
		return errs.Validationf("credit amount must be positive")
	}
	u.creditPoints += n
	return nil
}

// UseCreditPoints is the sole debit path. It decrements only when the
// amount is positive and covered by the balance; otherwise the balance
// stays untouched and an error is returned.
func (u *User) UseCreditPoints(n int) error {
	if n <= 0 {
		return errs.Validationf("debit amount must be positive")
	}
	if n > u.creditPoints {
		return errs.Statef("insufficient credit points: have %d, want %d", u.creditPoints, n)
	}
	u.creditPoints -= n
	return nil
}

// RecordPurchase appends a transaction to the buyer history.
func (u *User) RecordPurchase(t TransactionRecord) {
	u.asBuyer = append(u.asBuyer, t)
}

// RecordSale appends a transaction to the seller history.
func (u *User) RecordSale(t TransactionRecord) {
	u.asSeller = append(u.asSeller, t)
}

// BuyerTransactions returns a snapshot of the buyer history.
func (u *User) BuyerTransactions() []TransactionRecord {
	out := make([]TransactionRecord, len(u.asBuyer))
	copy(out, u.asBuyer)
	return out
}

// SellerTransactions returns a snapshot of the seller history.
func (u *User) SellerTransactions() []TransactionRecord {
	out := make([]TransactionRecord, len(u.asSeller))
	copy(out, u.asSeller)
	return out
}

// TotalSpent sums the nominal item price over the buyer history.
// Credits-adjusted totals are deliberately not used here.
func (u *User) TotalSpent() float64 {
	var total float64
	for _, t := range u.asBuyer {
		total += t.ItemPrice()
	}
	return total
}

// TotalEarned sums the nominal item price over the seller history.
func (u *User) TotalEarned() float64 {
	var total float64
	for _, t := range u.asSeller {
		total += t.ItemPrice()
	}
	return total
}

// TotalTransactions counts both sides of the history.
func (u *User) TotalTransactions() int {
	return len(u.asBuyer) + len(u.asSeller)
}

// SellerRating is the mean of the ratings buyers left on this user's
// sales. 0 when no reviews exist.
func (u *User) SellerRating() float64 {
	var sum, count int
	for _, t := range u.asSeller {
		if rating, ok := t.BuyerReviewRating(); ok {
			sum += rating
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return float64(sum) / float64(count)
}

// BuyerRating is the mean of the ratings sellers left on this user's
// purchases. 0 when no reviews exist.
func (u *User) BuyerRating() float64 {
	var sum, count int
	for _, t := range u.asBuyer {
		if rating, ok := t.SellerReviewRating(); ok {
			sum += rating
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return float64(sum) / float64(count)
}

// AverageRating is the user's public rating, derived from reviews of
// their sales.
func (u *User) AverageRating() float64 {
	return u.SellerRating()
}

// UserRepository defines the contract for user storage.
type UserRepository interface {
	Create(user *User) error
	FindByID(id string) (*User, error)
	FindByEmail(email string) (*User, error)
	FindByCNIC(cnic string) (*User, error)
	FindAll() ([]*User, error)
	Count() (int64, error)
}
