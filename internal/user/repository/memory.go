package repository

import (
	"github.com/studex/marketplace/internal/errs"
	"github.com/studex/marketplace/internal/user/domain"
)

// MemoryUserRepository implements UserRepository in process memory.
// The engine is single-writer by contract, so there is no locking;
// callers needing concurrent access wrap the whole aggregate.
type MemoryUserRepository struct {
	users   []*domain.User
	byID    map[string]*domain.User
	byEmail map[string]*domain.User
	byCNIC  map[string]*domain.User
}

// NewMemoryUserRepository creates an empty user store.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]*domain.User),
		byCNIC:  make(map[string]*domain.User),
	}
}

// Create inserts a new user, enforcing ID, email and CNIC uniqueness.
func (r *MemoryUserRepository) Create(user *domain.User) error {
	if user == nil {
		return errs.Validationf("user is required")
	}
	if _, ok := r.byID[user.ID]; ok {
		return errs.Conflictf("user id %s already exists", user.ID)
	}
	email := domain.NormalizeEmail(user.Email)
	if _, ok := r.byEmail[email]; ok {
		return errs.Conflictf("email %s already registered", email)
	}
	if _, ok := r.byCNIC[user.CNIC]; ok {
		return errs.Conflictf("cnic already registered")
	}
	r.users = append(r.users, user)
	r.byID[user.ID] = user
	r.byEmail[email] = user
	r.byCNIC[user.CNIC] = user
	return nil
}

// FindByID retrieves a user by ID.
func (r *MemoryUserRepository) FindByID(id string) (*domain.User, error) {
	if user, ok := r.byID[id]; ok {
		return user, nil
	}
	return nil, errs.NotFoundf("user %s not found", id)
}

// FindByEmail retrieves a user by email, case-insensitively.
func (r *MemoryUserRepository) FindByEmail(email string) (*domain.User, error) {
	if user, ok := r.byEmail[domain.NormalizeEmail(email)]; ok {
		return user, nil
	}
	return nil, errs.NotFoundf("user not found")
}

// FindByCNIC retrieves a user by normalized CNIC.
func (r *MemoryUserRepository) FindByCNIC(cnic string) (*domain.User, error) {
	if user, ok := r.byCNIC[domain.NormalizeCNIC(cnic)]; ok {
		return user, nil
	}
	return nil, errs.NotFoundf("user not found")
}

// FindAll returns all users in registration order.
func (r *MemoryUserRepository) FindAll() ([]*domain.User, error) {
	out := make([]*domain.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

// Count returns the number of registered users.
func (r *MemoryUserRepository) Count() (int64, error) {
	return int64(len(r.users)), nil
}
