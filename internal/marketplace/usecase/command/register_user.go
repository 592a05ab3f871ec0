package command

import (
	"errors"
	"fmt"
	"time"

	"github.com/studex/marketplace/internal/errs"
	"github.com/studex/marketplace/internal/identity"
	"github.com/studex/marketplace/internal/user/domain"
)

// RegisterUserCommand represents the command to register a new user.
type RegisterUserCommand struct {
	Name     string
	CNIC     string
	Email    string
	Password string
	Phone    string
	Address  string
}

// RegisterUserHandler handles user registration.
type RegisterUserHandler struct {
	users domain.UserRepository
	ids   *identity.Generator
}

// NewRegisterUserHandler creates a new register user handler.
func NewRegisterUserHandler(users domain.UserRepository, ids *identity.Generator) *RegisterUserHandler {
	return &RegisterUserHandler{users: users, ids: ids}
}

// Handle executes the register user command. Email and CNIC are
// normalized before the uniqueness checks, and the user is only
// constructed once both pass.
func (h *RegisterUserHandler) Handle(cmd RegisterUserCommand) (*domain.User, error) {
	email := domain.NormalizeEmail(cmd.Email)
	cnic := domain.NormalizeCNIC(cmd.CNIC)

	if existing, err := h.users.FindByEmail(email); err == nil && existing != nil {
		return nil, errs.Conflictf("email %s already registered", email)
	} else if err != nil && !errors.Is(err, errs.ErrNotFound) {
		return nil, fmt.Errorf("check email uniqueness: %w", err)
	}
	if existing, err := h.users.FindByCNIC(cnic); err == nil && existing != nil {
		return nil, errs.Conflictf("cnic already registered")
	} else if err != nil && !errors.Is(err, errs.ErrNotFound) {
		return nil, fmt.Errorf("check cnic uniqueness: %w", err)
	}

	user, err := domain.NewUser(h.ids.Next(identity.KindUser), cmd.Name, cnic, email, cmd.Password, cmd.Phone, cmd.Address, time.Now())
	if err != nil {
		return nil, err
	}
	if err := h.users.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}
