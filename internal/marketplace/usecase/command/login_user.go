package command

import (
	"github.com/studex/marketplace/internal/user/domain"
)

// LoginUserCommand represents the command to log a user in.
type LoginUserCommand struct {
	Email    string
	Password string
}

// LoginUserHandler handles user login.
type LoginUserHandler struct {
	users domain.UserRepository
}

// NewLoginUserHandler creates a new login user handler.
func NewLoginUserHandler(users domain.UserRepository) *LoginUserHandler {
	return &LoginUserHandler{users: users}
}

// Handle executes the login command. Email matching is
// case-insensitive; the password must match exactly. A nil user with
// no error means the credentials did not match — unknown email and
// wrong password are indistinguishable on purpose, so callers cannot
// probe for account existence.
func (h *LoginUserHandler) Handle(cmd LoginUserCommand) (*domain.User, error) {
	user, err := h.users.FindByEmail(domain.NormalizeEmail(cmd.Email))
	if err != nil {
		return nil, nil
	}
	if user.Password != cmd.Password {
		return nil, nil
	}
	return user, nil
}
