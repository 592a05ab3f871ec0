package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/studex/marketplace/internal/errs"
	"github.com/studex/marketplace/internal/user/domain"
)

func newUser(t *testing.T, id, email, cnic string) *domain.User {
	t.Helper()
	u, err := domain.NewUser(id, "User "+id, cnic, email, "pw", "", "", time.Now())
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}
	return u
}

func TestCreateEnforcesUniqueness(t *testing.T) {
	repo := NewMemoryUserRepository()
	first := newUser(t, "USR-000001", "ali@uni.pk", "3520212345671")
	if err := repo.Create(first); err != nil {
		t.Fatalf("Create: %v", err)
	}

	tests := []struct {
		name string
		user *domain.User
	}{
		{"duplicate id", newUser(t, "USR-000001", "other@uni.pk", "3520298765432")},
		{"duplicate email", newUser(t, "USR-000002", "ALI@uni.pk", "3520298765432")},
		{"duplicate cnic", newUser(t, "USR-000003", "third@uni.pk", "3520212345671")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := repo.Create(tt.user); !errors.Is(err, errs.ErrConflict) {
				t.Errorf("expected conflict, got %v", err)
			}
		})
	}

	if n, _ := repo.Count(); n != 1 {
		t.Errorf("rejected creates must not be stored, count = %d", n)
	}
}

func TestLookups(t *testing.T) {
	repo := NewMemoryUserRepository()
	user := newUser(t, "USR-000001", "ali@uni.pk", "3520212345671")
	repo.Create(user)

	if got, err := repo.FindByID("USR-000001"); err != nil || got != user {
		t.Errorf("FindByID = %v, %v", got, err)
	}
	if got, err := repo.FindByEmail("  ALI@UNI.PK "); err != nil || got != user {
		t.Errorf("email lookup must normalize, got %v, %v", got, err)
	}
	if got, err := repo.FindByCNIC("35202-1234567-1"); err != nil || got != user {
		t.Errorf("cnic lookup must strip dashes, got %v, %v", got, err)
	}
	if _, err := repo.FindByID("USR-999999"); !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("missing id: got %v", err)
	}
	if _, err := repo.FindByEmail("nobody@uni.pk"); !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("missing email: got %v", err)
	}
}
