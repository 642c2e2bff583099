package storage

import (
	"net/http"
	"strings"
	"sync"

	"github.com/suraksha-dev/suraksha/shared/domain"
	"github.com/suraksha-dev/suraksha/shared/errors"
)

// Users is the in-process user registry. Accounts are seeded demo
// identities plus whatever signs up during the process lifetime; they
// are deliberately not part of the persisted forum slot.
type Users struct {
	mu      sync.RWMutex
	byEmail map[string]domain.User
}

func NewUsers() *Users {
	return &Users{byEmail: make(map[string]domain.User)}
}

func (u *Users) SaveUser(user domain.User) error {
	email := strings.ToLower(user.Email)

	u.mu.Lock()
	defer u.mu.Unlock()

	if _, exists := u.byEmail[email]; exists {
		return &errors.ErrorWithStatusCode{Message: "User already registered", StatusCode: http.StatusConflict}
	}
	u.byEmail[email] = user
	return nil
}

func (u *Users) User(email string) (domain.User, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	user, ok := u.byEmail[strings.ToLower(email)]
	if !ok {
		return domain.User{}, errors.NewNotFound("user", email)
	}
	return user, nil
}
