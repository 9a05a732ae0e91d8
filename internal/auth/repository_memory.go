package auth

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// ----------------------------------------------------------------------
// In-memory repository (for tests and local development)
// ----------------------------------------------------------------------

var ErrUserNotFound = errors.New("user not found")

type InMemoryUserRepository struct {
	mu    sync.Mutex
	users map[string]*User // keyed by lowercased email
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users: make(map[string]*User),
	}
}

func (r *InMemoryUserRepository) Save(user *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(user.Email)
	if _, ok := r.users[key]; ok {
		return errors.New("email already exists")
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	r.users[key] = user
	return nil
}

func (r *InMemoryUserRepository) ExistsByEmail(email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.users[strings.ToLower(email)]
	return ok, nil
}

func (r *InMemoryUserRepository) FindByEmail(email string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[strings.ToLower(email)]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (r *InMemoryUserRepository) Count() (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users), nil
}
