package memory

import (
	"strings"
	"sync"

	"github.com/techhive/user-management-api/internal/domain/entity"
	"github.com/techhive/user-management-api/internal/domain/repository"
)

// UserRepository is an in-memory implementation of repository.UserRepository.
// A single mutex per instance serializes every check-then-act sequence, so
// the primary store and the email index can never be observed out of sync.
type UserRepository struct {
	mu         sync.RWMutex
	users      map[string]entity.User
	emailIndex map[string]string // normalized email -> user id
}

// NewUserRepository returns an empty store.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:      make(map[string]entity.User),
		emailIndex: make(map[string]string),
	}
}

// Seed installs the given users directly, overwriting any existing entries.
// Intended for startup demo data only; it bypasses uniqueness checks.
func (r *UserRepository) Seed(users ...entity.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range users {
		r.users[u.ID] = u
		r.emailIndex[normalizeEmail(u.Email)] = u.ID
	}
}

// ListAll returns a snapshot copy; later mutations do not affect the result.
func (r *UserRepository) ListAll() []entity.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out
}

func (r *UserRepository) GetByID(id string) (*entity.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, false
	}
	return &u, true
}

func (r *UserRepository) GetByEmail(email string) (*entity.User, bool) {
	key := normalizeEmail(email)
	if key == "" {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.emailIndex[key]
	if !ok {
		return nil, false
	}
	u, ok := r.users[id]
	if !ok {
		return nil, false
	}
	return &u, true
}

func (r *UserRepository) Create(u entity.User) error {
	key := normalizeEmail(u.Email)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.emailIndex[key]; exists {
		return repository.ErrEmailInUse
	}
	r.users[u.ID] = u
	r.emailIndex[key] = u.ID
	return nil
}

func (r *UserRepository) Update(u entity.User) error {
	key := normalizeEmail(u.Email)
	r.mu.Lock()
	defer r.mu.Unlock()
	current, exists := r.users[u.ID]
	if !exists {
		return repository.ErrUserNotFound
	}
	if ownerID, taken := r.emailIndex[key]; taken && ownerID != u.ID {
		return repository.ErrEmailInUse
	}
	if oldKey := normalizeEmail(current.Email); oldKey != key {
		delete(r.emailIndex, oldKey)
		r.emailIndex[key] = u.ID
	}
	r.users[u.ID] = u
	return nil
}

func (r *UserRepository) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, exists := r.users[id]
	if !exists {
		return false
	}
	delete(r.users, id)
	delete(r.emailIndex, normalizeEmail(u.Email))
	return true
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
