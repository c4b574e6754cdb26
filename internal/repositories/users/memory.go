package users

import (
	"context"
	"strings"
	"sync"

	"github.com/dmitrijs2005/petgate/internal/apperrors"
	"github.com/dmitrijs2005/petgate/internal/models"
)

// MemoryRepository is an in-memory user store for local runs and tests.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[string]models.User)}
}

func (r *MemoryRepository) GetByUsername(_ context.Context, username string) (*models.User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, &apperrors.DataAccessError{Op: "cannot lookup null or empty user"}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[username]
	if !ok {
		return nil, &apperrors.DataAccessError{Op: "get user", Err: apperrors.ErrNotFound}
	}
	copied := u
	return &copied, nil
}

func (r *MemoryRepository) Create(_ context.Context, user *models.User) (string, error) {
	if user == nil || strings.TrimSpace(user.Username) == "" {
		return "", &apperrors.DataAccessError{Op: "cannot create user with empty username"}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Username]; ok {
		return "", &apperrors.DataAccessError{Op: "create user", Err: apperrors.ErrAlreadyExists}
	}
	r.users[user.Username] = *user
	return user.Username, nil
}
