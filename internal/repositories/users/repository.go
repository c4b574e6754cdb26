// Package users provides typed access to the user collection.
package users

import (
	"context"

	"github.com/dmitrijs2005/petgate/internal/models"
)

// Repository is the capability set required by the auth actions. All
// implementations are safe for concurrent use.
//
// Note: the handler-level "check username, then create" sequence is not
// atomic; implementations that can enforce uniqueness on write should do
// so and return apperrors.ErrAlreadyExists (wrapped) from Create.
type Repository interface {
	// GetByUsername returns the stored user, or an error wrapping
	// apperrors.ErrNotFound when no such user exists.
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// Create persists a new user and returns its username.
	Create(ctx context.Context, user *models.User) (string, error)
}
