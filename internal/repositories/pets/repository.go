// Package pets provides typed access to the pet collection.
package pets

import (
	"context"

	"github.com/dmitrijs2005/petgate/internal/models"
)

// Repository is the capability set required by the pet actions. All
// implementations are safe for concurrent use and clamp list page sizes
// to their configured maximum.
type Repository interface {
	// Create persists a new pet and returns its id, generating one when
	// the record carries none. A pet without a type is rejected.
	Create(ctx context.Context, pet *models.Pet) (string, error)

	// GetByID returns the stored pet, or an error wrapping
	// apperrors.ErrNotFound when no such pet exists.
	GetByID(ctx context.Context, id string) (*models.Pet, error)

	// List returns up to limit pets. A limit that is zero, negative, or
	// above the configured maximum is clamped to the maximum.
	List(ctx context.Context, limit int) ([]models.Pet, error)
}
