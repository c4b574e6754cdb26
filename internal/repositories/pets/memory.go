package pets

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/petgate/internal/apperrors"
	"github.com/dmitrijs2005/petgate/internal/models"
)

// MemoryRepository is an in-memory pet store for local runs and tests.
// Pets keep insertion order so listings are deterministic.
type MemoryRepository struct {
	mu        sync.RWMutex
	pets      map[string]models.Pet
	order     []string
	scanLimit int
}

func NewMemoryRepository(scanLimit int) *MemoryRepository {
	return &MemoryRepository{pets: make(map[string]models.Pet), scanLimit: scanLimit}
}

func (r *MemoryRepository) Create(_ context.Context, pet *models.Pet) (string, error) {
	if pet == nil || strings.TrimSpace(pet.Type) == "" {
		return "", &apperrors.DataAccessError{Op: "cannot create pet with empty type"}
	}

	id := pet.ID
	if id == "" {
		id = uuid.NewString()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *pet
	stored.ID = id
	r.pets[id] = stored
	r.order = append(r.order, id)
	return id, nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (*models.Pet, error) {
	if strings.TrimSpace(id) == "" {
		return nil, &apperrors.DataAccessError{Op: "cannot lookup null or empty petId"}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	pet, ok := r.pets[id]
	if !ok {
		return nil, &apperrors.DataAccessError{Op: "get pet", Err: apperrors.ErrNotFound}
	}
	copied := pet
	return &copied, nil
}

func (r *MemoryRepository) List(_ context.Context, limit int) ([]models.Pet, error) {
	if limit <= 0 || limit > r.scanLimit {
		limit = r.scanLimit
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	pets := make([]models.Pet, 0, limit)
	for _, id := range r.order {
		if len(pets) == limit {
			break
		}
		pets = append(pets, r.pets[id])
	}
	return pets, nil
}
