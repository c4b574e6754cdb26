package repomanager

import (
	"github.com/dmitrijs2005/petgate/internal/repositories/pets"
	"github.com/dmitrijs2005/petgate/internal/repositories/users"
)

// MemoryManager backs the repositories with in-process maps. Useful for
// local smoke runs and tests; nothing survives a restart.
type MemoryManager struct {
	users users.Repository
	pets  pets.Repository
}

func NewMemoryManager(scanLimit int) *MemoryManager {
	return &MemoryManager{
		users: users.NewMemoryRepository(),
		pets:  pets.NewMemoryRepository(scanLimit),
	}
}

func (m *MemoryManager) Users() users.Repository {
	return m.users
}

func (m *MemoryManager) Pets() pets.Repository {
	return m.pets
}
