package repository

import (
	"dmv/internal/db"
	apperrors "dmv/internal/errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

type RegistrantRepository struct {
	mu          sync.RWMutex
	registrants map[string]*db.Registrant
}

func NewRegistrantRepository() *RegistrantRepository {
	return &RegistrantRepository{registrants: make(map[string]*db.Registrant)}
}

// CreateRegistrant stores r under a fresh ID and returns it.
func (repo *RegistrantRepository) CreateRegistrant(r *db.Registrant) string {
	id := uuid.NewString()
	repo.mu.Lock()
	repo.registrants[id] = r
	repo.mu.Unlock()
	return id
}

func (repo *RegistrantRepository) GetRegistrant(id string) (*db.Registrant, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	r, ok := repo.registrants[id]
	if !ok {
		return nil, fmt.Errorf("registrant %q: %w", id, apperrors.ErrRecordNotFound)
	}
	return r, nil
}
