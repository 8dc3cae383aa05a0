// Package memory provides in-memory implementations of the storage ports.
// All state lives for the process lifetime only; each store serializes its
// operations with its own mutex, so check-then-act sequences such as the
// email uniqueness check are atomic with respect to concurrent calls.
package memory

import (
	"context"
	"sync"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"

	"github.com/google/uuid"
)

// sellerRepository is a mutex-guarded in-memory seller store.
type sellerRepository struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*entity.Seller
	byEmail map[string]uuid.UUID
}

// NewSellerRepository constructs an empty seller store.
func NewSellerRepository() repository.SellerRepository {
	return &sellerRepository{
		byID:    make(map[uuid.UUID]*entity.Seller),
		byEmail: make(map[string]uuid.UUID),
	}
}

// Create persists a new seller. The email uniqueness check and the insert
// happen under one write lock.
func (r *sellerRepository) Create(_ context.Context, seller *entity.Seller) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[seller.Email]; exists {
		return repository.ErrEmailTaken
	}

	stored := *seller
	r.byID[stored.ID] = &stored
	r.byEmail[stored.Email] = stored.ID

	return nil
}

// FindByID retrieves a seller by id. Callers get a copy; the store owns its
// records.
func (r *sellerRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Seller, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrSellerNotFound
	}

	seller := *stored

	return &seller, nil
}

// FindByEmail retrieves a seller by email, matched case-sensitively as stored.
func (r *sellerRepository) FindByEmail(_ context.Context, email string) (*entity.Seller, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, repository.ErrSellerNotFound
	}

	seller := *r.byID[id]

	return &seller, nil
}
