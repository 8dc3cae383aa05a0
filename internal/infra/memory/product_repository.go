package memory

import (
	"context"
	"sync"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"

	"github.com/google/uuid"
)

// productRepository is a mutex-guarded in-memory product store. Products are
// kept in insertion order; every owner-scoped operation re-checks ownership
// under the lock so cross-tenant access is indistinguishable from absence.
type productRepository struct {
	mu       sync.RWMutex
	products []*entity.Product
}

// NewProductRepository constructs an empty product store.
func NewProductRepository() repository.ProductRepository {
	return &productRepository{}
}

// Create appends a new product to the iteration order.
func (r *productRepository) Create(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *product
	r.products = append(r.products, &stored)

	return nil
}

// FindForSeller retrieves a product by id, scoped to the owning seller.
func (r *productRepository) FindForSeller(_ context.Context, sellerID, productID uuid.UUID) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.locate(sellerID, productID)
	if stored == nil {
		return nil, repository.ErrProductNotFound
	}

	product := *stored

	return &product, nil
}

// ListBySeller returns the seller's products in insertion order.
func (r *productRepository) ListBySeller(_ context.Context, sellerID uuid.UUID) ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]*entity.Product, 0)
	for _, stored := range r.products {
		if stored.SellerID != sellerID {
			continue
		}
		product := *stored
		products = append(products, &product)
	}

	return products, nil
}

// ListAll returns every product in insertion order.
func (r *productRepository) ListAll(_ context.Context) ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]*entity.Product, 0, len(r.products))
	for _, stored := range r.products {
		product := *stored
		products = append(products, &product)
	}

	return products, nil
}

// Update replaces the stored record matching the product's id and seller id.
// The ownership re-check and the write happen under one lock, so a product
// deleted between a read and an update cannot be resurrected.
func (r *productRepository) Update(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := r.locate(product.SellerID, product.ID)
	if stored == nil {
		return repository.ErrProductNotFound
	}

	*stored = *product

	return nil
}

// DeleteForSeller removes a product, scoped to the owning seller, preserving
// the order of the remaining products.
func (r *productRepository) DeleteForSeller(_ context.Context, sellerID, productID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, stored := range r.products {
		if stored.ID == productID && stored.SellerID == sellerID {
			r.products = append(r.products[:i], r.products[i+1:]...)

			return nil
		}
	}

	return repository.ErrProductNotFound
}

// locate must be called with at least a read lock held.
func (r *productRepository) locate(sellerID, productID uuid.UUID) *entity.Product {
	for _, stored := range r.products {
		if stored.ID == productID && stored.SellerID == sellerID {
			return stored
		}
	}

	return nil
}
