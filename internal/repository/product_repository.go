package repository

import (
	"context"
	"sync"

	"github.com/a1technologies/cooling-crm/internal/domain"
)

// ProductRepository is the ordered catalog registry.
type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (domain.Product, error)
	InsertFront(ctx context.Context, product domain.Product) error
	Replace(ctx context.Context, product domain.Product) error
	Delete(ctx context.Context, id string) error
}

type productRepository struct {
	mu       sync.RWMutex
	products []domain.Product
}

// NewProductRepository seeds the registry with the given products in order.
func NewProductRepository(seed []domain.Product) ProductRepository {
	products := make([]domain.Product, 0, len(seed))
	for _, p := range seed {
		products = append(products, p.Clone())
	}
	return &productRepository{products: products}
}

func (r *productRepository) List(_ context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Product, len(r.products))
	for i, p := range r.products {
		out[i] = p.Clone()
	}
	return out, nil
}

func (r *productRepository) GetByID(_ context.Context, id string) (domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.indexOf(id); i >= 0 {
		return r.products[i].Clone(), nil
	}
	return domain.Product{}, ErrNotFound
}

func (r *productRepository) InsertFront(_ context.Context, product domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexOf(product.ID) >= 0 {
		return ErrDuplicateID
	}
	r.products = append([]domain.Product{product.Clone()}, r.products...)
	return nil
}

func (r *productRepository) Replace(_ context.Context, product domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(product.ID)
	if i < 0 {
		return ErrNotFound
	}
	r.products[i] = product.Clone()
	return nil
}

func (r *productRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	r.products = append(r.products[:i:i], r.products[i+1:]...)
	return nil
}

// indexOf must be called with the lock held.
func (r *productRepository) indexOf(id string) int {
	for i := range r.products {
		if r.products[i].ID == id {
			return i
		}
	}
	return -1
}
