package product

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("product not found")

type Repository interface {
	List(limit int) ([]Product, error)
	GetByAsin(asin string) (Product, error)
	Upsert(p Product) (Product, error)
}

// InMemoryRepository is a simple in-memory implementation useful for tests and
// seeding local data.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Product
}

func NewInMemoryRepository(seed []Product) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Product, 0, len(seed))}
	r.storage = append(r.storage, seed...)
	return r
}

func (r *InMemoryRepository) List(limit int) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := len(r.storage)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]Product, n)
	copy(out, r.storage[:n])
	return out, nil
}

func (r *InMemoryRepository) GetByAsin(asin string) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.storage {
		if p.Asin == asin {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (r *InMemoryRepository) Upsert(p Product) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.storage {
		if r.storage[i].Asin == p.Asin {
			r.storage[i] = p
			return p, nil
		}
	}
	r.storage = append(r.storage, p)
	return p, nil
}
