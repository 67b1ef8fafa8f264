package order

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("order not found")

// Repository defines persistence operations for orders.
type Repository interface {
	Create(ord Order) (Order, error)
	ListByUser(userID string) ([]Order, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Order
	nextID  int
}

func NewInMemoryRepository(seed []Order) *InMemoryRepository {
	r := &InMemoryRepository{
		storage: make([]Order, 0, len(seed)),
		nextID:  1,
	}

	maxID := 0
	for _, ord := range seed {
		r.storage = append(r.storage, ord)
		if ord.OrderID > maxID {
			maxID = ord.OrderID
		}
	}

	r.nextID = maxID + 1
	return r
}

func (r *InMemoryRepository) Create(ord Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ord.OrderID == 0 {
		ord.OrderID = r.nextID
		r.nextID++
	}
	r.storage = append(r.storage, ord)
	return ord, nil
}

func (r *InMemoryRepository) ListByUser(userID string) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Order, 0)
	for _, ord := range r.storage {
		if ord.UserID == userID {
			out = append(out, ord)
		}
	}
	return out, nil
}
