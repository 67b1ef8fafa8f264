package cart

import (
	"errors"
	"sort"
	"sync"
)

var ErrNotFound = errors.New("user not found")

// CartItem is a line in a user's cart: a catalog asin and the quantity held.
type CartItem struct {
	Asin     string `json:"asin"`
	Quantity int    `json:"quantity"`
}

// Repository provides access to cart operations. The cart itself lives on the
// user record as an asin -> quantity map; duplicates increment.
type Repository interface {
	AddToCart(userID, asin string, qty int, updatedAt string) ([]CartItem, error)
	GetCart(userID string) ([]CartItem, error)
	ClearCart(userID, updatedAt string) error
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu    sync.RWMutex
	carts map[string]map[string]int
}

func NewInMemoryRepository(userIDs []string) *InMemoryRepository {
	r := &InMemoryRepository{carts: make(map[string]map[string]int, len(userIDs))}
	for _, id := range userIDs {
		r.carts[id] = make(map[string]int)
	}
	return r
}

func (r *InMemoryRepository) AddToCart(userID, asin string, qty int, updatedAt string) ([]CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart, ok := r.carts[userID]
	if !ok {
		return nil, ErrNotFound
	}
	cart[asin] += qty
	// remove entry if quantity drops to zero or below
	if cart[asin] <= 0 {
		delete(cart, asin)
	}
	return itemsFromMap(cart), nil
}

func (r *InMemoryRepository) GetCart(userID string) ([]CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return itemsFromMap(cart), nil
}

func (r *InMemoryRepository) ClearCart(userID, updatedAt string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.carts[userID]; !ok {
		return ErrNotFound
	}
	r.carts[userID] = make(map[string]int)
	return nil
}

func itemsFromMap(cart map[string]int) []CartItem {
	items := make([]CartItem, 0, len(cart))
	for asin, qty := range cart {
		items = append(items, CartItem{Asin: asin, Quantity: qty})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Asin < items[j].Asin })
	return items
}
