package review

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("review not found")

type Repository interface {
	ListByAsin(asin string) ([]Review, error)
	Create(r Review) (Review, error)
}

type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Review
	nextID  int
}

func NewInMemoryRepository(seed []Review) *InMemoryRepository {
	repo := &InMemoryRepository{
		storage: make([]Review, 0, len(seed)),
		nextID:  1,
	}

	maxID := 0
	for _, r := range seed {
		repo.storage = append(repo.storage, r)
		if r.ID > maxID {
			maxID = r.ID
		}
	}

	repo.nextID = maxID + 1
	return repo
}

func (repo *InMemoryRepository) ListByAsin(asin string) ([]Review, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	out := make([]Review, 0)
	for _, r := range repo.storage {
		if r.Asin == asin {
			out = append(out, r)
		}
	}
	return out, nil
}

func (repo *InMemoryRepository) Create(r Review) (Review, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if r.ID == 0 {
		r.ID = repo.nextID
		repo.nextID++
	}
	repo.storage = append(repo.storage, r)
	return r, nil
}
