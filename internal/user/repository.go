package user

import (
	"errors"
	"sync"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("email already exists")
)

type Repository interface {
	GetByID(userID string) (User, error)
	GetByEmail(email string) (User, error)
	Create(user User) (User, error)
	UpdateLikedProducts(userID string, likedProducts []string) error
}

type InMemoryRepository struct {
	mu    sync.RWMutex
	users []User
}

func NewInMemoryRepository(seed []User) *InMemoryRepository {
	repo := &InMemoryRepository{users: make([]User, 0, len(seed))}
	repo.users = append(repo.users, seed...)
	return repo
}

func (r *InMemoryRepository) GetByID(userID string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.UserID == userID {
			return user, nil
		}
	}

	return User{}, ErrNotFound
}

func (r *InMemoryRepository) GetByEmail(email string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}

	return User{}, ErrNotFound
}

func (r *InMemoryRepository) Create(user User) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.UserID == user.UserID {
			return User{}, errors.New("duplicate user id")
		}
	}

	if user.LikedProducts == nil {
		user.LikedProducts = []string{}
	}
	r.users = append(r.users, user)
	return user, nil
}

func (r *InMemoryRepository) UpdateLikedProducts(userID string, likedProducts []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, user := range r.users {
		if user.UserID == userID {
			user.LikedProducts = append([]string(nil), likedProducts...)
			r.users[i] = user
			return nil
		}
	}

	return ErrNotFound
}
