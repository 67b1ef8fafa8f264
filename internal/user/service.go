package user

import (
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// user IDs follow the reviewerID shape used throughout the review dataset
const (
	userIDLength  = 26
	userIDCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	maxIDAttempts = 10
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByID(userID string) (User, error) {
	return s.repo.GetByID(userID)
}

// Register hashes the password and creates the user under a freshly generated
// ID. Generation retries on the (unlikely) event of a collision.
func (s *Service) Register(user User) (User, error) {
	if _, err := s.repo.GetByEmail(user.Email); err == nil {
		return User{}, ErrEmailExists
	} else if err != ErrNotFound {
		return User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}
	user.Password = string(hashed)

	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id, err := newUserID()
		if err != nil {
			return User{}, err
		}
		if _, err := s.repo.GetByID(id); err == ErrNotFound {
			user.UserID = id
			return s.repo.Create(user)
		} else if err != nil {
			return User{}, err
		}
	}

	return User{}, errors.New("could not allocate a unique user id")
}

func (s *Service) Authenticate(email, password string) (User, error) {
	user, err := s.repo.GetByEmail(email)
	if err != nil {
		return User{}, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return User{}, ErrInvalidCredentials
	}

	return user, nil
}

// ToggleLike adds the asin to the user's liked products, or removes it when
// already present, and returns the resulting list.
func (s *Service) ToggleLike(userID, asin string) ([]string, error) {
	user, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	liked := make([]string, 0, len(user.LikedProducts)+1)
	removed := false
	for _, existing := range user.LikedProducts {
		if existing == asin {
			removed = true
			continue
		}
		liked = append(liked, existing)
	}
	if !removed {
		liked = append(liked, asin)
	}

	if err := s.repo.UpdateLikedProducts(userID, liked); err != nil {
		return nil, err
	}
	return liked, nil
}

func newUserID() (string, error) {
	buf := make([]byte, userIDLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate user id: %w", err)
	}
	for i, b := range buf {
		buf[i] = userIDCharset[int(b)%len(userIDCharset)]
	}
	return string(buf), nil
}
