package review

import (
	"errors"
	"time"
)

var (
	ErrInvalidRating = errors.New("overall rating must be between 1 and 5")
	ErrMissingAsin   = errors.New("asin is required")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListByAsin(asin string) ([]Review, error) {
	return s.repo.ListByAsin(asin)
}

func (s *Service) Create(r Review) (Review, error) {
	if r.Asin == "" {
		return Review{}, ErrMissingAsin
	}
	if r.Overall < 1 || r.Overall > 5 {
		return Review{}, ErrInvalidRating
	}
	if r.CreatedAt == "" {
		r.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	return s.repo.Create(r)
}
