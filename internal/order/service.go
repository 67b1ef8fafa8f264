package order

import "errors"

const defaultStatus = "pending"

// Service provides business logic for orders.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

func (s *Service) Create(ord Order) (Order, error) {
	if ord.UserID == "" {
		return Order{}, errors.New("invalid user")
	}
	if len(ord.Cart) == 0 {
		return Order{}, errors.New("empty cart")
	}
	if ord.Status == "" {
		ord.Status = defaultStatus
	}
	return s.repo.Create(ord)
}

func (s *Service) ListByUser(userID string) ([]Order, error) {
	if userID == "" {
		return []Order{}, nil
	}
	return s.repo.ListByUser(userID)
}
