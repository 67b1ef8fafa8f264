package cart

// Service orchestrates cart operations.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) AddToCart(userID, asin string, qty int) ([]CartItem, error) {
	if userID == "" || asin == "" {
		return nil, ErrNotFound
	}
	// zero qty does nothing, but we still call repo to get current cart
	if qty == 0 {
		return s.repo.GetCart(userID)
	}
	return s.repo.AddToCart(userID, asin, qty, "")
}

func (s *Service) GetCart(userID string) ([]CartItem, error) {
	if userID == "" {
		return nil, ErrNotFound
	}
	return s.repo.GetCart(userID)
}

func (s *Service) ClearCart(userID string) error {
	if userID == "" {
		return ErrNotFound
	}
	return s.repo.ClearCart(userID, "")
}
