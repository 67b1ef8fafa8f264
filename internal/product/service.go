package product

import (
	"time"

	"github.com/nextsocial/shop-backend/internal/dataset"
)

const defaultListLimit = 20

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(limit int) ([]Product, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.repo.List(limit)
}

func (s *Service) GetByAsin(asin string) (Product, error) {
	return s.repo.GetByAsin(asin)
}

func (s *Service) Upsert(p Product) (Product, error) {
	return s.repo.Upsert(p)
}

// SyncFromMetadata mirrors the metadata catalog file into the product store,
// so the read API serves the same titles and prices the recommender joins
// against. Records without a usable asin are skipped. Returns the number of
// products written.
func (s *Service) SyncFromMetadata(records []dataset.Record) (int, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	count := 0
	for _, rec := range records {
		asin := rec.Str("parent_asin")
		if asin == "" {
			asin = rec.Str("asin")
		}
		if asin == "" {
			continue
		}

		p := Product{
			Asin:         asin,
			ParentAsin:   rec.Str("parent_asin"),
			Title:        rec.Str("title"),
			MainCategory: rec.Str("main_category"),
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if v, ok := dataset.Coerce(rec["price"]); ok {
			p.Price = &v
		}
		if v, ok := dataset.Coerce(rec["average_rating"]); ok {
			p.AverageRating = &v
		}
		if imgs, ok := rec["images"].([]any); ok {
			for _, img := range imgs {
				if s, ok := img.(string); ok {
					p.Images = append(p.Images, s)
				}
			}
		}

		if _, err := s.repo.Upsert(p); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}
