package recommend

import (
	"context"
	"sort"
	"sync"
)

// UserDemographics is the projection of a user used for cohort scoring.
type UserDemographics struct {
	UserID  string
	Age     *int
	Gender  string
	Address string
}

// ItemAggregate is one grouped row from the cohort interaction query.
type ItemAggregate struct {
	Asin        string
	Reviews     int
	AvgRating   float64
	UserOverlap int
}

// Store is the read-only view of the persistent stores that the demographic
// recommender and the retrain check rely on.
type Store interface {
	CountReviews(ctx context.Context) (int, error)
	CountOrders(ctx context.Context) (int, error)
	// TotalLikedProducts sums the liked-product counts across all users.
	TotalLikedProducts(ctx context.Context) (int, error)
	// UsersWithReviews returns the distinct ids of users having at least one
	// review, bounding the demographic comparison pool to non-cold users.
	UsersWithReviews(ctx context.Context) ([]string, error)
	UsersByIDs(ctx context.Context, ids []string) ([]UserDemographics, error)
	// ItemStatsForUsers groups the given users' reviews by item, reporting
	// review count, mean rating and distinct-user overlap per asin.
	ItemStatsForUsers(ctx context.Context, userIDs []string) ([]ItemAggregate, error)
}

// StoredReview is a seed row for the in-memory store.
type StoredReview struct {
	UserID  string
	Asin    string
	Overall float64
}

// InMemoryStore computes the Store aggregates over seeded slices. It backs
// tests and local scenarios.
type InMemoryStore struct {
	mu      sync.RWMutex
	reviews []StoredReview
	users   []UserDemographics
	orders  int
	likes   int
}

func NewInMemoryStore(reviews []StoredReview, users []UserDemographics) *InMemoryStore {
	s := &InMemoryStore{
		reviews: make([]StoredReview, 0, len(reviews)),
		users:   make([]UserDemographics, 0, len(users)),
	}
	s.reviews = append(s.reviews, reviews...)
	s.users = append(s.users, users...)
	return s
}

// SetInteractionCounts overrides the order and like totals reported to the
// retrain check.
func (s *InMemoryStore) SetInteractionCounts(orders, likes int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = orders
	s.likes = likes
}

func (s *InMemoryStore) CountReviews(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.reviews), nil
}

func (s *InMemoryStore) CountOrders(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.orders, nil
}

func (s *InMemoryStore) TotalLikedProducts(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.likes, nil
}

func (s *InMemoryStore) UsersWithReviews(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := make(map[string]bool)
	ids := make([]string, 0)
	for _, r := range s.reviews {
		if !seen[r.UserID] {
			seen[r.UserID] = true
			ids = append(ids, r.UserID)
		}
	}
	return ids, nil
}

func (s *InMemoryStore) UsersByIDs(ctx context.Context, ids []string) ([]UserDemographics, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	out := make([]UserDemographics, 0)
	for _, u := range s.users {
		if want[u.UserID] {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *InMemoryStore) ItemStatsForUsers(ctx context.Context, userIDs []string) ([]ItemAggregate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cohort := make(map[string]bool, len(userIDs))
	for _, id := range userIDs {
		cohort[id] = true
	}
	type agg struct {
		count int
		sum   float64
		users map[string]bool
	}
	byAsin := make(map[string]*agg)
	order := make([]string, 0)
	for _, r := range s.reviews {
		if !cohort[r.UserID] {
			continue
		}
		a := byAsin[r.Asin]
		if a == nil {
			a = &agg{users: make(map[string]bool)}
			byAsin[r.Asin] = a
			order = append(order, r.Asin)
		}
		a.count++
		a.sum += r.Overall
		a.users[r.UserID] = true
	}
	sort.Strings(order)
	out := make([]ItemAggregate, 0, len(order))
	for _, asin := range order {
		a := byAsin[asin]
		avg := 0.0
		if a.count > 0 {
			avg = a.sum / float64(a.count)
		}
		out = append(out, ItemAggregate{
			Asin:        asin,
			Reviews:     a.count,
			AvgRating:   avg,
			UserOverlap: len(a.users),
		})
	}
	return out, nil
}
