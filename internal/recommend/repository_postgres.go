package recommend

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
)

// PostgresStore implements Store against the users/reviews/orders tables.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) CountReviews(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM reviews`).Scan(&n)
	return n, err
}

func (s *PostgresStore) CountOrders(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`).Scan(&n)
	return n, err
}

func (s *PostgresStore) TotalLikedProducts(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(cardinality(liked_products)), 0) FROM users`).Scan(&n)
	return n, err
}

func (s *PostgresStore) UsersWithReviews(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT user_id FROM reviews`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *PostgresStore) UsersByIDs(ctx context.Context, ids []string) ([]UserDemographics, error) {
	if len(ids) == 0 {
		return []UserDemographics{}, nil
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT user_id, age, gender, address FROM users WHERE user_id = ANY($1)`,
		pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]UserDemographics, 0, len(ids))
	for rows.Next() {
		var (
			u       UserDemographics
			age     sql.NullInt64
			gender  sql.NullString
			address sql.NullString
		)
		if err := rows.Scan(&u.UserID, &age, &gender, &address); err != nil {
			return nil, err
		}
		if age.Valid {
			v := int(age.Int64)
			u.Age = &v
		}
		u.Gender = gender.String
		u.Address = address.String
		users = append(users, u)
	}
	return users, rows.Err()
}

func (s *PostgresStore) ItemStatsForUsers(ctx context.Context, userIDs []string) ([]ItemAggregate, error) {
	if len(userIDs) == 0 {
		return []ItemAggregate{}, nil
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT asin, COUNT(*) AS reviews, COALESCE(AVG(overall), 0) AS avg_rating, COUNT(DISTINCT user_id) AS user_overlap
		 FROM reviews
		 WHERE user_id = ANY($1)
		 GROUP BY asin`,
		pq.Array(userIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ItemAggregate, 0)
	for rows.Next() {
		var a ItemAggregate
		if err := rows.Scan(&a.Asin, &a.Reviews, &a.AvgRating, &a.UserOverlap); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
