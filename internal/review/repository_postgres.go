package review

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

const (
	listReviewsByAsinQuery = `
		SELECT review_id, user_id, asin, overall, summary, review_text, created_at
		FROM reviews
		WHERE asin = $1
		ORDER BY created_at DESC
	`
	insertReviewQuery = `
		INSERT INTO reviews (user_id, asin, overall, summary, review_text, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING review_id
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repo *PostgresRepository) ListByAsin(asin string) ([]Review, error) {
	rows, err := repo.db.Query(listReviewsByAsinQuery, asin)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]Review, 0)
	for rows.Next() {
		var r Review
		var summary, createdAt sql.NullString
		if err := rows.Scan(&r.ID, &r.UserID, &r.Asin, &r.Overall, &summary, &r.Text, &createdAt); err != nil {
			return nil, err
		}
		r.Summary = summary.String
		r.CreatedAt = createdAt.String
		reviews = append(reviews, r)
	}
	return reviews, rows.Err()
}

func (repo *PostgresRepository) Create(r Review) (Review, error) {
	err := repo.db.QueryRow(
		insertReviewQuery,
		r.UserID,
		r.Asin,
		r.Overall,
		r.Summary,
		r.Text,
		r.CreatedAt,
	).Scan(&r.ID)
	if err != nil {
		return Review{}, err
	}
	return r, nil
}
