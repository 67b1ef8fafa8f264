package product

import (
	"database/sql"
	"encoding/json"
)

type PostgresRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

const (
	listProductsQuery = `
		SELECT asin, parent_asin, title, price, main_category, average_rating, images, created_at, updated_at
		FROM products
		ORDER BY asin
		LIMIT $1
	`
	getProductByAsinQuery = `
		SELECT asin, parent_asin, title, price, main_category, average_rating, images, created_at, updated_at
		FROM products
		WHERE asin = $1
	`
	upsertProductQuery = `
		INSERT INTO products (asin, parent_asin, title, price, main_category, average_rating, images, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (asin) DO UPDATE
		SET parent_asin = EXCLUDED.parent_asin,
			title = EXCLUDED.title,
			price = EXCLUDED.price,
			main_category = EXCLUDED.main_category,
			average_rating = EXCLUDED.average_rating,
			images = EXCLUDED.images,
			updated_at = EXCLUDED.updated_at
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(limit int) ([]Product, error) {
	rows, err := r.db.Query(listProductsQuery, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *PostgresRepository) GetByAsin(asin string) (Product, error) {
	p, err := scanProduct(r.db.QueryRow(getProductByAsinQuery, asin))
	if err != nil {
		if err == sql.ErrNoRows {
			return Product{}, ErrNotFound
		}
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Upsert(p Product) (Product, error) {
	images, err := json.Marshal(p.Images)
	if err != nil {
		return Product{}, err
	}

	var price, rating sql.NullFloat64
	if p.Price != nil {
		price = sql.NullFloat64{Float64: *p.Price, Valid: true}
	}
	if p.AverageRating != nil {
		rating = sql.NullFloat64{Float64: *p.AverageRating, Valid: true}
	}

	_, err = r.db.Exec(
		upsertProductQuery,
		p.Asin,
		p.ParentAsin,
		p.Title,
		price,
		p.MainCategory,
		rating,
		images,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

func scanProduct(scanner rowScanner) (Product, error) {
	p := Product{}
	var parentAsin, mainCategory sql.NullString
	var price, rating sql.NullFloat64
	var images []byte
	var createdAt, updatedAt sql.NullString

	if err := scanner.Scan(
		&p.Asin,
		&parentAsin,
		&p.Title,
		&price,
		&mainCategory,
		&rating,
		&images,
		&createdAt,
		&updatedAt,
	); err != nil {
		return Product{}, err
	}

	p.ParentAsin = parentAsin.String
	p.MainCategory = mainCategory.String
	if price.Valid {
		v := price.Float64
		p.Price = &v
	}
	if rating.Valid {
		v := rating.Float64
		p.AverageRating = &v
	}
	if len(images) > 0 {
		if err := json.Unmarshal(images, &p.Images); err != nil {
			return Product{}, err
		}
	}
	p.CreatedAt = createdAt.String
	p.UpdatedAt = updatedAt.String

	return p, nil
}
