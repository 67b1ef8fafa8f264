package cart

import (
	"database/sql"
	"encoding/json"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	getCartColumnQuery    = `SELECT cart FROM users WHERE user_id = $1`
	updateCartColumnQuery = `UPDATE users SET cart = $1, updated_at = NOW() WHERE user_id = $2`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) AddToCart(userID, asin string, qty int, updatedAt string) ([]CartItem, error) {
	m, err := r.loadCart(userID)
	if err != nil {
		return nil, err
	}

	m[asin] += qty
	if m[asin] <= 0 {
		delete(m, asin)
	}

	updated, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	if _, err := r.db.Exec(updateCartColumnQuery, updated, userID); err != nil {
		return nil, err
	}

	return itemsFromMap(m), nil
}

func (r *PostgresRepository) GetCart(userID string) ([]CartItem, error) {
	m, err := r.loadCart(userID)
	if err != nil {
		return nil, err
	}
	return itemsFromMap(m), nil
}

func (r *PostgresRepository) ClearCart(userID, updatedAt string) error {
	result, err := r.db.Exec(updateCartColumnQuery, []byte(`{}`), userID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) loadCart(userID string) (map[string]int, error) {
	var raw sql.NullString
	if err := r.db.QueryRow(getCartColumnQuery, userID).Scan(&raw); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}

	m := make(map[string]int)
	if raw.Valid && raw.String != "" {
		if err := json.Unmarshal([]byte(raw.String), &m); err != nil {
			return nil, err
		}
	}
	return m, nil
}
