package order

import (
	"database/sql"
	"encoding/json"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	insertOrderQuery = `
		INSERT INTO orders (user_id, cart, quantity, total_price, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING order_id
	`
	listOrdersByUserQuery = `
		SELECT order_id, user_id, cart, quantity, total_price, status, created_at, updated_at
		FROM orders
		WHERE user_id = $1
		ORDER BY order_id
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ord Order) (Order, error) {
	cartJSON, err := json.Marshal(ord.Cart)
	if err != nil {
		return Order{}, err
	}

	err = r.db.QueryRow(
		insertOrderQuery,
		ord.UserID,
		cartJSON,
		ord.Quantity,
		ord.TotalPrice,
		ord.Status,
		ord.CreatedAt,
		ord.UpdatedAt,
	).Scan(&ord.OrderID)
	if err != nil {
		return Order{}, err
	}
	return ord, nil
}

func (r *PostgresRepository) ListByUser(userID string) ([]Order, error) {
	rows, err := r.db.Query(listOrdersByUserQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]Order, 0)
	for rows.Next() {
		var ord Order
		var cartJSON []byte
		var status, createdAt, updatedAt sql.NullString
		if err := rows.Scan(&ord.OrderID, &ord.UserID, &cartJSON, &ord.Quantity, &ord.TotalPrice, &status, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		if len(cartJSON) > 0 {
			if err := json.Unmarshal(cartJSON, &ord.Cart); err != nil {
				return nil, err
			}
		}
		ord.Status = status.String
		ord.CreatedAt = createdAt.String
		ord.UpdatedAt = updatedAt.String
		orders = append(orders, ord)
	}
	return orders, rows.Err()
}
