package user

import (
	"database/sql"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

const (
	getUserByIDQuery = `
		SELECT user_id, email, password, reviewer_name, age, gender, address, liked_products, created_at, updated_at
		FROM users
		WHERE user_id = $1
	`
	getUserByEmailQuery = `
		SELECT user_id, email, password, reviewer_name, age, gender, address, liked_products, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	insertUserQuery = `
		INSERT INTO users (user_id, email, password, reviewer_name, age, gender, address, liked_products, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	updateLikedProductsQuery = `
		UPDATE users
		SET liked_products = $1,
			updated_at = NOW()
		WHERE user_id = $2
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByID(userID string) (User, error) {
	user, err := scanUser(r.db.QueryRow(getUserByIDQuery, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return user, nil
}

func (r *PostgresRepository) GetByEmail(email string) (User, error) {
	user, err := scanUser(r.db.QueryRow(getUserByEmailQuery, email))
	if err != nil {
		if err == sql.ErrNoRows {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return user, nil
}

func (r *PostgresRepository) Create(user User) (User, error) {
	var age sql.NullInt64
	if user.Age != nil {
		age = sql.NullInt64{Int64: int64(*user.Age), Valid: true}
	}
	liked := user.LikedProducts
	if liked == nil {
		liked = []string{}
	}

	_, err := r.db.Exec(
		insertUserQuery,
		user.UserID,
		user.Email,
		user.Password,
		user.ReviewerName,
		age,
		user.Gender,
		user.Address,
		pq.Array(liked),
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		return User{}, err
	}
	return user, nil
}

func (r *PostgresRepository) UpdateLikedProducts(userID string, likedProducts []string) error {
	if likedProducts == nil {
		likedProducts = []string{}
	}
	result, err := r.db.Exec(updateLikedProductsQuery, pq.Array(likedProducts), userID)
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

func scanUser(scanner rowScanner) (User, error) {
	user := User{}
	var age sql.NullInt64
	var reviewerName, gender, address sql.NullString
	var liked pq.StringArray
	var createdAt, updatedAt sql.NullString

	if err := scanner.Scan(
		&user.UserID,
		&user.Email,
		&user.Password,
		&reviewerName,
		&age,
		&gender,
		&address,
		&liked,
		&createdAt,
		&updatedAt,
	); err != nil {
		return User{}, err
	}

	user.ReviewerName = reviewerName.String
	if age.Valid {
		v := int(age.Int64)
		user.Age = &v
	}
	user.Gender = gender.String
	user.Address = address.String
	user.LikedProducts = []string(liked)
	if user.LikedProducts == nil {
		user.LikedProducts = []string{}
	}
	user.CreatedAt = createdAt.String
	user.UpdatedAt = updatedAt.String

	return user, nil
}
