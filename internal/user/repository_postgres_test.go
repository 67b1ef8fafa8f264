package user

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
)

func userColumns() []string {
	return []string{"user_id", "email", "password", "reviewer_name", "age", "gender", "address", "liked_products", "created_at", "updated_at"}
}

func TestPostgresGetByID_NullDemographics(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	// rows inserted outside the signup path may carry NULL in every
	// non-credential column
	rows := sqlmock.NewRows(userColumns()).
		AddRow("USERAAAAAAAAAAAAAAAAAAAAAA", "j@example.com", "hash", nil, nil, nil, nil, nil, nil, nil)
	mock.ExpectQuery("FROM users").WithArgs("USERAAAAAAAAAAAAAAAAAAAAAA").WillReturnRows(rows)

	repo := NewPostgresRepository(db)
	u, err := repo.GetByID("USERAAAAAAAAAAAAAAAAAAAAAA")
	if err != nil {
		t.Fatalf("GetByID with NULL columns: %v", err)
	}
	if u.ReviewerName != "" || u.Age != nil || u.Gender != "" || u.Address != "" {
		t.Fatalf("NULL columns should stay zero-valued: %+v", u)
	}
	if u.LikedProducts == nil || len(u.LikedProducts) != 0 {
		t.Fatalf("likedProducts = %#v, want empty slice", u.LikedProducts)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPostgresGetByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows(userColumns()).
		AddRow("USERAAAAAAAAAAAAAAAAAAAAAA", "j@example.com", "hash", "Jenny", 30, "Female", "Springfield",
			pq.StringArray{"B001", "B002"}, "2024-01-01T00:00:00Z", "2024-01-01T00:00:00Z")
	mock.ExpectQuery("FROM users").WithArgs("j@example.com").WillReturnRows(rows)

	repo := NewPostgresRepository(db)
	u, err := repo.GetByEmail("j@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if u.ReviewerName != "Jenny" || u.Age == nil || *u.Age != 30 {
		t.Fatalf("unexpected user: %+v", u)
	}
	if len(u.LikedProducts) != 2 || u.LikedProducts[0] != "B001" {
		t.Fatalf("likedProducts = %v", u.LikedProducts)
	}
}
