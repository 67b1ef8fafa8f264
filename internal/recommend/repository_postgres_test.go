package recommend

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPostgresStore_ItemStatsForUsers(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	store := NewPostgresStore(db)

	rows := sqlmock.NewRows([]string{"asin", "reviews", "avg_rating", "user_overlap"}).
		AddRow("B001", 3, 4.5, 2).
		AddRow("B002", 1, 5.0, 1)
	mock.ExpectQuery("SELECT asin, COUNT").WillReturnRows(rows)

	stats, err := store.ItemStatsForUsers(context.Background(), []string{"u1", "u2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected 2 aggregates, got %d", len(stats))
	}
	if stats[0].Asin != "B001" || stats[0].UserOverlap != 2 || stats[0].AvgRating != 4.5 {
		t.Fatalf("unexpected aggregate %+v", stats[0])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresStore_ItemStatsForUsers_EmptyCohortSkipsQuery(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	store := NewPostgresStore(db)

	stats, err := store.ItemStatsForUsers(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stats) != 0 {
		t.Fatalf("expected empty result")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("no query should have run: %v", err)
	}
}

func TestPostgresStore_UsersByIDs_NullDemographics(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	store := NewPostgresStore(db)

	rows := sqlmock.NewRows([]string{"user_id", "age", "gender", "address"}).
		AddRow("u1", 34, "Female", "Springfield").
		AddRow("u2", nil, nil, nil)
	mock.ExpectQuery("SELECT user_id, age, gender, address FROM users").WillReturnRows(rows)

	users, err := store.UsersByIDs(context.Background(), []string{"u1", "u2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].Age == nil || *users[0].Age != 34 {
		t.Fatalf("u1 age not scanned: %+v", users[0])
	}
	if users[1].Age != nil || users[1].Gender != "" || users[1].Address != "" {
		t.Fatalf("null demographics should stay empty: %+v", users[1])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresStore_Counts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	store := NewPostgresStore(db)

	mock.ExpectQuery("FROM reviews").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	n, err := store.CountReviews(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 42 {
		t.Fatalf("count = %d, want 42", n)
	}
}

func TestPostgresStore_CountPropagatesFault(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	store := NewPostgresStore(db)

	mock.ExpectQuery("SELECT COUNT").WillReturnError(errors.New("connection refused"))

	if _, err := store.CountReviews(context.Background()); err == nil {
		t.Fatalf("store fault must propagate")
	}
}
