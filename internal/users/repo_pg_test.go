package users

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func userColumns() []string {
	return []string{"id", "email", "name", "image_url", "google_id", "created_at", "updated_at"}
}

func TestPGRepoUpsertByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	now := time.Now().UTC()
	rows := sqlmock.NewRows(userColumns()).
		AddRow("id-1", "jane@example.com", "Jane", "https://example.com/a.png", "g-1", now, now)
	mock.ExpectQuery("INSERT INTO users").
		WithArgs("id-1", "jane@example.com", "Jane", "https://example.com/a.png", "g-1").
		WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	user, err := repo.UpsertByEmail(context.Background(), User{
		ID:       "id-1",
		Email:    "jane@example.com",
		Name:     "Jane",
		ImageURL: "https://example.com/a.png",
		GoogleID: "g-1",
	})
	if err != nil {
		t.Fatalf("UpsertByEmail: %v", err)
	}
	if user.Name != "Jane" || user.GoogleID != "g-1" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPGRepoUpsertByEmailNullsOptionalFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	now := time.Now().UTC()
	rows := sqlmock.NewRows(userColumns()).
		AddRow("id-1", "jane@example.com", nil, nil, nil, now, nil)
	mock.ExpectQuery("INSERT INTO users").
		WithArgs("id-1", "jane@example.com", nil, nil, nil).
		WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	user, err := repo.UpsertByEmail(context.Background(), User{ID: "id-1", Email: "jane@example.com"})
	if err != nil {
		t.Fatalf("UpsertByEmail: %v", err)
	}
	if user.Name != "" || user.ImageURL != "" || user.GoogleID != "" {
		t.Fatalf("expected empty optional fields, got %+v", user)
	}
	if user.UpdatedAt.IsZero() {
		t.Fatalf("expected UpdatedAt fallback on NULL")
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id, email, name, image_url, google_id").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(userColumns()))

	repo := &PGRepo{DB: db}
	if _, err := repo.GetByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
