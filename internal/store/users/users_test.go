package users_test

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"

	"github.com/hassankhsalar/boichai-api/internal/store/users"
)

var userCols = []string{"id", "email", "name", "photo_url", "created_at"}

func TestCreate_OK(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	created, _ := time.Parse(time.RFC3339, "2026-02-01T00:00:00Z")
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
		WithArgs("reader@example.com", "Reader", "").
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow("u1", "reader@example.com", "Reader", "", created))

	u, err := users.Create(t.Context(), db, "reader@example.com", "Reader", "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.ID != "u1" || u.Email != "reader@example.com" {
		t.Fatalf("unexpected user: %+v", u)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
		WithArgs("reader@example.com", "Reader", "").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	_, err = users.Create(t.Context(), db, "reader@example.com", "Reader", "")
	if !errors.Is(err, users.ErrConflict) {
		t.Fatalf("want ErrConflict, got %v", err)
	}
}

func TestGetByEmail_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE email = $1`)).
		WithArgs("ghost@example.com").
		WillReturnRows(sqlmock.NewRows(userCols))

	_, err = users.GetByEmail(t.Context(), db, "ghost@example.com")
	if !errors.Is(err, users.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
