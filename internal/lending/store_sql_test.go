package lending_test

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/hassankhsalar/boichai-api/internal/lending"
	"github.com/hassankhsalar/boichai-api/internal/models"
)

var (
	claimRe  = regexp.QuoteMeta(`UPDATE books SET quantity = quantity - 1`)
	existsRe = regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM books WHERE id = $1)`)
	insertRe = regexp.QuoteMeta(`INSERT INTO loans`)
	deleteRe = regexp.QuoteMeta(`DELETE FROM loans`)
	refillRe = regexp.QuoteMeta(`UPDATE books SET quantity = quantity + 1 WHERE id = $1`)
)

const (
	bookID = "6f1b2a3c-4d5e-4f60-8a9b-0c1d2e3f4a5b"
	email  = "reader@example.com"
)

func due() time.Time { return time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC) }

func TestBorrow_ClaimsUnitAndInsertsLoan(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	store := lending.NewSQLStore(db)
	borrowedAt := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(claimRe).
		WithArgs(bookID).
		WillReturnRows(sqlmock.NewRows([]string{"title", "image_url"}).AddRow("Dune", "covers/dune.jpg"))
	mock.ExpectQuery(insertRe).
		WithArgs(sqlmock.AnyArg(), bookID, "Dune", "covers/dune.jpg", email, "Reader", "", due()).
		WillReturnRows(sqlmock.NewRows([]string{"borrowed_at"}).AddRow(borrowedAt))
	mock.ExpectCommit()

	loan, err := store.Borrow(t.Context(), bookID, models.UserIdentity{Email: email, Name: "Reader"}, due())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if loan.BookTitle != "Dune" || loan.BookImage != "covers/dune.jpg" {
		t.Fatalf("denormalized fields not captured: %+v", loan)
	}
	if loan.ID == "" || !loan.BorrowedAt.Equal(borrowedAt) {
		t.Fatalf("unexpected loan: %+v", loan)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestBorrow_OutOfStock(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	store := lending.NewSQLStore(db)

	mock.ExpectBegin()
	// Conditional decrement claims nothing.
	mock.ExpectQuery(claimRe).
		WithArgs(bookID).
		WillReturnRows(sqlmock.NewRows([]string{"title", "image_url"}))
	mock.ExpectQuery(existsRe).
		WithArgs(bookID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	_, err = store.Borrow(t.Context(), bookID, models.UserIdentity{Email: email}, due())
	if !errors.Is(err, lending.ErrOutOfStock) {
		t.Fatalf("want ErrOutOfStock, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestBorrow_BookMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	store := lending.NewSQLStore(db)

	mock.ExpectBegin()
	mock.ExpectQuery(claimRe).
		WithArgs(bookID).
		WillReturnRows(sqlmock.NewRows([]string{"title", "image_url"}))
	mock.ExpectQuery(existsRe).
		WithArgs(bookID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectRollback()

	_, err = store.Borrow(t.Context(), bookID, models.UserIdentity{Email: email}, due())
	if !errors.Is(err, lending.ErrBookNotFound) {
		t.Fatalf("want ErrBookNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestReturn_RestoresUnitOnlyAfterDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	store := lending.NewSQLStore(db)

	mock.ExpectBegin()
	mock.ExpectExec(deleteRe).
		WithArgs(bookID, email).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(refillRe).
		WithArgs(bookID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := store.Return(t.Context(), bookID, email); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestReturn_NoLoan_DoesNotTouchQuantity(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	store := lending.NewSQLStore(db)

	mock.ExpectBegin()
	mock.ExpectExec(deleteRe).
		WithArgs(bookID, email).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err = store.Return(t.Context(), bookID, email)
	if !errors.Is(err, lending.ErrLoanNotFound) {
		t.Fatalf("want ErrLoanNotFound, got %v", err)
	}
	// ExpectationsWereMet fails if the quantity UPDATE had run: no
	// refill expectation was registered.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestListByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	store := lending.NewSQLStore(db)
	borrowedAt := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{
		"id", "book_id", "book_title", "book_image",
		"user_email", "user_name", "user_photo", "borrowed_at", "due_date",
	}).AddRow("l1", bookID, "Dune", "covers/dune.jpg", email, "Reader", "", borrowedAt, due())

	mock.ExpectQuery(regexp.QuoteMeta(`FROM loans`)).
		WithArgs(email).
		WillReturnRows(rows)

	loans, err := store.ListByEmail(t.Context(), email)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(loans) != 1 || loans[0].BookTitle != "Dune" {
		t.Fatalf("unexpected loans: %+v", loans)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
