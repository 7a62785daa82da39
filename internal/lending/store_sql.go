package lending

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/hassankhsalar/boichai-api/internal/models"
	"github.com/hassankhsalar/boichai-api/internal/store/dbx"
)

// SQLStore implements Store on Postgres. Both writes of a borrow or
// return run in one transaction, and the quantity check is folded into
// the UPDATE itself so two concurrent borrows can never both pass a
// stale read: `quantity = quantity - 1 WHERE ... quantity > 0` either
// claims a unit or affects no row.
type SQLStore struct {
	DB *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore { return &SQLStore{DB: db} }

func (s *SQLStore) Borrow(ctx context.Context, bookID string, user models.UserIdentity, dueDate time.Time) (models.Loan, error) {
	loan := models.Loan{
		ID:        uuid.NewString(),
		BookID:    bookID,
		UserEmail: user.Email,
		UserName:  user.Name,
		UserPhoto: user.PhotoURL,
		DueDate:   dueDate,
	}

	err := dbx.WithinTx(ctx, s.DB, func(tx *sql.Tx) error {
		// Claim a unit and capture the denormalized fields in one shot.
		err := tx.QueryRowContext(ctx, `
			UPDATE books SET quantity = quantity - 1
			WHERE id = $1 AND quantity > 0
			RETURNING title, image_url`, bookID,
		).Scan(&loan.BookTitle, &loan.BookImage)
		if errors.Is(err, sql.ErrNoRows) {
			// No unit claimed: missing book or empty shelf.
			var exists bool
			if err := tx.QueryRowContext(ctx,
				`SELECT EXISTS (SELECT 1 FROM books WHERE id = $1)`, bookID,
			).Scan(&exists); err != nil {
				return err
			}
			if !exists {
				return ErrBookNotFound
			}
			return ErrOutOfStock
		}
		if err != nil {
			return err
		}

		return tx.QueryRowContext(ctx, `
			INSERT INTO loans (id, book_id, book_title, book_image, user_email, user_name, user_photo, due_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING borrowed_at`,
			loan.ID, loan.BookID, loan.BookTitle, loan.BookImage,
			loan.UserEmail, loan.UserName, loan.UserPhoto, loan.DueDate,
		).Scan(&loan.BorrowedAt)
	})
	if err != nil {
		return models.Loan{}, err
	}
	return loan, nil
}

func (s *SQLStore) Return(ctx context.Context, bookID, email string) error {
	return dbx.WithinTx(ctx, s.DB, func(tx *sql.Tx) error {
		// Delete exactly one loan: the oldest match, so a user holding
		// two copies of the same book returns them one at a time.
		res, err := tx.ExecContext(ctx, `
			DELETE FROM loans
			WHERE id IN (
				SELECT id FROM loans
				WHERE book_id = $1 AND user_email = $2
				ORDER BY borrowed_at
				LIMIT 1
			)`, bookID, email)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return ErrLoanNotFound
		}

		// Restore the unit only because a loan was actually removed.
		_, err = tx.ExecContext(ctx,
			`UPDATE books SET quantity = quantity + 1 WHERE id = $1`, bookID)
		return err
	})
}

func (s *SQLStore) ListByEmail(ctx context.Context, email string) ([]models.Loan, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id::text, book_id::text, book_title, book_image,
		       user_email, user_name, user_photo, borrowed_at, due_date
		FROM loans
		WHERE user_email = $1
		ORDER BY borrowed_at DESC`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	loans := []models.Loan{}
	for rows.Next() {
		var l models.Loan
		if err := rows.Scan(&l.ID, &l.BookID, &l.BookTitle, &l.BookImage,
			&l.UserEmail, &l.UserName, &l.UserPhoto, &l.BorrowedAt, &l.DueDate); err != nil {
			return nil, err
		}
		loans = append(loans, l)
	}
	return loans, rows.Err()
}
