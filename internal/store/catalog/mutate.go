package catalog

import (
	"context"

	"github.com/hassankhsalar/boichai-api/internal/models"
	"github.com/hassankhsalar/boichai-api/internal/store/dbx"
)

// Create inserts a book and returns the stored row.
func Create(ctx context.Context, db dbx.Getter, nb NewBook) (models.Book, error) {
	return scanBook(db.QueryRowContext(ctx, `
		INSERT INTO books (title, author, category, description, rating, image_url, quantity)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+bookColumns,
		nb.Title, nb.Author, nb.Category, nb.Description, nb.Rating, nb.ImageURL, nb.Quantity))
}

// Replace overwrites every caller-editable field (PUT semantics).
func Replace(ctx context.Context, db dbx.Getter, id string, nb NewBook) (models.Book, error) {
	return scanBook(db.QueryRowContext(ctx, `
		UPDATE books
		SET title = $1, author = $2, category = $3, description = $4,
		    rating = $5, image_url = $6, quantity = $7
		WHERE id = $8
		RETURNING `+bookColumns,
		nb.Title, nb.Author, nb.Category, nb.Description, nb.Rating, nb.ImageURL, nb.Quantity, id))
}

// SetQuantity is the PATCH path: a direct catalog edit of the unit
// count, separate from the lending workflow's adjustments.
func SetQuantity(ctx context.Context, db dbx.Execer, id string, quantity int) error {
	res, err := db.ExecContext(ctx,
		`UPDATE books SET quantity = $1 WHERE id = $2`, quantity, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// SetCoverKey records the object key of an uploaded cover image.
func SetCoverKey(ctx context.Context, db dbx.Execer, id, key string) error {
	res, err := db.ExecContext(ctx,
		`UPDATE books SET image_url = $1 WHERE id = $2`, key, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
