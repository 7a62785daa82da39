package catalog

import (
	"context"
	"database/sql"
	"errors"

	"github.com/hassankhsalar/boichai-api/internal/models"
	"github.com/hassankhsalar/boichai-api/internal/store/dbx"
)

func scanBook(row *sql.Row) (models.Book, error) {
	var b models.Book
	err := row.Scan(&b.ID, &b.Title, &b.Author, &b.Category, &b.Description,
		&b.Rating, &b.ImageURL, &b.Quantity, &b.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Book{}, ErrNotFound
	}
	return b, err
}

// Get fetches one book by id.
func Get(ctx context.Context, db dbx.Getter, id string) (models.Book, error) {
	return scanBook(db.QueryRowContext(ctx,
		`SELECT `+bookColumns+` FROM books WHERE id = $1`, id))
}

// List returns the catalog, optionally filtered by category.
func List(ctx context.Context, db dbx.Queryer, category string) ([]models.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books ORDER BY created_at DESC`
	args := []any{}
	if category != "" {
		query = `SELECT ` + bookColumns + ` FROM books WHERE category = $1 ORDER BY created_at DESC`
		args = append(args, category)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books := []models.Book{}
	for rows.Next() {
		var b models.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Category, &b.Description,
			&b.Rating, &b.ImageURL, &b.Quantity, &b.CreatedAt); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}
