package users

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgconn"

	"github.com/hassankhsalar/boichai-api/internal/models"
	"github.com/hassankhsalar/boichai-api/internal/store/dbx"
)

var (
	ErrNotFound = errors.New("user not found")
	ErrConflict = errors.New("user already exists")
)

// Create registers a user. The unique index on email is the source of
// truth for duplicates; a racing second insert surfaces as ErrConflict.
func Create(ctx context.Context, db dbx.Getter, email, name, photoURL string) (models.User, error) {
	var u models.User
	err := db.QueryRowContext(ctx, `
		INSERT INTO users (email, name, photo_url)
		VALUES ($1, $2, $3)
		RETURNING id::text, email, name, photo_url, created_at`,
		email, name, photoURL,
	).Scan(&u.ID, &u.Email, &u.Name, &u.PhotoURL, &u.CreatedAt)
	if err != nil {
		var pg *pgconn.PgError
		if errors.As(err, &pg) && pg.Code == "23505" {
			return models.User{}, ErrConflict
		}
		return models.User{}, err
	}
	return u, nil
}

// GetByEmail fetches a user by the email natural key.
func GetByEmail(ctx context.Context, db dbx.Getter, email string) (models.User, error) {
	var u models.User
	err := db.QueryRowContext(ctx, `
		SELECT id::text, email, name, photo_url, created_at
		FROM users WHERE email = $1`, email,
	).Scan(&u.ID, &u.Email, &u.Name, &u.PhotoURL, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNotFound
	}
	return u, err
}
