package catalog

import "errors"

var (
	ErrNotFound = errors.New("book not found")
)

// NewBook carries the caller-supplied fields for create and replace.
// All fields are required; handlers validate before calling in.
type NewBook struct {
	Title       string
	Author      string
	Category    string
	Description string
	Rating      float64
	ImageURL    string
	Quantity    int
}

const bookColumns = `id::text, title, author, category, description, rating, image_url, quantity, created_at`
