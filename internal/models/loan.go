package models

import "time"

// Loan links a borrower to a book. Title and image are denormalized at
// borrow time so listings render without a join.
type Loan struct {
	ID         string    `json:"id"`
	BookID     string    `json:"book_id"`
	BookTitle  string    `json:"book_title"`
	BookImage  string    `json:"book_image"`
	UserEmail  string    `json:"user_email"`
	UserName   string    `json:"user_name,omitempty"`
	UserPhoto  string    `json:"user_photo,omitempty"`
	BorrowedAt time.Time `json:"borrowed_at"`
	DueDate    time.Time `json:"due_date"`
}
