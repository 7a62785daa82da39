package lending

import (
	"context"
	"fmt"
	"time"

	"github.com/hassankhsalar/boichai-api/internal/models"
	"github.com/hassankhsalar/boichai-api/internal/validate"
)

// Store is the persistence boundary of the workflow. Borrow and Return
// must be atomic: either both the loan write and the quantity
// adjustment land, or neither does.
type Store interface {
	Borrow(ctx context.Context, bookID string, user models.UserIdentity, dueDate time.Time) (models.Loan, error)
	Return(ctx context.Context, bookID, email string) error
	ListByEmail(ctx context.Context, email string) ([]models.Loan, error)
}

// Service owns input validation and error mapping for the
// borrow/return workflow. It is the only writer that may adjust a
// book's quantity as a loan side effect.
type Service struct {
	Store Store
}

func NewService(store Store) *Service { return &Service{Store: store} }

// Borrow moves one unit of the book from available to on-loan.
func (s *Service) Borrow(ctx context.Context, bookID string, user models.UserIdentity, dueDate string) (models.Loan, error) {
	bookID, err := validate.RequireUUID("book_id", bookID)
	if err != nil {
		return models.Loan{}, fmt.Errorf("%w: %s", ErrInvalid, err)
	}
	email, err := validate.RequireEmail(user.Email)
	if err != nil {
		return models.Loan{}, fmt.Errorf("%w: %s", ErrInvalid, err)
	}
	user.Email = email
	due, err := validate.RequireFutureDate("return_date", dueDate)
	if err != nil {
		return models.Loan{}, fmt.Errorf("%w: %s", ErrInvalid, err)
	}
	return s.Store.Borrow(ctx, bookID, user, due)
}

// Return restores one unit and removes the matching loan. The unit is
// restored only when a loan was actually deleted; returning a book
// that was never borrowed fails with ErrLoanNotFound.
func (s *Service) Return(ctx context.Context, bookID, email string) error {
	bookID, err := validate.RequireUUID("book_id", bookID)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalid, err)
	}
	email, err = validate.RequireEmail(email)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalid, err)
	}
	return s.Store.Return(ctx, bookID, email)
}

// ListForUser returns the caller's active loans. The 403 identity
// check against the session lives at the handler boundary.
func (s *Service) ListForUser(ctx context.Context, email string) ([]models.Loan, error) {
	email, err := validate.RequireEmail(email)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalid, err)
	}
	return s.Store.ListByEmail(ctx, email)
}
