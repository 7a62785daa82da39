package lending

import "errors"

var (
	// ErrBookNotFound: the borrow or return target does not exist.
	ErrBookNotFound = errors.New("book not found")
	// ErrOutOfStock: quantity was zero when the borrow was attempted.
	ErrOutOfStock = errors.New("book out of stock")
	// ErrLoanNotFound: no loan matched the (book, borrower) pair.
	ErrLoanNotFound = errors.New("loan not found")
	// ErrInvalid: the request failed input validation.
	ErrInvalid = errors.New("invalid input")
)
