package apperr

import (
	"errors"
	"net/http"
	"strings"

	"github.com/jackc/pgconn"
)

// Constraint names from schema.sql mapped to request fields.
var constraintField = map[string]string{
	"users_email_key":      "email",
	"loans_book_id_fkey":   "book_id",
	"books_quantity_check": "quantity",
	"books_pkey":           "id",
	"loans_pkey":           "id",
}

func fieldFromConstraint(c string) string {
	if f, ok := constraintField[c]; ok {
		return f
	}
	return ""
}

func fieldFromDetail(detail string) string {
	for _, k := range []string{"email", "quantity", "book_id", "user_email", "id"} {
		if strings.Contains(detail, k) {
			return k
		}
	}
	return ""
}

// FromPG maps a pgconn.PgError to a Problem. Returns (Problem, true) if mapped.
func FromPG(err error) (Problem, bool) {
	var pg *pgconn.PgError
	if !errors.As(err, &pg) {
		return Problem{}, false
	}

	p := Problem{
		Title:  "Database error",
		Status: http.StatusInternalServerError,
	}

	field := fieldFromConstraint(pg.ConstraintName)
	if field == "" && pg.Detail != "" {
		field = fieldFromDetail(pg.Detail)
	}
	if field == "" {
		field = "resource"
	}

	switch pg.Code {
	case "23505": // unique_violation
		p.Status = http.StatusConflict
		p.Title = "Conflict"
		p.FieldErrors = []FieldError{{Field: field, Code: "unique", Message: "value already exists"}}
	case "23503": // foreign_key_violation
		p.Status = http.StatusConflict
		p.Title = "Conflict"
		p.FieldErrors = []FieldError{{Field: field, Code: "fk", Message: "referenced record is missing or in use"}}
	case "23502": // not_null_violation
		p.Status = http.StatusBadRequest
		p.Title = "Bad Request"
		if pg.ColumnName != "" {
			field = pg.ColumnName
		}
		p.FieldErrors = []FieldError{{Field: field, Code: "not_null", Message: "required field is missing"}}
	case "23514": // check_violation (books_quantity_check guards quantity >= 0)
		p.Status = http.StatusUnprocessableEntity
		p.Title = "Unprocessable Entity"
		p.FieldErrors = []FieldError{{Field: field, Code: "check", Message: "constraint failed"}}
	case "22P02": // invalid_text_representation, e.g. malformed uuid
		p.Status = http.StatusBadRequest
		p.Title = "Bad Request"
		p.FieldErrors = []FieldError{{Field: "id", Code: "invalid", Message: "invalid format"}}
	case "40001", "40P01": // serialization_failure, deadlock_detected
		p.Status = http.StatusConflict
		p.Title = "Conflict"
		p.Detail = "transaction conflict, please retry"
		p.Retryable = true
	}

	return p, true
}

// HandleDBError maps err to a Problem and writes it. Returns true if handled.
func HandleDBError(w http.ResponseWriter, r *http.Request, err error, fallbackTitle string) bool {
	if err == nil {
		return false
	}
	if p, ok := FromPG(err); ok {
		Write(w, r, p)
		return true
	}
	Write(w, r, Problem{Status: http.StatusInternalServerError, Title: fallbackTitle})
	return true
}
