package loans

import (
	"errors"
	"log"
	"net/http"

	"github.com/hassankhsalar/boichai-api/internal/api/httpx"
	"github.com/hassankhsalar/boichai-api/internal/lending"
)

// Return: DELETE /borrowedBooks/{id} — {id} is the book id; the
// borrower's email rides in the body, matching the frontend contract.
func Return(svc *lending.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		var req struct {
			UserEmail string `json:"user_email"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.ErrorJSON(w, http.StatusBadRequest, "invalid JSON")
			return
		}

		err := svc.Return(r.Context(), r.PathValue("id"), req.UserEmail)
		switch {
		case err == nil:
			httpx.OKNoData(w)
		case errors.Is(err, lending.ErrInvalid):
			httpx.ErrorJSON(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, lending.ErrLoanNotFound):
			// The shelf count is NOT touched here: incrementing on a
			// miss would mint inventory out of thin air.
			httpx.ErrorJSON(w, http.StatusNotFound, "no matching borrowed book")
		default:
			log.Printf("[Lending] return failed: %v\n", err)
			httpx.ErrorJSON(w, http.StatusInternalServerError, "failed to return book")
		}
	}
}
