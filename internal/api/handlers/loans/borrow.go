package loans

import (
	"errors"
	"log"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/hassankhsalar/boichai-api/internal/api/httpx"
	"github.com/hassankhsalar/boichai-api/internal/lending"
	"github.com/hassankhsalar/boichai-api/internal/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Borrow: POST /borrow
func Borrow(svc *lending.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		var req struct {
			BookID     string              `json:"book_id"`
			ReturnDate string              `json:"return_date"`
			User       models.UserIdentity `json:"user"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.ErrorJSON(w, http.StatusBadRequest, "invalid JSON")
			return
		}

		loan, err := svc.Borrow(r.Context(), req.BookID, req.User, req.ReturnDate)
		switch {
		case err == nil:
			httpx.OK(w, loan)
		case errors.Is(err, lending.ErrInvalid):
			httpx.ErrorJSON(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, lending.ErrBookNotFound):
			httpx.ErrorJSON(w, http.StatusNotFound, "book not found")
		case errors.Is(err, lending.ErrOutOfStock):
			httpx.ErrorJSON(w, http.StatusBadRequest, "book out of stock")
		default:
			log.Printf("[Lending] borrow failed: %v\n", err)
			httpx.ErrorJSON(w, http.StatusInternalServerError, "failed to borrow book")
		}
	}
}
