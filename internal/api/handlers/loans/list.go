package loans

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/hassankhsalar/boichai-api/internal/api/httpx"
	"github.com/hassankhsalar/boichai-api/internal/api/middlewares"
	"github.com/hassankhsalar/boichai-api/internal/lending"
)

// ListForUser: GET /borrowedBooks?email= (session required). A caller
// may only read their own loans; any other email is a 403 and leaks
// nothing.
func ListForUser(svc *lending.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middlewares.IdentityFrom(r.Context())
		if !ok {
			httpx.ErrorJSON(w, http.StatusUnauthorized, "unauthorized access")
			return
		}

		email := strings.TrimSpace(strings.ToLower(r.URL.Query().Get("email")))
		if email != identity.Email {
			httpx.ErrorJSON(w, http.StatusForbidden, "forbidden access")
			return
		}

		loans, err := svc.ListForUser(r.Context(), email)
		if err != nil {
			if errors.Is(err, lending.ErrInvalid) {
				httpx.ErrorJSON(w, http.StatusBadRequest, err.Error())
				return
			}
			log.Printf("[Lending] list failed: %v\n", err)
			httpx.ErrorJSON(w, http.StatusInternalServerError, "failed to fetch borrowed books")
			return
		}
		httpx.OK(w, loans)
	}
}
