package books

import (
	"net/http"

	"github.com/hassankhsalar/boichai-api/internal/api/apperr"
	"github.com/hassankhsalar/boichai-api/internal/api/httpx"
	"github.com/hassankhsalar/boichai-api/internal/store/catalog"
	"github.com/hassankhsalar/boichai-api/internal/store/dbx"
)

// Create: POST /books
func Create(db dbx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		var body bookReq
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&body); err != nil {
			apperr.WriteStatus(w, r, http.StatusBadRequest, "Bad Request", "invalid JSON")
			return
		}

		nb, err := body.toNewBook()
		if err != nil {
			apperr.WriteStatus(w, r, http.StatusBadRequest, "Bad Request", err.Error())
			return
		}

		b, err := catalog.Create(r.Context(), db, nb)
		if err != nil {
			apperr.HandleDBError(w, r, err, "failed to add book")
			return
		}
		httpx.Created(w, b)
	}
}
