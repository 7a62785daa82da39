package books

import (
	"errors"
	"net/http"

	"github.com/hassankhsalar/boichai-api/internal/api/apperr"
	"github.com/hassankhsalar/boichai-api/internal/api/httpx"
	"github.com/hassankhsalar/boichai-api/internal/store/catalog"
	"github.com/hassankhsalar/boichai-api/internal/store/dbx"
)

// Put: PUT /books/{id} — full-field replace.
func Put(db dbx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		id, ok := pathID(w, r)
		if !ok {
			return
		}

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

		b, err := catalog.Replace(r.Context(), db, id, nb)
		if errors.Is(err, catalog.ErrNotFound) {
			apperr.WriteStatus(w, r, http.StatusNotFound, "Not Found", "book not found")
			return
		} else if err != nil {
			apperr.HandleDBError(w, r, err, "failed to update book")
			return
		}
		httpx.OK(w, b)
	}
}
