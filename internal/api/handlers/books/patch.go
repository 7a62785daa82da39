package books

import (
	"errors"
	"net/http"

	"github.com/hassankhsalar/boichai-api/internal/api/apperr"
	"github.com/hassankhsalar/boichai-api/internal/api/httpx"
	"github.com/hassankhsalar/boichai-api/internal/store/catalog"
	"github.com/hassankhsalar/boichai-api/internal/store/dbx"
	"github.com/hassankhsalar/boichai-api/internal/validate"
)

// PatchQuantity: PATCH /books/{id} — the only field PATCH may touch.
// This is the unsynchronized direct-edit path; the lending workflow is
// the sole writer allowed to adjust quantity as a loan side effect.
func PatchQuantity(db dbx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		id, ok := pathID(w, r)
		if !ok {
			return
		}

		var body struct {
			Quantity *int `json:"quantity"`
		}
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&body); err != nil || body.Quantity == nil {
			apperr.WriteStatus(w, r, http.StatusBadRequest, "Bad Request", "quantity is required")
			return
		}
		qty, err := validate.RequireQuantity(*body.Quantity)
		if err != nil {
			apperr.WriteStatus(w, r, http.StatusBadRequest, "Bad Request", err.Error())
			return
		}

		err = catalog.SetQuantity(r.Context(), db, id, qty)
		if errors.Is(err, catalog.ErrNotFound) {
			apperr.WriteStatus(w, r, http.StatusNotFound, "Not Found", "book not found")
			return
		} else if err != nil {
			apperr.HandleDBError(w, r, err, "failed to update quantity")
			return
		}
		httpx.OKNoData(w)
	}
}
