package books

import (
	"errors"
	"net/http"
	"strings"

	"github.com/hassankhsalar/boichai-api/internal/api/apperr"
	"github.com/hassankhsalar/boichai-api/internal/api/httpx"
	"github.com/hassankhsalar/boichai-api/internal/storage/s3"
	"github.com/hassankhsalar/boichai-api/internal/store/catalog"
	"github.com/hassankhsalar/boichai-api/internal/store/dbx"
)

// Get: GET /books/{id}. When the image field holds an uploaded object
// key rather than a URL, it is swapped for a presigned download link.
func Get(db dbx.DB, store *s3.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		b, err := catalog.Get(r.Context(), db, id)
		if errors.Is(err, catalog.ErrNotFound) {
			apperr.WriteStatus(w, r, http.StatusNotFound, "Not Found", "book not found")
			return
		} else if err != nil {
			apperr.HandleDBError(w, r, err, "failed to fetch book")
			return
		}

		if store != nil && strings.HasPrefix(b.ImageURL, "covers/") {
			// Presign failure sends the raw key; better than a 500 for
			// a cosmetic field.
			if url, err := store.PresignCoverDownload(r.Context(), b.ImageURL); err == nil {
				b.ImageURL = url
			}
		}

		httpx.OK(w, b)
	}
}
