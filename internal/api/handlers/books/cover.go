package books

import (
	"errors"
	"net/http"

	"github.com/hassankhsalar/boichai-api/internal/api/apperr"
	"github.com/hassankhsalar/boichai-api/internal/api/httpx"
	"github.com/hassankhsalar/boichai-api/internal/storage/s3"
	"github.com/hassankhsalar/boichai-api/internal/store/catalog"
	"github.com/hassankhsalar/boichai-api/internal/store/dbx"
)

var allowedCoverTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
}

// CoverUploadURL: POST /books/{id}/cover — presigns a direct upload
// for the book's cover image and records the object key.
func CoverUploadURL(db dbx.DB, store *s3.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			apperr.WriteStatus(w, r, http.StatusNotImplemented, "Not Implemented", "cover storage is not configured")
			return
		}

		id, ok := pathID(w, r)
		if !ok {
			return
		}

		var body struct {
			ContentType string `json:"content_type"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			apperr.WriteStatus(w, r, http.StatusBadRequest, "Bad Request", "invalid JSON")
			return
		}
		if _, ok := allowedCoverTypes[body.ContentType]; !ok {
			apperr.WriteStatus(w, r, http.StatusBadRequest, "Bad Request", "content_type must be image/jpeg, image/png or image/webp")
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

		url, key, err := store.PresignCoverUpload(r.Context(), b.ID, b.Title, body.ContentType)
		if err != nil {
			apperr.WriteStatus(w, r, http.StatusInternalServerError, "Internal Server Error", "failed to presign upload")
			return
		}
		if err := catalog.SetCoverKey(r.Context(), db, b.ID, key); err != nil {
			apperr.HandleDBError(w, r, err, "failed to record cover")
			return
		}

		httpx.OK(w, map[string]string{"upload_url": url, "key": key})
	}
}
