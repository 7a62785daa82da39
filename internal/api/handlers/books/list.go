package books

import (
	"net/http"
	"strings"

	"github.com/hassankhsalar/boichai-api/internal/api/apperr"
	"github.com/hassankhsalar/boichai-api/internal/api/httpx"
	"github.com/hassankhsalar/boichai-api/internal/store/catalog"
	"github.com/hassankhsalar/boichai-api/internal/store/dbx"
)

// List: GET /books[?category=]
func List(db dbx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := strings.TrimSpace(r.URL.Query().Get("category"))

		items, err := catalog.List(r.Context(), db, category)
		if err != nil {
			apperr.HandleDBError(w, r, err, "failed to fetch books")
			return
		}
		httpx.OK(w, items)
	}
}
