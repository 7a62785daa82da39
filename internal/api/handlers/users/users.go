package users

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/hassankhsalar/boichai-api/internal/api/apperr"
	"github.com/hassankhsalar/boichai-api/internal/api/httpx"
	"github.com/hassankhsalar/boichai-api/internal/store/dbx"
	storeusers "github.com/hassankhsalar/boichai-api/internal/store/users"
	"github.com/hassankhsalar/boichai-api/internal/validate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Register: POST /users — first-registration only; duplicates conflict.
func Register(db dbx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		var req struct {
			Email    string `json:"email"`
			Name     string `json:"name"`
			PhotoURL string `json:"photo_url"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apperr.WriteStatus(w, r, http.StatusBadRequest, "Bad Request", "invalid JSON")
			return
		}

		email, err := validate.RequireEmail(req.Email)
		if err != nil {
			apperr.WriteStatus(w, r, http.StatusBadRequest, "Bad Request", err.Error())
			return
		}
		name, err := validate.RequireBounded("name", req.Name, 1, 120)
		if err != nil {
			apperr.WriteStatus(w, r, http.StatusBadRequest, "Bad Request", err.Error())
			return
		}

		u, err := storeusers.Create(r.Context(), db, email, name, req.PhotoURL)
		if errors.Is(err, storeusers.ErrConflict) {
			apperr.WriteStatus(w, r, http.StatusConflict, "Conflict", "user already exists")
			return
		} else if err != nil {
			apperr.HandleDBError(w, r, err, "failed to register user")
			return
		}
		httpx.Created(w, u)
	}
}

// GetByEmail: GET /users/{email}
func GetByEmail(db dbx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, err := validate.RequireEmail(r.PathValue("email"))
		if err != nil {
			apperr.WriteStatus(w, r, http.StatusBadRequest, "Bad Request", err.Error())
			return
		}

		u, err := storeusers.GetByEmail(r.Context(), db, email)
		if errors.Is(err, storeusers.ErrNotFound) {
			apperr.WriteStatus(w, r, http.StatusNotFound, "Not Found", "user not found")
			return
		} else if err != nil {
			apperr.HandleDBError(w, r, err, "failed to fetch user")
			return
		}
		httpx.OK(w, u)
	}
}
