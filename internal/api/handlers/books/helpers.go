package books

import (
	"errors"
	"net/http"

	"github.com/hassankhsalar/boichai-api/internal/api/apperr"
	"github.com/hassankhsalar/boichai-api/internal/validate"
)

var errAllFields = errors.New("all fields are required")

// pathID validates the {id} segment, writing a 400 Problem on failure.
func pathID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, err := validate.RequireUUID("id", r.PathValue("id"))
	if err != nil {
		apperr.WriteStatus(w, r, http.StatusBadRequest, "Bad Request", err.Error())
		return "", false
	}
	return id, true
}
