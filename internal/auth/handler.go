package auth

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/hassankhsalar/boichai-api/internal/api/httpx"
	"github.com/hassankhsalar/boichai-api/internal/models"
	jwtutil "github.com/hassankhsalar/boichai-api/internal/security/jwt"
	"github.com/hassankhsalar/boichai-api/internal/validate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Handler issues and clears the httpOnly session cookie. The identity
// arrives pre-authenticated from the frontend's provider; this gateway
// only signs it, per the workflow's collaborator contract.
type Handler struct {
	Params     jwtutil.Params
	Production bool
}

func New(params jwtutil.Params, production bool) *Handler {
	return &Handler{Params: params, Production: production}
}

// IssueSession: POST /jwt
func (h *Handler) IssueSession(w http.ResponseWriter, r *http.Request) {
	var req models.UserIdentity
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.ErrorJSON(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	email, err := validate.RequireEmail(req.Email)
	if err != nil {
		httpx.ErrorJSON(w, http.StatusBadRequest, err.Error())
		return
	}
	req.Email = email

	token, err := jwtutil.SignSession(h.Params, req)
	if err != nil {
		httpx.ErrorJSON(w, http.StatusInternalServerError, "failed to sign token")
		return
	}

	http.SetCookie(w, h.sessionCookie(token, int(h.Params.TTL.Seconds())))
	httpx.OKNoData(w)
}

// ClearSession: POST /logout
func (h *Handler) ClearSession(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.sessionCookie("", -1))
	httpx.OKNoData(w)
}

// sessionCookie mirrors the deployment split the frontend expects:
// cross-site (SameSite=None + Secure) in production, strict same-site
// over plain HTTP in development.
func (h *Handler) sessionCookie(value string, maxAge int) *http.Cookie {
	c := &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.Production,
		SameSite: http.SameSiteStrictMode,
	}
	if h.Production {
		c.SameSite = http.SameSiteNoneMode
	}
	return c
}
