package middlewares

import (
	"net/http"

	"github.com/hassankhsalar/boichai-api/internal/api/httpx"
	"github.com/hassankhsalar/boichai-api/internal/auth"
	jwtutil "github.com/hassankhsalar/boichai-api/internal/security/jwt"
)

// RequireSession verifies the session cookie and injects the borrower
// identity into the request context.
func RequireSession(params jwtutil.Params, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie(auth.CookieName)
		if err != nil || c.Value == "" {
			httpx.ErrorJSON(w, http.StatusUnauthorized, "unauthorized access")
			return
		}
		identity, err := jwtutil.ParseSession(params, c.Value)
		if err != nil {
			httpx.ErrorJSON(w, http.StatusUnauthorized, "unauthorized access")
			return
		}
		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
	})
}
