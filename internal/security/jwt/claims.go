package jwtutil

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the cookie token payload. The borrower's email is
// the subject; name and photo ride along for display.
type SessionClaims struct {
	Name  string `json:"name,omitempty"`
	Photo string `json:"photo,omitempty"`
	jwt.RegisteredClaims
}

func NewSessionClaims(email, name, photo string, ttl time.Duration) SessionClaims {
	now := time.Now()
	return SessionClaims{
		Name:  name,
		Photo: photo,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
}
