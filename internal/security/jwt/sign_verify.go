package jwtutil

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hassankhsalar/boichai-api/internal/models"
)

// SignSession issues an HS256 session token for the given identity.
func SignSession(p Params, identity models.UserIdentity) (string, error) {
	claims := NewSessionClaims(identity.Email, identity.Name, identity.PhotoURL, p.TTL)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(p.Secret)
}

// ParseSession verifies signature and expiry (with leeway) and returns
// the embedded identity.
func ParseSession(p Params, tokenStr string) (models.UserIdentity, error) {
	parser := jwt.NewParser(jwt.WithLeeway(p.ClockSkew), jwt.WithValidMethods([]string{"HS256"}))
	token, err := parser.ParseWithClaims(tokenStr, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		return p.Secret, nil
	})
	if err != nil {
		return models.UserIdentity{}, err
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return models.UserIdentity{}, errors.New("invalid token")
	}
	return models.UserIdentity{
		Email:    claims.Subject,
		Name:     claims.Name,
		PhotoURL: claims.Photo,
	}, nil
}
