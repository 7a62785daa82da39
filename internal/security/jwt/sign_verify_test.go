package jwtutil_test

import (
	"testing"
	"time"

	"github.com/hassankhsalar/boichai-api/internal/models"
	jwtutil "github.com/hassankhsalar/boichai-api/internal/security/jwt"
)

var params = jwtutil.Params{
	Secret:    []byte("test-secret-at-least-32-bytes-long!!"),
	TTL:       time.Hour,
	ClockSkew: 30 * time.Second,
}

func TestSignParse_Roundtrip(t *testing.T) {
	identity := models.UserIdentity{
		Email:    "reader@example.com",
		Name:     "Reader",
		PhotoURL: "https://cdn.example.com/p.jpg",
	}

	token, err := jwtutil.SignSession(params, identity)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	got, err := jwtutil.ParseSession(params, token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != identity {
		t.Fatalf("identity mismatch: got %+v want %+v", got, identity)
	}
}

func TestParse_WrongSecret(t *testing.T) {
	token, err := jwtutil.SignSession(params, models.UserIdentity{Email: "a@b.co"})
	if err != nil {
		t.Fatal(err)
	}

	other := params
	other.Secret = []byte("a-completely-different-signing-key!!")
	if _, err := jwtutil.ParseSession(other, token); err == nil {
		t.Fatal("token signed with another key was accepted")
	}
}

func TestParse_Expired(t *testing.T) {
	short := params
	short.TTL = -2 * time.Minute
	short.ClockSkew = 0

	token, err := jwtutil.SignSession(short, models.UserIdentity{Email: "a@b.co"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := jwtutil.ParseSession(short, token); err == nil {
		t.Fatal("expired token was accepted")
	}
}

func TestParse_ExpiredWithinLeeway(t *testing.T) {
	short := params
	short.TTL = -10 * time.Second
	short.ClockSkew = time.Minute

	token, err := jwtutil.SignSession(short, models.UserIdentity{Email: "a@b.co"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := jwtutil.ParseSession(short, token); err != nil {
		t.Fatalf("token inside leeway rejected: %v", err)
	}
}

func TestParse_EmptySubject(t *testing.T) {
	token, err := jwtutil.SignSession(params, models.UserIdentity{})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := jwtutil.ParseSession(params, token); err == nil {
		t.Fatal("token without subject was accepted")
	}
}
