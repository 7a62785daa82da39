package router

import (
	"database/sql"
	"net/http"

	"github.com/hassankhsalar/boichai-api/internal/api/handlers"
	"github.com/hassankhsalar/boichai-api/internal/api/handlers/books"
	"github.com/hassankhsalar/boichai-api/internal/api/handlers/loans"
	"github.com/hassankhsalar/boichai-api/internal/api/handlers/users"
	mw "github.com/hassankhsalar/boichai-api/internal/api/middlewares"
	"github.com/hassankhsalar/boichai-api/internal/auth"
	"github.com/hassankhsalar/boichai-api/internal/lending"
	jwtutil "github.com/hassankhsalar/boichai-api/internal/security/jwt"
	"github.com/hassankhsalar/boichai-api/internal/storage/s3"
)

type Deps struct {
	DB      *sql.DB
	Lending *lending.Service
	Auth    *auth.Handler
	JWT     jwtutil.Params
	Covers  *s3.Client // nil disables cover uploads
}

func Router(d Deps) http.Handler {
	mux := http.NewServeMux()

	// Root
	mux.HandleFunc("GET /", handlers.RootHandler)

	// Catalog
	mux.Handle("GET /books", books.List(d.DB))
	mux.Handle("POST /books", books.Create(d.DB))
	mux.Handle("GET /books/{id}", books.Get(d.DB, d.Covers))
	mux.Handle("PUT /books/{id}", books.Put(d.DB))
	mux.Handle("PATCH /books/{id}", books.PatchQuantity(d.DB))
	mux.Handle("POST /books/{id}/cover", books.CoverUploadURL(d.DB, d.Covers))

	// Lending workflow
	mux.Handle("POST /borrow", loans.Borrow(d.Lending))
	mux.Handle("DELETE /borrowedBooks/{id}", loans.Return(d.Lending))
	mux.Handle("GET /borrowedBooks", mw.RequireSession(d.JWT, loans.ListForUser(d.Lending)))

	// Users
	mux.Handle("POST /users", users.Register(d.DB))
	mux.Handle("GET /users/{email}", users.GetByEmail(d.DB))

	// Session gateway
	mux.HandleFunc("POST /jwt", d.Auth.IssueSession)
	mux.HandleFunc("POST /logout", d.Auth.ClearSession)

	return mux
}
