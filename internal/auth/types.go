package auth

// CookieName is the session cookie key shared with the middleware.
const CookieName = "token"
