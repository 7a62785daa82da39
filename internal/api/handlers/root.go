package handlers

import (
	"fmt"
	"net/http"
)

// RootHandler is the liveness probe the frontend pings on boot.
func RootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "boi-chai lending api is up")
}
