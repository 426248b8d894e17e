package httpkit

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Param returns the trimmed value of a route placeholder such as {username}
func Param(r *http.Request, name string) string {
	return strings.TrimSpace(chi.URLParam(r, name))
}
