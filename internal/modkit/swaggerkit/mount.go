// Package swaggerkit mounts the Swagger UI and its JSON document
package swaggerkit

import (
	"net/http"

	phttp "creatorscout/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Mount serves the Swagger UI and doc.json under /swagger when enabled
// titleSuffix is appended to the document title, e.g. the environment name
func Mount(r phttp.Router, enabled bool, titleSuffix string) {
	if !enabled {
		return
	}
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/", http.StatusPermanentRedirect)
	})
	r.Get("/swagger/doc.json", serveDocJSON(titleSuffix))
	r.Handle("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
}
