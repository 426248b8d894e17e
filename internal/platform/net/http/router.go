package http

import "net/http"

// Handler is the handler shape every route takes
type Handler = func(http.ResponseWriter, *http.Request)

// Router is what modules mount their routes on
// The API only reads with GET and acts with POST
type Router interface {
	Get(path string, h Handler)
	Post(path string, h Handler)
	Handle(path string, h http.Handler)

	Use(mw ...func(http.Handler) http.Handler)
	Group(fn func(Router))
	Route(pattern string, fn func(Router))

	// Mux is the router as a plain handler, for tests and the server
	Mux() http.Handler
}
