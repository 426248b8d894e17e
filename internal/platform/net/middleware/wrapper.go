// Package middleware exposes the chi and cors middleware the API stack uses
// Callers never see chi types
package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"
)

// Middleware is the standard net/http middleware shape
type Middleware = func(http.Handler) http.Handler

// RequestID honours an incoming X-Request-Id or mints one
func RequestID() Middleware { return chimw.RequestID }

// RealIP trusts X-Forwarded-For and X-Real-IP for RemoteAddr
func RealIP() Middleware { return chimw.RealIP }

// Timeout cancels the request context after d
func Timeout(d time.Duration) Middleware { return chimw.Timeout(d) }

// NoCache marks every answer uncacheable, stage results change per run
func NoCache() Middleware { return chimw.NoCache }

// Compress compresses answers at level, flate.BestSpeed for large rankings
func Compress(level int) Middleware { return chimw.Compress(level) }

// StripSlashes routes /ranking/creators/ like /ranking/creators
func StripSlashes() Middleware { return chimw.StripSlashes }

// Heartbeat answers GET path with 200 before routing
func Heartbeat(path string) Middleware { return chimw.Heartbeat(path) }

// Throttle lets limit requests run at once and parks up to backlog more for wait
// Overflow is answered with 429
func Throttle(limit, backlog int, wait time.Duration) Middleware {
	if limit <= 0 {
		limit = 1
	}
	if backlog < 0 {
		backlog = 0
	}
	return chimw.ThrottleBacklog(limit, backlog, wait)
}

// CORS lets browsers on origins call the API, nil origins allows any
// Only GET and POST are exposed
func CORS(origins []string) Middleware {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return chicors.Handler(chicors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	})
}
