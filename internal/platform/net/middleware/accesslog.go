package middleware

import (
	"net/http"
	"strings"
	"time"

	"creatorscout/internal/platform/logger"
	pnet "creatorscout/internal/platform/net"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// AccessLogOptions configures the access log
type AccessLogOptions struct {
	// Slow logs requests at or above Slow as warn, 0 never does
	Slow time.Duration
}

// apiPrefix is where the stage routes live
const apiPrefix = "/api/v1/"

// stageOf returns the stage segment of an API path, empty elsewhere
func stageOf(path string) string {
	rest, ok := strings.CutPrefix(path, apiPrefix)
	if !ok {
		return ""
	}
	stage, _, _ := strings.Cut(rest, "/")
	return stage
}

// AccessLogZerolog writes one line per request
// The request id and the stage of /api/v1/<stage>/... land on the context
// so logger.C in handlers and services carries them too
func AccessLogZerolog(opt AccessLogOptions) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			ctx := logger.WithRequest(r.Context(), pnet.RequestID(r.Context()))
			ctx = logger.WithRun(ctx, "", stageOf(r.URL.Path))
			next.ServeHTTP(ww, r.WithContext(ctx))

			elapsed := time.Since(start)
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			log := logger.C(ctx)
			evt := log.Info()
			if opt.Slow > 0 && elapsed >= opt.Slow {
				evt = log.Warn().Bool("slow", true)
			}
			evt.Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", status).
				Int("bytes", ww.BytesWritten()).
				Dur("elapsed", elapsed).
				Msg("request done")
		})
	}
}
