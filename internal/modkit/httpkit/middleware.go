package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"creatorscout/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	// Timeout bounds a whole request; stage calls pace upstream requests so
	// this is usually minutes rather than seconds
	Timeout time.Duration

	// SlowLog marks requests at or above this duration as warn in the access log
	SlowLog time.Duration

	// CORSOrigins are the browser origins allowed to call the API, empty allows any
	CORSOrigins []string
}

// CommonStack returns a baseline per module middleware slice
func CommonStack(opt StackOptions) []func(http.Handler) http.Handler {
	if opt.Timeout <= 0 {
		opt.Timeout = 10 * time.Minute
	}
	if opt.SlowLog <= 0 {
		opt.SlowLog = 30 * time.Second
	}
	return []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RealIP(),

		// safety
		middleware.RecoverJSON,

		// cache / freshness
		middleware.NoCache(),

		// observability
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: opt.SlowLog}),

		middleware.CORS(opt.CORSOrigins),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.StripSlashes(),
		middleware.Timeout(opt.Timeout),
	}
}
