package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	phttp "commentsweep/internal/platform/net/http"
	"commentsweep/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	// AllowedOrigins for CORS, empty allows none cross-origin
	AllowedOrigins []string
	// SlowRequest marks access log lines as warn at or above this duration
	SlowRequest time.Duration
	// Timeout bounds a whole request, 0 means 60s
	Timeout time.Duration
}

// CommonStack returns the baseline middleware slice for the api
// compose with Auth as needed in main
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 60 * time.Second
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
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.SlowRequest}),

		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.AllowedOrigins, AllowCredentials: len(o.AllowedOrigins) > 0}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.Timeout(o.Timeout),
	}
}

// Auth wires the auth middleware to the platform JSON writer
func Auth(p middleware.AuthPort) func(http.Handler) http.Handler {
	return middleware.Auth(p, phttp.JSON)
}
