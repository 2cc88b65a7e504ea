package middleware

import (
	"net/http"

	"commentsweep/internal/platform/logger"
	pnet "commentsweep/internal/platform/net"
)

// AuthPort resolves who a request acts for
type AuthPort interface {
	// Parse returns the signed-in subject and the credential carried by the request.
	// The credential is stored on the context as is, nil stores nothing.
	// An error rejects the request
	Parse(r *http.Request) (subject string, cred any, err error)
}

// Auth annotates the request context, and the request logger, with the subject and
// credential from p. A nil port only carries the request id into the logger
func Auth(p AuthPort, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := pnet.RequestID(r.Context())
			if p == nil {
				next.ServeHTTP(w, r.WithContext(logger.WithRequest(r.Context(), reqID, "")))
				return
			}
			subject, cred, err := p.Parse(r)
			if err != nil {
				status, body := pnet.Error(err, reqID)
				write(w, status, body)
				return
			}
			ctx := pnet.WithRequest(r.Context(), reqID, subject)
			ctx = pnet.WithCredential(ctx, cred)
			ctx = logger.WithRequest(ctx, reqID, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
