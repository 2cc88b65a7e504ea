package httpkit

import (
	"net/http"

	"commentsweep/internal/adapters/credential"
	pnet "commentsweep/internal/platform/net"
)

// Subject returns the signed-in subject annotated by the auth middleware, empty for anonymous calls
func Subject(r *http.Request) string {
	return pnet.Subject(r.Context())
}

// Credential returns the credential the auth middleware resolved for r.
// Requests that never went through it read as missing
func Credential(r *http.Request) credential.Credential {
	c, _ := pnet.Credential(r.Context()).(credential.Credential)
	return c
}
