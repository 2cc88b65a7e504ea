package httpkit

import (
	"net/http"

	"commentsweep/internal/adapters/credential"
	"commentsweep/internal/platform/net/middleware"
)

// credentialPort implements middleware.AuthPort over a credential.Supplier
type credentialPort struct {
	s credential.Supplier
}

// CredentialPort adapts a supplier to the auth middleware. It never rejects a request:
// the whole credential, state included, lands on the context and handlers decide what they need
func CredentialPort(s credential.Supplier) middleware.AuthPort {
	if s == nil {
		return nil
	}
	return credentialPort{s: s}
}

func (p credentialPort) Parse(r *http.Request) (string, any, error) {
	c := p.s.Supply(r)
	return c.Subject, c, nil
}
