// Package credential models the bearer credential a caller acts with
// and the suppliers that pull one out of an inbound request
package credential

import (
	"net/http"
	"strings"
)

// State tells usable credentials apart from the two ways there is none
type State int

const (
	// StateMissing means the request carries no usable credential
	StateMissing State = iota
	// StateValid means Token can be sent to the platform
	StateValid
	// StateExpired means the signed-in session outlived its token and cannot refresh it
	StateExpired
)

func (s State) String() string {
	switch s {
	case StateValid:
		return "valid"
	case StateExpired:
		return "expired"
	default:
		return "missing"
	}
}

// Credential is a bearer token plus who it belongs to
type Credential struct {
	Token   string
	Subject string
	State   State
}

// Bearer wraps a raw token. An empty token is Missing
func Bearer(token, subject string) Credential {
	token = strings.TrimSpace(token)
	if token == "" {
		return Credential{Subject: subject}
	}
	return Credential{Token: token, Subject: subject, State: StateValid}
}

// Expired builds the expired-unrefreshable state for subject
func Expired(subject string) Credential {
	return Credential{Subject: subject, State: StateExpired}
}

// Usable reports whether c can authorize a write
func (c Credential) Usable() bool { return c.State == StateValid && c.Token != "" }

// Supplier resolves the credential carried by a request
type Supplier interface {
	Supply(r *http.Request) Credential
}

// SupplierFunc adapts a function to Supplier
type SupplierFunc func(r *http.Request) Credential

// Supply calls f
func (f SupplierFunc) Supply(r *http.Request) Credential { return f(r) }

// Header reads "Authorization: Bearer <token>"
type Header struct{}

// Supply parses the Authorization header, the scheme is case insensitive
func (Header) Supply(r *http.Request) Credential {
	s := strings.TrimSpace(r.Header.Get("Authorization"))
	const prefix = "bearer"
	if len(s) <= len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return Credential{}
	}
	rest := s[len(prefix):]
	if rest[0] != ' ' && rest[0] != '\t' {
		return Credential{}
	}
	return Bearer(rest, "")
}

// Chain asks each supplier in order and returns the first answer that is not Missing
type Chain []Supplier

// Supply walks the chain
func (c Chain) Supply(r *http.Request) Credential {
	for _, s := range c {
		if s == nil {
			continue
		}
		if cred := s.Supply(r); cred.State != StateMissing {
			return cred
		}
	}
	return Credential{}
}
