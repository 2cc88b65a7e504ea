// Package session reads the signed session cookie set at sign-in. The cookie is an
// HS256 JWT carrying the platform access token, its expiry in unix milliseconds and,
// once the token has lapsed, a refresh-error marker. Refreshing is not implemented,
// a lapsed token surfaces as an expired credential
package session

import (
	"errors"
	"net/http"
	"time"

	"commentsweep/internal/adapters/credential"
	"commentsweep/internal/platform/logger"

	"github.com/golang-jwt/jwt/v5"
)

// RefreshError marks a session whose access token expired and could not be refreshed
const RefreshError = "RefreshAccessTokenError"

// DefaultCookie is the cookie name used when Options.CookieName is empty
const DefaultCookie = "commentsweep.session"

// Claims is the session payload
type Claims struct {
	AccessToken string `json:"accessToken"`
	// AccessTokenExpires is unix milliseconds, 0 means unknown
	AccessTokenExpires int64  `json:"accessTokenExpires"`
	Error              string `json:"error,omitempty"`
	Email              string `json:"email,omitempty"`
	Name               string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Options configures the Supplier
type Options struct {
	Secret     []byte
	CookieName string
	// Leeway tolerates clock skew on exp and nbf
	Leeway time.Duration
}

// Supplier implements credential.Supplier over the session cookie
type Supplier struct {
	opts Options
	now  func() time.Time
	log  logger.Logger
}

// ErrNoSecret is returned by Issue when no signing secret is configured
var ErrNoSecret = errors.New("session secret is not configured")

// New builds a Supplier. With an empty secret every request resolves to Missing
func New(o Options) *Supplier {
	if o.CookieName == "" {
		o.CookieName = DefaultCookie
	}
	return &Supplier{opts: o, now: time.Now, log: *logger.Named("session")}
}

// Supply resolves the request's session into a credential
func (s *Supplier) Supply(r *http.Request) credential.Credential {
	if len(s.opts.Secret) == 0 {
		return credential.Credential{}
	}
	ck, err := r.Cookie(s.opts.CookieName)
	if err != nil || ck.Value == "" {
		return credential.Credential{}
	}

	claims, err := s.parse(ck.Value)
	if err != nil {
		s.log.Debug().Err(err).Msg("session cookie rejected")
		return credential.Credential{}
	}
	subject := claims.Email
	if subject == "" {
		subject = claims.Subject
	}

	if claims.Error == RefreshError {
		return credential.Expired(subject)
	}
	if claims.AccessTokenExpires > 0 && !s.now().Before(time.UnixMilli(claims.AccessTokenExpires)) {
		return credential.Expired(subject)
	}
	return credential.Bearer(claims.AccessToken, subject)
}

func (s *Supplier) parse(raw string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims,
		func(*jwt.Token) (any, error) { return s.opts.Secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(s.opts.Leeway),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// Issue signs claims into a cookie value
func (s *Supplier) Issue(c Claims) (string, error) {
	if len(s.opts.Secret) == 0 {
		return "", ErrNoSecret
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.opts.Secret)
}

// Cookie wraps a signed value in the configured cookie
func (s *Supplier) Cookie(value string, maxAge time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     s.opts.CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(maxAge / time.Second),
	}
}
