package youtube

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const maxBody = 4 << 20

// Remote reason codes the moderation layer branches on
const (
	ReasonCommentsDisabled  = "commentsDisabled"
	ReasonQuotaExceeded     = "quotaExceeded"
	ReasonRateLimitExceeded = "rateLimitExceeded"
	ReasonForbidden         = "forbidden"
	ReasonAuthError         = "authError"
)

// ErrNoAPIKey is returned before any call when no API key is configured
var ErrNoAPIKey = errors.New("youtube api key is not configured")

// ErrInvalidResponse is returned when a success body lacks the expected shape
var ErrInvalidResponse = errors.New("invalid response format")

// APIError wraps non-2xx responses from the platform
type APIError struct {
	Status int
	// Reason is the first machine-readable reason code, may be empty
	Reason string
	// Message is the platform's human message, may be empty
	Message string
}

// Error interface
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("youtube status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("youtube status %d", e.Status)
}

// HTTPStatus interface
func (e *APIError) HTTPStatus() int { return e.Status }

// TransportError wraps failures that produced no response, including timeouts
type TransportError struct {
	Err error
}

// Error interface
func (e *TransportError) Error() string { return "youtube transport: " + e.Err.Error() }

// Unwrap interface
func (e *TransportError) Unwrap() error { return e.Err }

// AsAPIError unwraps err into an *APIError
func AsAPIError(err error) (*APIError, bool) {
	var ae *APIError
	ok := errors.As(err, &ae)
	return ae, ok
}

// IsTransport reports whether err never reached the platform
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// parseAPIError reads a bounded error body. Undecodable bodies still yield the status
func parseAPIError(resp *http.Response) *APIError {
	ae := &APIError{Status: resp.StatusCode}
	b, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil || len(b) == 0 {
		return ae
	}
	var env errorEnvelope
	if json.Unmarshal(b, &env) != nil {
		return ae
	}
	ae.Message = env.Error.Message
	for _, e := range env.Error.Errors {
		if e.Reason != "" {
			ae.Reason = e.Reason
			break
		}
	}
	return ae
}

func drainAndClose(rc io.ReadCloser) error {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 512))
	return rc.Close()
}
