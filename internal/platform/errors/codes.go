package errors

import "net/http"

// ErrorCode is the machine readable class of an error. The numeric values go
// out on the wire, append new codes at the end
type ErrorCode uint16

const (
	ErrorCodeUnknown ErrorCode = iota
	ErrorCodePanic
	// ErrorCodeUnavailable is transient, a retry may succeed
	ErrorCodeUnavailable
	// ErrorCodeTooManyRequests covers local throttling and platform quota exhaustion
	ErrorCodeTooManyRequests
	// ErrorCodeUnauthorized is a missing, invalid or expired credential
	ErrorCodeUnauthorized
	ErrorCodeForbidden
	// ErrorCodeValidation is caller input that decoded but broke a rule
	ErrorCodeValidation
	// ErrorCodeJSON is a body that could not be decoded
	ErrorCodeJSON
	ErrorCodeNotFound
	// ErrorCodeFailedPrecondition is a request the platform refuses because of the item's state,
	// comments disabled on a video for example
	ErrorCodeFailedPrecondition
	// ErrorCodeUpstream is a platform failure with no better classification
	ErrorCodeUpstream
	// ErrorCodeBatchFailed is a batch in which no item succeeded
	ErrorCodeBatchFailed
)

var statusOf = map[ErrorCode]int{
	ErrorCodeUnavailable:        http.StatusServiceUnavailable,
	ErrorCodeTooManyRequests:    http.StatusTooManyRequests,
	ErrorCodeUnauthorized:       http.StatusUnauthorized,
	ErrorCodeForbidden:          http.StatusForbidden,
	ErrorCodeValidation:         http.StatusBadRequest,
	ErrorCodeJSON:               http.StatusBadRequest,
	ErrorCodeNotFound:           http.StatusNotFound,
	ErrorCodeFailedPrecondition: http.StatusBadRequest,
	ErrorCodeBatchFailed:        http.StatusBadRequest,
}

// HTTPStatusCode maps c to its response status. Unmapped codes are 500
func HTTPStatusCode(c ErrorCode) int {
	if s, ok := statusOf[c]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// HTTPStatus is the response status for any error, foreign errors are 500
func HTTPStatus(err error) int { return HTTPStatusCode(CodeOf(err)) }
