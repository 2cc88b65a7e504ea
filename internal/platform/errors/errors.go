// Package errors is the project error type: a code for the transport, a message
// for the caller and an optional field, reason and details payload.
// Import it as perr
package errors

import (
	stderrs "errors"
	"fmt"
)

// Error carries the caller facing message separately from the wrapped cause
type Error struct {
	code    ErrorCode
	msg     string
	cause   error
	field   string
	reason  string
	details any
}

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.cause != nil:
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.cause }

func (e *Error) Code() ErrorCode { return e.code }

// Message is the caller facing text, without the cause
func (e *Error) Message() string { return e.msg }

// Field names the offending input field for validation errors
func (e *Error) Field() string { return e.field }

// Reason is a machine sub-reason finer than the code, "quota" or "auth" for example
func (e *Error) Reason() string { return e.reason }

// Details is a structured payload for the caller, the failed items of a batch for example
func (e *Error) Details() any { return e.details }

// Wire is the serialisable view of an Error
type Wire struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`
	Reason  string    `json:"reason,omitempty"`
	Details any       `json:"details,omitempty"`
}

// WireFrom renders any error. Foreign errors become Unknown with their text,
// nil is the zero Wire
func WireFrom(err error) Wire {
	if err == nil {
		return Wire{}
	}
	e, ok := As(err)
	if !ok {
		return Wire{Code: ErrorCodeUnknown, Message: err.Error()}
	}
	return Wire{Code: e.code, Message: e.msg, Field: e.field, Reason: e.reason, Details: e.details}
}

// As finds the outermost *Error in err's chain
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// CodeOf is err's code, Unknown for foreign errors
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode reports whether err carries code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// ReasonOf is err's sub-reason, empty for foreign errors
func ReasonOf(err error) string {
	if e, ok := As(err); ok {
		return e.reason
	}
	return ""
}

// Root is the innermost cause in err's chain
func Root(err error) error {
	for {
		next := stderrs.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}

// with copies the *Error in err and applies set to the copy. Foreign errors pass through
func with(err error, set func(*Error)) error {
	e, ok := As(err)
	if !ok {
		return err
	}
	c := *e
	set(&c)
	return &c
}

// WithField returns a copy of err naming the offending field
func WithField(err error, field string) error {
	return with(err, func(e *Error) { e.field = field })
}

// WithReason returns a copy of err carrying a sub-reason
func WithReason(err error, reason string) error {
	return with(err, func(e *Error) { e.reason = reason })
}

// WithDetails returns a copy of err carrying a payload for the caller
func WithDetails(err error, details any) error {
	return with(err, func(e *Error) { e.details = details })
}

func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

func Newf(code ErrorCode, format string, a ...any) error {
	return New(code, fmt.Sprintf(format, a...))
}

// Wrap keeps cause for logs and errors.Is while callers only see msg
func Wrap(cause error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, cause: cause}
}

func Wrapf(cause error, code ErrorCode, format string, a ...any) error {
	return Wrap(cause, code, fmt.Sprintf(format, a...))
}

func Validationf(format string, a ...any) error { return Newf(ErrorCodeValidation, format, a...) }
func JSONErrf(format string, a ...any) error    { return Newf(ErrorCodeJSON, format, a...) }
func PanicErrf(format string, a ...any) error   { return Newf(ErrorCodePanic, format, a...) }
func Internalf(format string, a ...any) error   { return Newf(ErrorCodeUnknown, format, a...) }
func Upstreamf(format string, a ...any) error   { return Newf(ErrorCodeUpstream, format, a...) }

func Unauthorizedf(format string, a ...any) error {
	return Newf(ErrorCodeUnauthorized, format, a...)
}

func Unavailablef(format string, a ...any) error {
	return Newf(ErrorCodeUnavailable, format, a...)
}

func TooManyRequestsf(format string, a ...any) error {
	return Newf(ErrorCodeTooManyRequests, format, a...)
}
