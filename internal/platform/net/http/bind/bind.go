// Package bind decodes and validates json request bodies into typed inputs
package bind

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	perr "commentsweep/internal/platform/errors"
	"commentsweep/internal/platform/logger"

	"github.com/go-playground/validator/v10"
)

// DefaultMaxBytes caps a body, a full delete batch is far below it
const DefaultMaxBytes int64 = 1 << 20

// JSONOptions tunes ParseJSON
type JSONOptions struct {
	MaxBytes     int64
	AllowUnknown bool
}

// ParseJSON decodes exactly one json value into T and validates it.
// Malformed or empty bodies are ErrorCodeJSON, failed rules are ErrorCodeValidation with the field set
func ParseJSON[T any](r *http.Request, opts ...JSONOptions) (T, error) {
	var zero T
	o := JSONOptions{MaxBytes: DefaultMaxBytes}
	if len(opts) > 0 {
		o = opts[0]
		if o.MaxBytes <= 0 {
			o.MaxBytes = DefaultMaxBytes
		}
	}

	body := http.MaxBytesReader(nil, r.Body, o.MaxBytes)
	defer func() { _ = body.Close() }()

	dec := json.NewDecoder(body)
	if !o.AllowUnknown {
		dec.DisallowUnknownFields()
	}

	var dst T
	if err := dec.Decode(&dst); err != nil {
		var tooBig *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return zero, perr.JSONErrf("empty body")
		case errors.As(err, &tooBig):
			return zero, perr.JSONErrf("body exceeds %d bytes", tooBig.Limit)
		}
		return zero, perr.JSONErrf("invalid JSON: %v", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return zero, perr.JSONErrf("unexpected trailing data")
	}

	if err := Shared().V.Struct(dst); err != nil {
		var inv *validator.InvalidValidationError
		if errors.As(err, &inv) {
			logger.C(r.Context()).Error().Err(err).Msg("validator misuse")
			return zero, perr.Internalf("validation error")
		}
		field, msg := FirstViolation(err)
		return zero, perr.WithField(perr.Validationf("%s", msg), field)
	}
	return dst, nil
}
