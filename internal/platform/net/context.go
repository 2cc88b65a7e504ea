// Package net provides utilities for working with request contexts
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// ctxKey is an unexported key type for context values
type ctxKey string

const (
	keySubject    ctxKey = "subject"
	keyCredential ctxKey = "credential"
)

// WithRequest annotates context with common request scoped ids
func WithRequest(ctx context.Context, reqID, subject string) context.Context {
	if reqID != "" {
		// set chi RequestID so chimw.GetReqID can retrieve it
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	if subject != "" {
		ctx = context.WithValue(ctx, keySubject, subject)
	}
	return ctx
}

// WithCredential stores the credential resolved for this request. Its concrete type
// belongs to the auth port, handlers read it back through httpkit
func WithCredential(ctx context.Context, cred any) context.Context {
	if cred != nil {
		ctx = context.WithValue(ctx, keyCredential, cred)
	}
	return ctx
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}

// Subject returns the signed-in account on the context if present
func Subject(ctx context.Context) string {
	if v, ok := ctx.Value(keySubject).(string); ok {
		return v
	}
	return ""
}

// Credential returns the credential on the context, nil when none was stored
func Credential(ctx context.Context) any {
	return ctx.Value(keyCredential)
}
