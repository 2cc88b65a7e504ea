package net_test

import (
	"context"
	"testing"

	pnet "commentsweep/internal/platform/net"
)

func TestWithRequest_And_Getters(t *testing.T) {
	base := context.Background()

	t.Run("sets both ids", func(t *testing.T) {
		ctx := pnet.WithRequest(base, "req-123", "owner@example.com")

		if got := pnet.RequestID(ctx); got != "req-123" {
			t.Fatalf("RequestID got %q want %q", got, "req-123")
		}
		if got := pnet.Subject(ctx); got != "owner@example.com" {
			t.Fatalf("Subject got %q", got)
		}
	})

	t.Run("sets only request id", func(t *testing.T) {
		ctx := pnet.WithRequest(base, "r-only", "")

		if got := pnet.RequestID(ctx); got != "r-only" {
			t.Fatalf("RequestID got %q want %q", got, "r-only")
		}
		if got := pnet.Subject(ctx); got != "" {
			t.Fatalf("Subject got %q want empty", got)
		}
	})

	t.Run("no ids returns same ctx and empty getters", func(t *testing.T) {
		ctx := pnet.WithRequest(base, "", "")

		if ctx != base {
			t.Fatalf("expected ctx to be unchanged when both ids empty")
		}
		if got := pnet.RequestID(ctx); got != "" {
			t.Fatalf("RequestID got %q want empty", got)
		}
	})
}

func TestWithCredential(t *testing.T) {
	base := context.Background()
	if ctx := pnet.WithCredential(base, nil); ctx != base {
		t.Fatalf("nil credential should not change ctx")
	}
	if pnet.Credential(base) != nil {
		t.Fatalf("Credential on bare ctx should be nil")
	}
	type tok struct{ v string }
	ctx := pnet.WithCredential(base, tok{"ya29.token"})
	if got, ok := pnet.Credential(ctx).(tok); !ok || got.v != "ya29.token" {
		t.Fatalf("Credential got %#v", pnet.Credential(ctx))
	}
}
