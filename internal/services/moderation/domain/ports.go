package domain

import (
	"context"

	"commentsweep/internal/adapters/credential"
)

// ServicePort is the interface implemented by the moderation service
type ServicePort interface {
	FetchAndClassify(ctx context.Context, in FetchInput) (ModerationResult, error)
	DeleteMany(ctx context.Context, in DeleteInput, cred credential.Credential) (DeleteReport, error)
}
