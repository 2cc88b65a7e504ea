package module

import (
	"context"

	"commentsweep/internal/core/keywords"
	"commentsweep/internal/services/moderation/domain"
)

// Ports holds the ports exposed by the moderation module
type Ports struct {
	Service  domain.ServicePort
	Keywords KeywordPort
	Remote   KeyChecker
}

// KeywordPort reports the active keyword lists without exposing them
type KeywordPort interface {
	KeywordSizes(ctx context.Context) (keywords.Sizes, error)
}

// KeyChecker reports whether the platform API key is configured
type KeyChecker interface {
	HasAPIKey() bool
}

type keywordPort struct{ src keywords.Source }

// KeywordSizes implements KeywordPort
func (k keywordPort) KeywordSizes(ctx context.Context) (keywords.Sizes, error) {
	kw, err := k.src.Load(ctx)
	if err != nil {
		return keywords.Sizes{}, err
	}
	return keywords.SizesOf(kw), nil
}
