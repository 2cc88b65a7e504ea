// Package service contains the moderation workflows: fetch and classify a page of
// comments, and delete a batch of them on behalf of the signed-in owner
package service

import (
	"context"
	"time"

	"commentsweep/internal/adapters/youtube"
	"commentsweep/internal/core/keywords"
	"commentsweep/internal/services/moderation/domain"

	"github.com/google/uuid"
)

// Service is the public service port
type Service interface{ domain.ServicePort }

// Remote is the slice of the platform client moderation needs
type Remote interface {
	HasAPIKey() bool
	ListCommentThreads(ctx context.Context, videoID, pageToken string) (youtube.CommentThreadList, error)
	DeleteComment(ctx context.Context, commentID, bearer string) error
}

// Options control service behavior
type Options struct {
	// Keywords is required, it is loaded on every fetch
	Keywords keywords.Source

	// Observer receives one event per operation, nil means none
	Observer Observer

	// Parallel caps in-flight deletes, 0 means all at once
	Parallel int
}

// Svc implements the service port
type Svc struct {
	remote   Remote
	keywords keywords.Source
	obs      Observer
	parallel int

	newID func() string
	now   func() time.Time
}

// New constructs the service
func New(remote Remote, opt Options) *Svc {
	if remote == nil {
		panic("moderation.Service requires a non nil Remote")
	}
	if opt.Keywords == nil {
		panic("moderation.Service requires a non nil keywords.Source")
	}
	obs := opt.Observer
	if obs == nil {
		obs = NopObserver{}
	}
	p := opt.Parallel
	if p < 0 {
		p = 0
	}
	return &Svc{
		remote:   remote,
		keywords: opt.Keywords,
		obs:      obs,
		parallel: p,
		newID:    func() string { return uuid.NewString() },
		now:      time.Now,
	}
}

var _ Service = (*Svc)(nil)
