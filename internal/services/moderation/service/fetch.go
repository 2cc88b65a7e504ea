package service

import (
	"context"
	"errors"

	"commentsweep/internal/adapters/youtube"
	"commentsweep/internal/core/classify"
	"commentsweep/internal/core/videoref"
	perr "commentsweep/internal/platform/errors"
	"commentsweep/internal/services/moderation/domain"
)

// error reasons surfaced on the wire for fetch failures
const (
	ReasonInvalidReference = "invalid_reference"
	ReasonCommentsDisabled = "comments_disabled"
	ReasonRateLimited      = "rate_limited"
	ReasonUpstream         = "upstream"
	ReasonUnavailable      = "unavailable"
)

var errNoAPIKey = perr.Internalf("YouTube API key is not configured")

// FetchAndClassify reads one page of comment threads for the referenced video and
// classifies every top-level comment. Any failure aborts the whole page
func (s *Svc) FetchAndClassify(ctx context.Context, in domain.FetchInput) (domain.ModerationResult, error) {
	start := s.now()
	res, err := s.fetch(ctx, in)
	s.obs.FetchDone(ctx, FetchEvent{
		VideoID: res.VideoID,
		Total:   res.TotalComments,
		Spam:    res.SpamComments,
		Elapsed: s.now().Sub(start),
		Err:     err,
	})
	return res, err
}

func (s *Svc) fetch(ctx context.Context, in domain.FetchInput) (domain.ModerationResult, error) {
	videoID, err := videoref.Parse(in.URL)
	if err != nil {
		return domain.ModerationResult{}, perr.WithField(
			perr.WithReason(perr.Validationf("Invalid YouTube URL"), ReasonInvalidReference), "url")
	}
	if !s.remote.HasAPIKey() {
		return domain.ModerationResult{}, errNoAPIKey
	}

	kw, err := s.keywords.Load(ctx)
	if err != nil {
		return domain.ModerationResult{}, perr.Wrap(err, perr.ErrorCodeUnknown, "Failed to load spam keywords")
	}
	m := classify.Compile(kw)

	page, err := s.remote.ListCommentThreads(ctx, videoID, in.PageToken)
	if err != nil {
		return domain.ModerationResult{}, fetchError(err)
	}
	if page.Items == nil {
		return domain.ModerationResult{}, fetchError(youtube.ErrInvalidResponse)
	}

	items := *page.Items
	res := domain.ModerationResult{
		VideoID:       videoID,
		Comments:      make([]domain.Comment, 0, len(items)),
		NextPageToken: page.NextPageToken,
	}
	for _, it := range items {
		c := toComment(it, m)
		if c.IsSpam {
			res.SpamComments++
		}
		res.Comments = append(res.Comments, c)
	}
	res.TotalComments = len(res.Comments)
	return res, nil
}

func toComment(it youtube.CommentThread, m *classify.Matcher) domain.Comment {
	top := it.Snippet.TopLevelComment
	sn := top.Snippet
	id := it.ID
	if id == "" {
		id = top.ID
	}
	likes := sn.LikeCount
	if likes < 0 {
		likes = 0
	}
	v := m.Explain(sn.TextDisplay)
	return domain.Comment{
		CommentID:             id,
		Text:                  sn.TextDisplay,
		AuthorName:            sn.AuthorDisplayName,
		AuthorProfileImageURL: sn.AuthorProfileImageURL,
		LikeCount:             likes,
		PublishedAt:           sn.PublishedAt,
		IsSpam:                v.Spam,
		SpamReason:            domain.SpamReason(v.Reason),
	}
}

// fetchError maps a read failure onto the project error taxonomy
func fetchError(err error) error {
	switch {
	case errors.Is(err, youtube.ErrNoAPIKey):
		return errNoAPIKey
	case errors.Is(err, youtube.ErrInvalidResponse):
		return perr.Wrap(err, perr.ErrorCodeUnknown, "Invalid response format from YouTube API")
	case youtube.IsTransport(err):
		return perr.WithDetails(perr.WithReason(
			perr.Wrap(err, perr.ErrorCodeUpstream, "Error communicating with YouTube API"), ReasonUnavailable),
			perr.Root(err).Error())
	}

	ae, ok := youtube.AsAPIError(err)
	if !ok {
		return perr.Wrap(err, perr.ErrorCodeUnknown, "Failed to fetch comments")
	}
	switch {
	case ae.Reason == youtube.ReasonCommentsDisabled:
		return perr.WithReason(
			perr.Wrap(ae, perr.ErrorCodeFailedPrecondition, "Comments are disabled for this video"), ReasonCommentsDisabled)
	case isRateLimited(ae):
		return perr.WithReason(
			perr.Wrap(ae, perr.ErrorCodeTooManyRequests, "YouTube API quota exceeded. Please try again tomorrow."), ReasonRateLimited)
	}
	detail := ae.Message
	if detail == "" {
		detail = "Unknown error"
	}
	return perr.WithDetails(perr.WithReason(
		perr.Wrap(ae, perr.ErrorCodeUpstream, "Failed to fetch comments from YouTube"), ReasonUpstream), detail)
}

func isRateLimited(ae *youtube.APIError) bool {
	return ae.Reason == youtube.ReasonQuotaExceeded ||
		ae.Reason == youtube.ReasonRateLimitExceeded ||
		ae.Status == 429
}
