package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"commentsweep/internal/adapters/credential"
	"commentsweep/internal/adapters/youtube"
	perr "commentsweep/internal/platform/errors"
	"commentsweep/internal/services/moderation/domain"

	"golang.org/x/sync/errgroup"
)

// error reasons surfaced on the wire for delete failures
const (
	ReasonInvalidInput      = "invalid_input"
	ReasonMissingCredential = "missing_credential"
	ReasonExpired           = "expired"
)

const (
	msgPermission  = "You do not have permission to delete this comment"
	msgAuth        = "Authentication error. Please sign in again."
	msgQuota       = "YouTube API quota exceeded. Please try again tomorrow."
	msgNotFound    = "Comment not found"
	msgUnavailable = "Error communicating with YouTube API"
	msgBatchFailed = "Failed to delete comments"
)

// DeleteMany deletes every id concurrently and reports one outcome per id in request order.
// A single failure never cancels its siblings. When nothing was deleted the report is
// returned together with an error built from the first failure
func (s *Svc) DeleteMany(ctx context.Context, in domain.DeleteInput, cred credential.Credential) (domain.DeleteReport, error) {
	start := s.now()
	rep, err := s.deleteMany(ctx, in, cred)
	s.obs.DeleteDone(ctx, DeleteEvent{
		BatchID:  rep.BatchID,
		Outcomes: rep.Outcomes,
		Elapsed:  s.now().Sub(start),
		Err:      err,
	})
	return rep, err
}

func (s *Svc) deleteMany(ctx context.Context, in domain.DeleteInput, cred credential.Credential) (domain.DeleteReport, error) {
	ids := in.CommentIDs
	if len(ids) == 0 {
		return domain.DeleteReport{}, perr.WithField(
			perr.WithReason(perr.Validationf("Comment IDs are required"), ReasonInvalidInput), "comment_ids")
	}
	for i, id := range ids {
		if strings.TrimSpace(id) == "" {
			return domain.DeleteReport{}, perr.WithField(
				perr.WithReason(perr.Validationf("comment_ids[%d] must not be blank", i), ReasonInvalidInput), "comment_ids")
		}
	}

	switch {
	case cred.State == credential.StateExpired:
		return domain.DeleteReport{}, perr.WithReason(
			perr.Unauthorizedf("Session expired. Please sign in again."), ReasonExpired)
	case !cred.Usable():
		return domain.DeleteReport{}, perr.WithReason(perr.Unauthorizedf("Unauthorized"), ReasonMissingCredential)
	}
	if !s.remote.HasAPIKey() {
		return domain.DeleteReport{}, errNoAPIKey
	}

	outcomes := make([]domain.DeletionOutcome, len(ids))
	var g errgroup.Group
	if s.parallel > 0 {
		g.SetLimit(s.parallel)
	}
	for i, id := range ids {
		g.Go(func() error {
			outcomes[i] = s.deleteOne(ctx, id, cred.Token)
			return nil
		})
	}
	_ = g.Wait()

	rep := domain.Report(s.newID(), outcomes)
	if !rep.Success {
		return rep, batchError(rep.FailedDeletes)
	}
	return rep, nil
}

func (s *Svc) deleteOne(ctx context.Context, id, token string) domain.DeletionOutcome {
	err := s.remote.DeleteComment(ctx, id, token)
	if err == nil {
		return domain.DeletionOutcome{CommentID: id, Deleted: true}
	}
	reason, msg := failureOf(err)
	return domain.DeletionOutcome{CommentID: id, Reason: reason, Error: msg}
}

// failureOf derives the per-id reason, reason codes first then the status
func failureOf(err error) (domain.FailureReason, string) {
	if youtube.IsTransport(err) {
		return domain.FailureUnavailable, msgUnavailable
	}
	ae, ok := youtube.AsAPIError(err)
	if !ok {
		if errors.Is(err, youtube.ErrNoAPIKey) {
			return domain.FailureUpstream, "YouTube API key is not configured"
		}
		return domain.FailureUpstream, err.Error()
	}

	switch ae.Reason {
	case youtube.ReasonForbidden:
		return domain.FailurePermission, msgPermission
	case youtube.ReasonAuthError:
		return domain.FailureAuth, msgAuth
	case youtube.ReasonQuotaExceeded, youtube.ReasonRateLimitExceeded:
		return domain.FailureRateLimited, orDefault(ae.Message, msgQuota)
	}
	switch ae.Status {
	case 401:
		return domain.FailureAuth, msgAuth
	case 403:
		return domain.FailurePermission, msgPermission
	case 404:
		return domain.FailureNotFound, orDefault(ae.Message, msgNotFound)
	case 429:
		return domain.FailureRateLimited, orDefault(ae.Message, msgQuota)
	}
	return domain.FailureUpstream, orDefault(ae.Message, fmt.Sprintf("Failed to delete comment (status %d)", ae.Status))
}

// batchError surfaces the first failure in request order and carries the full list
func batchError(failed []domain.DeleteFailure) error {
	if len(failed) == 0 {
		return perr.New(perr.ErrorCodeBatchFailed, msgBatchFailed)
	}
	first := failed[0]
	code := perr.ErrorCodeBatchFailed
	switch first.Reason {
	case domain.FailureAuth:
		code = perr.ErrorCodeUnauthorized
	case domain.FailureRateLimited:
		code = perr.ErrorCodeTooManyRequests
	}
	return perr.WithDetails(
		perr.WithReason(perr.New(code, orDefault(first.Error, msgBatchFailed)), string(first.Reason)),
		failed)
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
