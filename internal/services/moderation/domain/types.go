// Package domain holds moderation types independent of transport and the remote platform
package domain

// SpamReason explains a spam verdict
type SpamReason string

const (
	// SpamNone is the reason on comments that are not spam
	SpamNone SpamReason = ""
	// SpamNormalization flags text that uses compatibility characters to dodge matching
	SpamNormalization SpamReason = "normalization"
	// SpamBlacklist flags text containing a blacklisted phrase and no whitelisted one
	SpamBlacklist SpamReason = "blacklist"
)

// Comment is one top-level comment annotated with its verdict
type Comment struct {
	CommentID             string     `json:"commentId" example:"UgzQ3m1vY8..."`
	Text                  string     `json:"text" example:"main di slot gacor hari ini"`
	AuthorName            string     `json:"authorName" example:"@someone"`
	AuthorProfileImageURL string     `json:"authorProfileImageUrl,omitempty"`
	LikeCount             int64      `json:"likeCount" example:"3"`
	PublishedAt           string     `json:"publishedAt" example:"2025-01-05T10:00:00Z"`
	IsSpam                bool       `json:"isSpam" example:"true"`
	SpamReason            SpamReason `json:"spamReason,omitempty" example:"blacklist"`
}

// ModerationResult is one classified page of comments
type ModerationResult struct {
	VideoID       string    `json:"videoId" example:"dQw4w9WgXcQ"`
	Comments      []Comment `json:"comments"`
	TotalComments int       `json:"totalComments" example:"100"`
	SpamComments  int       `json:"spamComments" example:"12"`
	// NextPageToken echoes the platform cursor when more comments exist
	NextPageToken string `json:"nextPageToken,omitempty"`
}

// FailureReason classifies why one delete did not happen
type FailureReason string

const (
	// FailurePermission means the caller may not delete this comment
	FailurePermission FailureReason = "permission"
	// FailureAuth means the platform rejected the bearer credential
	FailureAuth FailureReason = "auth"
	// FailureRateLimited means quota or rate limits were hit
	FailureRateLimited FailureReason = "rate_limited"
	// FailureNotFound means the comment no longer exists
	FailureNotFound FailureReason = "not_found"
	// FailureUnavailable means the request never got a response
	FailureUnavailable FailureReason = "unavailable"
	// FailureUpstream is any other remote failure
	FailureUpstream FailureReason = "upstream"
)

// DeletionOutcome is the result for exactly one requested id
type DeletionOutcome struct {
	CommentID string        `json:"commentId"`
	Deleted   bool          `json:"deleted"`
	Reason    FailureReason `json:"reason,omitempty"`
	Error     string        `json:"error,omitempty"`
}

// DeleteFailure is a failed outcome as reported to callers
type DeleteFailure struct {
	CommentID string        `json:"commentId" example:"b"`
	Reason    FailureReason `json:"reason" example:"permission"`
	Error     string        `json:"error" example:"You do not have permission to delete this comment"`
}

// DeleteReport aggregates one batch. Callers reconcile using SuccessfulDeletes only
type DeleteReport struct {
	BatchID           string            `json:"batchId"`
	Success           bool              `json:"success"`
	TotalProcessed    int               `json:"totalProcessed"`
	SuccessfulDeletes []string          `json:"successfulDeletes"`
	FailedDeletes     []DeleteFailure   `json:"failedDeletes"`
	Outcomes          []DeletionOutcome `json:"outcomes"`
}

// Report partitions outcomes, preserving request order in both lists
func Report(batchID string, outcomes []DeletionOutcome) DeleteReport {
	r := DeleteReport{
		BatchID:           batchID,
		TotalProcessed:    len(outcomes),
		SuccessfulDeletes: make([]string, 0, len(outcomes)),
		FailedDeletes:     []DeleteFailure{},
		Outcomes:          outcomes,
	}
	for _, o := range outcomes {
		if o.Deleted {
			r.SuccessfulDeletes = append(r.SuccessfulDeletes, o.CommentID)
			continue
		}
		r.FailedDeletes = append(r.FailedDeletes, DeleteFailure{CommentID: o.CommentID, Reason: o.Reason, Error: o.Error})
	}
	r.Success = len(r.SuccessfulDeletes) > 0
	return r
}
