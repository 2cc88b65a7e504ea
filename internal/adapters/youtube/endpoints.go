package youtube

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"

	perr "commentsweep/internal/platform/errors"
)

// PageSize is the largest page the platform serves for comment threads
const PageSize = 100

// ListCommentThreads fetches one page of top-level comment threads for videoID.
// pageToken is optional
func (c *Client) ListCommentThreads(ctx context.Context, videoID, pageToken string) (CommentThreadList, error) {
	q := url.Values{}
	q.Set("part", "snippet")
	q.Set("videoId", videoID)
	q.Set("maxResults", strconv.Itoa(PageSize))
	if pageToken != "" {
		q.Set("pageToken", pageToken)
	}

	var out CommentThreadList
	err := c.do(ctx, http.MethodGet, "/youtube/v3/commentThreads", q, "", func(r io.Reader) error {
		if err := json.NewDecoder(r).Decode(&out); err != nil {
			return perr.Wrap(ErrInvalidResponse, perr.ErrorCodeUnknown, err.Error())
		}
		if out.Items == nil {
			return ErrInvalidResponse
		}
		return nil
	})
	if err != nil {
		return CommentThreadList{}, err
	}
	return out, nil
}

// DeleteComment removes one comment on behalf of the holder of bearer
func (c *Client) DeleteComment(ctx context.Context, commentID, bearer string) error {
	q := url.Values{}
	q.Set("id", commentID)
	return c.do(ctx, http.MethodDelete, "/youtube/v3/comments", q, bearer, nil)
}
