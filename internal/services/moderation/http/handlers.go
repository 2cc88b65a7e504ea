// Package http provides http transport for moderation
package http

import (
	stdhttp "net/http"

	"commentsweep/internal/modkit/httpkit"
	"commentsweep/internal/services/moderation/domain"
	svc "commentsweep/internal/services/moderation/service"
)

// Register mounts moderation endpoints on the given router.
// Deletes act with the credential the auth middleware put on the request,
// without it every delete is unauthenticated
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	registerDocs()

	httpkit.PostJSON[domain.FetchInput](r, "/comments", h.comments)
	httpkit.PostJSON[domain.DeleteInput](r, "/delete", h.delete)
}

type handlers struct {
	svc svc.Service
}

// swagger:route POST /moderation/comments Moderation moderationComments
// @Summary Fetch one page of comments and classify each one
// @Tags Moderation
// @Accept json
// @Produce json
// @Param payload body domain.FetchInput true "Video reference"
// @Success 200 {object} domain.ModerationResult "ok"
// @Failure 400 {object} ErrorResponse "invalid reference or comments disabled"
// @Failure 429 {object} ErrorResponse "quota exceeded"
// @Router /moderation/comments [post]
func (h *handlers) comments(r *stdhttp.Request, in domain.FetchInput) (any, error) {
	return h.svc.FetchAndClassify(r.Context(), in)
}

// swagger:route POST /moderation/delete Moderation moderationDelete
// @Summary Delete a batch of comments as the signed-in owner
// @Tags Moderation
// @Accept json
// @Produce json
// @Security bearerAuth
// @Param payload body domain.DeleteInput true "Comment ids"
// @Success 200 {object} domain.DeleteReport "at least one comment deleted"
// @Failure 400 {object} ErrorResponse "invalid input or every delete failed"
// @Failure 401 {object} ErrorResponse "missing or expired credential"
// @Router /moderation/delete [post]
func (h *handlers) delete(r *stdhttp.Request, in domain.DeleteInput) (any, error) {
	return h.svc.DeleteMany(r.Context(), in, httpkit.Credential(r))
}
