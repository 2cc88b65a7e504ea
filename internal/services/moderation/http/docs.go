package http

import (
	"sync"

	"commentsweep/internal/modkit/swaggerkit"
)

var docsOnce sync.Once

func registerDocs() {
	docsOnce.Do(func() { swaggerkit.Register(moderationDocs) })
}

func ref(name string) map[string]any {
	return map[string]any{"$ref": "#/components/schemas/" + name}
}

func jsonBody(schema map[string]any) map[string]any {
	return map[string]any{"application/json": map[string]any{"schema": schema}}
}

func errResp(desc string) map[string]any {
	return map[string]any{"description": desc, "content": jsonBody(ref("ErrorResponse"))}
}

func moderationDocs(spec map[string]any) {
	str := map[string]any{"type": "string"}
	integer := map[string]any{"type": "integer"}
	boolean := map[string]any{"type": "boolean"}

	swaggerkit.AddSchema(spec, "FetchInput", map[string]any{
		"type":     "object",
		"required": []any{"url"},
		"properties": map[string]any{
			"url":        map[string]any{"type": "string", "example": "https://www.youtube.com/watch?v=dQw4w9WgXcQ"},
			"page_token": str,
		},
	})
	swaggerkit.AddSchema(spec, "Comment", map[string]any{
		"type": "object",
		"properties": map[string]any{
			"commentId":             str,
			"text":                  str,
			"authorName":            str,
			"authorProfileImageUrl": str,
			"likeCount":             integer,
			"publishedAt":           str,
			"isSpam":                boolean,
			"spamReason":            map[string]any{"type": "string", "enum": []any{"normalization", "blacklist"}},
		},
	})
	swaggerkit.AddSchema(spec, "ModerationResult", map[string]any{
		"type": "object",
		"properties": map[string]any{
			"videoId":       str,
			"comments":      map[string]any{"type": "array", "items": ref("Comment")},
			"totalComments": integer,
			"spamComments":  integer,
			"nextPageToken": str,
		},
	})
	swaggerkit.AddSchema(spec, "DeleteInput", map[string]any{
		"type":     "object",
		"required": []any{"comment_ids"},
		"properties": map[string]any{
			"comment_ids": map[string]any{"type": "array", "minItems": 1, "maxItems": 500, "items": str},
		},
	})
	failure := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"commentId": str,
			"reason": map[string]any{"type": "string", "enum": []any{
				"permission", "auth", "rate_limited", "not_found", "unavailable", "upstream",
			}},
			"error": str,
		},
	}
	swaggerkit.AddSchema(spec, "DeleteFailure", failure)
	swaggerkit.AddSchema(spec, "DeleteReport", map[string]any{
		"type": "object",
		"properties": map[string]any{
			"batchId":           str,
			"success":           boolean,
			"totalProcessed":    integer,
			"successfulDeletes": map[string]any{"type": "array", "items": str},
			"failedDeletes":     map[string]any{"type": "array", "items": ref("DeleteFailure")},
		},
	})

	swaggerkit.AddPath(spec, "/moderation/comments", "post", map[string]any{
		"tags":        []any{"Moderation"},
		"summary":     "Fetch one page of comments and classify each one",
		"operationId": "moderationComments",
		"requestBody": map[string]any{"required": true, "content": jsonBody(ref("FetchInput"))},
		"responses": map[string]any{
			"200": map[string]any{"description": "ok", "content": jsonBody(ref("ModerationResult"))},
			"400": errResp("invalid reference or comments disabled"),
			"429": errResp("quota exceeded"),
			"500": errResp("upstream or configuration failure"),
		},
	})
	swaggerkit.AddPath(spec, "/moderation/delete", "post", map[string]any{
		"tags":        []any{"Moderation"},
		"summary":     "Delete a batch of comments as the signed-in owner",
		"operationId": "moderationDelete",
		"security":    []any{map[string]any{"bearerAuth": []any{}}, map[string]any{"sessionCookie": []any{}}},
		"requestBody": map[string]any{"required": true, "content": jsonBody(ref("DeleteInput"))},
		"responses": map[string]any{
			"200": map[string]any{"description": "at least one comment deleted", "content": jsonBody(ref("DeleteReport"))},
			"400": errResp("invalid input or every delete failed"),
			"401": errResp("missing or expired credential"),
			"429": errResp("quota exceeded"),
		},
	})
}
