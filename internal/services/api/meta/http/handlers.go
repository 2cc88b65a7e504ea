// Package http serves the /meta endpoints: liveness, readiness, build info
// and the size of the active keyword lists
package http

import (
	"context"
	"net/http"
	"time"

	"commentsweep/internal/core/keywords"
	"commentsweep/internal/core/version"
	"commentsweep/internal/modkit/httpkit"
	perr "commentsweep/internal/platform/errors"
)

// KeywordSizer reports the active keyword lists, the moderation module provides it
type KeywordSizer interface {
	KeywordSizes(context.Context) (keywords.Sizes, error)
}

// KeyChecker reports whether the platform api key is configured
type KeyChecker interface {
	HasAPIKey() bool
}

// Deps feed the handlers. Keywords and Remote are optional, an unwired
// dependency is reported as skipped by /ready
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Keywords    KeywordSizer
	Remote      KeyChecker
}

const readyTimeout = 2 * time.Second

type handlers struct{ Deps }

// Register mounts the meta routes on r
func Register(r httpkit.Router, d Deps) {
	h := handlers{d}
	httpkit.GetJSON(r, "/health", h.health)
	httpkit.GetJSON(r, "/ready", h.ready)
	httpkit.GetJSON(r, "/version", h.version)
	httpkit.GetJSON(r, "/service", h.service)
	httpkit.GetJSON(r, "/keywords", h.keywords)
}

// HealthResponse is the liveness payload
// swagger:model
type HealthResponse struct {
	OK      bool   `json:"ok"      example:"true"`
	Service string `json:"service" example:"commentsweep-api"`
	Started string `json:"started" example:"2026-10-01T09:00:00Z"`
	Now     string `json:"now"     example:"2026-10-01T09:05:00Z"`
}

// ReadyCheck is the outcome of one dependency probe: ok, fail or skipped
type ReadyCheck struct {
	Name   string `json:"name"            example:"keywords"`
	Status string `json:"status"          example:"ok"`
	Error  string `json:"error,omitempty" example:"invalid keyword document"`
}

// ReadyResponse is ok when every probe passed, fail when any failed and degraded otherwise
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"`
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-10-01T09:05:00Z"`
}

// ServiceResponse is the process identity and uptime in seconds
type ServiceResponse struct {
	Name    string `json:"name"    example:"commentsweep-api"`
	Started string `json:"started" example:"2026-10-01T09:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// KeywordsResponse reports list sizes only, the entries stay private
type KeywordsResponse struct {
	Blacklist int               `json:"blacklist" example:"42"`
	Whitelist int               `json:"whitelist" example:"3"`
	Build     version.BuildInfo `json:"build"`
}

func stamp(t time.Time) string { return t.UTC().Format(time.RFC3339) }

// swagger:route GET /meta/health Meta metaHealth
// @Summary Liveness
// @Tags Meta
// @Produce json
// @Success 200 type HealthResponse ok
// @Router /meta/health [get]
func (h handlers) health(*http.Request) (any, error) {
	return HealthResponse{OK: true, Service: h.ServiceName, Started: stamp(h.StartedAt), Now: stamp(time.Now())}, nil
}

// probe runs fn as the check called name. A nil fn means the dependency is not wired
func probe(name string, fn func() error) ReadyCheck {
	c := ReadyCheck{Name: name, Status: "skipped"}
	if fn == nil {
		return c
	}
	c.Status = "ok"
	if err := fn(); err != nil {
		c.Status, c.Error = "fail", err.Error()
	}
	return c
}

// swagger:route GET /meta/ready Meta metaReady
// @Summary Readiness with one check per dependency
// @Tags Meta
// @Produce json
// @Success 200 type ReadyResponse ok
// @Router /meta/ready [get]
func (h handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	var kw, key func() error
	if h.Keywords != nil {
		kw = func() error { _, err := h.Keywords.KeywordSizes(ctx); return err }
	}
	if h.Remote != nil {
		key = func() error {
			if !h.Remote.HasAPIKey() {
				return perr.Internalf("not configured")
			}
			return nil
		}
	}
	checks := []ReadyCheck{probe("keywords", kw), probe("youtube_api_key", key)}

	overall := "ok"
	for _, c := range checks {
		switch {
		case c.Status == "fail":
			overall = "fail"
		case c.Status != "ok" && overall == "ok":
			overall = "degraded"
		}
	}
	return ReadyResponse{Status: overall, Checks: checks, Now: stamp(time.Now())}, nil
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build info
// @Tags Meta
// @Produce json
// @Success 200 type version.BuildInfo ok
// @Router /meta/version [get]
func (h handlers) version(*http.Request) (any, error) {
	return version.Info(h.ServiceName), nil
}

// swagger:route GET /meta/service Meta metaService
// @Summary Service identity and uptime
// @Tags Meta
// @Produce json
// @Success 200 type ServiceResponse ok
// @Router /meta/service [get]
func (h handlers) service(*http.Request) (any, error) {
	return ServiceResponse{
		Name:    h.ServiceName,
		Started: stamp(h.StartedAt),
		Uptime:  int64(time.Since(h.StartedAt) / time.Second),
	}, nil
}

// swagger:route GET /meta/keywords Meta metaKeywords
// @Summary Active keyword list sizes
// @Tags Meta
// @Produce json
// @Success 200 type KeywordsResponse ok
// @Router /meta/keywords [get]
func (h handlers) keywords(r *http.Request) (any, error) {
	if h.Keywords == nil {
		return nil, perr.Unavailablef("keyword source not wired")
	}
	sizes, err := h.Keywords.KeywordSizes(r.Context())
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "Failed to load spam keywords")
	}
	return KeywordsResponse{Blacklist: sizes.Blacklist, Whitelist: sizes.Whitelist, Build: version.Info(h.ServiceName)}, nil
}
