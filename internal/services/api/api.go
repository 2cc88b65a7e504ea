// Package api provides the HTTP API for the application
package api

import (
	"time"

	"commentsweep/internal/platform/config"
	"commentsweep/internal/platform/logger"
	"commentsweep/internal/platform/metrics"
	phttp "commentsweep/internal/platform/net/http"

	"commentsweep/internal/modkit"
	"commentsweep/internal/modkit/httpkit"
	"commentsweep/internal/modkit/swaggerkit"

	metamod "commentsweep/internal/services/api/meta/module"
	moderationmod "commentsweep/internal/services/moderation/module"
)

// Options are the API options
type Options struct {
	// Config is the root view, modules add their own prefixes
	Config  config.Conf
	Logger  *logger.Logger
	Metrics *metrics.Registry

	// Moderation overrides values read from Config, mostly for tests
	Moderation moderationmod.Options

	ServiceName    string
	AllowedOrigins []string
	SlowRequest    time.Duration
	RequestTimeout time.Duration

	EnableSwagger  bool
	EnableProfiler bool
	EnableMetrics  bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg:     opt.Config,
		Metrics: opt.Metrics,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	// moderation first, meta reads its ports
	moderation := moderationmod.New(deps, opt.Moderation)
	meta := metamod.New(deps, opt.ServiceName, modkit.WithPorts(metamod.Ports{
		Keywords: modkit.MustPortsOf[moderationmod.KeywordPort](moderation),
		Remote:   modkit.MustPortsOf[moderationmod.KeyChecker](moderation),
	}))

	mods := []modkit.Module{meta, moderation}

	// request logger for every route, moderation resolves credentials in its own scope
	stack := append(httpkit.CommonStack(httpkit.StackOptions{
		AllowedOrigins: opt.AllowedOrigins,
		SlowRequest:    opt.SlowRequest,
		Timeout:        opt.RequestTimeout,
	}), httpkit.Auth(nil))

	// Swagger, profiler and metrics live outside the versioned scope
	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
	metrics.Mount(r, "/metrics", opt.Metrics, opt.EnableMetrics)

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, m := range mods {
			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
