// @title         commentsweep API
// @version       0.1.0
// @description   Fetch, classify and bulk delete spam comments on YouTube videos

package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"commentsweep/internal/core/version"
	"commentsweep/internal/platform/config"
	"commentsweep/internal/platform/logger"
	"commentsweep/internal/platform/metrics"
	phttp "commentsweep/internal/platform/net/http"

	"commentsweep/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early
	opt := logger.FromEnv()
	opt.Component = "api"
	logger.Init(opt)
	l := logger.Get()

	bi := version.Info("commentsweep-api")
	l.Info().Str("version", bi.Version).Str("commit", bi.Commit).Msg("starting")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// http server (reads CORE_API_API_PORT and friends)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Logger:         l,
			Metrics:        metrics.New(),
			ServiceName:    bi.Service,
			AllowedOrigins: apiCfg.MayCSV("CORS_ORIGINS", nil),
			SlowRequest:    apiCfg.MayDuration("SLOW_REQUEST", 2*time.Second),
			RequestTimeout: apiCfg.MayDuration("REQUEST_TIMEOUT", 60*time.Second),
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
			EnableMetrics:  apiCfg.MayBool("METRICS", true),
		},
	)

	errc := make(chan error, 1)
	go func() { errc <- srv.Run(ctx) }()

	select {
	case err := <-errc:
		if err != nil {
			l.Panic().Err(err).Msg("http server stopped")
		}
	case <-ctx.Done():
		l.Info().Msg("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			l.Error().Err(err).Msg("graceful shutdown failed")
		}
	}
}
