// Package metrics owns the prometheus registry shared by the process
package metrics

import (
	"net/http"

	phttp "commentsweep/internal/platform/net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace prefixes every metric this service exports
const Namespace = "commentsweep"

// Registry is a private prometheus registry, tests get a fresh one each
type Registry struct {
	reg *prometheus.Registry
}

// New builds a registry with the go runtime and process collectors attached
func New() *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return &Registry{reg: reg}
}

// Factory returns a promauto factory bound to this registry
func (r *Registry) Factory() promauto.Factory {
	return promauto.With(r.reg)
}

// Gatherer exposes the registry for scraping and tests
func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }

// Handler serves the exposition format
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}

// Mount exposes Handler at path when enabled
func Mount(r phttp.Router, path string, reg *Registry, enabled bool) {
	if !enabled || reg == nil {
		return
	}
	r.Handle(path, reg.Handler())
}
