// Package module mounts the meta endpoints under /meta
package module

import (
	"time"

	modkit "commentsweep/internal/modkit"
	"commentsweep/internal/modkit/httpkit"

	metahttp "commentsweep/internal/services/api/meta/http"
)

// Ports are what meta reads from sibling modules. Both fields are optional
type Ports struct {
	Keywords metahttp.KeywordSizer
	Remote   metahttp.KeyChecker
}

// Module implements the modkit.Module interface
type Module struct {
	modkit.Base

	deps        modkit.Deps
	serviceName string
	startedAt   time.Time
}

// New constructs a meta module with the provided dependencies and options.
// Inject sibling ports with modkit.WithPorts(Ports{...})
func New(deps modkit.Deps, serviceName string, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	if serviceName == "" {
		serviceName = "commentsweep-api"
	}
	m := &Module{
		deps:        deps,
		serviceName: serviceName,
		startedAt:   time.Now(),
	}

	var in Ports
	if p, ok := b.Ports.(Ports); ok {
		in = p
	}
	m.Init(b, func(r httpkit.Router) {
		metahttp.Register(r, metahttp.Deps{
			ServiceName: m.serviceName,
			StartedAt:   m.startedAt,
			Keywords:    in.Keywords,
			Remote:      in.Remote,
		})
	})
	// meta exports nothing
	m.SetPorts(nil)
	return m
}
