// Package modkit is the module seam of the api: each feature is a Module
// mounted under its own prefix, exchanging ports with its siblings
package modkit

import (
	"net/http"

	"commentsweep/internal/modkit/httpkit"
)

// Module is a mountable feature
type Module interface {
	MountRoutes(r httpkit.Router)
	// Ports is what the module exports to siblings, read it with PortsOf
	Ports() any
	Name() string
}

// Base implements Module. Embed it and call Init from the constructor
type Base struct {
	name     string
	prefix   string
	mw       []func(http.Handler) http.Handler
	register func(httpkit.Router)
	ports    any
}

// Init adopts b and the route registration. Ports default to those received,
// modules that export something call SetPorts afterwards
func (m *Base) Init(b Built, register func(httpkit.Router)) {
	m.name, m.prefix, m.mw, m.ports = b.Name, b.Prefix, b.Mw, b.Ports
	m.register = register
}

func (m *Base) SetPorts(p any) { m.ports = p }

// MountRoutes opens the module scope on r and registers its routes there
func (m *Base) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.prefix, m.mw, func(sub httpkit.Router) {
		if m.register != nil {
			m.register(sub)
		}
	})
}

func (m *Base) Name() string   { return m.name }
func (m *Base) Prefix() string { return m.prefix }
func (m *Base) Ports() any     { return m.ports }
