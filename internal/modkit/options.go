package modkit

import "net/http"

// Option configures a module at construction
type Option func(*Built)

// Built is the resolved module configuration handed to Base.Init
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
	// Ports carries the sibling ports a module was given, its concrete type is
	// owned by the receiving module
	Ports any
}

// Build applies opts in order
func Build(opts ...Option) Built {
	var b Built
	for _, o := range opts {
		o(&b)
	}
	return b
}

func WithName(name string) Option { return func(b *Built) { b.Name = name } }

// WithPrefix is the path the module mounts under, "/moderation" for example
func WithPrefix(prefix string) Option { return func(b *Built) { b.Prefix = prefix } }

// WithMiddlewares appends middleware that only wraps this module's routes
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Built) { b.Mw = append(b.Mw[:len(b.Mw):len(b.Mw)], mw...) }
}

// WithPorts hands the module ports exported by a sibling
func WithPorts[T any](p T) Option { return func(b *Built) { b.Ports = p } }
