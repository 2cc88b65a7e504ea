// Package module wires moderation into the API using modkit
package module

import (
	"commentsweep/internal/adapters/credential"
	"commentsweep/internal/adapters/session"
	"commentsweep/internal/adapters/youtube"
	"commentsweep/internal/core/keywords"
	"commentsweep/internal/modkit"
	"commentsweep/internal/modkit/httpkit"
	modhttp "commentsweep/internal/services/moderation/http"
	"commentsweep/internal/services/moderation/service"
)

// Module implements the modkit.Module interface
type Module struct {
	modkit.Base

	deps modkit.Deps
	svc  *service.Svc
}

// New constructs the moderation module. Config is read from deps.Cfg, then non-zero
// overrides are applied
func New(deps modkit.Deps, overrides Options, opts ...modkit.Option) *Module {
	o := merge(FromConfig(deps.Cfg), overrides)
	supplier := Supplier(o)
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("moderation"),
		modkit.WithPrefix("/moderation"),
		// resolved once per request, the delete handler reads it back from the context
		modkit.WithMiddlewares(httpkit.Auth(httpkit.CredentialPort(supplier))),
	}, opts...)...)

	remote := o.Remote
	if remote == nil {
		remote = NewClient(o)
	}
	kw := o.Keywords
	if kw == nil {
		kw = keywords.FileSource{Path: o.KeywordsPath}
	}

	obs := service.Observers{service.LogObserver{}}
	if deps.Metrics != nil {
		obs = append(obs, service.NewPromObserver(deps.Metrics))
	}

	m := &Module{
		deps: deps,
		svc: service.New(remote, service.Options{
			Keywords: kw,
			Observer: obs,
			Parallel: o.DeleteParallel,
		}),
	}
	m.Init(b, func(r httpkit.Router) {
		modhttp.Register(r, m.svc)
	})
	if b.Ports == nil {
		m.SetPorts(Ports{
			Service:  m.svc,
			Keywords: keywordPort{src: kw},
			Remote:   remote,
		})
	}
	return m
}

// Supplier is the credential chain requests are resolved with: a bearer header wins,
// then the session cookie
func Supplier(o Options) credential.Supplier {
	return credential.Chain{
		credential.Header{},
		session.New(session.Options{
			Secret:     []byte(o.SessionSecret),
			CookieName: o.SessionCookie,
		}),
	}
}

// NewClient builds the platform client from module options
func NewClient(o Options) *youtube.Client {
	retry := youtube.RetryOptions{
		Max:     o.RetryMax,
		WaitMin: o.RetryWaitMin,
		WaitMax: o.RetryWaitMax,
	}
	if o.RetryMax > 0 {
		retry.Policy = youtube.TransientPolicy
	}
	return youtube.NewClient(youtube.Options{
		BaseURL:     o.BaseURL,
		APIKey:      o.APIKey,
		CallTimeout: o.CallTimeout,
		Retry:       retry,
	})
}
