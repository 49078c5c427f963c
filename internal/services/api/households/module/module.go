// Package module wires households into the API using modkit
package module

import (
	"net/http"

	modkit "mealboard/internal/modkit"
	"mealboard/internal/modkit/httpkit"

	hhttp "mealboard/internal/services/api/households/http"
	hrepo "mealboard/internal/services/api/households/repo"
	hsvc "mealboard/internal/services/api/households/service"
)

// Module implements the households API module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws      []func(http.Handler) http.Handler
	ports    any
	register func(httpkit.Router)

	svc hsvc.Service
}

// New constructs the households module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("households"),
		modkit.WithPrefix("/households"),
	}, opts...)...)

	svc := hsvc.New(deps.PG, hrepo.NewPG())

	m := &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		svc:    svc,
	}
	m.ports = Ports{Membership: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		hhttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return m.name }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return m.prefix }
