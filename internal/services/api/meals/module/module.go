// Package module wires meals into the API using modkit
package module

import (
	"net/http"

	modkit "mealboard/internal/modkit"
	"mealboard/internal/modkit/httpkit"

	hdom "mealboard/internal/services/api/households/domain"
	mhttp "mealboard/internal/services/api/meals/http"
	mrepo "mealboard/internal/services/api/meals/repo"
	msvc "mealboard/internal/services/api/meals/service"
)

// Module implements the meals API module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws      []func(http.Handler) http.Handler
	ports    any
	register func(httpkit.Router)

	svc msvc.Service
}

// Ports declares the injected cross module ports this module requires
type Ports struct {
	Membership hdom.MembershipPort
}

// New constructs the meals module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meals"),
		modkit.WithPrefix("/meals"),
	}, opts...)...)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}
	if injected.Membership == nil {
		panic("meals API module requires Membership port (from households)")
	}

	svc := msvc.New(deps.PG, mrepo.NewPG(), injected.Membership)

	m := &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		svc:    svc,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		mhttp.Register(r, m.svc)
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

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return m.name }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return m.prefix }
