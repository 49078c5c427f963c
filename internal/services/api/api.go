// Package api provides the HTTP API for the application
package api

import (
	"mealboard/internal/platform/config"
	"mealboard/internal/platform/logger"
	phttp "mealboard/internal/platform/net/http"
	"mealboard/internal/platform/net/middleware"
	"mealboard/internal/platform/store"

	"mealboard/internal/modkit"
	"mealboard/internal/modkit/httpkit"
	"mealboard/internal/modkit/swaggerkit"

	householdsmod "mealboard/internal/services/api/households/module"
	mealsmod "mealboard/internal/services/api/meals/module"
	slotsmod "mealboard/internal/services/api/slots/module"
)

// Options are the API options
type Options struct {
	Config        config.Conf
	Store         *store.Store
	Logger        *logger.Logger
	Auth          middleware.AuthPort
	EnableSwagger bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// liveness sits on the root mux, outside auth and versioning
	r.Use(middleware.Heartbeat("/health"))

	// shared deps for modules
	deps := modkit.Deps{
		Log: *opt.Logger,
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}

	// households owns memberships, build it first and extract the port
	households := householdsmod.New(deps)
	membership := modkit.MustPortsOf[householdsmod.Ports](households).Membership

	mods := []modkit.Module{
		households,
		mealsmod.New(deps, modkit.WithPorts(mealsmod.Ports{Membership: membership})),
		slotsmod.New(deps, modkit.WithPorts(slotsmod.Ports{Membership: membership})),
	}

	// every route behind bearer auth, versioned under /api/v1
	stack := append(httpkit.CommonStack(), httpkit.Auth(opt.Auth))

	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		swaggerkit.Mount(r, opt.EnableSwagger)

		for _, m := range mods {
			m.MountRoutes(api)
		}
	})
}
