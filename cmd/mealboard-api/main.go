// @title         Mealboard API
// @version       0.1.0
// @description   Household meal planning with slot shuffle

package main

import (
	"context"

	"mealboard/internal/platform/config"
	"mealboard/internal/platform/logger"
	phttp "mealboard/internal/platform/net/http"
	"mealboard/internal/platform/store"

	"mealboard/internal/services/api"
	"mealboard/internal/services/ident"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	pgCfg := root.Prefix("SERVICE_PGSQL_") // pgCfg lives under SERVICE_PGSQL_*

	// bring up logging early
	l := logger.Get()

	// open the platform store
	st, err := store.Open(
		context.Background(),
		store.Config{
			AppName: "mealboard",
			PG: store.PGConfig{
				Enabled:     true,
				URL:         pgCfg.MustString("DBURL"),
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", true),
			},
		},
		store.WithLogger(*logger.Get()),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// bearer token verifier (CORE_API_JWT_SECRET)
	verifier, err := ident.NewVerifier(ident.Config{
		Secret: apiCfg.MustString("JWT_SECRET"),
		Issuer: apiCfg.MayString("JWT_ISSUER", ""),
	})
	if err != nil {
		l.Panic().Err(err).Msg("ident.NewVerifier failed")
	}

	// http server (reads CORE_API_PORT / CORE_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:        apiCfg,
			Store:         st,
			Logger:        l,
			Auth:          authPort(verifier),
			EnableSwagger: apiCfg.MayBool("SWAGGER", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
