// @title         creatorscout API
// @version       0.1.0
// @description   Creator discovery pipeline: seed, screen, harvest and rank

package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"creatorscout/internal/modkit/repokit"
	"creatorscout/internal/platform/config"
	"creatorscout/internal/platform/logger"
	phttp "creatorscout/internal/platform/net/http"
	"creatorscout/internal/platform/store"

	"creatorscout/internal/services/api"

	"github.com/joho/godotenv"
)

func main() {
	// a missing .env is fine, the environment may already be populated
	_ = godotenv.Load()

	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	objCfg := root.Prefix("SERVICE_OBJECTS_")

	// bring up logging early
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// postgres is only opened when the object store lives there or a DBURL is set
	backend := strings.ToLower(objCfg.MayEnum("BACKEND", store.BackendMemory, store.BackendMemory, store.BackendPG))
	dburl := pgCfg.MayString("DBURL", "")

	st, err := store.Open(
		ctx,
		store.Config{
			AppName: "creatorscout-api",
			PG: store.PGConfig{
				Enabled:     backend == store.BackendPG || dburl != "",
				URL:         dburl,
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", false),
			},
			Objects: store.ObjectsConfig{Backend: backend},
		},
		store.WithLogger(*l),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	repokit.MustGuard(ctx, st)

	// reads CORE_API_PORT and the server timeouts
	srv := phttp.NewServer(apiCfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Store:          st,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
	l.Info().Msg("http server drained")
}
