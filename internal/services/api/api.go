// Package api provides the HTTP API for the application
package api

import (
	"time"

	"creatorscout/internal/adapters/classifier"
	"creatorscout/internal/adapters/scraper"
	"creatorscout/internal/platform/config"
	"creatorscout/internal/platform/logger"
	phttp "creatorscout/internal/platform/net/http"
	"creatorscout/internal/platform/net/middleware"
	"creatorscout/internal/platform/store"

	"creatorscout/internal/modkit"
	"creatorscout/internal/modkit/httpkit"
	"creatorscout/internal/modkit/module"
	"creatorscout/internal/modkit/swaggerkit"

	metamod "creatorscout/internal/services/api/meta/module"
	discoverymod "creatorscout/internal/services/discovery/module"
	harvestmod "creatorscout/internal/services/harvest/module"
	rankingmod "creatorscout/internal/services/ranking/module"
	screeningdomain "creatorscout/internal/services/screening/domain"
	screeningmod "creatorscout/internal/services/screening/module"
)

// Options are the API options
// Config is the root view, modules add their own prefixes
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool

	// Scraper and Classifier override the clients built from config
	Scraper    *scraper.Client
	Classifier screeningdomain.Classifier
}

// Modules builds every stage module over one shared scraper and classifier
// the pipeline CLI uses the same set through their ports
// Stages that call the scraper run one request at a time so the shared pacer holds
func Modules(opt Options) []module.Module {
	deps := modkit.Deps{
		Cfg:     opt.Config,
		PG:      opt.Store.PG,
		Objects: opt.Store.Objects,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	sc := opt.Scraper
	if sc == nil {
		sc = scraper.NewClient(scraper.FromConfig(opt.Config))
	}
	cls := opt.Classifier
	if cls == nil {
		cls = classifier.NewClient(classifier.FromConfig(opt.Config))
	}

	apiCfg := opt.Config.Prefix("CORE_API_")
	serial := modkit.WithMiddlewares(middleware.Throttle(
		apiCfg.MayInt("STAGE_CONCURRENCY", 1),
		apiCfg.MayInt("STAGE_BACKLOG", 4),
		apiCfg.MayDuration("STAGE_BACKLOG_WAIT", time.Minute),
	))

	return []module.Module{
		metamod.New(deps),
		discoverymod.New(deps, serial, modkit.WithPorts(discoverymod.Upstream{Following: sc})),
		screeningmod.New(deps, serial, modkit.WithPorts(screeningmod.Upstream{
			Posts:      sc,
			Profiles:   sc,
			Classifier: cls,
		})),
		harvestmod.New(deps, serial, modkit.WithPorts(harvestmod.Upstream{Reels: sc})),
		rankingmod.New(deps),
	}
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) []module.Module {
	mods := Modules(opt)

	apiCfg := opt.Config.Prefix("CORE_API_")
	stack := httpkit.CommonStack(httpkit.StackOptions{
		Timeout:     apiCfg.MayDuration("REQUEST_TIMEOUT", 10*time.Minute),
		SlowLog:     apiCfg.MayDuration("SLOW_LOG", 30*time.Second),
		CORSOrigins: apiCfg.MayCSV("CORS_ORIGINS", nil),
	})

	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		swaggerkit.Mount(r, opt.EnableSwagger, apiCfg.MayString("DOCS_TITLE_SUFFIX", ""))
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			module.Register(m)
			m.MountRoutes(api)
		}
	})
	return mods
}
