// Command creatorscout-pipeline runs pipeline stages without the HTTP surface
//
// Stages exchange data through the object store, so running stages in separate
// invocations needs SERVICE_OBJECTS_BACKEND=pg; -stage all works on any backend
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"creatorscout/internal/modkit/module"
	"creatorscout/internal/modkit/repokit"
	"creatorscout/internal/platform/config"
	perr "creatorscout/internal/platform/errors"
	"creatorscout/internal/platform/logger"
	"creatorscout/internal/platform/store"

	"creatorscout/internal/services/api"
	discoverydom "creatorscout/internal/services/discovery/domain"
	harvestdom "creatorscout/internal/services/harvest/domain"
	rankingdom "creatorscout/internal/services/ranking/domain"
	screeningdom "creatorscout/internal/services/screening/domain"

	"github.com/joho/godotenv"
)

type ports struct {
	discovery discoverydom.ServicePort
	screening screeningdom.ServicePort
	harvest   harvestdom.ServicePort
	ranking   rankingdom.ServicePort
}

type flags struct {
	stage     string
	username  string
	usernames []string
	niche     string
	level     string
	followers string
	k         int
}

func main() { os.Exit(pipeline()) }

// pipeline runs one invocation and returns the process exit code
func pipeline() int {
	var (
		fStage     = flag.String("stage", "all", "seed | seeds | filter | harvest | rank | aggregate | all")
		fUsername  = flag.String("username", "", "seed creator for seed, seeds and all")
		fUsernames = flag.String("usernames", "", "comma separated creators")
		fNiche     = flag.String("niche", "", "niche the classifier checks against")
		fLevel     = flag.String("level", "", "classifier strictness level")
		fFollowers = flag.String("followers", "", "inclusive follower cap for filter")
		fK         = flag.Int("k", 0, "number of videos kept by aggregate, 0 means the per creator default")
		fConfig    = flag.String("config", "", "optional YAML job file, explicit flags override it")
	)
	flag.Parse()

	// a missing .env is fine, the environment may already be populated
	_ = godotenv.Load()

	root := config.New()
	l := logger.Get()

	f := flags{
		stage:     strings.ToLower(strings.TrimSpace(*fStage)),
		username:  *fUsername,
		usernames: splitCSV(*fUsernames),
		niche:     *fNiche,
		level:     *fLevel,
		followers: *fFollowers,
		k:         *fK,
	}
	if *fConfig != "" {
		base, err := loadJob(*fConfig)
		if err != nil {
			l.Error().Err(err).Msg("load job")
			return 2
		}
		f = overlay(base, f, setFlags(flag.CommandLine))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStore(ctx, root, l)
	if err != nil {
		l.Error().Err(err).Msg("store.Open failed")
		return 1
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	if err := repokit.Guard(ctx, st); err != nil {
		l.Error().Err(err).Msg("store not ready")
		return 1
	}

	mods := api.Modules(api.Options{Config: root, Store: st, Logger: l})
	var p ports
	for _, m := range mods {
		switch m.Name() {
		case "discovery":
			p.discovery = module.MustPortsOf[discoverydom.ServicePort](m)
		case "screening":
			p.screening = module.MustPortsOf[screeningdom.ServicePort](m)
		case "harvest":
			p.harvest = module.MustPortsOf[harvestdom.ServicePort](m)
		case "ranking":
			p.ranking = module.MustPortsOf[rankingdom.ServicePort](m)
		}
	}

	out, err := run(ctx, p, f)
	if err != nil {
		l.Error().Err(err).Str("stage", f.stage).Int("status", perr.HTTPStatus(err)).Msg("stage failed")
		return 1
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		l.Error().Err(err).Msg("write result")
		return 1
	}
	return 0
}

func run(ctx context.Context, p ports, f flags) (any, error) {
	switch f.stage {
	case "seed":
		return p.discovery.Seed(ctx, discoverydom.SeedInput{Username: f.username})
	case "seeds":
		return p.discovery.Seeds(ctx, f.username)
	case "filter":
		c, err := criteria(f, f.usernames)
		if err != nil {
			return nil, err
		}
		return p.screening.Filter(ctx, c)
	case "harvest":
		return p.harvest.Harvest(ctx, harvestdom.HarvestInput{Usernames: f.usernames})
	case "rank":
		return p.ranking.RankCreators(ctx, f.usernames)
	case "aggregate":
		return p.ranking.Aggregate(ctx, f.usernames, f.k)
	case "all":
		return runAll(ctx, p, f)
	}
	return nil, perr.Validationf("unknown stage %q", f.stage)
}

// allResult is the combined output of -stage all
type allResult struct {
	Seeds     []string                   `json:"seeds,omitempty"`
	Filter    screeningdom.Result        `json:"filter"`
	Harvest   harvestdom.Result          `json:"harvest"`
	Rank      rankingdom.RankResult      `json:"rank"`
	Aggregate rankingdom.AggregateResult `json:"aggregate"`
}

func runAll(ctx context.Context, p ports, f flags) (allResult, error) {
	var out allResult
	names := f.usernames
	if len(names) == 0 {
		seeds, err := seedsFor(ctx, p.discovery, f.username)
		if err != nil {
			return out, err
		}
		out.Seeds, names = seeds, seeds
	}

	c, err := criteria(f, names)
	if err != nil {
		return out, err
	}
	if out.Filter, err = p.screening.Filter(ctx, c); err != nil {
		return out, err
	}
	accepted := out.Filter.SuccessfulUsernames
	if len(accepted) == 0 {
		return out, perr.NotFoundf("no candidate passed screening")
	}
	if out.Harvest, err = p.harvest.Harvest(ctx, harvestdom.HarvestInput{Usernames: accepted}); err != nil {
		return out, err
	}
	if out.Rank, err = p.ranking.RankCreators(ctx, accepted); err != nil {
		return out, err
	}
	out.Aggregate, err = p.ranking.Aggregate(ctx, accepted, f.k)
	return out, err
}

// seedsFor reads the stored seed list of username, seeding it first when absent
func seedsFor(ctx context.Context, d discoverydom.ServicePort, username string) ([]string, error) {
	if strings.TrimSpace(username) == "" {
		return nil, perr.Validationf("-usernames or -username is required")
	}
	stored, err := d.Seeds(ctx, username)
	if err == nil {
		return stored.Usernames, nil
	}
	if !store.IsNotFound(err) {
		return nil, err
	}
	res, err := d.Seed(ctx, discoverydom.SeedInput{Username: username})
	if err != nil {
		return nil, err
	}
	return res.SuccessfulUsernames, nil
}

func criteria(f flags, names []string) (screeningdom.Criteria, error) {
	in := screeningdom.FilterInput{Usernames: names, Niche: f.niche, Level: f.level, FollowerCount: f.followers}
	if in.Niche == "" || in.Level == "" {
		return screeningdom.Criteria{}, perr.Validationf("-niche and -level are required")
	}
	return in.Criteria()
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func openStore(ctx context.Context, root config.Conf, l *logger.Logger) (*store.Store, error) {
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	objCfg := root.Prefix("SERVICE_OBJECTS_")

	backend := strings.ToLower(objCfg.MayEnum("BACKEND", store.BackendMemory, store.BackendMemory, store.BackendPG))
	dburl := pgCfg.MayString("DBURL", "")
	return store.Open(ctx, store.Config{
		AppName: "creatorscout-pipeline",
		PG: store.PGConfig{
			Enabled:        backend == store.BackendPG || dburl != "",
			URL:            dburl,
			MaxConns:       int32(pgCfg.MayInt("MAX_CONNS", 2)),
			SlowQueryMs:    pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:         pgCfg.MayBool("LOG_SQL", false),
			ConnectRetries: pgCfg.MayInt("CONNECT_RETRIES", 5),
		},
		Objects: store.ObjectsConfig{Backend: backend},
	}, store.WithLogger(*l))
}
