// Package service contains the harvest workflow
package service

import (
	"context"
	"time"

	"creatorscout/internal/adapters/scraper"
	"creatorscout/internal/core/normalize"
	"creatorscout/internal/core/objkey"
	"creatorscout/internal/modkit/repokit"
	perr "creatorscout/internal/platform/errors"
	"creatorscout/internal/platform/logger"
	"creatorscout/internal/platform/store"
	"creatorscout/internal/services/harvest/domain"
)

const stage = "harvest"

// Service defines the harvest service contract
type Service interface {
	domain.ServicePort
}

// Config carries harvest knobs
// Spacing is the pause between two creators
type Config struct {
	ReelCount int
	Spacing   time.Duration
}

// Svc implements the harvest service
type Svc struct {
	src   domain.ReelsSource
	objs  repokit.Objects
	pacer scraper.Pacer
	cfg   Config
}

// New constructs a harvest service
func New(src domain.ReelsSource, objs repokit.Objects, pacer scraper.Pacer, cfg Config) *Svc {
	if src == nil {
		panic("harvest.Service requires a non nil ReelsSource")
	}
	if objs == nil {
		panic("harvest.Service requires a non nil object store")
	}
	if pacer == nil {
		pacer = scraper.TimerPacer{}
	}
	if cfg.ReelCount <= 0 {
		cfg.ReelCount = 30
	}
	return &Svc{src: src, objs: objs, pacer: pacer, cfg: cfg}
}

// Harvest fetches and stores the raw reels payload of every creator in turn
func (s *Svc) Harvest(ctx context.Context, in domain.HarvestInput) (domain.Result, error) {
	names := normalize.Dedupe(in.Usernames)
	if len(names) == 0 {
		return domain.Result{}, perr.Validationf("at least one username is required")
	}

	ctx, runID := logger.StartRun(ctx, stage)
	log := logger.C(ctx)
	trail := logger.NewTrail(log)

	out := make([]domain.Harvested, 0, len(names))
	for i, u := range names {
		if i > 0 {
			if err := s.pacer.Pause(ctx, s.cfg.Spacing); err != nil {
				return domain.Result{}, err
			}
		}
		if err := ctx.Err(); err != nil {
			return domain.Result{}, err
		}
		if h, ok := s.one(ctx, trail, u); ok {
			out = append(out, h)
		}
	}
	log.Info().Int("creators", len(names)).Int("stored", len(out)).Msg("harvest finished")

	return domain.Result{RunID: runID, Harvested: out, Logs: trail.Lines()}, nil
}

func (s *Svc) one(ctx context.Context, trail *logger.Trail, u string) (domain.Harvested, bool) {
	resp, err := s.src.Reels(ctx, u, s.cfg.ReelCount)
	if err != nil {
		trail.Warnf(u, err, "error fetching reels for %s: %v", u, err)
		return domain.Harvested{}, false
	}
	if !resp.OK() {
		trail.Warnf(u, nil, "failed to retrieve reels for %s, status code: %d", u, resp.Status)
		return domain.Harvested{}, false
	}
	env, err := scraper.DecodeEnvelope(resp.Body)
	if err != nil {
		trail.Warnf(u, err, "error processing reels for %s: %v", u, err)
		return domain.Harvested{}, false
	}
	items, _ := scraper.Items(env)

	key := objkey.Reels(u)
	if err := s.objs.Put(ctx, key, resp.Body, store.ContentTypeJSON); err != nil {
		trail.Warnf(u, err, "error storing reels for %s: %v", u, err)
		return domain.Harvested{}, false
	}
	logger.C(ctx).Debug().Str("username", u).Int("items", len(items)).Str("key", key).Msg("reels stored")
	return domain.Harvested{Username: u, Items: len(items)}, true
}
