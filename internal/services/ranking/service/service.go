// Package service contains the ranking workflows
package service

import (
	"context"

	"creatorscout/internal/adapters/scraper"
	"creatorscout/internal/core/media"
	"creatorscout/internal/core/normalize"
	"creatorscout/internal/core/objkey"
	"creatorscout/internal/core/rank"
	"creatorscout/internal/core/score"
	"creatorscout/internal/modkit/repokit"
	perr "creatorscout/internal/platform/errors"
	"creatorscout/internal/platform/logger"
	"creatorscout/internal/platform/store"
	"creatorscout/internal/services/ranking/domain"
)

const stage = "ranking"

// Service defines the ranking service contract
type Service interface {
	domain.ServicePort
}

// Config carries ranking knobs
type Config struct {
	PerCreatorK int
}

// Svc implements the ranking service
type Svc struct {
	objs repokit.Objects
	cfg  Config
}

// New constructs a ranking service
func New(objs repokit.Objects, cfg Config) *Svc {
	if objs == nil {
		panic("ranking.Service requires a non nil object store")
	}
	if cfg.PerCreatorK <= 0 {
		cfg.PerCreatorK = rank.PerCreatorK
	}
	return &Svc{objs: objs, cfg: cfg}
}

// RankCreators scores every creator's stored reels and keeps a shortlist per creator
func (s *Svc) RankCreators(ctx context.Context, usernames []string) (domain.RankResult, error) {
	names := normalize.Dedupe(usernames)
	if len(names) == 0 {
		return domain.RankResult{}, perr.Validationf("at least one username is required")
	}

	ctx, runID := logger.StartRun(ctx, stage)
	log := logger.C(ctx)
	trail := logger.NewTrail(log)

	out := make([]domain.Ranked, 0, len(names))
	for _, u := range names {
		if err := ctx.Err(); err != nil {
			return domain.RankResult{}, err
		}
		videos, ok := s.shortlist(ctx, trail, u)
		if !ok {
			continue
		}
		key := objkey.Shortlist(u)
		if err := repokit.PutJSONIndent(ctx, s.objs, key, videos); err != nil {
			trail.Warnf(u, err, "error storing top videos for %s: %v", u, err)
			continue
		}
		log.Debug().Str("username", u).Int("videos", len(videos)).Str("key", key).Msg("shortlist stored")
		out = append(out, domain.Ranked{Username: u, Videos: videos})
	}
	log.Info().Int("creators", len(names)).Int("ranked", len(out)).Msg("ranking finished")

	return domain.RankResult{RunID: runID, Ranked: out, Logs: trail.Lines()}, nil
}

func (s *Svc) shortlist(ctx context.Context, trail *logger.Trail, u string) ([]rank.ScoredVideo, bool) {
	key := objkey.Reels(u)
	body, err := s.objs.Get(ctx, key)
	if store.IsNotFound(err) {
		trail.Warnf(u, nil, "file not found for username %s: %s", u, key)
		return nil, false
	}
	var env map[string]any
	if err == nil {
		env, err = scraper.DecodeEnvelope(body)
	}
	if err != nil {
		trail.Warnf(u, err, "error processing username %s: %v", u, err)
		return nil, false
	}
	if _, ok := scraper.Items(env); !ok {
		trail.Warnf(u, nil, "no items found in the reels of %s", u)
		return nil, false
	}
	scored := rank.Score(media.ExtractItems(env), score.PerCreator)
	return rank.TopK(scored, s.cfg.PerCreatorK), true
}

// Aggregate merges the stored shortlists, rescores them across creators and keeps the best k
func (s *Svc) Aggregate(ctx context.Context, usernames []string, k int) (domain.AggregateResult, error) {
	names := normalize.Dedupe(usernames)
	if len(names) == 0 {
		return domain.AggregateResult{}, perr.Validationf("at least one username is required")
	}
	if k <= 0 {
		k = s.cfg.PerCreatorK
	}
	if limit := s.cfg.PerCreatorK * len(names); k > limit {
		return domain.AggregateResult{}, perr.Validationf("K cannot exceed %d", limit)
	}

	ctx, runID := logger.StartRun(ctx, stage)
	log := logger.C(ctx)
	trail := logger.NewTrail(log)

	lists := make([][]rank.ScoredVideo, 0, len(names))
	for _, u := range names {
		if err := ctx.Err(); err != nil {
			return domain.AggregateResult{}, err
		}
		key := objkey.Shortlist(u)
		videos, err := repokit.GetJSON[[]rank.ScoredVideo](ctx, s.objs, key)
		switch {
		case store.IsNotFound(err):
			trail.Warnf(u, nil, "file not found for username %s: %s", u, key)
			continue
		case err != nil:
			trail.Warnf(u, err, "error processing username %s: %v", u, err)
			continue
		}
		for i := range videos {
			videos[i].Username = u
		}
		lists = append(lists, rank.Rescore(videos, score.CrossCreator))
	}

	top := rank.TopK(rank.Merge(lists...), k)
	log.Info().Int("creators", len(names)).Int("k", k).Int("videos", len(top)).Msg("aggregate finished")

	return domain.AggregateResult{RunID: runID, Data: top, Logs: trail.Lines()}, nil
}
