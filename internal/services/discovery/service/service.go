// Package service contains the discovery workflows
package service

import (
	"context"

	"creatorscout/internal/adapters/scraper"
	"creatorscout/internal/core/normalize"
	"creatorscout/internal/core/objkey"
	"creatorscout/internal/modkit/repokit"
	perr "creatorscout/internal/platform/errors"
	"creatorscout/internal/platform/logger"
	"creatorscout/internal/services/discovery/domain"
)

const stage = "discovery"

// Service defines the discovery service contract
type Service interface {
	domain.ServicePort
}

// Config carries discovery knobs
type Config struct {
	FollowingCount int
}

// Svc implements the discovery service
type Svc struct {
	src  domain.FollowingSource
	objs repokit.Objects
	cfg  Config
}

// New constructs a discovery service
func New(src domain.FollowingSource, objs repokit.Objects, cfg Config) *Svc {
	if src == nil {
		panic("discovery.Service requires a non nil FollowingSource")
	}
	if objs == nil {
		panic("discovery.Service requires a non nil object store")
	}
	if cfg.FollowingCount <= 0 {
		cfg.FollowingCount = 25
	}
	return &Svc{src: src, objs: objs, cfg: cfg}
}

// Seed fetches who username follows and stores the de-duplicated list
func (s *Svc) Seed(ctx context.Context, in domain.SeedInput) (domain.SeedResult, error) {
	ctx, runID := logger.StartRun(ctx, stage)
	log := logger.C(ctx)

	username := normalize.Username(in.Username)
	if username == "" {
		return domain.SeedResult{}, perr.Validationf("username is required")
	}
	count := in.Count
	if count <= 0 {
		count = s.cfg.FollowingCount
	}

	resp, err := s.src.Following(ctx, username, count)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeUnavailable) {
			return domain.SeedResult{}, perr.Wrapf(err, perr.ErrorCodeUnavailable, "error while requesting following of %s", username)
		}
		return domain.SeedResult{}, err
	}
	if !resp.OK() {
		return domain.SeedResult{}, perr.Upstreamf("failed to fetch following of %s, status code: %d", username, resp.Status)
	}
	env, err := scraper.DecodeEnvelope(resp.Body)
	if err != nil {
		return domain.SeedResult{}, perr.Wrapf(err, perr.ErrorCodeUpstream, "unreadable following answer for %s", username)
	}

	trail := logger.NewTrail(log)
	raw := scraper.FollowingUsernames(env)
	if len(raw) == 0 {
		return domain.SeedResult{}, perr.NotFoundf("no users found in the following of %s", username)
	}
	names := normalize.Dedupe(raw)
	if dropped := len(raw) - len(names); dropped > 0 {
		trail.Warnf(username, nil, "dropped %d duplicate usernames from the following of %s", dropped, username)
	}

	key := objkey.Seeds(username)
	if err := repokit.PutJSON(ctx, s.objs, key, names); err != nil {
		return domain.SeedResult{}, perr.WithOp(err, "discovery.seed")
	}
	log.Info().Str("username", username).Int("seeds", len(names)).Str("key", key).Msg("seed list stored")

	return domain.SeedResult{
		RunID:               runID,
		Message:             "usernames stored at " + key,
		SuccessfulUsernames: names,
		Logs:                trail.Lines(),
	}, nil
}

// Seeds reads back the list stored by Seed
func (s *Svc) Seeds(ctx context.Context, username string) (domain.SeedsResult, error) {
	username = normalize.Username(username)
	if username == "" {
		return domain.SeedsResult{}, perr.Validationf("username is required")
	}
	names, err := repokit.GetJSON[[]string](ctx, s.objs, objkey.Seeds(username))
	if err != nil {
		return domain.SeedsResult{}, err
	}
	if names == nil {
		names = []string{}
	}
	return domain.SeedsResult{Username: username, Usernames: names}, nil
}
