// Package service contains the screening workflow
package service

import (
	"context"
	"fmt"

	"creatorscout/internal/adapters/classifier"
	"creatorscout/internal/adapters/scraper"
	"creatorscout/internal/core/niche"
	"creatorscout/internal/core/normalize"
	perr "creatorscout/internal/platform/errors"
	"creatorscout/internal/platform/logger"
	"creatorscout/internal/services/screening/domain"
)

const stage = "screening"

// verdict reasons
const (
	reasonPosts       = "posts unavailable"
	reasonNoItems     = "no posts"
	reasonClassifier  = "classifier unavailable"
	reasonOutside     = "outside niche"
	reasonProfile     = "profile unavailable"
	reasonNoFollowers = "follower count unknown"
)

// Service defines the screening service contract
type Service interface {
	domain.ServicePort
}

// Config carries screening knobs
type Config struct {
	PostCount int
}

// Svc implements the screening service
type Svc struct {
	posts    domain.PostsSource
	profiles domain.ProfileSource
	cls      domain.Classifier
	cfg      Config
}

// New constructs a screening service
func New(posts domain.PostsSource, profiles domain.ProfileSource, cls domain.Classifier, cfg Config) *Svc {
	if posts == nil || profiles == nil || cls == nil {
		panic("screening.Service requires posts, profile and classifier sources")
	}
	if cfg.PostCount <= 0 {
		cfg.PostCount = 15
	}
	return &Svc{posts: posts, profiles: profiles, cls: cls, cfg: cfg}
}

// Filter runs the niche gate over every candidate and the audience gate over those
// that passed it. Per candidate failures are recorded and the batch continues
func (s *Svc) Filter(ctx context.Context, c domain.Criteria) (domain.Result, error) {
	if c.FollowerCap < 0 {
		return domain.Result{}, perr.Validationf("follower cap must not be negative")
	}
	names := normalize.Dedupe(c.Usernames)
	if len(names) == 0 {
		return domain.Result{}, perr.Validationf("at least one username is required")
	}

	ctx, runID := logger.StartRun(ctx, stage)
	log := logger.C(ctx)
	trail := logger.NewTrail(log)

	reasons := make(map[string]string, len(names))
	niched := make([]string, 0, len(names))
	for _, u := range names {
		if err := ctx.Err(); err != nil {
			return domain.Result{}, err
		}
		if ok, reason := s.nicheGate(ctx, trail, u, c); ok {
			niched = append(niched, u)
		} else {
			reasons[u] = reason
		}
	}

	accepted := make([]string, 0, len(niched))
	for _, u := range niched {
		if err := ctx.Err(); err != nil {
			return domain.Result{}, err
		}
		if ok, reason := s.audienceGate(ctx, trail, u, c.FollowerCap); ok {
			accepted = append(accepted, u)
		} else {
			reasons[u] = reason
		}
	}

	verdicts := make([]domain.Verdict, 0, len(names))
	for _, u := range names {
		reason, rejected := reasons[u]
		verdicts = append(verdicts, domain.Verdict{Username: u, Accepted: !rejected, Reason: reason})
	}
	log.Info().
		Int("candidates", len(names)).
		Int("niche", len(niched)).
		Int("accepted", len(accepted)).
		Msg("screening finished")

	return domain.Result{
		RunID:               runID,
		SuccessfulUsernames: accepted,
		Verdicts:            verdicts,
		Logs:                trail.Lines(),
	}, nil
}

func (s *Svc) nicheGate(ctx context.Context, trail *logger.Trail, u string, c domain.Criteria) (bool, string) {
	resp, err := s.posts.Posts(ctx, u, s.cfg.PostCount)
	if err != nil {
		trail.Warnf(u, err, "error processing username %s: %v", u, err)
		return false, reasonPosts
	}
	if !resp.OK() {
		trail.Warnf(u, nil, "failed to retrieve posts for %s, status code: %d", u, resp.Status)
		return false, reasonPosts
	}
	env, err := scraper.DecodeEnvelope(resp.Body)
	if err != nil {
		trail.Warnf(u, err, "error processing username %s: %v", u, err)
		return false, reasonPosts
	}
	items, ok := scraper.Items(env)
	if !ok {
		trail.Warnf(u, nil, "no items found in the posts of %s", u)
		return false, reasonNoItems
	}

	ans, err := s.cls.Classify(ctx, classifier.Query{Message: niche.Digest(items), Niche: c.Niche, Level: c.Level})
	if ans.Status != 0 && ans.Status != 200 {
		trail.Warnf(u, nil, "error from niche API for %s: %d", u, ans.Status)
	}
	if err != nil {
		trail.Warnf(u, err, "error processing username %s: %v", u, err)
		return false, reasonClassifier
	}
	switch ans.Outcome {
	case niche.Accepted:
		return true, ""
	case niche.Rejected:
		return false, reasonOutside
	default:
		return false, fmt.Sprintf("classifier status %d", ans.Status)
	}
}

func (s *Svc) audienceGate(ctx context.Context, trail *logger.Trail, u string, followerCap int64) (bool, string) {
	resp, err := s.profiles.Profile(ctx, u)
	if err != nil {
		trail.Warnf(u, err, "error processing follower count for %s: %v", u, err)
		return false, reasonProfile
	}
	if !resp.OK() {
		trail.Warnf(u, nil, "failed to fetch profile for %s, status code: %d", u, resp.Status)
		return false, reasonProfile
	}
	env, err := scraper.DecodeEnvelope(resp.Body)
	if err != nil {
		trail.Warnf(u, err, "error processing follower count for %s: %v", u, err)
		return false, reasonProfile
	}
	count, ok := scraper.FollowerCount(env)
	if !ok {
		trail.Warnf(u, nil, "missing follower count data for %s", u)
		return false, reasonNoFollowers
	}
	if count > followerCap {
		return false, fmt.Sprintf("%d followers above cap %d", count, followerCap)
	}
	return true, ""
}
