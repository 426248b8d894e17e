package domain

import (
	"context"

	"creatorscout/internal/adapters/scraper"
)

// ServicePort is consumed by handlers, the CLI and other modules
type ServicePort interface {
	Seed(ctx context.Context, in SeedInput) (SeedResult, error)
	Seeds(ctx context.Context, username string) (SeedsResult, error)
}

// FollowingSource lists the accounts a user follows
type FollowingSource interface {
	Following(ctx context.Context, username string, count int) (*scraper.Response, error)
}
