package domain

import (
	"context"

	"creatorscout/internal/adapters/scraper"
)

// ServicePort is consumed by handlers, the CLI and other modules
type ServicePort interface {
	Harvest(ctx context.Context, in HarvestInput) (Result, error)
}

// ReelsSource lists a creator's recent reels
type ReelsSource interface {
	Reels(ctx context.Context, username string, count int) (*scraper.Response, error)
}
