package domain

import (
	"context"

	"creatorscout/internal/adapters/classifier"
	"creatorscout/internal/adapters/scraper"
)

// ServicePort is consumed by handlers, the CLI and other modules
type ServicePort interface {
	Filter(ctx context.Context, c Criteria) (Result, error)
}

// PostsSource lists a creator's recent posts
type PostsSource interface {
	Posts(ctx context.Context, username string, count int) (*scraper.Response, error)
}

// ProfileSource fetches a creator's profile
type ProfileSource interface {
	Profile(ctx context.Context, username string) (*scraper.Response, error)
}

// Classifier judges whether a digest fits a niche
type Classifier interface {
	Classify(ctx context.Context, q classifier.Query) (classifier.Answer, error)
}
