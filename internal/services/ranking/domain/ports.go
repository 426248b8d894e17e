package domain

import "context"

// ServicePort is consumed by handlers, the CLI and other modules
// Aggregate takes k <= 0 as the default shortlist length
type ServicePort interface {
	RankCreators(ctx context.Context, usernames []string) (RankResult, error)
	Aggregate(ctx context.Context, usernames []string, k int) (AggregateResult, error)
}
