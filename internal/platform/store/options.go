package store

import "creatorscout/internal/platform/logger"

// Option adjusts a Store before its backends open
type Option func(*Store)

// WithLogger routes store and SQL tracer logs through log under component=store
func WithLogger(log logger.Logger) Option {
	return func(s *Store) { s.Log = log.With().Str("component", "store").Logger() }
}
