package module

import (
	"creatorscout/internal/core/rank"
	"creatorscout/internal/platform/config"
)

// Options holds configuration settings for the ranking module
type Options struct {
	PerCreatorK int
}

// FromConfig reads CORE_RANKING_* settings
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("CORE_RANKING_")
	return Options{
		PerCreatorK: c.MayInt("PER_CREATOR_K", rank.PerCreatorK),
	}
}
