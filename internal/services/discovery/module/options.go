package module

import "creatorscout/internal/platform/config"

// Options holds configuration settings for the discovery module
type Options struct {
	FollowingCount int
}

// FromConfig reads CORE_DISCOVERY_* settings
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("CORE_DISCOVERY_")
	return Options{
		FollowingCount: c.MayInt("FOLLOWING_COUNT", 25),
	}
}
