package module

import "creatorscout/internal/platform/config"

// Options holds configuration settings for the screening module
type Options struct {
	PostCount int
}

// FromConfig reads CORE_SCREENING_* settings
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("CORE_SCREENING_")
	return Options{
		PostCount: c.MayInt("POST_COUNT", 15),
	}
}
