package module

import "creatorscout/internal/platform/config"

// Options holds configuration settings for the harvest module
type Options struct {
	ReelCount    int
	SpacingUnits int
}

// FromConfig reads CORE_HARVEST_* settings
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("CORE_HARVEST_")
	return Options{
		ReelCount:    c.MayInt("REEL_COUNT", 30),
		SpacingUnits: c.MayInt("SPACING_UNITS", 3),
	}
}
