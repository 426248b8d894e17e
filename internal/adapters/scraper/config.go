package scraper

import "creatorscout/internal/platform/config"

// FromConfig reads CORE_SCRAPER_* settings
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("CORE_SCRAPER_")
	return Options{
		BaseURL:       c.MayString("BASE_URL", ""),
		APIKey:        c.MayString("API_KEY", ""),
		APIHost:       c.MayString("API_HOST", ""),
		Timeout:       c.MayDuration("TIMEOUT", defaultTimeout),
		MaxRetries:    c.MayInt("MAX_RETRIES", defaultMaxRetries),
		Unit:          c.MayDuration("UNIT", defaultUnit),
		PostsPath:     c.MayString("POSTS_PATH", ""),
		ReelsPath:     c.MayString("REELS_PATH", ""),
		FollowingPath: c.MayString("FOLLOWING_PATH", ""),
		ProfilePath:   c.MayString("PROFILE_PATH", ""),
	}
}
