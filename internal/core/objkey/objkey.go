// Package objkey names the objects the pipeline stages exchange
package objkey

// Seeds is the following list discovered from username
func Seeds(username string) string { return username + "/usernames.json" }

// Reels is the raw reels payload harvested for username
func Reels(username string) string { return username + "_reels.json" }

// Shortlist is the ranked top videos stored for username
func Shortlist(username string) string { return username + "_top5_videos.json" }
