// Package version reports build metadata stamped in with -ldflags
package version

// BuildInfo holds version information about the build
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Set via -ldflags "-X 'creatorscout/internal/core/version.Version=v0.1.0'
// -X 'creatorscout/internal/core/version.commit=abcd' -X 'creatorscout/internal/core/version.date=2026-10-01'"
var (
	Version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Info returns the build information for service
func Info(service string) BuildInfo {
	return BuildInfo{
		Service: service,
		Version: Version,
		Commit:  commit,
		Date:    date,
	}
}
