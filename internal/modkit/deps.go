package modkit

import (
	"creatorscout/internal/modkit/repokit"
	"creatorscout/internal/platform/config"
	"creatorscout/internal/platform/logger"
)

// Deps are what every stage module is built from
type Deps struct {
	Log     logger.Logger
	Cfg     config.Conf
	PG      repokit.DB
	Objects repokit.Objects
}

// HasObjects reports whether an object store was wired
// stage modules that persist results refuse to build without one
func (d Deps) HasObjects() bool { return d.Objects != nil }
