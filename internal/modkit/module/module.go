// Package module holds the contract stage modules satisfy and the port lookups
// the API and the pipeline CLI use to reach a stage service
package module

import (
	phttp "creatorscout/internal/platform/net/http"
)

// Module is a named unit that mounts routes and exposes ports
type Module interface {
	Name() string
	Ports() any
	MountRoutes(r phttp.Router)
}
