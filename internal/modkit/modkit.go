// Package modkit assembles the stage modules the API mounts and the pipeline CLI drives
package modkit

import (
	"net/http"

	"creatorscout/internal/modkit/httpkit"
	"creatorscout/internal/modkit/module"
	str "creatorscout/internal/platform/strings"
)

// Module is the contract every stage module satisfies
type Module = module.Module

// Middleware wraps a module's routes
type Middleware = func(http.Handler) http.Handler

// Base is the routing half of a module
// Stage modules embed it and add their own Ports
type Base struct {
	name     string
	prefix   string
	mws      []Middleware
	register func(httpkit.Router)
}

// Name returns the module name
func (b *Base) Name() string { return str.MustString(b.name, "module name") }

// Prefix returns the mount prefix, normalized to one leading slash
func (b *Base) Prefix() string { return str.MustPrefix(b.prefix) }

// Middlewares returns the per module middleware in order
func (b *Base) Middlewares() []Middleware { return b.mws }

// MountRoutes mounts the module under its prefix
func (b *Base) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, b.Prefix(), b.mws, func(sub httpkit.Router) {
		if b.register != nil {
			b.register(sub)
		}
	})
}
