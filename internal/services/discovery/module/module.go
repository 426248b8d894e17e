// Package module wires discovery into the API and the pipeline CLI using modkit
package module

import (
	"creatorscout/internal/adapters/scraper"
	modkit "creatorscout/internal/modkit"
	"creatorscout/internal/modkit/httpkit"
	discoveryhttp "creatorscout/internal/services/discovery/http"
	discoverysvc "creatorscout/internal/services/discovery/service"
)

// Module is the discovery stage
type Module struct {
	modkit.Base
	ports Ports
}

// New constructs the discovery module
// upstream seams come from modkit.WithPorts(Upstream{...}), otherwise a scraper
// client is built from CORE_SCRAPER_*
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	if !deps.HasObjects() {
		panic("discovery module requires an object store")
	}
	b := modkit.Build(append([]modkit.Option{modkit.WithName("discovery"), modkit.WithPrefix("/discovery")}, opts...)...)

	up, _ := b.Ports.(Upstream)
	if up.Following == nil {
		up.Following = scraper.NewClient(scraper.FromConfig(deps.Cfg))
	}
	o := FromConfig(deps.Cfg)
	svc := discoverysvc.New(up.Following, deps.Objects, discoverysvc.Config{FollowingCount: o.FollowingCount})

	return &Module{
		Base:  b.Base(func(r httpkit.Router) { discoveryhttp.Register(r, svc) }),
		ports: Ports{Discovery: svc},
	}
}
