// Package module wires harvest into the API and the pipeline CLI using modkit
package module

import (
	"time"

	"creatorscout/internal/adapters/scraper"
	modkit "creatorscout/internal/modkit"
	"creatorscout/internal/modkit/httpkit"
	harvesthttp "creatorscout/internal/services/harvest/http"
	harvestsvc "creatorscout/internal/services/harvest/service"
)

// Module is the harvest stage
type Module struct {
	modkit.Base
	ports Ports
}

// New constructs the harvest module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	if !deps.HasObjects() {
		panic("harvest module requires an object store")
	}
	b := modkit.Build(append([]modkit.Option{modkit.WithName("harvest"), modkit.WithPrefix("/harvest")}, opts...)...)

	up, _ := b.Ports.(Upstream)
	var sc *scraper.Client
	if up.Reels == nil {
		sc = scraper.NewClient(scraper.FromConfig(deps.Cfg))
		up.Reels = sc
	} else {
		sc, _ = up.Reels.(*scraper.Client)
	}
	if up.Pacer == nil && sc != nil {
		up.Pacer = sc.Pacer()
	}
	if up.Unit <= 0 {
		up.Unit = time.Second
		if sc != nil {
			up.Unit = sc.Options().Unit
		}
	}

	o := FromConfig(deps.Cfg)
	svc := harvestsvc.New(up.Reels, deps.Objects, up.Pacer, harvestsvc.Config{
		ReelCount: o.ReelCount,
		Spacing:   time.Duration(o.SpacingUnits) * up.Unit,
	})

	return &Module{
		Base:  b.Base(func(r httpkit.Router) { harvesthttp.Register(r, svc) }),
		ports: Ports{Harvest: svc},
	}
}
