// Package module wires screening into the API and the pipeline CLI using modkit
package module

import (
	"creatorscout/internal/adapters/classifier"
	"creatorscout/internal/adapters/scraper"
	modkit "creatorscout/internal/modkit"
	"creatorscout/internal/modkit/httpkit"
	screeninghttp "creatorscout/internal/services/screening/http"
	screeningsvc "creatorscout/internal/services/screening/service"
)

// Module is the screening stage
type Module struct {
	modkit.Base
	ports Ports
}

// New constructs the screening module
// seams missing from modkit.WithPorts(Upstream{...}) are built from CORE_SCRAPER_* and CORE_CLASSIFIER_*
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("screening"), modkit.WithPrefix("/screening")}, opts...)...)

	up, _ := b.Ports.(Upstream)
	if up.Posts == nil || up.Profiles == nil {
		sc := scraper.NewClient(scraper.FromConfig(deps.Cfg))
		if up.Posts == nil {
			up.Posts = sc
		}
		if up.Profiles == nil {
			up.Profiles = sc
		}
	}
	if up.Classifier == nil {
		up.Classifier = classifier.NewClient(classifier.FromConfig(deps.Cfg))
	}

	o := FromConfig(deps.Cfg)
	svc := screeningsvc.New(up.Posts, up.Profiles, up.Classifier, screeningsvc.Config{PostCount: o.PostCount})

	return &Module{
		Base:  b.Base(func(r httpkit.Router) { screeninghttp.Register(r, svc) }),
		ports: Ports{Screening: svc},
	}
}
