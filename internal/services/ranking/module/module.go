// Package module wires ranking into the API and the pipeline CLI using modkit
package module

import (
	modkit "creatorscout/internal/modkit"
	"creatorscout/internal/modkit/httpkit"
	rankinghttp "creatorscout/internal/services/ranking/http"
	rankingsvc "creatorscout/internal/services/ranking/service"
)

// Module is the ranking stage, it only touches the object store
type Module struct {
	modkit.Base
	ports Ports
}

// New constructs the ranking module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	if !deps.HasObjects() {
		panic("ranking module requires an object store")
	}
	b := modkit.Build(append([]modkit.Option{modkit.WithName("ranking"), modkit.WithPrefix("/ranking")}, opts...)...)

	o := FromConfig(deps.Cfg)
	svc := rankingsvc.New(deps.Objects, rankingsvc.Config{PerCreatorK: o.PerCreatorK})

	return &Module{
		Base:  b.Base(func(r httpkit.Router) { rankinghttp.Register(r, svc) }),
		ports: Ports{Ranking: svc},
	}
}
