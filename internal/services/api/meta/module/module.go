// Package module mounts the operator endpoints under /meta
package module

import (
	"time"

	modkit "creatorscout/internal/modkit"
	"creatorscout/internal/modkit/httpkit"
	metahttp "creatorscout/internal/services/api/meta/http"
)

const serviceName = "creatorscout-api"

// Module serves health, readiness, version and the stage layout
// It has no ports
type Module struct {
	modkit.Base
}

// New builds the meta module, the probes use deps.PG and deps.Objects
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("meta"), modkit.WithPrefix("/meta")}, opts...)...)

	md := metahttp.Deps{
		ServiceName: serviceName,
		StartedAt:   time.Now(),
		Objects:     deps.Objects,
	}
	if deps.PG != nil {
		md.PG = deps.PG
	}
	return &Module{Base: b.Base(func(r httpkit.Router) { metahttp.Register(r, md) })}
}

// Ports implements modkit.Module
func (m *Module) Ports() any { return nil }
