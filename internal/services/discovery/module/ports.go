package module

import "creatorscout/internal/services/discovery/domain"

// Upstream carries the external seams the module consumes
type Upstream struct {
	Following domain.FollowingSource
}

// Ports exposed by the discovery module
type Ports struct {
	Discovery domain.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
