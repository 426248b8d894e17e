package module

import "creatorscout/internal/services/ranking/domain"

// Ports exposed by the ranking module
type Ports struct {
	Ranking domain.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
