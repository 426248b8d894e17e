package module

import "creatorscout/internal/services/screening/domain"

// Upstream carries the external seams the module consumes
type Upstream struct {
	Posts      domain.PostsSource
	Profiles   domain.ProfileSource
	Classifier domain.Classifier
}

// Ports exposed by the screening module
type Ports struct {
	Screening domain.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
