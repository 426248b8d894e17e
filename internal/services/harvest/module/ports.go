package module

import (
	"time"

	"creatorscout/internal/adapters/scraper"
	"creatorscout/internal/services/harvest/domain"
)

// Upstream carries the external seams the module consumes
// Pacer and Unit fall back to the scraper client's when Reels is one
type Upstream struct {
	Reels domain.ReelsSource
	Pacer scraper.Pacer
	Unit  time.Duration
}

// Ports exposed by the harvest module
type Ports struct {
	Harvest domain.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
