// Package http provides http transport for discovery
package http

import (
	stdhttp "net/http"

	"creatorscout/internal/modkit/httpkit"
	"creatorscout/internal/services/discovery/domain"
	svc "creatorscout/internal/services/discovery/service"
)

// Register mounts discovery endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// fetch and store the following list of a seed creator
	httpkit.PostJSON[domain.SeedInput](r, "/seed", h.seed)

	// read a stored following list back
	httpkit.Get(r, "/{username}/seeds", h.seeds)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /discovery/seed Discovery discoverySeed
// @Summary Store the accounts a creator follows as seed candidates
// @Tags Discovery
// @Accept json
// @Produce json
// @Param payload body domain.SeedInput true "Seed creator"
// @Success 200 {object} domain.SeedResult "ok"
// @Failure 404 {object} httpkit.Envelope "no users in the upstream answer"
// @Failure 502 {object} httpkit.Envelope "upstream answered non 200"
// @Failure 503 {object} httpkit.Envelope "upstream unreachable"
// @Router /discovery/seed [post]
func (h *handlers) seed(r *stdhttp.Request, in domain.SeedInput) (any, error) {
	return h.svc.Seed(r.Context(), in)
}

// swagger:route GET /discovery/{username}/seeds Discovery discoverySeeds
// @Summary Read a stored seed list
// @Tags Discovery
// @Produce json
// @Param username path string true "Seed creator"
// @Success 200 {object} domain.SeedsResult "ok"
// @Failure 404 {object} httpkit.Envelope "no seed list stored"
// @Router /discovery/{username}/seeds [get]
func (h *handlers) seeds(r *stdhttp.Request) (any, error) {
	return h.svc.Seeds(r.Context(), httpkit.Param(r, "username"))
}
