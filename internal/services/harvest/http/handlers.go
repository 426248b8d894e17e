// Package http provides http transport for harvest
package http

import (
	stdhttp "net/http"

	"creatorscout/internal/modkit/httpkit"
	"creatorscout/internal/services/harvest/domain"
	svc "creatorscout/internal/services/harvest/service"
)

// Register mounts harvest endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// fetch and store reels for a batch of creators
	httpkit.PostJSON[domain.HarvestInput](r, "/reels", h.reels)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /harvest/reels Harvest harvestReels
// @Summary Store the recent reels of each creator
// @Tags Harvest
// @Accept json
// @Produce json
// @Param payload body domain.HarvestInput true "Creators"
// @Success 200 {object} domain.Result "ok"
// @Failure 400 {object} httpkit.Envelope "invalid input"
// @Router /harvest/reels [post]
func (h *handlers) reels(r *stdhttp.Request, in domain.HarvestInput) (any, error) {
	return h.svc.Harvest(r.Context(), in)
}
