// Package http provides http transport for screening
package http

import (
	stdhttp "net/http"

	"creatorscout/internal/modkit/httpkit"
	"creatorscout/internal/services/screening/domain"
	svc "creatorscout/internal/services/screening/service"
)

// Register mounts screening endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// niche and audience gates over a batch of candidates
	httpkit.PostJSON[domain.FilterInput](r, "/filter", h.filter)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /screening/filter Screening screeningFilter
// @Summary Keep candidates that fit a niche and stay under a follower cap
// @Tags Screening
// @Accept json
// @Produce json
// @Param payload body domain.FilterInput true "Candidates and criteria"
// @Success 200 {object} domain.Result "ok"
// @Failure 400 {object} httpkit.Envelope "invalid input"
// @Router /screening/filter [post]
func (h *handlers) filter(r *stdhttp.Request, in domain.FilterInput) (any, error) {
	c, err := in.Criteria()
	if err != nil {
		return nil, err
	}
	return h.svc.Filter(r.Context(), c)
}
