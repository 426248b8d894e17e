// Package http provides http transport for ranking
package http

import (
	stdhttp "net/http"

	"creatorscout/internal/modkit/httpkit"
	"creatorscout/internal/services/ranking/domain"
	svc "creatorscout/internal/services/ranking/service"
)

// Register mounts ranking endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// per creator shortlists
	httpkit.PostJSON[domain.RankInput](r, "/creators", h.creators)

	// best K across creators
	httpkit.PostJSON[domain.AggregateInput](r, "/aggregate", h.aggregate)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /ranking/creators Ranking rankingCreators
// @Summary Score stored reels and store each creator's top videos
// @Tags Ranking
// @Accept json
// @Produce json
// @Param payload body domain.RankInput true "Creators"
// @Success 200 {object} domain.RankResult "ok"
// @Failure 400 {object} httpkit.Envelope "invalid input"
// @Router /ranking/creators [post]
func (h *handlers) creators(r *stdhttp.Request, in domain.RankInput) (any, error) {
	return h.svc.RankCreators(r.Context(), in.Usernames)
}

// swagger:route POST /ranking/aggregate Ranking rankingAggregate
// @Summary Merge creator shortlists and keep the best K
// @Tags Ranking
// @Accept json
// @Produce json
// @Param payload body domain.AggregateInput true "Creators and K"
// @Success 200 {object} domain.AggregateResult "ok"
// @Failure 400 {object} httpkit.Envelope "K out of range"
// @Router /ranking/aggregate [post]
func (h *handlers) aggregate(r *stdhttp.Request, in domain.AggregateInput) (any, error) {
	return h.svc.Aggregate(r.Context(), in.Usernames, in.Limit())
}
