// Package http serves liveness, readiness and layout endpoints for operators
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"creatorscout/internal/core/objkey"
	"creatorscout/internal/core/version"
	"creatorscout/internal/modkit/httpkit"
	"creatorscout/internal/platform/store"
)

// Pinger is a dependency that can answer a liveness probe
type Pinger interface {
	Ping(stdctx.Context) error
}

// Deps are the handler dependencies
// A nil PG is reported as skipped, the object store is required
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	PG          Pinger
	Objects     store.ObjectStore
}

// probeKey is never written, a NotFound read proves the store answers
const probeKey = "_ready/probe"

const readyTimeout = 2 * time.Second

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}
	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/stages", h.stages)
}

// HealthResponse is the liveness payload
type HealthResponse struct {
	OK      bool   `json:"ok"      example:"true"`
	Service string `json:"service" example:"creatorscout-api"`
	Started string `json:"started" example:"2026-10-01T09:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// ReadyCheck is one dependency probe, Status is ok fail or skipped
type ReadyCheck struct {
	Name   string `json:"name"   example:"objects"`
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty"`
}

// ReadyResponse is ok, degraded when the object store is missing, fail when a probe fails
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"`
	Checks []ReadyCheck `json:"checks"`
}

// StageInfo describes where a stage reads and writes its objects
type StageInfo struct {
	Name   string `json:"name"   example:"harvest"`
	Route  string `json:"route"  example:"POST /api/v1/harvest/reels"`
	Reads  string `json:"reads,omitempty"  example:"{username}/usernames.json"`
	Writes string `json:"writes,omitempty" example:"{username}_reels.json"`
}

// @Summary Liveness and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(time.Since(h.deps.StartedAt) / time.Second),
	}, nil
}

// @Summary Readiness with dependency probes
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse
// @Router /meta/ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	checks := []ReadyCheck{h.probePG(ctx), h.probeObjects(ctx)}

	status := "ok"
	for _, c := range checks {
		if c.Status == "fail" {
			status = "fail"
			break
		}
	}
	if status == "ok" && checks[1].Status == "skipped" {
		status = "degraded"
	}
	return ReadyResponse{Status: status, Checks: checks}, nil
}

// @Summary Build info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(h.deps.ServiceName), nil
}

// @Summary Pipeline stages and their object keys
// @Tags Meta
// @Produce json
// @Success 200 {array} StageInfo
// @Router /meta/stages [get]
func (h *handlers) stages(_ *http.Request) (any, error) {
	const u = "{username}"
	return []StageInfo{
		{Name: "discovery", Route: "POST /api/v1/discovery/seed", Writes: objkey.Seeds(u)},
		{Name: "screening", Route: "POST /api/v1/screening/filter"},
		{Name: "harvest", Route: "POST /api/v1/harvest/reels", Writes: objkey.Reels(u)},
		{Name: "ranking", Route: "POST /api/v1/ranking/creators", Reads: objkey.Reels(u), Writes: objkey.Shortlist(u)},
		{Name: "ranking", Route: "POST /api/v1/ranking/aggregate", Reads: objkey.Shortlist(u)},
	}, nil
}

func (h *handlers) probePG(ctx stdctx.Context) ReadyCheck {
	if h.deps.PG == nil {
		return ReadyCheck{Name: "pg", Status: "skipped"}
	}
	if err := h.deps.PG.Ping(ctx); err != nil {
		return ReadyCheck{Name: "pg", Status: "fail", Error: err.Error()}
	}
	return ReadyCheck{Name: "pg", Status: "ok"}
}

func (h *handlers) probeObjects(ctx stdctx.Context) ReadyCheck {
	if h.deps.Objects == nil {
		return ReadyCheck{Name: "objects", Status: "skipped"}
	}
	if _, err := h.deps.Objects.Get(ctx, probeKey); err != nil && !store.IsNotFound(err) {
		return ReadyCheck{Name: "objects", Status: "fail", Error: err.Error()}
	}
	return ReadyCheck{Name: "objects", Status: "ok"}
}
