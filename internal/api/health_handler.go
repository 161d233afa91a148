package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/phrazzld/kube-tasks-api/internal/api/shared"
	"github.com/phrazzld/kube-tasks-api/internal/health"
	"github.com/phrazzld/kube-tasks-api/internal/platform/logger"
)

// HealthReporter supplies the bodies of the operational endpoints.
type HealthReporter interface {
	Liveness() health.LivenessStatus
	Readiness() health.ReadinessStatus
	Metrics(ctx context.Context) health.Metrics
	ServerInfo(ctx context.Context) health.ServerInfo
	Env() health.EnvInfo
}

// Ensure health.Reporter implements HealthReporter
var _ HealthReporter = (*health.Reporter)(nil)

// HealthHandler serves liveness, readiness, metrics, info and env.
// None of its endpoints fail; each always answers 200.
type HealthHandler struct {
	reporter HealthReporter
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(reporter HealthReporter) *HealthHandler {
	return &HealthHandler{reporter: reporter}
}

// Liveness handles GET /api/health/liveness requests
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.reporter.Liveness())
}

// Readiness handles GET /api/health/readiness requests.
// A degraded database is reported in the body with status "warning" while
// the response code stays 200.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	status := h.reporter.Readiness()
	if !status.Ready() {
		logger.FromContextOrDefault(r.Context(), slog.Default()).
			Warn("readiness degraded", slog.String("database", status.Database))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, status)
}

// Metrics handles GET /api/metrics requests
func (h *HealthHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.reporter.Metrics(r.Context()))
}

// ServerInfo handles GET /api/info requests
func (h *HealthHandler) ServerInfo(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.reporter.ServerInfo(r.Context()))
}

// Env handles GET /api/env requests
func (h *HealthHandler) Env(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.reporter.Env())
}
