package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/goodways/goodways/shared/api"
	"github.com/goodways/goodways/shared/utils"
)

// Health is the liveness probe. It answers as long as the process serves.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, api.HealthResponse{Status: "ok", Timestamp: time.Now().UTC()})
}

// Ready is the readiness probe: 503 while the database is unreachable.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.health.Ping(ctx); err != nil {
		utils.WriteJSON(w, http.StatusServiceUnavailable, api.HealthResponse{Status: "database unavailable", Timestamp: time.Now().UTC()})
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.HealthResponse{Status: "ok", Timestamp: time.Now().UTC()})
}
