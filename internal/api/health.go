// internal/api/health.go
package api

import (
	"net/http"
	"time"
)

type healthResponse struct {
	Status    string    `json:"status"`
	Version   string    `json:"version"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}

func (h *Handler) serviceInfo(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{
		"message": h.deps.AppName,
		"version": h.deps.AppVersion,
		"github":  h.deps.GithubURL,
	})
}

// healthCheck reports service health, including database reachability.
func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status:    "healthy",
		Version:   h.deps.AppVersion,
		Database:  "connected",
		Timestamp: h.now().UTC(),
	}
	if h.deps.DB != nil {
		if err := h.deps.DB.Ping(r.Context()); err != nil {
			h.logger.Warn("Database ping failed", "error", err)
			resp.Status = "unhealthy"
			resp.Database = "disconnected"
			respondWithJSON(w, http.StatusServiceUnavailable, resp)
			return
		}
	}
	respondWithJSON(w, http.StatusOK, resp)
}
