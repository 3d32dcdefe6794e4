// internal/api/visitors.go
package api

import (
	"net/http"
	"strconv"

	custom_errors "portfolio-api/internal/errors"
)

type trackResponse struct {
	Success    bool  `json:"success"`
	TodayCount int64 `json:"today_count"`
	TotalCount int64 `json:"total_count"`
}

// trackVisitor records a landing-page visit and returns the updated counters.
// POST /api/v1/visitors/track
func (h *Handler) trackVisitor(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.deps.Visitors.RecordVisit(r.Context(), h.visitFromRequest(r, "/"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, trackResponse{
		Success:    true,
		TodayCount: snapshot.TodayCount,
		TotalCount: snapshot.TotalCount,
	})
}

// GET /api/v1/visitors/count
func (h *Handler) getVisitorCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.deps.Visitors.Count(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, count)
}

// getDailyStats handles the request for per-day counters.
// GET /api/v1/visitors/stats?limit=N
func (h *Handler) getDailyStats(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			h.handleError(w, r, &custom_errors.InvalidParamError{Param: "limit", Reason: "must be a positive integer"})
			return
		}
		limit = n
	}

	stats, err := h.deps.Visitors.DailyStats(r.Context(), limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, stats)
}

// GET /api/v1/visitors/summary
func (h *Handler) getVisitorSummary(w http.ResponseWriter, r *http.Request) {
	stats, err := h.deps.Visitors.Stats(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, stats)
}
