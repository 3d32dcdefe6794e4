// internal/api/portfolio.go
package api

import (
	"net/http"

	"portfolio-api/internal/auth"
	"portfolio-api/internal/model"
	"portfolio-api/internal/portfolio"
)

type projectList struct {
	Projects   []model.Project `json:"projects"`
	TotalCount int             `json:"total_count"`
}

// GET /api/v1/portfolio/profile
func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.deps.Profile)
}

// getProjects lists projects, optionally narrowed to one category.
// GET /api/v1/portfolio/projects?category=backend
func (h *Handler) getProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.deps.Projects.ProjectsByCategory(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, projectList{Projects: projects, TotalCount: len(projects)})
}

// GET /api/v1/portfolio/projects/featured
func (h *Handler) getFeaturedProjects(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.deps.Projects.FeaturedProjects(r.Context()))
}

// GET /api/v1/portfolio/stats
func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.deps.Stats.Stats(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, stats)
}

func (h *Handler) getSkills(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, portfolio.Skills())
}

func (h *Handler) getExperience(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, portfolio.Experiences())
}

func (h *Handler) getCertificates(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, portfolio.Certificates())
}

// trackPageVisit records a visit to the page named in the query string.
// POST /api/v1/portfolio/track-visit?page=/about
func (h *Handler) trackPageVisit(w http.ResponseWriter, r *http.Request) {
	if _, err := h.deps.Visitors.RecordVisit(r.Context(), h.visitFromRequest(r, r.URL.Query().Get("page"))); err != nil {
		h.handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]bool{"tracked": true})
}

func (h *Handler) visitFromRequest(r *http.Request, page string) model.Visit {
	v := model.Visit{
		IP:        clientIP(r),
		UserAgent: r.UserAgent(),
		Referrer:  r.Referer(),
		Page:      page,
	}
	if user := auth.UserFromContext(r.Context()); user != nil {
		id := user.ID
		v.UserID = &id
	}
	return v
}
