// internal/api/handler.go
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"portfolio-api/internal/model"
	"portfolio-api/internal/portfolio"
)

// ProjectService serves enriched GitHub projects.
type ProjectService interface {
	ProjectsByCategory(ctx context.Context, category string) ([]model.Project, error)
	FeaturedProjects(ctx context.Context) []model.Project
}

// StatsService composes the portfolio stats.
type StatsService interface {
	Stats(ctx context.Context) (model.PortfolioStats, error)
}

// VisitorService records and aggregates visits.
type VisitorService interface {
	RecordVisit(ctx context.Context, v model.Visit) (model.VisitSnapshot, error)
	Stats(ctx context.Context) (model.VisitorStats, error)
	DailyStats(ctx context.Context, limit int) (model.DailyStats, error)
	Count(ctx context.Context) (model.VisitCount, error)
}

// ContactService accepts and lists contact messages.
type ContactService interface {
	Submit(ctx context.Context, in model.ContactSubmission, authorID *int64, ip string) (model.ContactMessage, error)
	List(ctx context.Context, includeArchived bool) ([]model.ContactMessage, error)
}

// UserResolver maps a bearer token to a user. A nil user means anonymous.
type UserResolver interface {
	Resolve(ctx context.Context, token string) (*model.User, error)
}

// Pinger reports database reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Dependencies are the services and settings the router is built from.
type Dependencies struct {
	AppName        string
	AppVersion     string
	GithubURL      string
	CORSOrigins    []string
	RequestTimeout time.Duration
	Profile        portfolio.Profile

	Projects ProjectService
	Stats    StatsService
	Visitors VisitorService
	Contact  ContactService
	Users    UserResolver
	DB       Pinger
}

// Handler is the container for API dependencies.
type Handler struct {
	deps   Dependencies
	logger *slog.Logger
	now    func() time.Time
}

// NewRouter creates and configures a new chi router with all API routes.
func NewRouter(deps Dependencies, logger *slog.Logger) http.Handler {
	h := &Handler{
		deps:   deps,
		logger: logger,
		now:    time.Now,
	}

	timeout := deps.RequestTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger) // Chi's default logger
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(timeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/", h.serviceInfo)
	r.Get("/health", h.healthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/portfolio", func(r chi.Router) {
			r.Get("/profile", h.getProfile)
			r.Get("/projects", h.getProjects)
			r.Get("/projects/featured", h.getFeaturedProjects)
			r.Get("/stats", h.getStats)
			r.Get("/skills", h.getSkills)
			r.Get("/experience", h.getExperience)
			r.Get("/certificates", h.getCertificates)
			r.With(h.authenticate).Post("/track-visit", h.trackPageVisit)
		})

		r.Route("/visitors", func(r chi.Router) {
			r.With(h.authenticate).Post("/track", h.trackVisitor)
			r.Get("/count", h.getVisitorCount)
			r.Get("/stats", h.getDailyStats)
			r.Get("/summary", h.getVisitorSummary)
		})

		r.Route("/contact", func(r chi.Router) {
			r.Use(h.authenticate)
			r.Use(h.requireUser)
			r.Post("/submit", h.submitContact)
			r.Get("/me", h.getCurrentUser)
			r.Get("/check-auth", h.checkAuth)
			r.With(h.requireAdmin).Get("/messages", h.listMessages)
		})
	})

	return r
}
