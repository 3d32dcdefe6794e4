// internal/portfolio/projects.go
package portfolio

import (
	"context"
	"log/slog"

	custom_errors "portfolio-api/internal/errors"
	"portfolio-api/internal/model"
)

// RepositoryLister lists the repositories of a GitHub account.
type RepositoryLister interface {
	ListUserRepositories(ctx context.Context, username string) ([]model.Repository, error)
}

// ProjectService serves the enriched project list.
type ProjectService struct {
	source     RepositoryLister
	classifier *Classifier
	username   string
	logger     *slog.Logger
}

// NewProjectService creates a ProjectService for the given GitHub account.
func NewProjectService(source RepositoryLister, classifier *Classifier, username string, logger *slog.Logger) *ProjectService {
	return &ProjectService{
		source:     source,
		classifier: classifier,
		username:   username,
		logger:     logger,
	}
}

// FetchProjects fetches the account's repositories and enriches them. Upstream errors are
// not returned: the fixed fallback list is served instead.
func (s *ProjectService) FetchProjects(ctx context.Context) []model.Project {
	repos, err := s.source.ListUserRepositories(ctx, s.username)
	if err != nil {
		s.logger.Warn("Failed to fetch repositories, serving fallback projects", "username", s.username, "error", err)
		return FallbackProjects()
	}
	projects := s.classifier.Enrich(repos)
	s.logger.Debug("Fetched projects", "fetched", len(repos), "kept", len(projects))
	return projects
}

// ProjectsByCategory returns the projects in category; an empty category returns all of them.
func (s *ProjectService) ProjectsByCategory(ctx context.Context, category string) ([]model.Project, error) {
	if category != "" && !model.Category(category).Valid() {
		return nil, &custom_errors.InvalidParamError{Param: "category", Reason: "unknown category"}
	}
	projects := s.FetchProjects(ctx)
	if category == "" {
		return projects, nil
	}
	filtered := make([]model.Project, 0, len(projects))
	for _, p := range projects {
		if p.Category == model.Category(category) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// FeaturedProjects returns only the featured projects.
func (s *ProjectService) FeaturedProjects(ctx context.Context) []model.Project {
	projects := s.FetchProjects(ctx)
	featured := make([]model.Project, 0, len(projects))
	for _, p := range projects {
		if p.IsFeatured {
			featured = append(featured, p)
		}
	}
	return featured
}
