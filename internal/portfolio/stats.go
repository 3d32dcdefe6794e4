// internal/portfolio/stats.go
package portfolio

import (
	"context"
	"fmt"
	"slices"

	"portfolio-api/internal/model"
)

const topLanguages = 5

// ProjectFetcher returns the current project list.
type ProjectFetcher interface {
	FetchProjects(ctx context.Context) []model.Project
}

// VisitTotaler returns the all-time visit count.
type VisitTotaler interface {
	TotalVisits(ctx context.Context) (int64, error)
}

// MessageCounter returns the number of stored contact messages.
type MessageCounter interface {
	Count(ctx context.Context) (int64, error)
}

// StatsService combines projects, visitor and contact data into a single summary.
type StatsService struct {
	projects ProjectFetcher
	visits   VisitTotaler
	messages MessageCounter
}

// NewStatsService creates a new StatsService.
func NewStatsService(projects ProjectFetcher, visits VisitTotaler, messages MessageCounter) *StatsService {
	return &StatsService{projects: projects, visits: visits, messages: messages}
}

// Stats builds the portfolio summary.
func (s *StatsService) Stats(ctx context.Context) (model.PortfolioStats, error) {
	projects := s.projects.FetchProjects(ctx)

	visits, err := s.visits.TotalVisits(ctx)
	if err != nil {
		return model.PortfolioStats{}, fmt.Errorf("failed to count visits: %w", err)
	}
	messages, err := s.messages.Count(ctx)
	if err != nil {
		return model.PortfolioStats{}, fmt.Errorf("failed to count messages: %w", err)
	}

	stats := model.PortfolioStats{
		TotalProjects:    len(projects),
		PrimaryLanguages: TopLanguages(projects, topLanguages),
		VisitorsCount:    visits,
		MessagesCount:    messages,
	}
	for _, p := range projects {
		stats.TotalStars += p.StarsCount
		stats.TotalForks += p.ForksCount
	}
	return stats, nil
}

// TopLanguages counts projects per primary language and returns the n most used.
// Ties keep the order in which the languages first appear in projects.
func TopLanguages(projects []model.Project, n int) []model.LanguageCount {
	counts := make([]model.LanguageCount, 0)
	index := make(map[string]int)
	for _, p := range projects {
		lang := deref(p.PrimaryLanguage)
		if lang == "" {
			continue
		}
		if i, ok := index[lang]; ok {
			counts[i].Count++
			continue
		}
		index[lang] = len(counts)
		counts = append(counts, model.LanguageCount{Name: lang, Count: 1})
	}

	slices.SortStableFunc(counts, func(a, b model.LanguageCount) int {
		return b.Count - a.Count
	})
	if len(counts) > n {
		counts = counts[:n]
	}
	return counts
}
