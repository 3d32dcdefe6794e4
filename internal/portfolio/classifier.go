// internal/portfolio/classifier.go
package portfolio

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"portfolio-api/internal/model"
)

type categoryRule struct {
	category model.Category
	keywords []string
}

// Classifier derives presentation fields from raw repositories.
// It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	featured []string
	rules    []categoryRule
}

// NewClassifier builds a Classifier. featured holds the name fragments of featured projects;
// productKeywords are extra name fragments that mark a project as ml_ai.
func NewClassifier(featured, productKeywords []string) *Classifier {
	mlKeywords := append([]string{"ml", "ai"}, lowerAll(productKeywords)...)
	return &Classifier{
		featured: lowerAll(featured),
		// Order matters: the first matching rule wins.
		rules: []categoryRule{
			{model.CategoryBackend, []string{"backend", "api", "server"}},
			{model.CategoryFrontend, []string{"frontend", "ui", "website"}},
			{model.CategoryDSA, []string{"dsa", "leetcode", "algorithm"}},
			{model.CategoryMLAI, mlKeywords},
		},
	}
}

// Classify enriches a single repository. It never fails; missing fields degrade to zero values.
func (c *Classifier) Classify(repo model.Repository) model.Project {
	p := model.Project{
		GithubID:        strconv.FormatInt(repo.GithubRepoID, 10),
		Name:            repo.Name,
		DisplayName:     DisplayName(repo.Name),
		Description:     repo.Description,
		GithubURL:       repo.URL,
		LiveURL:         repo.Homepage,
		PrimaryLanguage: repo.Language,
		Topics:          repo.Topics,
		StarsCount:      repo.StarsCount,
		ForksCount:      repo.ForksCount,
		IsForked:        repo.IsFork,
		IsFeatured:      c.IsFeatured(repo.Name),
		Category:        c.Category(repo.Name, deref(repo.Language)),
	}
	if p.Topics == nil {
		p.Topics = []string{}
	}
	if !repo.UpdatedAt.IsZero() {
		updated := repo.UpdatedAt
		p.UpdatedAt = &updated
	}
	return p
}

// Enrich drops unimportant repositories and classifies the rest, keeping their order.
func (c *Classifier) Enrich(repos []model.Repository) []model.Project {
	projects := make([]model.Project, 0, len(repos))
	for _, repo := range repos {
		if !c.IsImportant(repo) {
			continue
		}
		projects = append(projects, c.Classify(repo))
	}
	return projects
}

// IsImportant reports whether a repository is worth displaying.
// Forks never are.
func (c *Classifier) IsImportant(repo model.Repository) bool {
	if repo.IsFork {
		return false
	}
	return c.IsFeatured(repo.Name) ||
		deref(repo.Description) != "" ||
		len(repo.Topics) > 0 ||
		repo.StarsCount > 0 ||
		deref(repo.Homepage) != ""
}

// IsFeatured reports whether the name contains any featured fragment, ignoring case.
func (c *Classifier) IsFeatured(name string) bool {
	return containsAny(strings.ToLower(name), c.featured)
}

// Category returns the first matching category for a repository name and primary language.
func (c *Classifier) Category(name, language string) model.Category {
	lowerName := strings.ToLower(name)
	for _, rule := range c.rules {
		if containsAny(lowerName, rule.keywords) {
			return rule.category
		}
	}
	switch strings.ToLower(language) {
	case "c", "c++":
		return model.CategoryDSA
	}
	return model.CategoryPersonal
}

// DisplayName turns a repository name into a human title: separators become spaces
// and every word is capitalized, e.g. "haven-realty_co" becomes "Haven Realty Co".
func DisplayName(name string) string {
	cleaned := strings.NewReplacer("-", " ", "_", " ").Replace(name)
	words := strings.Fields(cleaned)
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

func capitalize(word string) string {
	first, size := utf8.DecodeRuneInString(word)
	return string(unicode.ToUpper(first)) + strings.ToLower(word[size:])
}

func containsAny(s string, fragments []string) bool {
	for _, f := range fragments {
		if f != "" && strings.Contains(s, f) {
			return true
		}
	}
	return false
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
