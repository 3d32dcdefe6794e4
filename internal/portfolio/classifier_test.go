// internal/portfolio/classifier_test.go
package portfolio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"portfolio-api/internal/model"
)

var defaultFeatured = []string{"drglance", "backendvidtube", "haven-realty", "disaster-relief", "sih"}

func newTestClassifier() *Classifier {
	return NewClassifier(defaultFeatured, []string{"glance"})
}

func TestDisplayName(t *testing.T) {
	tests := map[string]string{
		"haven-realty_co":   "Haven Realty Co",
		"DrGlance":          "Drglance",
		"my--repo":          "My Repo",
		"_leading-trailing": "Leading Trailing",
		"ALL_CAPS":          "All Caps",
		"":                  "",
	}
	for in, want := range tests {
		got := DisplayName(in)
		assert.Equal(t, want, got, "DisplayName(%q)", in)
		assert.NotContains(t, got, "-")
		assert.NotContains(t, got, "_")
		for _, word := range strings.Fields(got) {
			assert.Equal(t, strings.ToUpper(word[:1]), word[:1])
		}
	}
}

func TestClassifier_Category(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		name     string
		language string
		want     model.Category
	}{
		{"backend-ai-tool", "Python", model.CategoryBackend},
		{"rest-api", "Go", model.CategoryBackend},
		{"game-server", "", model.CategoryBackend},
		{"portfolio-website", "TypeScript", model.CategoryFrontend},
		{"UI-kit", "", model.CategoryFrontend},
		{"leetcode-solutions", "C++", model.CategoryDSA},
		{"Algorithms", "Java", model.CategoryDSA},
		{"html-ml-demo", "Python", model.CategoryMLAI},
		{"DrGlance", "JavaScript", model.CategoryMLAI},
		{"snake", "C", model.CategoryDSA},
		{"snake", "c++", model.CategoryDSA},
		{"dotfiles", "Shell", model.CategoryPersonal},
		{"notes", "", model.CategoryPersonal},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.Category(tt.name, tt.language), "Category(%q, %q)", tt.name, tt.language)
	}
}

func TestClassifier_IsFeatured(t *testing.T) {
	c := newTestClassifier()

	assert.True(t, c.IsFeatured("DrGlance"))
	assert.True(t, c.IsFeatured("Haven-Realty-Co--Real-Estate-Website"))
	assert.True(t, c.IsFeatured("SIH-2024"))
	assert.False(t, c.IsFeatured("dotfiles"))

	custom := NewClassifier([]string{"Dotfiles"}, nil)
	assert.True(t, custom.IsFeatured("my-dotfiles"))
	assert.False(t, custom.IsFeatured("DrGlance"))
}

func TestClassifier_Enrich(t *testing.T) {
	c := newTestClassifier()
	desc := "A description"
	empty := ""
	home := "https://example.com"

	repos := []model.Repository{
		{GithubRepoID: 1, Name: "described", Description: &desc},
		{GithubRepoID: 2, Name: "forked-but-popular", Description: &desc, StarsCount: 100, Topics: []string{"x"}, IsFork: true},
		{GithubRepoID: 3, Name: "bare", Description: &empty},
		{GithubRepoID: 4, Name: "tagged", Topics: []string{"go"}},
		{GithubRepoID: 5, Name: "starred", StarsCount: 1},
		{GithubRepoID: 6, Name: "hosted", Homepage: &home},
		{GithubRepoID: 7, Name: "drglance-v2"},
		{GithubRepoID: 8, Name: "sih-fork", IsFork: true},
	}

	projects := c.Enrich(repos)

	names := make([]string, len(projects))
	for i, p := range projects {
		names[i] = p.Name
	}
	assert.Equal(t, []string{"described", "tagged", "starred", "hosted", "drglance-v2"}, names)
}

func TestClassifier_Classify(t *testing.T) {
	c := newTestClassifier()
	lang := "Go"

	p := c.Classify(model.Repository{
		GithubRepoID: 42,
		Name:         "backend_service",
		URL:          "https://github.com/u/backend_service",
		Language:     &lang,
		StarsCount:   3,
		ForksCount:   1,
	})

	assert.Equal(t, "42", p.GithubID)
	assert.Equal(t, "Backend Service", p.DisplayName)
	assert.Equal(t, model.CategoryBackend, p.Category)
	assert.False(t, p.IsFeatured)
	assert.Equal(t, []string{}, p.Topics)
	assert.Nil(t, p.UpdatedAt)
	assert.True(t, p.Category.Valid())

	// Classification is idempotent.
	assert.Equal(t, p, c.Classify(model.Repository{
		GithubRepoID: 42,
		Name:         "backend_service",
		URL:          "https://github.com/u/backend_service",
		Language:     &lang,
		StarsCount:   3,
		ForksCount:   1,
	}))
}
