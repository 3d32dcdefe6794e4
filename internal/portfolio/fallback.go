// internal/portfolio/fallback.go
package portfolio

import "portfolio-api/internal/model"

// FallbackProjects is served when GitHub cannot be reached, so the project list is never empty.
func FallbackProjects() []model.Project {
	return []model.Project{
		{
			GithubID:        "drglance",
			Name:            "DrGlance",
			DisplayName:     "Dr Glance",
			Description:     ptr("Healthcare IoT platform with ESP32-CAM and ML integration"),
			GithubURL:       "https://github.com/Aashish-Op/DrGlance",
			LiveURL:         ptr("https://drglance.vercel.app"),
			PrimaryLanguage: ptr("JavaScript"),
			Topics:          []string{"healthcare", "iot", "ml"},
			Category:        model.CategoryMLAI,
			IsFeatured:      true,
		},
		{
			GithubID:        "backendvidtube",
			Name:            "Backendvidtube",
			DisplayName:     "Backend Vidtube",
			Description:     ptr("YouTube-like video platform backend with Node.js"),
			GithubURL:       "https://github.com/Aashish-Op/Backendvidtube",
			PrimaryLanguage: ptr("JavaScript"),
			Topics:          []string{"backend", "nodejs"},
			Category:        model.CategoryBackend,
			IsFeatured:      true,
		},
		{
			GithubID:        "haven-realty",
			Name:            "Haven-Realty-Co--Real-Estate-Website",
			DisplayName:     "Haven Realty Co",
			Description:     ptr("Responsive real estate platform"),
			GithubURL:       "https://github.com/Aashish-Op/Haven-Realty-Co--Real-Estate-Website",
			LiveURL:         ptr("https://heavenrealityco.vercel.app"),
			PrimaryLanguage: ptr("HTML"),
			Topics:          []string{"real-estate", "responsive"},
			Category:        model.CategoryFrontend,
			IsFeatured:      true,
		},
	}
}

func ptr[T any](v T) *T { return &v }
