// internal/portfolio/static.go
package portfolio

import "portfolio-api/internal/config"

type Profile struct {
	FullName           string `json:"full_name"`
	Title              string `json:"title"`
	Tagline            string `json:"tagline"`
	Location           string `json:"location"`
	Email              string `json:"email,omitempty"`
	Phone              string `json:"phone,omitempty"`
	GithubURL          string `json:"github_url"`
	LinkedinURL        string `json:"linkedin_url,omitempty"`
	AboutShort         string `json:"about_short"`
	IsAvailableForHire bool   `json:"is_available_for_hire"`
}

// NewProfile builds the public profile from configuration.
func NewProfile(c config.Profile) Profile {
	return Profile{
		FullName:           c.FullName,
		Title:              c.Title,
		Tagline:            c.Tagline,
		Location:           c.Location,
		Email:              c.Email,
		Phone:              c.Phone,
		GithubURL:          c.GithubURL,
		LinkedinURL:        c.LinkedinURL,
		AboutShort:         c.AboutShort,
		IsAvailableForHire: c.AvailableForHire,
	}
}

type Skill struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Proficiency int    `json:"proficiency"`
	Color       string `json:"color,omitempty"`
}

type SkillGroups struct {
	Languages  []Skill `json:"languages"`
	Frameworks []Skill `json:"frameworks"`
	Databases  []Skill `json:"databases"`
	Tools      []Skill `json:"tools"`
	Cloud      []Skill `json:"cloud"`
}

type Experience struct {
	CompanyName string   `json:"company_name"`
	RoleTitle   string   `json:"role_title"`
	Description string   `json:"description,omitempty"`
	Highlights  []string `json:"highlights"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date,omitempty"`
	IsCurrent   bool     `json:"is_current"`
	Location    string   `json:"location,omitempty"`
}

type Certificate struct {
	Title         string `json:"title"`
	Issuer        string `json:"issuer"`
	IssueDate     string `json:"issue_date"`
	CredentialURL string `json:"credential_url,omitempty"`
}

func Skills() SkillGroups {
	return SkillGroups{
		Languages: []Skill{
			{"JavaScript", "language", 90, "#F7DF1E"},
			{"Python", "language", 85, "#3776AB"},
			{"TypeScript", "language", 75, "#3178C6"},
			{"C++", "language", 80, "#00599C"},
			{"C", "language", 70, "#A8B9CC"},
		},
		Frameworks: []Skill{
			{"React", "framework", 85, "#61DAFB"},
			{"Node.js", "framework", 80, "#339933"},
			{"Express.js", "framework", 80, "#000000"},
			{"Tailwind CSS", "framework", 90, "#06B6D4"},
		},
		Databases: []Skill{
			{"MongoDB", "database", 80, "#47A248"},
			{"PostgreSQL", "database", 65, "#4169E1"},
		},
		Tools: []Skill{
			{"Git", "tool", 90, "#F05032"},
			{"VS Code", "tool", 95, "#007ACC"},
			{"Docker", "tool", 60, "#2496ED"},
		},
		Cloud: []Skill{
			{"Vercel", "cloud", 80, "#000000"},
			{"AWS", "cloud", 55, "#FF9900"},
		},
	}
}

func Experiences() []Experience {
	return []Experience{
		{
			CompanyName: "Physics Wallah",
			RoleTitle:   "Community Admin Intern",
			Description: "Discord server management and bot development",
			Highlights: []string{
				"Integrated Study Lion Bot for easier navigation",
				"Implemented Astro Bot, Music Bot, Study Wallah Bot",
				"Managed community of 10,000+ active users",
			},
			StartDate: "July 2022",
			EndDate:   "July 2023",
			Location:  "Remote",
		},
	}
}

func Certificates() []Certificate {
	return []Certificate{
		{Title: "AI and ML Workshop", Issuer: "IIT Delhi - Rendezvous", IssueDate: "October 2024"},
		{Title: "AWS Gen AI", Issuer: "Aspireforher", IssueDate: "October 2024"},
	}
}
