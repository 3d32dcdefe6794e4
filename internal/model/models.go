// internal/model/models.go
package model

import "time"

// Repository is a raw repository record as fetched from GitHub.
type Repository struct {
	GithubRepoID int64
	Name         string
	Description  *string
	URL          string
	Homepage     *string
	Language     *string
	Topics       []string
	StarsCount   int
	ForksCount   int
	IsFork       bool
	UpdatedAt    time.Time
}

// Category is the display bucket of a project.
type Category string

const (
	CategoryFullStack Category = "full_stack"
	CategoryBackend   Category = "backend"
	CategoryFrontend  Category = "frontend"
	CategoryMLAI      Category = "ml_ai"
	CategoryIoT       Category = "iot"
	CategoryDSA       Category = "dsa"
	CategoryPersonal  Category = "personal"
)

// Categories lists every valid category.
var Categories = []Category{
	CategoryFullStack,
	CategoryBackend,
	CategoryFrontend,
	CategoryMLAI,
	CategoryIoT,
	CategoryDSA,
	CategoryPersonal,
}

// Valid reports whether c is one of Categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Project is a repository enriched with presentation fields.
type Project struct {
	GithubID        string     `json:"github_id"`
	Name            string     `json:"name"`
	DisplayName     string     `json:"display_name"`
	Description     *string    `json:"description"`
	GithubURL       string     `json:"github_url"`
	LiveURL         *string    `json:"live_url"`
	PrimaryLanguage *string    `json:"primary_language"`
	Topics          []string   `json:"topics"`
	StarsCount      int        `json:"stars_count"`
	ForksCount      int        `json:"forks_count"`
	IsForked        bool       `json:"is_forked"`
	IsFeatured      bool       `json:"is_featured"`
	Category        Category   `json:"category"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

// Visit is one page view to be recorded.
type Visit struct {
	IP        string
	UserAgent string
	Referrer  string
	Page      string
	UserID    *int64
}

// VisitSnapshot is the state of the counters right after a visit was recorded.
type VisitSnapshot struct {
	Date       time.Time `json:"date"`
	TodayCount int64     `json:"today_count"`
	TotalCount int64     `json:"total_count"`
}

// RecentVisit is a visitor log entry as exposed by the stats endpoint.
type RecentVisit struct {
	IP            string    `json:"ip"`
	Page          string    `json:"page"`
	Time          time.Time `json:"time"`
	Authenticated bool      `json:"authenticated"`
}

// VisitorStats summarizes the whole visitor log.
type VisitorStats struct {
	TotalVisitors         int64         `json:"total_visitors"`
	UniqueVisitors        int64         `json:"unique_visitors"`
	AuthenticatedVisitors int64         `json:"authenticated_visitors"`
	RecentVisitors        []RecentVisit `json:"recent_visitors"`
}

// DayStat is one day counter. Unique is fixed at 1 when the day is created;
// DistinctIPs is the number of distinct addresses actually seen that day.
type DayStat struct {
	Date        string `json:"date"`
	Count       int64  `json:"count"`
	Unique      int64  `json:"unique"`
	DistinctIPs int64  `json:"distinct_ips"`
}

// DailyStats is the most recent day counters plus the all-time total.
type DailyStats struct {
	TotalAllTime int64     `json:"total_all_time"`
	DailyStats   []DayStat `json:"daily_stats"`
}

// VisitCount is the all-time and today visit counts.
type VisitCount struct {
	TotalVisitors int64 `json:"total_visitors"`
	TodayVisitors int64 `json:"today_visitors"`
}

// ContactSubmission is the client input of the contact form.
type ContactSubmission struct {
	SenderName  string  `json:"sender_name" validate:"min=2,max=255"`
	SenderEmail string  `json:"sender_email" validate:"required,email"`
	Subject     string  `json:"subject" validate:"min=5,max=500"`
	MessageBody string  `json:"message_body" validate:"min=20,max=5000"`
	CompanyName *string `json:"company_name" validate:"omitempty,max=255"`
}

// ContactMessage is a stored contact message.
type ContactMessage struct {
	ID          int64     `json:"id"`
	UserID      *int64    `json:"user_id"`
	SenderName  string    `json:"sender_name"`
	SenderEmail string    `json:"sender_email"`
	Subject     string    `json:"subject"`
	MessageBody string    `json:"message_body"`
	CompanyName *string   `json:"company_name"`
	IPAddress   string    `json:"ip_address"`
	IsRead      bool      `json:"is_read"`
	IsArchived  bool      `json:"is_archived"`
	CreatedAt   time.Time `json:"created_at"`
}

// User is an authenticated visitor.
type User struct {
	ID         int64     `json:"id"`
	ExternalID string    `json:"clerk_id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	AvatarURL  *string   `json:"avatar_url"`
	IsAdmin    bool      `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}

// LanguageCount is the number of projects using a primary language.
type LanguageCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// PortfolioStats is the combined stats response.
type PortfolioStats struct {
	TotalProjects    int             `json:"total_projects"`
	TotalStars       int             `json:"total_stars"`
	TotalForks       int             `json:"total_forks"`
	PrimaryLanguages []LanguageCount `json:"primary_languages"`
	VisitorsCount    int64           `json:"visitors_count"`
	MessagesCount    int64           `json:"messages_count"`
}
