// internal/github/client.go
package github

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"portfolio-api/internal/model"
)

// ErrRateLimited is returned when the client-side request budget is exhausted.
var ErrRateLimited = errors.New("github request budget exhausted")

const (
	authenticatedPerHour   = 5000
	unauthenticatedPerHour = 60
)

// NewLimiter returns a limiter spreading perHour requests over an hour, with the whole hourly
// budget available as burst. A non-positive perHour picks GitHub's documented quota.
func NewLimiter(authenticated bool, perHour int) *rate.Limiter {
	if perHour <= 0 {
		perHour = unauthenticatedPerHour
		if authenticated {
			perHour = authenticatedPerHour
		}
	}
	return rate.NewLimiter(rate.Every(time.Hour/time.Duration(perHour)), perHour)
}

// Client is a wrapper around the go-github client.
type Client struct {
	gh      *github.Client
	limiter *rate.Limiter
	logger  *slog.Logger
}

type options struct {
	baseURL string
	timeout time.Duration
	limiter *rate.Limiter
}

// Option configures a Client.
type Option func(*options)

// WithBaseURL points the client at another API root, such as a test server.
func WithBaseURL(u string) Option {
	return func(o *options) { o.baseURL = u }
}

// WithTimeout bounds every HTTP round trip.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithLimiter replaces the default request limiter.
func WithLimiter(l *rate.Limiter) Option {
	return func(o *options) { o.limiter = l }
}

// NewClient creates and configures a new Client instance.
// A non-empty token is sent as a bearer token on every request.
func NewClient(token string, logger *slog.Logger, opts ...Option) (*Client, error) {
	o := options{timeout: 30 * time.Second}
	for _, opt := range opts {
		opt(&o)
	}

	httpClient := &http.Client{Timeout: o.timeout}
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
		httpClient.Timeout = o.timeout
	}

	gh := github.NewClient(httpClient)
	if o.baseURL != "" {
		base, err := url.Parse(o.baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid github base url %q: %w", o.baseURL, err)
		}
		if !strings.HasSuffix(base.Path, "/") {
			base.Path += "/"
		}
		gh.BaseURL = base
	}

	if o.limiter == nil {
		o.limiter = NewLimiter(token != "", 0)
	}

	return &Client{
		gh:      gh,
		limiter: o.limiter,
		logger:  logger.With("component", "github"),
	}, nil
}

// ListUserRepositories fetches every public repository of username, most recently updated first.
// It handles API pagination transparently.
func (c *Client) ListUserRepositories(ctx context.Context, username string) ([]model.Repository, error) {
	var all []model.Repository

	opts := &github.RepositoryListByUserOptions{
		Sort: "updated",
		ListOptions: github.ListOptions{
			PerPage: 100, // Max per page
		},
	}

	for {
		if !c.limiter.Allow() {
			return nil, ErrRateLimited
		}

		c.logger.Debug("Fetching repositories page", "username", username, "page", opts.Page)

		repos, resp, err := c.gh.Repositories.ListByUser(ctx, username, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list repositories for %s: %w", username, err)
		}

		for _, r := range repos {
			all = append(all, toInternalRepository(r))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}

// toInternalRepository translates a github.Repository object to our internal model.Repository.
func toInternalRepository(r *github.Repository) model.Repository {
	topics := r.Topics
	if topics == nil {
		topics = []string{}
	}
	return model.Repository{
		GithubRepoID: r.GetID(),
		Name:         r.GetName(),
		Description:  nonEmpty(r.Description),
		URL:          r.GetHTMLURL(),
		Homepage:     nonEmpty(r.Homepage),
		Language:     nonEmpty(r.Language),
		Topics:       topics,
		StarsCount:   r.GetStargazersCount(),
		ForksCount:   r.GetForksCount(),
		IsFork:       r.GetFork(),
		UpdatedAt:    r.GetUpdatedAt().Time,
	}
}

// nonEmpty maps pointers to empty strings to nil.
func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
