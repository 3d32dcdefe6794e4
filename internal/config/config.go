// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	AppName         string        `mapstructure:"APP_NAME"`
	AppVersion      string        `mapstructure:"APP_VERSION"`
	HTTPAddr        string        `mapstructure:"HTTP_ADDR"`
	RequestTimeout  time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
	CORSOrigins     []string      `mapstructure:"CORS_ORIGINS"`

	DBURL          string `mapstructure:"DB_URL"`
	MigrationsPath string `mapstructure:"MIGRATIONS_PATH"`

	GithubUsername    string        `mapstructure:"GITHUB_USERNAME"`
	GithubToken       string        `mapstructure:"GITHUB_TOKEN"`
	GithubAPIBase     string        `mapstructure:"GITHUB_API_BASE"`
	GithubTimeout     time.Duration `mapstructure:"GITHUB_TIMEOUT"`
	GithubRatePerHour int           `mapstructure:"GITHUB_RATE_PER_HOUR"`

	FeaturedProjects  []string `mapstructure:"FEATURED_PROJECTS"`
	MLProductKeywords []string `mapstructure:"ML_PRODUCT_KEYWORDS"`

	JWKSURL string        `mapstructure:"AUTH_JWKS_URL"`
	JWKSTTL time.Duration `mapstructure:"AUTH_JWKS_TTL"`

	Profile Profile `mapstructure:",squash"`
}

// Profile is the public owner information served by the profile endpoint.
type Profile struct {
	FullName         string `mapstructure:"PROFILE_FULL_NAME"`
	Title            string `mapstructure:"PROFILE_TITLE"`
	Tagline          string `mapstructure:"PROFILE_TAGLINE"`
	Location         string `mapstructure:"PROFILE_LOCATION"`
	Email            string `mapstructure:"PROFILE_EMAIL"`
	Phone            string `mapstructure:"PROFILE_PHONE"`
	GithubURL        string `mapstructure:"PROFILE_GITHUB_URL"`
	LinkedinURL      string `mapstructure:"PROFILE_LINKEDIN_URL"`
	AboutShort       string `mapstructure:"PROFILE_ABOUT_SHORT"`
	AvailableForHire bool   `mapstructure:"PROFILE_AVAILABLE_FOR_HIRE"`
}

var defaults = map[string]any{
	"LOG_LEVEL":            "info",
	"APP_NAME":             "Portfolio API",
	"APP_VERSION":          "1.0.0",
	"HTTP_ADDR":            ":8000",
	"REQUEST_TIMEOUT":      "60s",
	"SHUTDOWN_TIMEOUT":     "10s",
	"CORS_ORIGINS":         []string{"http://localhost:5173", "http://localhost:3000"},
	"DB_URL":               "",
	"MIGRATIONS_PATH":      "file://migrations",
	"GITHUB_USERNAME":      "Aashish-Op",
	"GITHUB_TOKEN":         "",
	"GITHUB_API_BASE":      "https://api.github.com/",
	"GITHUB_TIMEOUT":       "30s",
	"GITHUB_RATE_PER_HOUR": 0,
	"FEATURED_PROJECTS":    []string{"drglance", "backendvidtube", "haven-realty", "disaster-relief", "sih"},
	"ML_PRODUCT_KEYWORDS":  []string{"glance"},
	"AUTH_JWKS_URL":        "",
	"AUTH_JWKS_TTL":        "15m",

	"PROFILE_FULL_NAME":          "Ashish Prasad Gupta",
	"PROFILE_TITLE":              "Full Stack Developer & CS Student",
	"PROFILE_TAGLINE":            "Building the future, one commit at a time",
	"PROFILE_LOCATION":           "New Delhi, India",
	"PROFILE_EMAIL":              "",
	"PROFILE_PHONE":              "",
	"PROFILE_GITHUB_URL":         "https://github.com/Aashish-Op",
	"PROFILE_LINKEDIN_URL":       "",
	"PROFILE_ABOUT_SHORT":        "Computer Science student working across full-stack development, IoT, and machine learning.",
	"PROFILE_AVAILABLE_FOR_HIRE": true,
}

// LoadConfig reads configuration from an optional .env file in dir and the environment.
// Environment variables take precedence over the file.
func LoadConfig(dir string) (Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// Load from .env file if it exists
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read .env file: %w", err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks required fields and value ranges.
func (c Config) Validate() error {
	if c.DBURL == "" {
		return errors.New("DB_URL is a required configuration field")
	}
	if c.GithubUsername == "" {
		return errors.New("GITHUB_USERNAME is a required configuration field")
	}
	if _, err := url.Parse(c.GithubAPIBase); err != nil || c.GithubAPIBase == "" {
		return fmt.Errorf("GITHUB_API_BASE must be a valid URL: %q", c.GithubAPIBase)
	}
	if c.GithubRatePerHour < 0 {
		return errors.New("GITHUB_RATE_PER_HOUR must not be negative")
	}
	if c.RequestTimeout <= 0 {
		return errors.New("REQUEST_TIMEOUT must be positive")
	}
	return nil
}
