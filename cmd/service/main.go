// cmd/service/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"portfolio-api/internal/api"
	"portfolio-api/internal/auth"
	"portfolio-api/internal/config"
	"portfolio-api/internal/contact"
	"portfolio-api/internal/database"
	"portfolio-api/internal/github"
	"portfolio-api/internal/portfolio"
	"portfolio-api/internal/visitor"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Application startup error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Initialize structured logger
	logLevel := new(slog.LevelVar)
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	logger := slog.New(handler)
	slog.SetDefault(logger)

	// 2. Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	setLogLevel(cfg.LogLevel, logLevel)
	logger.Info("Configuration loaded successfully", "app", cfg.AppName, "version", cfg.AppVersion)

	// 3. Setup context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// 4. Initialize database connection and run migrations
	dbpool, err := pgxpool.New(ctx, cfg.DBURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer dbpool.Close()
	logger.Info("Database connection established")

	if err := runMigrations(cfg.MigrationsPath, cfg.DBURL); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}
	logger.Info("Database migrations applied successfully")

	// 5. Initialize application components
	store := database.NewStore(dbpool)

	ghClient, err := github.NewClient(cfg.GithubToken, logger,
		github.WithBaseURL(cfg.GithubAPIBase),
		github.WithTimeout(cfg.GithubTimeout),
		github.WithLimiter(github.NewLimiter(cfg.GithubToken != "", cfg.GithubRatePerHour)),
	)
	if err != nil {
		return fmt.Errorf("failed to create github client: %w", err)
	}

	classifier := portfolio.NewClassifier(cfg.FeaturedProjects, cfg.MLProductKeywords)
	projects := portfolio.NewProjectService(ghClient, classifier, cfg.GithubUsername, logger)
	visits := visitor.NewAggregator(store, logger)
	messages := contact.NewService(store, logger)
	stats := portfolio.NewStatsService(projects, visits, messages)

	deps := api.Dependencies{
		AppName:        cfg.AppName,
		AppVersion:     cfg.AppVersion,
		GithubURL:      cfg.Profile.GithubURL,
		CORSOrigins:    cfg.CORSOrigins,
		RequestTimeout: cfg.RequestTimeout,
		Profile:        portfolio.NewProfile(cfg.Profile),
		Projects:       projects,
		Stats:          stats,
		Visitors:       visits,
		Contact:        messages,
		DB:             store,
	}
	if cfg.JWKSURL != "" {
		jwks, err := auth.NewJWKSCache(cfg.JWKSURL, nil, cfg.JWKSTTL, logger)
		if err != nil {
			return fmt.Errorf("failed to create JWKS cache: %w", err)
		}
		deps.Users = auth.NewResolver(auth.NewVerifier(jwks), store, logger)
	} else {
		logger.Warn("AUTH_JWKS_URL is not set, every request is treated as anonymous")
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           api.NewRouter(deps, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 6. Serve until a shutdown signal arrives
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("HTTP server listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutdown signal received. Draining connections.")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("Server stopped")
	return nil
}

func runMigrations(sourceURL, dbURL string) error {
	m, err := migrate.New(sourceURL, dbURL)
	if err != nil {
		return err
	}
	defer m.Close()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func setLogLevel(level string, v *slog.LevelVar) {
	switch level {
	case "debug":
		v.Set(slog.LevelDebug)
	case "warn":
		v.Set(slog.LevelWarn)
	case "error":
		v.Set(slog.LevelError)
	default:
		v.Set(slog.LevelInfo)
	}
}
