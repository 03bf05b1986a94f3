package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/insightbud/internal/adapters/llm"
	portssvc "github.com/SscSPs/insightbud/internal/core/ports/services"
	"github.com/SscSPs/insightbud/internal/core/services"
	"github.com/SscSPs/insightbud/internal/handlers"
	"github.com/SscSPs/insightbud/internal/middleware"
	"github.com/SscSPs/insightbud/internal/platform/config"
	"github.com/SscSPs/insightbud/internal/platform/metrics"
	"github.com/SscSPs/insightbud/internal/repositories/database/pgsql"
	"github.com/SscSPs/insightbud/internal/utils"
	"github.com/SscSPs/insightbud/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/ulule/limiter/v3"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const shutdownTimeout = 15 * time.Second

// @title InsightBud API
// @version 1.0
// @description Personal finance backend: expenses, monthly budget, savings goals, budget rollover and AI insights.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	notifier := pgsql.NewChangeNotifier(dbPool, logger)
	go notifier.Run(ctx)

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	appMetrics := metrics.NewMetrics()
	deps := services.Dependencies{Tracker: posthogClient, Metrics: appMetrics}
	if cfg.LLM.Enabled() {
		client, err := llm.New(llm.Config{
			BaseURL: cfg.LLM.BaseURL,
			Model:   cfg.LLM.Model,
			APIKey:  cfg.LLM.APIKey,
			Timeout: cfg.LLM.Timeout,
		})
		if err != nil {
			logger.Error("Failed to initialize LLM client, AI features will use fallbacks", slog.String("error", err.Error()))
		} else {
			deps.Generator = client
			logger.Info("LLM client initialized", slog.String("model", cfg.LLM.Model))
		}
	}

	repos := pgsql.NewRepositoryProvider(dbPool, notifier)
	container, executor := services.NewServiceContainer(cfg, repos, deps)

	aiLimiter, err := middleware.NewRateLimiter(cfg.LLM.RateLimit)
	if err != nil {
		logger.Error("Invalid AI_RATE_LIMIT", slog.String("rate", cfg.LLM.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}

	r := newRouter(cfg, logger, container, aiLimiter, appMetrics, posthogClient)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	// Ends open surplus streams before the server waits on them
	notifier.Close()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
	executor.Close()
	logger.Info("Server stopped")
}

func newRouter(
	cfg *config.Config,
	logger *slog.Logger,
	container *portssvc.ServiceContainer,
	aiLimiter *limiter.Limiter,
	appMetrics *metrics.Metrics,
	posthogClient *utils.PosthogClientWrapper,
) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, metrics)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), appMetrics.Middleware())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = []string{cfg.FrontendBaseURL}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", "X-Request-ID")
	corsCfg.ExposeHeaders = []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"}
	r.Use(cors.New(corsCfg))
	r.Use(middleware.PosthogMiddleware(posthogClient))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	handlers.RegisterRoutes(r, cfg, container, aiLimiter)
	return r
}

// runMigrations applies all pending "up" migrations from cfg.MigrationsPath.
func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...")
	// Using pgx/v5/stdlib driver to be compatible with the main pool
	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithDatabaseInstance(cfg.MigrationsPath, "postgres", driver)
	if err != nil {
		return err
	}

	upErr := m.Up()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return upErr
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if errors.Is(upErr, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
