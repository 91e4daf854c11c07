// Package main is the entrypoint for the Inkletter API server.
package main

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/inkletter/inkletter/internal/cache"
	"github.com/inkletter/inkletter/internal/config"
	"github.com/inkletter/inkletter/internal/email"
	"github.com/inkletter/inkletter/internal/handler"
	"github.com/inkletter/inkletter/internal/metrics"
	"github.com/inkletter/inkletter/internal/middleware"
	"github.com/inkletter/inkletter/internal/repository"
	"github.com/inkletter/inkletter/internal/server"
	"github.com/inkletter/inkletter/internal/service"
	"github.com/inkletter/inkletter/internal/token"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg)

	// Initialize database
	repo, err := repository.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error(
			"failed to connect to database",
			slog.String("error", sanitizeError(err, cfg.DatabaseURL)),
			slog.String("database_url", redactURL(cfg.DatabaseURL)),
		)
		os.Exit(1)
	}
	defer repo.Close()
	logger.Info("connected to database")

	// Initialize cache
	cacheClient, err := cache.New(ctx, cfg.RedisURL, cfg.RedisPoolSize)
	if err != nil {
		logger.Error(
			"failed to connect to Redis",
			slog.String("error", sanitizeError(err, cfg.RedisURL)),
			slog.String("redis_url", redactURL(cfg.RedisURL)),
		)
		os.Exit(1)
	}
	defer cacheClient.Close()
	logger.Info("connected to Redis")

	// Initialize email sender
	sender := buildEmailSender(cfg, logger)

	// Initialize services
	metricsRecorder := metrics.NewNoop()
	issuer := token.NewIssuer()
	subscriptionService := service.NewSubscriptionService(repo, issuer, sender, cfg.BaseURL, metricsRecorder)
	newsletterService := service.NewNewsletterService(repo, sender, logger, metricsRecorder)

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(repo, cacheClient)
	subscriptionHandler := handler.NewSubscriptionHandler(subscriptionService, logger)
	newsletterHandler := handler.NewNewsletterHandler(newsletterService, logger)

	// Setup router
	r := setupRouter(healthHandler, subscriptionHandler, newsletterHandler, repo, cacheClient, cfg, logger)

	// Create and run server
	srv := server.New(
		r,
		cfg.AppPort,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)

	logger.Info("starting server",
		"port", cfg.AppPort,
		"base_url", cfg.BaseURL,
		"env", cfg.AppEnv,
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	var h slog.Handler

	level := parseLogLevel(cfg.LogLevel)

	opts := &slog.HandlerOptions{
		Level: level,
	}

	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// buildEmailSender selects the delivery backend. Without an API token
// the service falls back to logging outbound mail, which keeps local
// development working without credentials.
func buildEmailSender(cfg *config.Config, logger *slog.Logger) email.Sender {
	if cfg.EmailServerToken == "" {
		if cfg.IsProduction() {
			logger.Error("EMAIL_SERVER_TOKEN is required in production")
			os.Exit(1)
		}
		logger.Warn("no email API token configured, outbound email will be logged only")
		return email.NewLogSender(logger)
	}
	return email.NewClient(cfg.EmailBaseURL, cfg.EmailServerToken, cfg.EmailSender, cfg.EmailTimeout)
}

// setupRouter configures the chi router with all routes and middleware.
func setupRouter(
	healthHandler *handler.HealthHandler,
	subscriptionHandler *handler.SubscriptionHandler,
	newsletterHandler *handler.NewsletterHandler,
	repo *repository.Repository,
	cacheClient *cache.Cache,
	cfg *config.Config,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(chimiddleware.RequestSize(cfg.MaxRequestBodySize))

	// Health endpoints (no auth required)
	r.Get("/healthz", healthHandler.Healthz)
	r.Get("/readyz", healthHandler.Readyz)

	rateLimitCfg := middleware.RateLimitConfig{
		Logger:           logger,
		Cache:            cacheClient,
		SubscribeEnabled: cfg.RateLimitSubscribeEnabled,
		SubscribeRPS:     cfg.RateLimitSubscribeRPS,
		SubscribeBurst:   cfg.RateLimitSubscribeBurst,
	}

	authCfg := middleware.BasicAuthConfig{
		Logger: logger,
		Store:  repo,
		Realm:  "publish",
	}

	// Public subscriber lifecycle
	r.Route("/subscriptions", func(r chi.Router) {
		r.With(middleware.RateLimitSubscribe(rateLimitCfg)).Post("/", subscriptionHandler.Subscribe)
		r.Get("/confirm", subscriptionHandler.Confirm)
	})

	// Publishing requires Basic credentials
	r.With(middleware.BasicAuth(authCfg)).Post("/newsletters", newsletterHandler.Publish)

	// 404 and 405 handlers
	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	return r
}

var passwordPattern = regexp.MustCompile(`(?i)password=[^\s]+`)

func redactURL(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "[redacted]"
	}

	if parsed.User != nil {
		username := parsed.User.Username()
		if username == "" {
			parsed.User = url.User("redacted")
		} else {
			parsed.User = url.User(username)
		}
	}

	return parsed.String()
}

func sanitizeError(err error, secrets ...string) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		redacted := redactURL(secret)
		if redacted == "" {
			redacted = "[redacted]"
		}
		msg = strings.ReplaceAll(msg, secret, redacted)
	}

	return passwordPattern.ReplaceAllString(msg, "password=redacted")
}
