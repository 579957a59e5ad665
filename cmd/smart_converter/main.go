package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/SscSPs/smart_converter/internal/adapters/filecache"
	"github.com/SscSPs/smart_converter/internal/adapters/ratesapi"
	"github.com/SscSPs/smart_converter/internal/catalog"
	portsrepo "github.com/SscSPs/smart_converter/internal/core/ports/repositories"
	"github.com/SscSPs/smart_converter/internal/core/services"
	"github.com/SscSPs/smart_converter/internal/handlers"
	"github.com/SscSPs/smart_converter/internal/middleware"
	"github.com/SscSPs/smart_converter/internal/platform/config"
	"github.com/SscSPs/smart_converter/internal/utils"
	"github.com/SscSPs/smart_converter/pkg/units"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title Smart Converter API
// @version 1.0
// @description Unit, currency and zakat conversions with a per-session history.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	registry := units.Default()
	cat, err := catalog.Default()
	if err != nil {
		logger.Error("Failed to load catalog", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := cat.Validate(registry); err != nil {
		logger.Error("Catalog does not match unit registry", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := portsrepo.RepositoryProvider{
		RateCache:    filecache.NewRateFileRepository(cfg.RatesCacheFile),
		RateProvider: ratesapi.NewClient(cfg.RatesAPIURL, cfg.RatesBaseCurrency,
			ratesapi.WithTimeout(cfg.RatesFetchTimeout),
			ratesapi.WithRetries(cfg.RatesFetchRetries, cfg.RatesRetryBackoff),
			ratesapi.WithRatePerSecond(cfg.RatesFetchPerSecond),
		),
	}
	serviceContainer := services.NewServiceContainer(cfg, repos, registry, cat)

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	ipLimiter, err := middleware.NewMemoryLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(middleware.Session(handlers.SessionConfigFromConfig(cfg))...)
	r.Use(middleware.RateLimit(ipLimiter))
	if corsHandler := newCORS(cfg.CORSAllowedOrigins); corsHandler != nil {
		r.Use(corsHandler)
	}
	r.Use(middleware.PosthogMiddleware(posthogClient))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

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
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
}

// newCORS returns nil when no origins are configured.
func newCORS(origins []string) gin.HandlerFunc {
	if len(origins) == 0 {
		return nil
	}
	corsCfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if slices.Contains(origins, "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
		corsCfg.AllowCredentials = true
	}
	return cors.New(corsCfg)
}
