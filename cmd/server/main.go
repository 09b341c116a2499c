package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"lingo/config"
	"lingo/internal/handlers"
	"lingo/internal/i18n"
	"lingo/internal/logger"
	"lingo/internal/metrics"
	"lingo/internal/version"
	"lingo/middleware"
)

func buildRouter(locales *i18n.Locales, registry *prometheus.Registry) *chi.Mux {
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(metrics.LocaleRequests)
	registry.MustRegister(metrics.NewCatalogCollector(locales))

	r := chi.NewRouter()

	// Middleware must be registered before any routes
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.SecurityHeaders)
	r.Use(locales.Middleware)

	r.Get("/", handlers.Page())
	r.Get("/api/health", handlers.HealthCheck)
	r.Get("/api/ready", handlers.ReadinessCheck)
	r.Get("/api/version", handlers.Version)
	r.Get("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}).ServeHTTP)
	handlers.RegisterLocaleRoutes(r, locales)

	return r
}

func main() {
	cfg, cfgErr := config.Load()

	logger.Init(logger.Options{
		Level:    cfg.LogLevel,
		Format:   cfg.LogFormat,
		Output:   cfg.LogOutput,
		FilePath: cfg.LogFilePath,
	})
	log := logger.Get()

	if cfgErr != nil {
		log.Fatal().Err(cfgErr).Msg("Invalid configuration")
	}

	log.Info().
		Str("version", version.Version).
		Str("env", string(cfg.Env)).
		Msg("lingo starting")

	locales, localesErr := i18n.New(cfg.I18n.LocaleDir, cfg.I18n.SupportedLocales, cfg.I18n.DefaultLocale)
	if localesErr != nil {
		log.Fatal().Err(localesErr).Msg("Failed to initialize locale registry")
	}

	log.Info().
		Str("locale_dir", cfg.I18n.LocaleDir).
		Strs("supported_locales", cfg.I18n.SupportedLocales).
		Str("default_locale", cfg.I18n.DefaultLocale).
		Msg("Locale registry initialized")

	r := buildRouter(locales, prometheus.NewRegistry())

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
