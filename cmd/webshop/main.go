// Package main is the entry point for the webshop API server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"webshop/internal/basket"
	"webshop/internal/cache"
	"webshop/internal/catalog"
	"webshop/internal/config"
	"webshop/internal/database"
	"webshop/internal/handlers"
	"webshop/internal/logger"
	"webshop/internal/middleware"
	"webshop/internal/overlay"
	"webshop/internal/router"
	"webshop/internal/store"
)

func main() {
	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		logger.Logger().Fatal().Err(err).Msg("failed to load configuration")
	}

	// Human-readable console output in development, JSON elsewhere.
	logger.Init(cfg.LogLevel, cfg.IsDev())
	log := logger.Logger()

	log.Info().
		Str("env", cfg.Env).
		Str("addr", cfg.Addr()).
		Str("language", cfg.Language).
		Msg("configuration loaded")

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Valkey is optional; without it every lookup goes to PostgreSQL.
	var translationCache *cache.TranslationCache
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		log.Warn().Err(err).Msg("valkey unavailable, translation cache disabled")
	} else {
		defer valkeyClient.Close()
		translationCache = cache.NewTranslationCache(valkeyClient, cfg.TranslationCacheTTL)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		ctx := context.Background()
		if err := database.Seed(ctx, db, cfg.Language); err != nil {
			log.Fatal().Err(err).Msg("failed to seed database")
		}
		// Misses cached before the seed ran would hide the seeded values.
		if translationCache != nil {
			if err := translationCache.InvalidateAll(ctx); err != nil {
				log.Warn().Err(err).Msg("failed to clear translation cache")
			}
		}
	}

	// Only a live cache goes into the interface; a nil pointer would not
	// compare equal to nil there.
	var overlayCache overlay.Cache
	if translationCache != nil {
		overlayCache = translationCache
	}

	translations := store.NewTranslationStore(db)
	resolver := overlay.NewResolver(translations, overlayCache, cfg.Language)

	svc := catalog.NewService(translations, store.NewCategoryStore(db), store.NewProductStore(db), resolver)
	engine := basket.NewEngine(store.NewBasketStore(db), resolver)
	api := handlers.NewAPI(svc, engine, db)

	var limiter *middleware.RateLimiter
	if cfg.RateLimitWrites > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimitWrites, cfg.RateLimitWindow)
		defer limiter.Stop()
	}

	r := router.New(api, limiter)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info().Str("signal", sig.String()).Msg("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		return
	}

	log.Info().Msg("server stopped gracefully")
}
