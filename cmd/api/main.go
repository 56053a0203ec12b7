// ABOUTME: Main entry point for the arXiv digest API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"arxiv-digest-api/api"
	"arxiv-digest-api/api/handlers"
	"arxiv-digest-api/core/dataset"
	"arxiv-digest-api/core/feed"
	"arxiv-digest-api/core/interfaces"
	"arxiv-digest-api/infrastructure/cache/memory"
	"arxiv-digest-api/infrastructure/cache/redis"
	stdhttp "arxiv-digest-api/infrastructure/http/standard"
	applogger "arxiv-digest-api/infrastructure/logger/logrus"
	"arxiv-digest-api/pkg/config"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger := applogger.NewLogger()
	logger.Info("Starting arXiv Digest API", map[string]interface{}{
		"port":          cfg.Server.Port,
		"cache_type":    cfg.Cache.Type,
		"refresh_timer": cfg.Server.RefreshTimer,
		"data_base_url": cfg.Site.DataBaseURL,
	})

	// Create cache
	var cache interfaces.Cache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memory.NewMemoryCache(time.Duration(cfg.Cache.Memory.DefaultExpiration) * time.Second)
		} else {
			cache = redisCache
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
		}
	default:
		cache = memory.NewMemoryCache(time.Duration(cfg.Cache.Memory.DefaultExpiration) * time.Second)
		logger.Info("Using memory cache", nil)
	}

	// Create HTTP client
	httpClient := stdhttp.NewStandardHTTPClient(30 * time.Second)

	// Create dependencies container
	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Create the dataset service and load the initial snapshot. Run
	// blocks for the first load, then refreshes in the background when
	// a refresh interval is configured.
	datasets := dataset.NewService(deps, dataset.Config{
		BaseURL:        cfg.Site.DataBaseURL,
		ManifestPath:   cfg.Site.ManifestPath,
		FallbackMonths: cfg.Site.FallbackMonths,
	})

	runCtx, stopRefresh := context.WithCancel(context.Background())
	defer stopRefresh()
	datasets.Run(runCtx, time.Duration(cfg.Server.RefreshTimer)*time.Second)

	// Create API with middleware
	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
		Logger:     logger,
		RateLimit:  cfg.Server.RateLimit,
		RateWindow: time.Minute,
	})

	// Register the JSON API handlers
	digestHandler := handlers.NewDigestHandler(datasets)
	digestHandler.RegisterRoutes(humaAPI)

	// Register the server-rendered pages
	site := feed.Site{
		Title:       cfg.Site.Title,
		URL:         cfg.Site.URL,
		Description: cfg.Site.Description,
	}
	pageHandler := handlers.NewPageHandler(datasets, logger, site)
	pageHandler.RegisterRoutes(router)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)
	stopRefresh()

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}
