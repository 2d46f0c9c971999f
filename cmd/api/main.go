// backend-go/cmd/api/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/invensight/backend-go/internal/api"
	"github.com/invensight/backend-go/internal/cache"
	"github.com/invensight/backend-go/internal/config"
	"github.com/invensight/backend-go/internal/repository/memory"
	"github.com/invensight/backend-go/internal/service"
	"github.com/invensight/backend-go/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	if cfg.Server.Mode == "debug" {
		logger.SetLevel("debug")
		gin.SetMode(gin.DebugMode)
	} else {
		logger.SetLevel("info")
		gin.SetMode(gin.ReleaseMode)
	}
	log := logger.Component("api")

	// Initialize the in-memory store (system of record, no database)
	store := memory.NewStore()

	// Initialize prediction cache (noop when disabled)
	predictionCache, err := cache.NewPredictionCache(cfg.Cache)
	if err != nil {
		log.Warn().Err(err).Msg("prediction cache unavailable, continuing without caching")
		predictionCache = cache.NewNoopPredictionCache()
	}

	// Initialize services
	analyticsService := service.NewAnalyticsService(store, predictionCache, service.ParamsFromConfig(cfg.Engine))

	// Initialize HTTP server
	router := api.NewRouter(&api.Services{
		Store:            store,
		AnalyticsService: analyticsService,
	}, cfg.Server.AllowedOrigins)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
