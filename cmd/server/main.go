package main

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"election-monitor/internal/api"
	"election-monitor/internal/auth"
	"election-monitor/internal/httpclient"
	"election-monitor/internal/mockdata"
	"election-monitor/internal/services"
	"election-monitor/pkg/config"
	"election-monitor/pkg/logger"
)

func main() {
	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

	cfg, err := config.LoadConfig("configs/server.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger(logger.Options{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		File:       cfg.Logging.File,
		MaxSize:    cfg.Logging.MaxSize,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAge:     cfg.Logging.MaxAge,
		Compress:   cfg.Logging.Compress,
	})

	log.Info("Starting election monitor", "mode", cfg.Mode, "address", cfg.GetServerAddress())

	container, err := buildServices(cfg, log)
	if err != nil {
		log.Fatal("Failed to build services", "error", err.Error())
	}

	if err := container.Start(); err != nil {
		log.Fatal("Failed to start services", "error", err.Error())
	}
	defer container.Stop()

	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()
	api.SetupRoutes(router, container)

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed", "error", err.Error())
		}
	}()

	log.Info("Server listening", "address", cfg.GetServerAddress())

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", "error", err.Error())
	}

	log.Info("Server stopped")
}

// buildServices assembles the dependency container for the configured
// mode. Prototype mode generates the dataset and runs the simulator; the
// live modes route every service through the shared HTTP client instead.
func buildServices(cfg *config.Config, log *logger.Logger) (*api.Services, error) {
	passwordHash, err := auth.HashPassword(mockdata.DefaultPassword)
	if err != nil {
		return nil, fmt.Errorf("hashing default password: %w", err)
	}

	sizing := mockdata.Sizing{
		UnitsPerLGA:       cfg.Mock.UnitsPerLGA,
		LocationsPerAgent: cfg.Mock.LocationsPerAgent,
		ReportsPerAgent:   cfg.Mock.ReportsPerAgent,
		Notifications:     cfg.Mock.Notifications,
		AuditEntries:      cfg.Mock.AuditEntries,
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	store := mockdata.NewStore(rng, sizing, cfg.Geofence.RadiusMeters, passwordHash)
	authService := auth.NewService(store, cfg.Security, log)

	var client *httpclient.Client
	var simulator *mockdata.Simulator

	if cfg.IsPrototype() {
		if cfg.Features.Simulation {
			simulator = mockdata.NewSimulator(store, cfg.API.PollingInterval, cfg.Geofence.RadiusMeters, log)
		}
	} else {
		tokenStore, err := auth.NewFileTokenStore(os.Getenv("TOKEN_CACHE_FILE"))
		if err != nil {
			return nil, fmt.Errorf("opening token cache: %w", err)
		}

		tokens := auth.NewRemoteTokenSource(tokenStore, cfg.API.BaseURL+"/auth/refresh", cfg.Client.Timeout)
		client = httpclient.NewClient(cfg.Client, cfg.API.BaseURL, tokens, log)
	}

	registry := services.NewRegistry(cfg, store, client, log)

	return api.NewServices(cfg, log, store, registry, authService, simulator), nil
}
