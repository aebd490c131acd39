package main

// @title Tour Planning Service API
// @version 1.0.0
// @description Backend for guide-authored tour circuits. Manages circuits with densely positioned stops, day schedules and meal planning, inter-stop routes backed by a transport catalog, advisory planning warnings, scheduled sessions, and AI-assisted itinerary generation and reordering.

// @contact.name API Support
// @contact.email support@tour-planning-service.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/tour-planning-service/docs"
	"github.com/tour-planning-service/internal/config"
	httpDelivery "github.com/tour-planning-service/internal/delivery/http"
	"github.com/tour-planning-service/internal/delivery/http/handler"
	"github.com/tour-planning-service/internal/infrastructure/groq"
	"github.com/tour-planning-service/internal/infrastructure/openweather"
	"github.com/tour-planning-service/internal/pkg/logger"
	"github.com/tour-planning-service/internal/repository/cache"
	"github.com/tour-planning-service/internal/repository/postgres"
	"github.com/tour-planning-service/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Tour Planning Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}
	log.Info("All connections healthy")

	// 6. Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	cityRepo := postgres.NewCityRepository(db)
	placeRepo := postgres.NewPlaceRepository(db)
	transportOptionRepo := postgres.NewTransportOptionRepository(db)
	circuitRepo := postgres.NewCircuitRepository(db)
	stopRepo := postgres.NewStopRepository(db)
	routeRepo := postgres.NewRouteRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	log.Info("Repositories initialized")

	// 7. External clients
	completionClient := groq.NewCompletionClient(&cfg.AI, log)
	weatherProvider := openweather.NewCachedWeatherProvider(
		openweather.NewWeatherProvider(&cfg.Weather, log),
		cacheRepo,
		cfg.Cache.WeatherCacheTTL,
		log,
	)

	// 8. Initialize use cases
	locker := usecase.NewCircuitLocker()

	circuitUC := usecase.NewCircuitUseCase(userRepo, circuitRepo, stopRepo, routeRepo, cityRepo, placeRepo, log)
	stopUC := usecase.NewStopUseCase(userRepo, circuitRepo, stopRepo, placeRepo, locker, log)
	routeUC := usecase.NewRouteUseCase(userRepo, circuitRepo, stopRepo, routeRepo, transportOptionRepo, log)
	sessionUC := usecase.NewSessionUseCase(userRepo, circuitRepo, sessionRepo, log)
	aiUC := usecase.NewAiUseCase(userRepo, circuitRepo, stopRepo, cityRepo, placeRepo,
		completionClient, weatherProvider, locker, log)
	log.Info("Use cases initialized")

	// 9. Initialize HTTP handlers
	circuitHandler := handler.NewCircuitHandler(circuitUC, log)
	stopHandler := handler.NewStopHandler(stopUC, log)
	routeHandler := handler.NewRouteHandler(routeUC, log)
	aiHandler := handler.NewAiHandler(aiUC, log)
	sessionHandler := handler.NewSessionHandler(sessionUC, log)
	log.Info("HTTP handlers initialized")

	// 10. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		circuitHandler,
		stopHandler,
		routeHandler,
		aiHandler,
		sessionHandler,
	)
	log.Info("HTTP server initialized")

	// 11. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 12. Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", zap.Error(err))
	}

	log.Info("Server stopped")
}
