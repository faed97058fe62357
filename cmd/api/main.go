package main

// @title MBTI Travel Planner API
// @version 1.0.0
// @description Сервис генерации трёхдневных маршрутов по Гонконгу для типов личности MBTI. Для каждого дня назначаются три сессии (утро, день, вечер) по туристическим местам и три приёма пищи по ресторанам без единого повтора на весь маршрут.
// @description
// @description Основные возможности:
// @description - Генерация маршрута по типу личности с шестиуровневым каскадом назначения
// @description - Аудит готовых маршрутов: часы работы, уникальность, география, соответствие MBTI
// @description - Расширенный отчёт с покрытием слотов и когерентностью дней
// @description - Подбор замен для проблемных слотов

// @contact.name API Support
// @contact.email support@mbti-travel-planner.com

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

	_ "github.com/mbti-travel-planner/docs/swagger"
	"github.com/mbti-travel-planner/internal/config"
	httpDelivery "github.com/mbti-travel-planner/internal/delivery/http"
	"github.com/mbti-travel-planner/internal/delivery/http/handler"
	"github.com/mbti-travel-planner/internal/pkg/logger"
	"github.com/mbti-travel-planner/internal/repository/cache"
	"github.com/mbti-travel-planner/internal/repository/postgres"
	"github.com/mbti-travel-planner/internal/usecase"
	"go.uber.org/zap"
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

	log.Info("Starting MBTI Travel Planner")
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

	// 6. Initialize Repositories
	spotRepo := postgres.NewSpotRepository(db)
	restaurantRepo := postgres.NewRestaurantRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)

	log.Info("Repositories initialized")

	// 7. Initialize Engines and Use Cases
	assignmentEngine := usecase.NewAssignmentEngine(log)
	validationEngine := usecase.NewValidationEngine(log)

	itineraryUC := usecase.NewItineraryUseCase(
		spotRepo,
		restaurantRepo,
		cacheRepo,
		assignmentEngine,
		validationEngine,
		log,
		cfg.Cache.ItineraryCacheTTL,
		cfg.Planner.CacheEnabled,
		cfg.Planner.Version,
	)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	itineraryHandler := handler.NewItineraryHandler(itineraryUC, log)
	validationHandler := handler.NewValidationHandler(itineraryUC, log)
	healthHandler := handler.NewHealthHandler(db, redisClient, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		itineraryHandler,
		validationHandler,
		healthHandler,
	)

	log.Info("HTTP server initialized")

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
